// Package arabic canonicalizes Arabic-script text for substring search and
// enumerates the spelling variants a reader would consider equivalent.
//
// Every table in this file is built once at package initialization and is
// only read afterwards, so all functions are safe for concurrent use.
package arabic

import (
	"strings"
	"unicode"
)

// Letters that take part in orthographic unification.
const (
	alef          = 'ا'
	alefHamzaAbv  = 'أ'
	alefHamzaBlw  = 'إ'
	alefMadda     = 'آ'
	tehMarbuta    = 'ة'
	heh           = 'ه'
	alefMaksura   = 'ى'
	yeh           = 'ي'
	waw           = 'و'
	wawHamza      = 'ؤ'
	yehHamza      = 'ئ'
	superscriptAl = '\u0670'
)

// alefForms is the letter-shape equivalence class: one letter written with
// different hamza/madda dress. The first entry is the canonical form.
var alefForms = []rune{alef, alefHamzaAbv, alefHamzaBlw, alefMadda}

// vowelMarks covers fathatan..wavy hamza below (harakat, shadda, sukun and
// the small hamza marks) plus the superscript alef.
var vowelMarks = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x064B, Hi: 0x065F, Stride: 1},
		{Lo: superscriptAl, Hi: superscriptAl, Stride: 1},
	},
}

// punctuationChars lists glyphs that are always treated as separators, even
// when a Unicode category check alone would not catch them.
const punctuationChars = "،؛؟٪٫٬۔٭﴾﴿«»" +
	`!"#$%&'()*+,-./:;<=>?@[\]^_{|}~` + "`" +
	"‘’‚‛“”„‟‹›′″" +
	"〈〉《》「」『』【】〔〕（）［］｛｝" +
	"‐‑‒–—―−⸺⸻﹘﹣－" +
	"…·•¡¿§¶"

var punctuation = func() map[rune]struct{} {
	m := make(map[rune]struct{}, len(punctuationChars))
	for _, r := range punctuationChars {
		m[r] = struct{}{}
	}
	return m
}()

// alefUnifier maps every alef form to bare alef in a single pass.
var alefUnifier = func() *strings.Replacer {
	pairs := make([]string, 0, 2*len(alefForms))
	for _, r := range alefForms[1:] {
		pairs = append(pairs, string(r), string(alef))
	}
	return strings.NewReplacer(pairs...)
}()

// hamzaCarrierDecoder drops the hamza from waw and yeh carriers.
var hamzaCarrierDecoder = strings.NewReplacer(
	string(wawHamza), string(waw),
	string(yehHamza), string(yeh),
)

func isAlefForm(r rune) bool {
	for _, f := range alefForms {
		if r == f {
			return true
		}
	}
	return false
}

func isPunctuation(r rune) bool {
	if _, ok := punctuation[r]; ok {
		return true
	}
	return !unicode.IsLetter(r) && !unicode.IsNumber(r) && !unicode.IsMark(r) && !unicode.IsSpace(r)
}
