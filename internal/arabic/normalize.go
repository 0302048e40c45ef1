package arabic

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// StripPunctuation replaces punctuation, symbols and control characters with
// a single space, then collapses whitespace runs and trims the result.
// Letters, digits and combining marks are kept: vowel marks must survive so
// that variation generation still sees the decorated spelling.
func StripPunctuation(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if isPunctuation(r) {
			b.WriteByte(' ')
			continue
		}
		b.WriteRune(r)
	}
	return collapseSpaces(b.String())
}

// Normalize returns the canonical search form of s: punctuation stripped,
// alef forms unified, teh marbuta and alef maksura folded into heh and yeh,
// vowel marks removed, hamza carriers decoded and the result case-folded.
//
// Normalize is idempotent. Input made only of punctuation or whitespace
// yields the empty string.
func Normalize(s string) string {
	// Punctuation goes first: the letter rules below assume it is gone.
	s = StripPunctuation(s)
	if s == "" {
		return ""
	}

	s = alefUnifier.Replace(s)
	s = strings.ReplaceAll(s, string(tehMarbuta), string(heh))
	s = strings.ReplaceAll(s, string(alefMaksura), string(yeh))
	s = RemoveVowelMarks(s)
	s = hamzaCarrierDecoder.Replace(s)
	s = collapseSpaces(s)

	// Caser keeps per-call state, a fresh one per call keeps Normalize reentrant.
	return cases.Fold().String(s)
}

// RemoveVowelMarks deletes short-vowel, tanween, shadda, sukun and
// superscript-alef marks. Base letters are left untouched.
func RemoveVowelMarks(s string) string {
	out, _, _ := transform.String(runes.Remove(vowelMarkSet), s)
	return out
}

// DecodeHamzaCarriers replaces hamza-on-waw and hamza-on-yeh with the bare
// carrier letter.
func DecodeHamzaCarriers(s string) string {
	return hamzaCarrierDecoder.Replace(s)
}

var vowelMarkSet = runes.In(vowelMarks)

func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
