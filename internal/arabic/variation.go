package arabic

import (
	"strings"
	"unicode"
)

// Limits bound variant enumeration. Per-occurrence substitution is linear in
// occurrences x class size per stage and the later passes multiply the set,
// so both knobs are exposed for per-deployment tuning.
type Limits struct {
	// MaxOccurrences is how many alef occurrences (from the start of the
	// text) get their own single-position substitutions.
	MaxOccurrences int `yaml:"max_occurrences"`
	// MaxVariants caps the size of a VariationSet, seed included.
	MaxVariants int `yaml:"max_variants"`
}

// DefaultLimits is used when a Limits field is zero or negative.
var DefaultLimits = Limits{MaxOccurrences: 8, MaxVariants: 256}

func (l Limits) withDefaults() Limits {
	if l.MaxOccurrences <= 0 {
		l.MaxOccurrences = DefaultLimits.MaxOccurrences
	}
	if l.MaxVariants <= 0 {
		l.MaxVariants = DefaultLimits.MaxVariants
	}
	return l
}

// VariationSet is an insertion-ordered set of spellings. The seed is always
// the first member.
type VariationSet struct {
	items []string
	index map[string]struct{}
	limit int
}

func newVariationSet(seed string, limit int) *VariationSet {
	v := &VariationSet{
		items: make([]string, 0, 16),
		index: make(map[string]struct{}, 16),
		limit: limit,
	}
	v.add(seed)
	return v
}

// add inserts s unless it is already present or the set is full.
func (v *VariationSet) add(s string) {
	if v.full() {
		return
	}
	if _, ok := v.index[s]; ok {
		return
	}
	v.index[s] = struct{}{}
	v.items = append(v.items, s)
}

func (v *VariationSet) full() bool { return len(v.items) >= v.limit }

// snapshot returns the members accumulated so far; later adds do not show up in it.
func (v *VariationSet) snapshot() []string {
	return v.items[:len(v.items):len(v.items)]
}

// Items returns the members in insertion order.
func (v VariationSet) Items() []string {
	out := make([]string, len(v.items))
	copy(out, v.items)
	return out
}

// Len returns the number of members.
func (v VariationSet) Len() int { return len(v.items) }

// Contains reports whether s is a member.
func (v VariationSet) Contains(s string) bool {
	_, ok := v.index[s]
	return ok
}

// Generator enumerates spelling variants within fixed Limits.
// The zero value uses DefaultLimits.
type Generator struct {
	limits Limits
}

// NewGenerator creates a Generator. Non-positive limits fall back to DefaultLimits.
func NewGenerator(limits Limits) Generator {
	return Generator{limits: limits.withDefaults()}
}

// Limits returns the effective limits.
func (g Generator) Limits() Limits { return g.limits.withDefaults() }

// Variations enumerates alternate spellings of text. It must be fed the raw
// or punctuation-stripped text, never the normalized form, because it works
// on exactly the letters normalization erases.
//
// Stages run cumulatively: global alef substitution, first-letter alef
// substitution, per-occurrence alef substitution, then teh marbuta/heh,
// alef maksura/yeh and hamza-carrier passes over everything collected so far.
func (g Generator) Variations(text string) VariationSet {
	limits := g.limits.withDefaults()
	set := newVariationSet(text, limits.MaxVariants)
	letters := []rune(text)

	for _, form := range alefForms {
		set.add(replaceAlefs(letters, form))
	}

	if len(letters) > 0 && isAlefForm(letters[0]) {
		for _, form := range alefForms {
			set.add(replaceAt(letters, 0, form))
		}
	}

	seen := 0
	for i, r := range letters {
		if !isAlefForm(r) {
			continue
		}
		if seen == limits.MaxOccurrences || set.full() {
			break
		}
		seen++
		for _, form := range alefForms {
			set.add(replaceAt(letters, i, form))
		}
	}

	for _, v := range set.snapshot() {
		set.add(replaceWordFinal(v, tehMarbuta, heh))
		set.add(replaceWordFinal(v, heh, tehMarbuta))
	}

	for _, v := range set.snapshot() {
		set.add(strings.ReplaceAll(v, string(alefMaksura), string(yeh)))
		set.add(replaceWordFinal(v, yeh, alefMaksura))
	}

	for _, v := range set.snapshot() {
		set.add(hamzaCarrierDecoder.Replace(v))
	}

	return *set
}

// Variations enumerates variants of text with DefaultLimits.
func Variations(text string) VariationSet {
	return Generator{}.Variations(text)
}

// replaceAlefs rewrites every alef form in letters to form.
func replaceAlefs(letters []rune, form rune) string {
	out := make([]rune, len(letters))
	for i, r := range letters {
		if isAlefForm(r) {
			r = form
		}
		out[i] = r
	}
	return string(out)
}

// replaceAt rewrites the single rune at position i.
func replaceAt(letters []rune, i int, form rune) string {
	out := make([]rune, len(letters))
	copy(out, letters)
	out[i] = form
	return string(out)
}

// replaceWordFinal rewrites from -> to wherever from ends a word, that is
// when it is not followed by another letter. Trailing marks do not count as
// letters, so a final teh marbuta carrying tanween still qualifies.
func replaceWordFinal(s string, from, to rune) string {
	if !strings.ContainsRune(s, from) {
		return s
	}
	letters := []rune(s)
	for i, r := range letters {
		if r != from {
			continue
		}
		if i+1 < len(letters) && unicode.IsLetter(letters[i+1]) {
			continue
		}
		letters[i] = to
	}
	return string(letters)
}
