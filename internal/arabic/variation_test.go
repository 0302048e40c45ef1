package arabic

import (
	"strings"
	"testing"
)

var variationSeeds = []string{
	"احجار",
	"أحجار",
	"مدرسه",
	"مدرسة",
	"مستشفى",
	"مؤتمر رئيسي",
	"الأداة الإلكترونية",
	"آلة حاسبة",
	"مَدْرَسَةٌ",
	"pdf",
	"a b c",
	"ا",
}

func TestVariations_SeedIsFirst(t *testing.T) {
	for _, seed := range variationSeeds {
		set := Variations(seed)
		if set.Len() == 0 {
			t.Fatalf("Variations(%q) is empty", seed)
		}
		if got := set.Items()[0]; got != seed {
			t.Errorf("Variations(%q)[0] = %q, want the seed", seed, got)
		}
		if !set.Contains(seed) {
			t.Errorf("Variations(%q) does not contain its seed", seed)
		}
	}
}

func TestVariations_NormalizeEquivalent(t *testing.T) {
	for _, seed := range variationSeeds {
		want := Normalize(seed)
		for _, v := range Variations(seed).Items() {
			if got := Normalize(v); got != want {
				t.Errorf("seed %q: variant %q normalizes to %q, want %q", seed, v, got, want)
			}
		}
	}
}

func TestVariations_NoDuplicates(t *testing.T) {
	for _, seed := range variationSeeds {
		seen := make(map[string]bool)
		for _, v := range Variations(seed).Items() {
			if seen[v] {
				t.Errorf("seed %q: duplicate variant %q", seed, v)
			}
			seen[v] = true
		}
	}
}

func TestVariations_FirstLetterHamza(t *testing.T) {
	set := Variations("احجار")
	if !set.Contains("أحجار") {
		t.Errorf("expected %q in %v", "أحجار", set.Items())
	}
	if !set.Contains("إحجار") {
		t.Errorf("expected %q in %v", "إحجار", set.Items())
	}
}

func TestVariations_GlobalSubstitution(t *testing.T) {
	set := Variations("احجار")
	if !set.Contains("أحجأر") {
		t.Errorf("expected global substitution %q in %v", "أحجأر", set.Items())
	}
}

func TestVariations_PerOccurrence(t *testing.T) {
	// Only the second alef changes; the first stays bare.
	set := Variations("الاداة")
	if !set.Contains("الأداة") {
		t.Errorf("expected per-occurrence variant %q in %v", "الأداة", set.Items())
	}
}

func TestVariations_FinalLetter(t *testing.T) {
	if set := Variations("مدرسه"); !set.Contains("مدرسة") {
		t.Errorf("expected %q in %v", "مدرسة", set.Items())
	}
	if set := Variations("مدرسة"); !set.Contains("مدرسه") {
		t.Errorf("expected %q in %v", "مدرسه", set.Items())
	}
	// heh in the middle of a word is left alone.
	for _, v := range Variations("مهندس").Items() {
		if strings.ContainsRune(v, tehMarbuta) {
			t.Errorf("unexpected teh marbuta in %q", v)
		}
	}
}

func TestVariations_AlefMaksura(t *testing.T) {
	if set := Variations("مستشفى"); !set.Contains("مستشفي") {
		t.Errorf("expected %q in %v", "مستشفي", set.Items())
	}
	if set := Variations("مستشفي"); !set.Contains("مستشفى") {
		t.Errorf("expected %q in %v", "مستشفى", set.Items())
	}
}

func TestVariations_HamzaCarriers(t *testing.T) {
	set := Variations("مؤتمر رئيس")
	if !set.Contains("موتمر رييس") {
		t.Errorf("expected decoded carriers in %v", set.Items())
	}
}

func TestVariations_Latin(t *testing.T) {
	set := Variations("pdf")
	if set.Len() != 1 {
		t.Errorf("expected only the seed for latin text, got %v", set.Items())
	}
}

func TestVariations_Empty(t *testing.T) {
	set := Variations("")
	if set.Len() != 1 || set.Items()[0] != "" {
		t.Errorf("Variations(\"\") = %v, want [\"\"]", set.Items())
	}
}

func TestVariations_MaxVariantsCap(t *testing.T) {
	long := strings.Repeat("ا", 40) + "ة"
	gen := NewGenerator(Limits{MaxOccurrences: 100, MaxVariants: 32})
	set := gen.Variations(long)
	if set.Len() > 32 {
		t.Fatalf("set size %d exceeds cap 32", set.Len())
	}
	if set.Items()[0] != long {
		t.Error("seed must survive the cap")
	}
}

func TestVariations_MaxOccurrencesCap(t *testing.T) {
	// Five alefs; only the first two get single-position rewrites.
	text := "ابابابابا"
	gen := NewGenerator(Limits{MaxOccurrences: 2, MaxVariants: 1000})
	set := gen.Variations(text)

	if !set.Contains("ابأبابابا") {
		t.Errorf("second occurrence should be substituted: %v", set.Items())
	}
	if set.Contains("ابابأبابا") {
		t.Errorf("third occurrence should not be substituted: %v", set.Items())
	}
}

func TestVariations_PathologicalInputBounded(t *testing.T) {
	text := strings.Repeat("أإآا ", 200)
	set := Variations(text)
	if set.Len() > DefaultLimits.MaxVariants {
		t.Fatalf("set size %d exceeds default cap %d", set.Len(), DefaultLimits.MaxVariants)
	}
}

func TestNewGenerator_Defaults(t *testing.T) {
	g := NewGenerator(Limits{})
	if g.Limits() != DefaultLimits {
		t.Errorf("Limits() = %+v, want %+v", g.Limits(), DefaultLimits)
	}

	var zero Generator
	if zero.Limits() != DefaultLimits {
		t.Errorf("zero Generator Limits() = %+v, want %+v", zero.Limits(), DefaultLimits)
	}
}
