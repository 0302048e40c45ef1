package pattern

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/kailas-cloud/harfsearch/internal/arabic"
)

func TestBuild_RawQueryFirst(t *testing.T) {
	set := Build("أدوات")
	if len(set) == 0 || set[0] != "أدوات" {
		t.Fatalf("expected raw query first, got %v", set)
	}
}

func TestBuild_StrippedSecond(t *testing.T) {
	set := Build("أداة،تحويل")
	if len(set) < 2 {
		t.Fatalf("expected at least 2 patterns, got %v", set)
	}
	if set[1] != "أداة تحويل" {
		t.Errorf("set[1] = %q, want stripped form", set[1])
	}
}

func TestBuild_IncludesNormalized(t *testing.T) {
	set := Build("أداة")
	if !set.Contains("اداه") {
		t.Errorf("expected normalized form in %v", set)
	}
}

func TestBuild_NormalizedSkippedWhenSameAsLowercase(t *testing.T) {
	set := Build("PDF")
	if len(set) != 1 || set[0] != "PDF" {
		t.Errorf("Build(PDF) = %v, want [PDF]", set)
	}
}

func TestBuild_FirstLetterHamza(t *testing.T) {
	set := Build("احجار")
	if !set.Contains("أحجار") {
		t.Errorf("expected %q in %v", "أحجار", set)
	}
}

func TestBuild_FinalTehMarbuta(t *testing.T) {
	set := Build("مدرسه")
	if !set.Contains("مدرسة") {
		t.Errorf("expected %q in %v", "مدرسة", set)
	}
}

func TestBuild_VariantsOfStrippedForm(t *testing.T) {
	set := Build("مدرسه،احجار")
	if !set.Contains("مدرسة أحجار") {
		t.Errorf("expected variant of stripped form in %v", set)
	}
}

func TestBuild_MinimumLength(t *testing.T) {
	queries := []string{"أداة", "ab", "a,b", "اب", "  ا  ", "مدرسه", "!!!", "x y"}
	for _, q := range queries {
		for _, p := range Build(q) {
			if n := utf8.RuneCountInString(strings.TrimSpace(p)); n < MinRunes {
				t.Errorf("Build(%q) contains short pattern %q (%d runes)", q, p, n)
			}
		}
	}
}

func TestBuild_EmptyQuery(t *testing.T) {
	if set := Build(""); len(set) != 0 {
		t.Errorf("Build(\"\") = %v, want empty", set)
	}
	if set := Build("   "); len(set) != 0 {
		t.Errorf("Build(blank) = %v, want empty", set)
	}
}

func TestBuild_NoDuplicates(t *testing.T) {
	queries := []string{"احجار", "مدرسة", "الأداة،الإلكترونية", "a,b.c", "مستشفى"}
	for _, q := range queries {
		seen := make(map[string]bool)
		for _, p := range Build(q) {
			if seen[p] {
				t.Errorf("Build(%q) has duplicate %q", q, p)
			}
			seen[p] = true
		}
	}
}

func TestBuild_AllPatternsNormalizeEquivalent(t *testing.T) {
	q := "الأداة،الإلكترونية"
	want := arabic.Normalize(q)
	for _, p := range Build(q) {
		if got := arabic.Normalize(p); got != want {
			t.Errorf("pattern %q normalizes to %q, want %q", p, got, want)
		}
	}
}

func TestBuilder_RespectsLimits(t *testing.T) {
	q := strings.Repeat("أإآ", 20)
	small := NewBuilder(arabic.NewGenerator(arabic.Limits{MaxOccurrences: 1, MaxVariants: 4})).Build(q)
	large := NewBuilder(arabic.NewGenerator(arabic.Limits{MaxOccurrences: 60, MaxVariants: 500})).Build(q)
	if len(small) >= len(large) {
		t.Errorf("tighter limits should yield fewer patterns: %d vs %d", len(small), len(large))
	}
}
