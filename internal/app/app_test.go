package app

import (
	"context"
	"testing"

	"github.com/kailas-cloud/harfsearch/internal/config"
	"github.com/kailas-cloud/harfsearch/internal/db/sqlite"
	"github.com/kailas-cloud/harfsearch/internal/domain/search/kind"
	"github.com/kailas-cloud/harfsearch/internal/domain/search/request"
	healthuc "github.com/kailas-cloud/harfsearch/internal/usecase/health"
)

func memoryConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.Parse([]byte("database:\n  driver: sqlite\n  path: \":memory:\"\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return &cfg
}

func newSeededApp(t *testing.T) *App {
	t.Helper()
	a, err := New(context.Background(), memoryConfig(t), nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(a.Close)

	f, err := LoadFixtures("../../config/fixtures.yaml")
	if err != nil {
		t.Fatalf("LoadFixtures: %v", err)
	}
	if _, err := a.Seed(context.Background(), &f); err != nil {
		t.Fatalf("Seed: %v", err)
	}
	return a
}

func search(t *testing.T, a *App, q string, scope kind.Scope) []kind.Kind {
	t.Helper()
	req, err := request.New(q, scope, 0)
	if err != nil {
		t.Fatalf("request.New: %v", err)
	}
	list, err := a.Search.Search(context.Background(), &req)
	if err != nil {
		t.Fatalf("Search(%q): %v", q, err)
	}
	kinds := make([]kind.Kind, 0, list.Total())
	for _, r := range list.Results() {
		kinds = append(kinds, r.Kind())
	}
	return kinds
}

func TestOpenStore_UnknownDriver(t *testing.T) {
	if _, err := OpenStore(config.DatabaseConfig{Driver: "mongo"}); err == nil {
		t.Fatal("expected error for unknown driver")
	}
}

func TestNew_SQLiteMemory(t *testing.T) {
	a, err := New(context.Background(), memoryConfig(t), nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer a.Close()

	if a.Driver != config.DriverSQLite {
		t.Errorf("Driver = %q", a.Driver)
	}
	if r := a.Health.Check(context.Background()); r.Status != healthuc.Healthy {
		t.Errorf("health = %s", r.Status)
	}
}

func TestSeed_CountsRows(t *testing.T) {
	a, err := New(context.Background(), memoryConfig(t), nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer a.Close()

	f, err := ParseFixtures([]byte(`
tools:
  - {id: 1, name: أداة}
  - {id: 2, name: حاسبة}
articles:
  - {id: 1, title: مقال}
`))
	if err != nil {
		t.Fatalf("ParseFixtures: %v", err)
	}
	res, err := a.Seed(context.Background(), &f)
	if err != nil {
		t.Fatalf("Seed: %v", err)
	}
	if res.Tools != 2 || res.Articles != 1 {
		t.Errorf("Seed = %+v", res)
	}
}

func TestSeed_StopsOnInvalidRow(t *testing.T) {
	a, err := New(context.Background(), memoryConfig(t), nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer a.Close()

	bad, err := ParseFixtures([]byte("tools:\n  - {id: 0, name: x}\n"))
	if err != nil {
		t.Fatal(err)
	}
	res, err := a.Seed(context.Background(), &bad)
	if err == nil {
		t.Fatal("expected error for id 0")
	}
	if res.Tools != 0 {
		t.Errorf("Tools = %d, want 0", res.Tools)
	}
}

func TestParseFixtures_Invalid(t *testing.T) {
	if _, err := ParseFixtures([]byte("tools: {")); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestSearch_HamzaTolerantOverFixtures(t *testing.T) {
	a := newSeededApp(t)

	// Bare alef finds the hamza spelling in both sources, tools first.
	got := search(t, a, "احجار", kind.ScopeAll)
	if len(got) != 2 || got[0] != kind.Tool || got[1] != kind.Article {
		t.Errorf("احجار: kinds = %v, want [tool article]", got)
	}
}

func TestSearch_FinalLetterOverFixtures(t *testing.T) {
	a := newSeededApp(t)

	got := search(t, a, "مدرسة", kind.ScopeArticles)
	if len(got) == 0 {
		t.Fatal("expected the heh-spelled article")
	}
	for _, k := range got {
		if k != kind.Article {
			t.Errorf("unexpected %s in articles scope", k)
		}
	}
}

func TestSearch_HiddenStatusExcluded(t *testing.T) {
	a := newSeededApp(t)

	// Tool 3 is a draft.
	if got := search(t, a, "PDF", kind.ScopeTools); len(got) != 0 {
		t.Errorf("draft tool returned: %v", got)
	}
}

func TestWire_ExistingStore(t *testing.T) {
	store, err := sqlite.NewStore(sqlite.Config{Path: sqlite.MemoryPath})
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	cfg := memoryConfig(t)
	a, err := Wire(context.Background(), store, "sqlite", &cfg.Search, nil)
	if err != nil {
		t.Fatalf("Wire: %v", err)
	}
	if a.Search == nil || a.Tools == nil || a.Articles == nil {
		t.Fatal("services not wired")
	}
}
