package chi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/kailas-cloud/harfsearch/internal/arabic"
	"github.com/kailas-cloud/harfsearch/internal/domain/record"
	"github.com/kailas-cloud/harfsearch/internal/domain/search/kind"
	"github.com/kailas-cloud/harfsearch/internal/domain/search/pattern"
	healthuc "github.com/kailas-cloud/harfsearch/internal/usecase/health"
	searchuc "github.com/kailas-cloud/harfsearch/internal/usecase/search"
)

// --- Mocks ---

// substringSource matches records whose title contains the pattern.
type substringSource struct {
	kind kind.Kind
	recs []record.Record
	err  error
}

func (s *substringSource) Kind() kind.Kind { return s.kind }

func (s *substringSource) Search(_ context.Context, p string, limit int) ([]record.Record, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []record.Record
	for _, r := range s.recs {
		var title string
		switch v := r.(type) {
		case record.Tool:
			title = v.Name
		case record.Article:
			title = v.Title
		}
		if strings.Contains(title, p) {
			out = append(out, r)
		}
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

type mockPinger struct{ err error }

func (m *mockPinger) Ping(context.Context) error { return m.err }

func newTestServer(t *testing.T, articlesErr error) http.Handler {
	t.Helper()
	tools := &substringSource{kind: kind.Tool, recs: []record.Record{
		record.Tool{ID: 1, Name: "محول أحجار", Slug: "stones", Description: "وصف", Icon: "gem.svg"},
		record.Tool{ID: 2, Name: "حاسبة مدرسة", Slug: "school-calc", Category: "تعليم"},
	}}
	articles := &substringSource{kind: kind.Article, err: articlesErr, recs: []record.Record{
		record.Article{ID: 1, Title: "دليل الأحجار", Slug: "guide", Excerpt: "مقتطف", Image: "g.png"},
	}}

	svc := searchuc.New(
		pattern.NewBuilder(arabic.NewGenerator(arabic.DefaultLimits)),
		[]searchuc.Source{tools, articles},
		nil,
	)
	srv := NewServer(svc, healthuc.New(&mockPinger{}, "sqlite"), nil).WithMaxQueryRunes(20)
	return srv.Router(nil)
}

func doGet(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("GET", path, http.NoBody)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func decodeSearch(t *testing.T, rr *httptest.ResponseRecorder) SearchResponse {
	t.Helper()
	var resp SearchResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode search response: %v", err)
	}
	return resp
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var resp ErrorResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode error response: %v", err)
	}
	return resp
}

func searchPath(q string, extra ...string) string {
	v := url.Values{}
	v.Set("q", q)
	for i := 0; i+1 < len(extra); i += 2 {
		v.Set(extra[i], extra[i+1])
	}
	return "/search?" + v.Encode()
}

// --- Tests ---

func TestSearch_Success(t *testing.T) {
	h := newTestServer(t, nil)
	rr := doGet(t, h, searchPath("احجار"))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rr.Code, rr.Body.String())
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("content type = %q", ct)
	}
	resp := decodeSearch(t, rr)
	if !resp.Success || resp.Query != "احجار" {
		t.Errorf("unexpected envelope %+v", resp)
	}
	if resp.Total != 2 || len(resp.Results) != 2 {
		t.Fatalf("expected tool 1 and article 1, got %+v", resp.Results)
	}
	tool, art := resp.Results[0], resp.Results[1]
	if tool.Type != "tool" || tool.ID != 1 || tool.Icon != "gem.svg" || tool.Description != "وصف" {
		t.Errorf("unexpected tool item %+v", tool)
	}
	if art.Type != "article" || art.Excerpt != "مقتطف" || art.Image != "g.png" {
		t.Errorf("unexpected article item %+v", art)
	}
}

func TestSearch_OptionalFieldsOmitted(t *testing.T) {
	h := newTestServer(t, nil)
	rr := doGet(t, h, searchPath("مدرسه", "type", "tools"))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	var raw struct {
		Results []map[string]any `json:"results"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&raw); err != nil {
		t.Fatal(err)
	}
	if len(raw.Results) != 1 {
		t.Fatalf("expected the school tool via final-letter variant, got %v", raw.Results)
	}
	for _, field := range []string{"excerpt", "image", "icon", "description"} {
		if _, ok := raw.Results[0][field]; ok {
			t.Errorf("empty %s must be omitted", field)
		}
	}
	if raw.Results[0]["category"] != "تعليم" {
		t.Errorf("category = %v", raw.Results[0]["category"])
	}
}

func TestSearch_EmptyQuery(t *testing.T) {
	h := newTestServer(t, nil)
	for _, path := range []string{"/search", "/search?q=", "/search?q=%20%20%09"} {
		rr := doGet(t, h, path)
		if rr.Code != http.StatusBadRequest {
			t.Fatalf("%s: status = %d, want 400", path, rr.Code)
		}
		resp := decodeError(t, rr)
		if resp.Success || resp.Error.Code != CodeEmptyQuery {
			t.Errorf("%s: unexpected body %+v", path, resp)
		}
		if resp.Results == nil || len(resp.Results) != 0 {
			t.Errorf("%s: results must be an empty list", path)
		}
	}
}

func TestSearch_QueryAlias(t *testing.T) {
	h := newTestServer(t, nil)
	rr := doGet(t, h, "/search?query="+url.QueryEscape("أحجار"))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	if resp := decodeSearch(t, rr); resp.Total == 0 {
		t.Error("expected results via the query alias")
	}
}

func TestSearch_BlankQFallsBackToAlias(t *testing.T) {
	h := newTestServer(t, nil)
	rr := doGet(t, h, "/search?q=%20%20&query="+url.QueryEscape("أحجار"))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	resp := decodeSearch(t, rr)
	if resp.Total == 0 || resp.Query != "أحجار" {
		t.Errorf("unexpected response %+v", resp)
	}
}

func TestSearch_QueryTooLong(t *testing.T) {
	h := newTestServer(t, nil)
	rr := doGet(t, h, searchPath(strings.Repeat("ا", 21)))
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rr.Code)
	}
	resp := decodeError(t, rr)
	if resp.Error.Code != CodeQueryTooLong {
		t.Errorf("code = %s", resp.Error.Code)
	}
	if !strings.Contains(resp.Error.Message, "20") {
		t.Errorf("message should name the limit: %q", resp.Error.Message)
	}
}

func TestSearch_InvalidType(t *testing.T) {
	h := newTestServer(t, nil)
	rr := doGet(t, h, searchPath("أحجار", "type", "pages"))
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rr.Code)
	}
	if resp := decodeError(t, rr); resp.Error.Code != CodeInvalidType {
		t.Errorf("code = %s", resp.Error.Code)
	}
}

func TestSearch_SourceFailureStill200(t *testing.T) {
	h := newTestServer(t, errors.New("articles table locked"))
	rr := doGet(t, h, searchPath("أحجار"))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	resp := decodeSearch(t, rr)
	if resp.Total != 1 {
		t.Fatalf("expected only the tool, got %+v", resp.Results)
	}
	for _, r := range resp.Results {
		if r.Type != "tool" {
			t.Errorf("unexpected %s result", r.Type)
		}
	}
}

func TestSearch_TypeToolsExcludesArticles(t *testing.T) {
	h := newTestServer(t, nil)
	rr := doGet(t, h, searchPath("أحجار", "type", "tools"))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	for _, r := range decodeSearch(t, rr).Results {
		if r.Type == "article" {
			t.Errorf("article in tools scope: %+v", r)
		}
	}
}

func TestSearch_NoMatches(t *testing.T) {
	h := newTestServer(t, nil)
	rr := doGet(t, h, searchPath("غير موجود"))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	resp := decodeSearch(t, rr)
	if resp.Total != 0 || resp.Results == nil {
		t.Errorf("expected empty results list, got %+v", resp)
	}
}

func TestSearch_RequestIDHeader(t *testing.T) {
	h := newTestServer(t, nil)
	rr := doGet(t, h, searchPath("أحجار"))
	if rr.Header().Get("X-Request-ID") == "" {
		t.Error("expected X-Request-ID header")
	}
}

func TestHealth(t *testing.T) {
	h := newTestServer(t, nil)
	rr := doGet(t, h, "/health")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	var resp HealthResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if resp.Status != "ok" || resp.Checks["database"] != "ok" || resp.Driver != "sqlite" {
		t.Errorf("unexpected health %+v", resp)
	}
}

func TestHealth_Unavailable(t *testing.T) {
	srv := NewServer(nil, healthuc.New(&mockPinger{err: errors.New("down")}, "redis"), nil)
	rr := doGet(t, srv.Router(nil), "/health")
	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rr.Code)
	}
}

func TestNotFound(t *testing.T) {
	h := newTestServer(t, nil)
	rr := doGet(t, h, "/collections")
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d", rr.Code)
	}
	if resp := decodeError(t, rr); resp.Error.Code != CodeNotFound {
		t.Errorf("code = %s", resp.Error.Code)
	}
}

func TestRouter_AuthProtectsSearchOnly(t *testing.T) {
	svc := searchuc.New(pattern.NewBuilder(arabic.Generator{}), []searchuc.Source{&substringSource{kind: kind.Tool}}, nil)
	h := NewServer(svc, healthuc.New(&mockPinger{}, "sqlite"), nil).Router([]string{"secret"})

	if rr := doGet(t, h, searchPath("abc")); rr.Code != http.StatusUnauthorized {
		t.Errorf("search without key: %d", rr.Code)
	}
	if rr := doGet(t, h, "/health"); rr.Code != http.StatusOK {
		t.Errorf("health must be exempt: %d", rr.Code)
	}
}

func TestSafeDomainMessage_HidesInternals(t *testing.T) {
	if got := safeDomainMessage(errors.New("dial tcp 10.0.0.1:6379: refused")); got != "search failed" {
		t.Errorf("message leaked internals: %q", got)
	}
}
