package redis

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/redis/rueidis"

	"github.com/kailas-cloud/harfsearch/internal/db"
)

// candidateFactor sizes one FT.SEARCH page: infix term matching is a
// superset of substring matching, so candidates are re-checked here.
const candidateFactor = 4

// minInfixRunes is the shortest token sent as an infix term; shorter ones
// are below the engine's minimum and are left to the substring re-check.
const minInfixRunes = 2

// SearchContains runs an infix FT.SEARCH over the text fields, ordered by
// id, and keeps only rows where some field contains the pattern verbatim.
// Pages are fetched until the limit is filled or candidates run out, so the
// rows returned are the lowest-id matches, as with the SQLite store.
func (s *Store) SearchContains(ctx context.Context, q *db.ContainsQuery) (*db.SearchResult, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	pageSize := q.Limit * candidateFactor
	var matched []db.SearchEntry
	for offset := 0; ; offset += pageSize {
		cmd := s.b().Arbitrary("FT.SEARCH").Args(s.buildSearchArgs(q, offset, pageSize)...).Build()
		raw, err := s.do(ctx, cmd).ToArray()
		if err != nil {
			if isRedisErr(err, "no such index") || isRedisErr(err, "unknown index name") {
				return &db.SearchResult{}, nil
			}
			return nil, &db.Error{Op: db.OpSearch, Err: err}
		}

		total, entries, err := parseSearchResult(raw, s.keyPrefix(q.Table))
		if err != nil {
			return nil, err
		}
		matched = append(matched, filterContains(entries, q)...)

		if len(matched) >= q.Limit || len(entries) == 0 || int64(offset+pageSize) >= total {
			break
		}
	}

	sort.SliceStable(matched, func(i, j int) bool { return lessID(matched[i].Key, matched[j].Key) })
	if len(matched) > q.Limit {
		matched = matched[:q.Limit]
	}
	return &db.SearchResult{Total: len(matched), Entries: matched}, nil
}

// buildSearchArgs renders
//
//	<index> "@status:{v} @f1|f2:(*tok1* *tok2*)" RETURN n ... SORTBY id ASC LIMIT off n DIALECT 2
func (s *Store) buildSearchArgs(q *db.ContainsQuery, offset, count int) []string {
	parts := make([]string, 0, len(q.Equals)+1)

	keys := make([]string, 0, len(q.Equals))
	for k := range q.Equals {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		parts = append(parts, buildTagFilter(k, q.Equals[k]))
	}

	var infix []string
	for _, tok := range strings.Fields(q.Pattern) {
		if utf8.RuneCountInString(tok) < minInfixRunes {
			continue
		}
		infix = append(infix, "*"+escapeQuery(tok)+"*")
	}
	if len(infix) > 0 {
		parts = append(parts, fmt.Sprintf("@%s:(%s)", strings.Join(q.Fields, "|"), strings.Join(infix, " ")))
	}

	query := strings.Join(parts, " ")
	if query == "" {
		query = "*"
	}
	args := []string{s.indexName(q.Table), query}

	returned := returnFields(q)
	if len(returned) > 0 {
		args = append(args, "RETURN", strconv.Itoa(len(returned)))
		args = append(args, returned...)
	}

	args = append(args,
		"SORTBY", "id", "ASC",
		"LIMIT", strconv.Itoa(offset), strconv.Itoa(count),
		"DIALECT", "2",
	)
	return args
}

// returnFields is the union of the match fields and the requested fields.
// Nil means every field.
func returnFields(q *db.ContainsQuery) []string {
	if len(q.ReturnFields) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(q.Fields)+len(q.ReturnFields))
	out := make([]string, 0, len(q.Fields)+len(q.ReturnFields))
	for _, f := range append(append([]string(nil), q.ReturnFields...), q.Fields...) {
		if _, ok := seen[f]; ok {
			continue
		}
		seen[f] = struct{}{}
		out = append(out, f)
	}
	return out
}

// filterContains drops candidates without a verbatim match and trims the
// helper fields that were only returned for the re-check.
func filterContains(entries []db.SearchEntry, q *db.ContainsQuery) []db.SearchEntry {
	var wanted map[string]struct{}
	if len(q.ReturnFields) > 0 {
		wanted = make(map[string]struct{}, len(q.ReturnFields))
		for _, f := range q.ReturnFields {
			wanted[f] = struct{}{}
		}
	}

	out := make([]db.SearchEntry, 0, len(entries))
	for _, e := range entries {
		if !matchesAny(e.Fields, q.Fields, q.Pattern) {
			continue
		}
		delete(e.Fields, "id")
		if wanted != nil {
			for f := range e.Fields {
				if _, ok := wanted[f]; !ok {
					delete(e.Fields, f)
				}
			}
		}
		out = append(out, e)
	}
	return out
}

func matchesAny(fields map[string]string, names []string, pattern string) bool {
	for _, n := range names {
		if strings.Contains(fields[n], pattern) {
			return true
		}
	}
	return false
}

func lessID(a, b string) bool {
	ai, errA := strconv.ParseInt(a, 10, 64)
	bi, errB := strconv.ParseInt(b, 10, 64)
	if errA == nil && errB == nil {
		return ai < bi
	}
	return a < b
}

// --- Result parsing ---

func parseSearchResult(raw []rueidis.RedisMessage, keyPrefix string) (int64, []db.SearchEntry, error) {
	if len(raw) == 0 {
		return 0, nil, nil
	}

	total, err := raw[0].AsInt64()
	if err != nil {
		return 0, nil, fmt.Errorf("parse total: %w", err)
	}
	if total == 0 {
		return 0, nil, nil
	}

	entries := make([]db.SearchEntry, 0, (len(raw)-1)/2)
	// 2-stride: [total, key1, fields1, key2, fields2, ...]
	for i := 1; i+1 < len(raw); i += 2 {
		key, err := raw[i].ToString()
		if err != nil {
			continue
		}

		fields, err := raw[i+1].ToArray()
		if err != nil {
			continue
		}

		entries = append(entries, db.SearchEntry{
			Key:    strings.TrimPrefix(key, keyPrefix),
			Fields: parseFieldPairs(fields),
		})
	}

	return total, entries, nil
}

func parseFieldPairs(fields []rueidis.RedisMessage) map[string]string {
	m := make(map[string]string, len(fields)/2)
	for j := 0; j+1 < len(fields); j += 2 {
		name, err := fields[j].ToString()
		if err != nil {
			continue
		}
		value, err := fields[j+1].ToString()
		if err != nil {
			continue
		}
		m[name] = value
	}
	return m
}

// --- Query helpers ---

func buildTagFilter(key, value string) string {
	escaped := tagEscaper.Replace(value)
	return fmt.Sprintf("@%s:{%s}", key, escaped)
}

var tagEscaper = strings.NewReplacer(
	",", "\\,",
	".", "\\.",
	"<", "\\<",
	">", "\\>",
	"{", "\\{",
	"}", "\\}",
	"\"", "\\\"",
	"'", "\\'",
	":", "\\:",
	";", "\\;",
	"!", "\\!",
	"@", "\\@",
	"#", "\\#",
	"$", "\\$",
	"%", "\\%",
	"^", "\\^",
	"&", "\\&",
	"*", "\\*",
	"(", "\\(",
	")", "\\)",
	"-", "\\-",
	"+", "\\+",
	"=", "\\=",
	"~", "\\~",
	" ", "\\ ",
)

func escapeQuery(s string) string {
	return queryEscaper.Replace(s)
}

var queryEscaper = strings.NewReplacer(
	`\`, `\\`,
	`'`, `\'`,
	`"`, `\"`,
	`@`, `\@`,
	`{`, `\{`,
	`}`, `\}`,
	`(`, `\(`,
	`)`, `\)`,
	`|`, `\|`,
	`-`, `\-`,
	`~`, `\~`,
	`*`, `\*`,
	`[`, `\[`,
	`]`, `\]`,
	`!`, `\!`,
	`%`, `\%`,
	`^`, `\^`,
	`$`, `\$`,
	`<`, `\<`,
	`>`, `\>`,
	`=`, `\=`,
	`;`, `\;`,
	`+`, `\+`,
	`,`, `\,`,
	`.`, `\.`,
	`:`, `\:`,
)
