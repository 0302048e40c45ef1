// Package harfsearch provides an embeddable Arabic search client that
// tolerates missing diacritics, hamza spelling and final-letter variants.
//
// Tools and articles live in SQLite (default) or Redis with RediSearch.
// A query is expanded into spelling variants; every variant is sent to
// each entity source as a substring search and hits are merged, tools
// first, without duplicates.
//
//	client, _ := harfsearch.New(harfsearch.WithSQLite("site.db"))
//	defer client.Close()
//	_ = client.SaveTool(ctx, &harfsearch.Tool{ID: 1, Name: "محول الأحجار", Slug: "stones"})
//	results, _ := client.Search(ctx, "احجار", harfsearch.TypeAll)
package harfsearch
