package catalog

import (
	"slices"
	"strings"
)

// PerPage is the default number of search results.
const PerPage = 20

// Query describes a catalog search.
type Query struct {
	// Text is matched case-insensitively against name, description and
	// tags. Empty matches everything.
	Text string
	// Tags must all be present on a result.
	Tags []string
	// Limit caps the number of results. Zero means PerPage; negative means
	// no limit.
	Limit int
}

// Search returns the entries matching q, best matches first and ties
// ordered by name.
func Search(entries []*Entry, q Query) []*Entry {
	text := strings.ToLower(strings.TrimSpace(q.Text))

	var results []*Entry
	for _, e := range entries {
		if !hasTags(e, q.Tags) {
			continue
		}
		if text == "" || scoreMatch(e, text) > 0 {
			results = append(results, e)
		}
	}

	slices.SortStableFunc(results, func(a, b *Entry) int {
		if d := scoreMatch(b, text) - scoreMatch(a, text); d != 0 {
			return d
		}
		return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
	})

	limit := q.Limit
	if limit == 0 {
		limit = PerPage
	}
	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results
}

func hasTags(e *Entry, want []string) bool {
	for _, w := range want {
		w = strings.TrimSpace(w)
		if w == "" {
			continue
		}
		if !slices.ContainsFunc(e.Tags, func(t string) bool { return strings.EqualFold(t, w) }) {
			return false
		}
	}
	return true
}

// scoreMatch ranks how well an entry matches a lowercased query.
//
// Scoring:
//   - 100: Exact name match
//   - 75: Name starts with query
//   - 50: Name contains query
//   - 30: A tag equals the query
//   - 25: Description or a tag contains query
//   - 0: No match or empty query
func scoreMatch(e *Entry, query string) int {
	if query == "" {
		return 0
	}

	name := strings.ToLower(e.Name)
	switch {
	case name == query:
		return 100
	case strings.HasPrefix(name, query):
		return 75
	case strings.Contains(name, query):
		return 50
	}

	contains := strings.Contains(strings.ToLower(e.Description), query)
	for _, t := range e.Tags {
		tag := strings.ToLower(t)
		if tag == query {
			return 30
		}
		contains = contains || strings.Contains(tag, query)
	}
	if contains {
		return 25
	}
	return 0
}
