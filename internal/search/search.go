package search

import (
	"github.com/nikbrunner/techbook/internal/model"
	"github.com/sahilm/fuzzy"
)

// Result represents a fuzzy search match.
type Result struct {
	Bookmark       *model.Bookmark
	MatchedIndexes []int
	Score          int
}

// bookmarkNames implements fuzzy.Source for a bookmark slice.
type bookmarkNames []*model.Bookmark

func (bn bookmarkNames) String(i int) string {
	return bn[i].Name
}

func (bn bookmarkNames) Len() int {
	return len(bn)
}

// FuzzySearch ranks bookmarks by fuzzy matching the query against their names.
// Returns results sorted by match score (best first).
func FuzzySearch(c model.Collection, query string) []Result {
	if query == "" {
		return nil
	}

	bookmarks := make(bookmarkNames, len(c))
	for i := range c {
		bookmarks[i] = &c[i]
	}

	matches := fuzzy.FindFrom(query, bookmarks)

	results := make([]Result, len(matches))
	for i, m := range matches {
		results[i] = Result{
			Bookmark:       bookmarks[m.Index],
			MatchedIndexes: m.MatchedIndexes,
			Score:          m.Score,
		}
	}

	return results
}
