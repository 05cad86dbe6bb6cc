package search

import (
	"strings"

	"github.com/nikbrunner/techbook/internal/model"
)

// AllCategories is the category filter value that matches every bookmark.
const AllCategories = "All"

// Filter returns the bookmarks whose name or URL contains term (case-insensitive)
// and whose category equals category. AllCategories and an empty term match
// everything. Source order is preserved.
func Filter(c model.Collection, term, category string) model.Collection {
	needle := strings.ToLower(term)

	result := model.Collection{}
	for _, b := range c {
		if !matchesTerm(b, needle) || !matchesCategory(b, category) {
			continue
		}
		result = append(result, b)
	}
	return result
}

func matchesTerm(b model.Bookmark, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(b.Name), needle) ||
		strings.Contains(strings.ToLower(b.URL), needle)
}

func matchesCategory(b model.Bookmark, category string) bool {
	return category == AllCategories || b.Category == category
}

// Categories returns AllCategories followed by the distinct categories in c,
// in order of first appearance.
func Categories(c model.Collection) []string {
	seen := map[string]bool{AllCategories: true}
	result := []string{AllCategories}
	for _, b := range c {
		if seen[b.Category] {
			continue
		}
		seen[b.Category] = true
		result = append(result, b.Category)
	}
	return result
}

// Selectable returns the categories a new bookmark may be filed under.
func Selectable(c model.Collection) []string {
	return Categories(c)[1:]
}
