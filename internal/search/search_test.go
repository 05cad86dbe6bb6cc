package search

import (
	"testing"

	"github.com/nikbrunner/techbook/internal/model"
)

func testCollection(names ...string) model.Collection {
	c := model.Collection{}
	for i, name := range names {
		c = append(c, model.Bookmark{
			ID:       int64(i + 1),
			Name:     name,
			URL:      "https://example.com/" + name,
			Category: "Tools",
			Icon:     "🔗",
		})
	}
	return c
}

func TestFuzzySearch_EmptyQuery(t *testing.T) {
	results := FuzzySearch(testCollection("GitHub"), "")

	if len(results) != 0 {
		t.Errorf("expected 0 results for empty query, got %d", len(results))
	}
}

func TestFuzzySearch_ExactMatch(t *testing.T) {
	results := FuzzySearch(testCollection("GitHub", "GitLab"), "GitHub")

	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0].Bookmark.Name != "GitHub" {
		t.Errorf("expected GitHub, got %s", results[0].Bookmark.Name)
	}
}

func TestFuzzySearch_FuzzyMatch(t *testing.T) {
	results := FuzzySearch(testCollection("Cloudflare Status", "AWS Status"), "cfstat")

	if len(results) < 1 {
		t.Fatalf("expected at least 1 result for 'cfstat', got %d", len(results))
	}
	if results[0].Bookmark.Name != "Cloudflare Status" {
		t.Errorf("expected Cloudflare Status as first result, got %s", results[0].Bookmark.Name)
	}
}

func TestFuzzySearch_MultipleMatches(t *testing.T) {
	results := FuzzySearch(testCollection("GitHub", "GitLab", "Gitea"), "git")

	if len(results) != 3 {
		t.Errorf("expected 3 results for 'git', got %d", len(results))
	}
}

func TestFuzzySearch_NoMatch(t *testing.T) {
	results := FuzzySearch(testCollection("GitHub"), "xyz123")

	if len(results) != 0 {
		t.Errorf("expected 0 results for 'xyz123', got %d", len(results))
	}
}

func TestFuzzySearch_PointsIntoCollection(t *testing.T) {
	c := testCollection("Regex101")
	results := FuzzySearch(c, "regex")

	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0].Bookmark != &c[0] {
		t.Error("expected result to point at the collection element")
	}
}

func TestFuzzySearch_SortedByScore(t *testing.T) {
	results := FuzzySearch(testCollection("Cloud Ping Monitor", "Ping"), "ping")

	if len(results) < 2 {
		t.Fatalf("expected at least 2 results, got %d", len(results))
	}
	if results[0].Bookmark.Name != "Ping" {
		t.Errorf("expected 'Ping' as first result (exact match), got %s", results[0].Bookmark.Name)
	}
}
