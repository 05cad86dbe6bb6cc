package search

import (
	"testing"

	"github.com/nikbrunner/techbook/internal/model"
	"gotest.tools/v3/assert"
)

func names(c model.Collection) []string {
	out := []string{}
	for _, b := range c {
		out = append(out, b.Name)
	}
	return out
}

func TestFilter(t *testing.T) {
	seed := model.DefaultBookmarks()

	tests := []struct {
		name     string
		term     string
		category string
		want     []string
	}{
		{"ssl matches name case-insensitively", "ssl", AllCategories, []string{"SSL Labs Test"}},
		{"uppercase term", "SSL", AllCategories, []string{"SSL Labs Test"}},
		{"url match", "amazon", AllCategories, []string{"AWS Status"}},
		{"category only", "", "Network", []string{"IP Address Lookup", "Ping Test"}},
		{"term and category", "status", "Monitoring", []string{"Cloudflare Status", "AWS Status"}},
		{"term outside category", "github", "Security", []string{}},
		{"unknown category", "", "Nope", []string{}},
		{"category is exact", "", "tools", []string{}},
		{"no match", "zzz", AllCategories, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(seed, tt.term, tt.category)
			assert.DeepEqual(t, names(got), tt.want)
		})
	}
}

func TestFilter_EmptyTermAllIsIdentity(t *testing.T) {
	seed := model.DefaultBookmarks()
	assert.DeepEqual(t, Filter(seed, "", AllCategories), seed)
}

func TestFilter_ClearingTermRestoresView(t *testing.T) {
	seed := model.DefaultBookmarks()
	for _, term := range []string{"ssl", "status", "x", ""} {
		_ = Filter(seed, term, AllCategories)
		assert.DeepEqual(t, Filter(seed, "", AllCategories), seed)
	}
}

func TestFilter_Idempotent(t *testing.T) {
	seed := model.DefaultBookmarks()
	cases := []struct{ term, category string }{
		{"", AllCategories},
		{"s", AllCategories},
		{"com", "Tools"},
		{"status", "Monitoring"},
		{"nothing", "Design"},
	}

	for _, c := range cases {
		once := Filter(seed, c.term, c.category)
		twice := Filter(once, c.term, c.category)
		assert.DeepEqual(t, twice, once)
	}
}

func TestFilter_PreservesOrder(t *testing.T) {
	seed := model.DefaultBookmarks()
	got := Filter(seed, "", "Development")
	assert.DeepEqual(t, names(got), []string{"GitHub", "Stack Overflow", "Postman"})
}

func TestFilter_DoesNotMutateSource(t *testing.T) {
	seed := model.DefaultBookmarks()
	got := Filter(seed, "", AllCategories)
	got[0].Name = "changed"
	assert.Equal(t, seed[0].Name, "GitHub")
}

func TestCategories(t *testing.T) {
	got := Categories(model.DefaultBookmarks())
	assert.DeepEqual(t, got, []string{
		"All", "Development", "Documentation", "Tools", "Network", "Security", "Design", "Monitoring",
	})
}

func TestCategories_Empty(t *testing.T) {
	assert.DeepEqual(t, Categories(nil), []string{AllCategories})
	assert.DeepEqual(t, Selectable(nil), []string{})
}

func TestCategories_NoDuplicateAll(t *testing.T) {
	c := model.Collection{{ID: 1, Name: "a", URL: "https://a", Category: "All"}}
	assert.DeepEqual(t, Categories(c), []string{AllCategories})
}

func TestCategories_DropsCategoryWithLastBookmark(t *testing.T) {
	c := model.Collection{
		{ID: 1, Name: "a", URL: "https://a", Category: "Tools"},
		{ID: 2, Name: "b", URL: "https://b", Category: "Security"},
	}
	c, _ = c.Remove(2)
	assert.DeepEqual(t, Categories(c), []string{AllCategories, "Tools"})
}
