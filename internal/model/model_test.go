package model_test

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/nikbrunner/techbook/internal/model"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

func TestBookmark_JSONSerialization(t *testing.T) {
	b := model.Bookmark{
		ID:       1700000000000,
		Name:     "Jenkins",
		URL:      "https://jenkins.example.com",
		Category: "Tools",
		Icon:     "🔧",
	}

	data, err := json.Marshal(b)
	assert.NilError(t, err)
	assert.Equal(t, string(data),
		`{"id":1700000000000,"name":"Jenkins","url":"https://jenkins.example.com","category":"Tools","icon":"🔧"}`)
}

func TestCollection_SerializesAsArray(t *testing.T) {
	data, err := json.Marshal(model.Collection{{ID: 1, Name: "a", URL: "https://a", Category: "X", Icon: "🔗"}})
	assert.NilError(t, err)
	assert.Check(t, data[0] == '[', "expected JSON array, got %s", data)
}

func TestNormalizeURL(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"bare host", "jenkins.example.com", "https://jenkins.example.com"},
		{"https kept", "https://github.com", "https://github.com"},
		{"http kept", "http://intranet.local", "http://intranet.local"},
		{"uppercase scheme kept", "HTTPS://Example.com", "HTTPS://Example.com"},
		{"host starting with http", "httpbin.org", "https://httpbin.org"},
		{"other scheme prefixed", "ftp.example.com/file", "https://ftp.example.com/file"},
		{"whitespace trimmed", "  example.com  ", "https://example.com"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, model.NormalizeURL(tt.input), tt.want)
		})
	}
}

func TestNewBookmark_Defaults(t *testing.T) {
	b := model.NewBookmark(model.NewBookmarkParams{
		ID:   42,
		Name: " Jenkins ",
		URL:  "jenkins.example.com",
	})

	assert.Equal(t, b.ID, int64(42))
	assert.Equal(t, b.Name, "Jenkins")
	assert.Equal(t, b.URL, "https://jenkins.example.com")
	assert.Equal(t, b.Category, model.DefaultCategory)
	assert.Equal(t, b.Icon, model.DefaultIcon)
}

func TestNewBookmark_CustomDefaultIcon(t *testing.T) {
	b := model.NewBookmark(model.NewBookmarkParams{
		ID: 1, Name: "x", URL: "x.dev", Category: "Dev", DefaultIcon: "★",
	})
	assert.Equal(t, b.Icon, "★")

	b = model.NewBookmark(model.NewBookmarkParams{
		ID: 1, Name: "x", URL: "x.dev", Category: "Dev", Icon: "🐙", DefaultIcon: "★",
	})
	assert.Equal(t, b.Icon, "🐙")
}

func TestValidateIcon(t *testing.T) {
	tests := []struct {
		name    string
		icon    string
		wantErr bool
	}{
		{"empty", "", false},
		{"single emoji", "🐙", false},
		{"two letters", "ab", false},
		{"emoji with variation selector", "⚙️", false},
		{"padded", "  🔧  ", false},
		{"three letters", "abc", true},
		{"long word", "abcdefgh", true},
		{"three emoji", "🐙🔧📊", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := model.ValidateIcon(tt.icon)
			if tt.wantErr {
				assert.Check(t, errors.Is(err, model.ErrIconTooLong), "got %v", err)
				return
			}
			assert.NilError(t, err)
		})
	}
}

func TestNextID(t *testing.T) {
	now := time.UnixMilli(1700000000000)

	// Empty collection uses the clock
	assert.Equal(t, model.NextID(nil, now), int64(1700000000000))

	// Seed IDs are far below wall-clock values
	assert.Equal(t, model.NextID(model.DefaultBookmarks(), now), int64(1700000000000))

	// Same millisecond twice still yields unique IDs
	c := model.Collection{{ID: 1700000000000, Name: "a", URL: "https://a", Category: "X"}}
	assert.Equal(t, model.NextID(c, now), int64(1700000000001))

	// Clock going backwards never reuses an ID
	c = model.Collection{{ID: 1800000000000, Name: "a", URL: "https://a", Category: "X"}}
	assert.Equal(t, model.NextID(c, now), int64(1800000000001))
}

func TestDraft_Valid(t *testing.T) {
	tests := []struct {
		name  string
		draft model.Draft
		want  bool
	}{
		{"name and url", model.Draft{Name: "GitHub", URL: "github.com"}, true},
		{"empty name", model.Draft{URL: "github.com"}, false},
		{"empty url", model.Draft{Name: "GitHub"}, false},
		{"whitespace only", model.Draft{Name: "  ", URL: "\t"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.draft.Valid(), tt.want)
		})
	}
}

func TestNewDraft(t *testing.T) {
	d := model.NewDraft()
	assert.DeepEqual(t, d, model.Draft{Category: "Tools", Icon: "🔗"})
}

func TestCollection_GetByID(t *testing.T) {
	c := model.DefaultBookmarks()

	b := c.GetByID(10)
	assert.Assert(t, b != nil)
	assert.Equal(t, b.Name, "SSL Labs Test")

	assert.Assert(t, c.GetByID(999) == nil)
}

func TestCollection_AppendDoesNotAlias(t *testing.T) {
	c := make(model.Collection, 1, 4)
	c[0] = model.Bookmark{ID: 1, Name: "a", URL: "https://a", Category: "X"}

	a := c.Append(model.Bookmark{ID: 2, Name: "b", URL: "https://b", Category: "X"})
	b := c.Append(model.Bookmark{ID: 3, Name: "c", URL: "https://c", Category: "X"})

	assert.Equal(t, len(c), 1)
	assert.Equal(t, a[1].ID, int64(2))
	assert.Equal(t, b[1].ID, int64(3))
}

func TestCollection_Remove(t *testing.T) {
	c := model.DefaultBookmarks()

	out, ok := c.Remove(5)
	assert.Assert(t, ok)
	assert.Equal(t, len(out), 15)
	assert.Assert(t, out.GetByID(5) == nil)
	// Order preserved around the gap
	assert.Equal(t, out[3].ID, int64(4))
	assert.Equal(t, out[4].ID, int64(6))
	// Receiver untouched
	assert.Equal(t, len(c), 16)

	out, ok = c.Remove(999)
	assert.Assert(t, !ok)
	assert.DeepEqual(t, out, c)
}

func TestCollection_Validate(t *testing.T) {
	tests := []struct {
		name    string
		c       model.Collection
		wantErr error
	}{
		{"defaults are valid", model.DefaultBookmarks(), nil},
		{"empty is valid", model.Collection{}, nil},
		{
			"duplicate id",
			model.Collection{
				{ID: 1, Name: "a", URL: "https://a", Category: "X"},
				{ID: 1, Name: "b", URL: "https://b", Category: "X"},
			},
			model.ErrDuplicateID,
		},
		{"empty name", model.Collection{{ID: 1, URL: "https://a", Category: "X"}}, model.ErrEmptyName},
		{"empty url", model.Collection{{ID: 1, Name: "a", Category: "X"}}, model.ErrEmptyURL},
		{"empty category", model.Collection{{ID: 1, Name: "a", URL: "https://a"}}, model.ErrEmptyCategory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.c.Validate()
			if tt.wantErr == nil {
				assert.NilError(t, err)
				return
			}
			assert.Assert(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestDefaultBookmarks(t *testing.T) {
	c := model.DefaultBookmarks()
	assert.Equal(t, len(c), 16)
	assert.Check(t, is.Equal(c[0].Name, "GitHub"))
	assert.Check(t, is.Equal(c[15].Name, "AWS Status"))

	// Fresh slice on every call
	c[0].Name = "changed"
	assert.Equal(t, model.DefaultBookmarks()[0].Name, "GitHub")
}
