package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	// DefaultCategory is the category preselected for new bookmarks.
	DefaultCategory = "Tools"

	// DefaultIcon is used when a new bookmark is added without an icon.
	DefaultIcon = "🔗"

	// MaxIconLength is the maximum icon length in runes.
	MaxIconLength = 2
)

// ErrIconTooLong is returned for icons longer than MaxIconLength runes.
var ErrIconTooLong = errors.New("icon is too long")

// Bookmark represents a saved URL with a category and an icon.
type Bookmark struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	URL      string `json:"url"`
	Category string `json:"category"`
	Icon     string `json:"icon"`
}

// NewBookmarkParams holds parameters for creating a new Bookmark.
type NewBookmarkParams struct {
	ID       int64
	Name     string
	URL      string
	Category string
	Icon     string

	// DefaultIcon replaces DefaultIcon when set.
	DefaultIcon string
}

// NewBookmark creates a Bookmark with a normalized URL and a defaulted icon.
// Callers are expected to have validated the name and URL.
func NewBookmark(params NewBookmarkParams) Bookmark {
	icon := strings.TrimSpace(params.Icon)
	if icon == "" {
		icon = params.DefaultIcon
	}
	if icon == "" {
		icon = DefaultIcon
	}

	category := strings.TrimSpace(params.Category)
	if category == "" {
		category = DefaultCategory
	}

	return Bookmark{
		ID:       params.ID,
		Name:     strings.TrimSpace(params.Name),
		URL:      NormalizeURL(params.URL),
		Category: category,
		Icon:     icon,
	}
}

// ValidateIcon checks that icon, once trimmed, fits in MaxIconLength runes.
// An empty icon is valid and gets defaulted by NewBookmark.
func ValidateIcon(icon string) error {
	if n := utf8.RuneCountInString(strings.TrimSpace(icon)); n > MaxIconLength {
		return fmt.Errorf("%w: %q has %d characters, at most %d allowed", ErrIconTooLong, icon, n, MaxIconLength)
	}
	return nil
}

// NormalizeURL prefixes https:// to values without an http or https scheme.
func NormalizeURL(raw string) string {
	u := strings.TrimSpace(raw)
	if u == "" {
		return ""
	}
	lower := strings.ToLower(u)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return u
	}
	return "https://" + u
}

// NextID returns an ID derived from now that is greater than every ID in c.
func NextID(c Collection, now time.Time) int64 {
	id := now.UnixMilli()
	if highest := c.MaxID(); id <= highest {
		id = highest + 1
	}
	return id
}
