package model

import (
	"errors"
	"fmt"
)

// Collection is the ordered list of bookmarks. It serializes as a plain JSON array.
type Collection []Bookmark

var (
	ErrDuplicateID   = errors.New("duplicate bookmark id")
	ErrEmptyName     = errors.New("bookmark name is empty")
	ErrEmptyURL      = errors.New("bookmark url is empty")
	ErrEmptyCategory = errors.New("bookmark category is empty")
)

// Clone returns a copy that shares no backing array with c.
func (c Collection) Clone() Collection {
	out := make(Collection, len(c))
	copy(out, c)
	return out
}

// GetByID finds a bookmark by ID, returns nil if not found.
func (c Collection) GetByID(id int64) *Bookmark {
	for i := range c {
		if c[i].ID == id {
			return &c[i]
		}
	}
	return nil
}

// MaxID returns the largest ID in the collection, or 0 when empty.
func (c Collection) MaxID() int64 {
	var highest int64
	for _, b := range c {
		if b.ID > highest {
			highest = b.ID
		}
	}
	return highest
}

// Append returns a new collection with b added at the end.
func (c Collection) Append(b Bookmark) Collection {
	out := make(Collection, 0, len(c)+1)
	out = append(out, c...)
	return append(out, b)
}

// Remove returns a new collection without the bookmark with the given ID.
// The second return value is false when no bookmark matched.
func (c Collection) Remove(id int64) (Collection, bool) {
	for i := range c {
		if c[i].ID == id {
			out := make(Collection, 0, len(c)-1)
			out = append(out, c[:i]...)
			return append(out, c[i+1:]...), true
		}
	}
	return c, false
}

// Validate checks that IDs are unique and that name, url and category are set.
func (c Collection) Validate() error {
	seen := make(map[int64]bool, len(c))
	for i, b := range c {
		if seen[b.ID] {
			return fmt.Errorf("record %d: %w: %d", i, ErrDuplicateID, b.ID)
		}
		seen[b.ID] = true

		switch {
		case b.Name == "":
			return fmt.Errorf("record %d: %w", i, ErrEmptyName)
		case b.URL == "":
			return fmt.Errorf("record %d: %w", i, ErrEmptyURL)
		case b.Category == "":
			return fmt.Errorf("record %d: %w", i, ErrEmptyCategory)
		}
	}
	return nil
}
