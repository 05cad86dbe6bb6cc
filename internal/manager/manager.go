// Package manager owns the bookmark collection for a session. Every mutation
// is written through to the durable slot before it becomes visible.
package manager

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/nikbrunner/techbook/internal/launcher"
	"github.com/nikbrunner/techbook/internal/model"
	"github.com/nikbrunner/techbook/internal/search"
	"github.com/nikbrunner/techbook/internal/storage"
)

// DeletePrompt is the question asked before a bookmark is removed.
const DeletePrompt = "Are you sure you want to delete this bookmark?"

// ErrNotFound is returned when an operation names an ID that isn't in the collection.
var ErrNotFound = errors.New("bookmark not found")

// Confirmer answers a yes/no question.
type Confirmer interface {
	Confirm(message string) bool
}

// ConfirmFunc adapts a plain function to Confirmer.
type ConfirmFunc func(message string) bool

// Confirm calls f(message).
func (f ConfirmFunc) Confirm(message string) bool {
	return f(message)
}

// Always confirms without asking. Use it when the answer was collected elsewhere.
var Always Confirmer = ConfirmFunc(func(string) bool { return true })

// Manager holds the collection and writes it through to storage.
type Manager struct {
	storage     storage.Storage
	launcher    launcher.Launcher
	logger      *zap.Logger
	now         func() time.Time
	defaultIcon string

	bookmarks model.Collection
}

// Params holds parameters for creating a new Manager.
type Params struct {
	Storage     storage.Storage
	Launcher    launcher.Launcher // optional, uses the system browser if nil
	Logger      *zap.Logger       // optional, discards logs if nil
	Clock       func() time.Time  // optional, uses time.Now if nil
	DefaultIcon string            // optional, uses model.DefaultIcon if empty
}

// New creates a Manager with an empty collection. Call Load before use.
func New(params Params) *Manager {
	m := &Manager{
		storage:     params.Storage,
		launcher:    params.Launcher,
		logger:      params.Logger,
		now:         params.Clock,
		defaultIcon: params.DefaultIcon,
		bookmarks:   model.Collection{},
	}
	if m.launcher == nil {
		m.launcher = launcher.NewBrowser()
	}
	if m.logger == nil {
		m.logger = zap.NewNop()
	}
	if m.now == nil {
		m.now = time.Now
	}
	if m.defaultIcon == "" || model.ValidateIcon(m.defaultIcon) != nil {
		m.defaultIcon = model.DefaultIcon
	}
	return m
}

// Load seeds the collection from storage. Malformed saved data is replaced by
// the default seed and logged; it is overwritten by the next mutation.
func (m *Manager) Load() error {
	c, err := m.storage.Load()
	if err != nil {
		if !errors.Is(err, storage.ErrMalformed) {
			return fmt.Errorf("load bookmarks: %w", err)
		}
		m.logger.Warn("saved bookmarks are malformed, using defaults", zap.Error(err))
		c = model.DefaultBookmarks()
	}

	m.bookmarks = c
	m.logger.Debug("bookmarks loaded", zap.Int("count", len(c)))
	return nil
}

// Bookmarks returns a copy of the whole collection.
func (m *Manager) Bookmarks() model.Collection {
	return m.bookmarks.Clone()
}

// Get returns the bookmark with the given ID.
func (m *Manager) Get(id int64) (model.Bookmark, bool) {
	b := m.bookmarks.GetByID(id)
	if b == nil {
		return model.Bookmark{}, false
	}
	return *b, true
}

// View returns the bookmarks matching term and category.
func (m *Manager) View(term, category string) model.Collection {
	return search.Filter(m.bookmarks, term, category)
}

// Categories returns the derived category set, "All" first.
func (m *Manager) Categories() []string {
	return search.Categories(m.bookmarks)
}

// Add appends a bookmark built from the draft and saves. It returns ok=false
// without touching anything when the draft lacks a name or URL, and an error
// wrapping model.ErrIconTooLong when the icon exceeds model.MaxIconLength.
func (m *Manager) Add(d model.Draft) (b model.Bookmark, ok bool, err error) {
	if !d.Valid() {
		return model.Bookmark{}, false, nil
	}
	if err := model.ValidateIcon(d.Icon); err != nil {
		return model.Bookmark{}, false, err
	}

	b = model.NewBookmark(model.NewBookmarkParams{
		ID:          model.NextID(m.bookmarks, m.now()),
		Name:        d.Name,
		URL:         d.URL,
		Category:    d.Category,
		Icon:        d.Icon,
		DefaultIcon: m.defaultIcon,
	})

	if err := m.commit(m.bookmarks.Append(b)); err != nil {
		return model.Bookmark{}, false, err
	}

	m.logger.Info("bookmark added",
		zap.Int64("id", b.ID),
		zap.String("name", b.Name),
		zap.String("category", b.Category))
	return b, true, nil
}

// Delete removes the bookmark with the given ID once c confirms, and saves.
// It reports whether a bookmark was removed. Declining, or an unknown ID,
// leaves everything unchanged.
func (m *Manager) Delete(id int64, c Confirmer) (bool, error) {
	if !c.Confirm(DeletePrompt) {
		return false, nil
	}

	next, found := m.bookmarks.Remove(id)
	if !found {
		m.logger.Debug("delete of unknown bookmark ignored", zap.Int64("id", id))
		return false, nil
	}

	if err := m.commit(next); err != nil {
		return false, err
	}

	m.logger.Info("bookmark deleted", zap.Int64("id", id))
	return true, nil
}

// Open opens url through the launcher.
func (m *Manager) Open(url string) error {
	if err := m.launcher.Open(url); err != nil {
		m.logger.Error("open failed", zap.String("url", url), zap.Error(err))
		return err
	}
	m.logger.Debug("bookmark opened", zap.String("url", url))
	return nil
}

// OpenID opens the bookmark with the given ID.
func (m *Manager) OpenID(id int64) error {
	b, ok := m.Get(id)
	if !ok {
		return fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	return m.Open(b.URL)
}

// commit saves next and makes it current. On failure the current collection is kept.
func (m *Manager) commit(next model.Collection) error {
	if err := m.storage.Save(next); err != nil {
		m.logger.Error("save failed", zap.Error(err))
		return fmt.Errorf("save bookmarks: %w", err)
	}
	m.bookmarks = next
	return nil
}
