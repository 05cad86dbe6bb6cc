package tui

import (
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/nikbrunner/techbook/internal/manager"
	"github.com/nikbrunner/techbook/internal/model"
	"github.com/nikbrunner/techbook/internal/search"
	"github.com/nikbrunner/techbook/internal/tui/layout"
)

// Mode represents the current interaction mode.
type Mode int

const (
	ModeNormal Mode = iota
	ModeSearch
	ModeAdd
	ModeConfirmDelete
	ModeHelp
)

// App is the main bubbletea model for the bookmark manager.
type App struct {
	manager      *manager.Manager
	logger       *zap.Logger
	keys         KeyMap
	styles       Styles
	layoutConfig layout.LayoutConfig
	clipboard    func(text string) error

	defaultCategory string
	defaultIcon     string

	mode    Mode
	search  SearchState
	form    FormState
	confirm ConfirmState

	// Current view
	category string           // selected category filter
	visible  model.Collection // bookmarks matching search and category
	cursor   int              // selected card index in visible

	// For gg command
	lastKeyWasG bool

	messageText string
	messageType MessageType

	// Window dimensions
	width  int
	height int
}

// AppParams holds parameters for creating a new App.
type AppParams struct {
	Manager         *manager.Manager
	Logger          *zap.Logger             // optional, discards logs if nil
	Keys            *KeyMap                 // optional, uses default if nil
	Styles          *Styles                 // optional, uses default if nil
	LayoutConfig    *layout.LayoutConfig    // optional, uses default if nil
	Clipboard       func(text string) error // optional, uses the system clipboard if nil
	DefaultCategory string                  // optional, prefilled in the add form
	DefaultIcon     string                  // optional, prefilled in the add form
}

// NewApp creates a new App with the given parameters. The manager must
// already be loaded.
func NewApp(params AppParams) App {
	keys := DefaultKeyMap()
	if params.Keys != nil {
		keys = *params.Keys
	}

	styles := DefaultStyles()
	if params.Styles != nil {
		styles = *params.Styles
	}

	layoutCfg := layout.DefaultConfig()
	if params.LayoutConfig != nil {
		layoutCfg = *params.LayoutConfig
	}

	logger := params.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	copyFn := params.Clipboard
	if copyFn == nil {
		copyFn = clipboard.WriteAll
	}

	defaults := model.NewDraft()
	if params.DefaultCategory != "" {
		defaults.Category = params.DefaultCategory
	}
	if params.DefaultIcon != "" {
		defaults.Icon = params.DefaultIcon
	}

	app := App{
		manager:         params.Manager,
		logger:          logger,
		keys:            keys,
		styles:          styles,
		layoutConfig:    layoutCfg,
		clipboard:       copyFn,
		defaultCategory: defaults.Category,
		defaultIcon:     defaults.Icon,
		mode:            ModeNormal,
		search:          NewSearchState(layoutCfg),
		form:            NewFormState(layoutCfg),
		category:        search.AllCategories,
		width:           80,
		height:          24,
	}

	app.refreshVisible()
	return app
}

// WithDimensions returns a copy of the app sized to width x height.
func (a App) WithDimensions(width, height int) App {
	a.width = width
	a.height = height
	return a
}

// refreshVisible recomputes the visible cards and keeps the cursor in range.
func (a *App) refreshVisible() {
	a.visible = a.manager.View(a.search.Term(), a.category)
	if a.cursor >= len(a.visible) {
		a.cursor = len(a.visible) - 1
	}
	if a.cursor < 0 {
		a.cursor = 0
	}
}

// Mode returns the current interaction mode.
func (a App) Mode() Mode {
	return a.mode
}

// Cursor returns the index of the selected card.
func (a App) Cursor() int {
	return a.cursor
}

// Visible returns the cards currently shown.
func (a App) Visible() model.Collection {
	return a.visible
}

// Selected returns the bookmark under the cursor.
func (a App) Selected() (model.Bookmark, bool) {
	if a.cursor < 0 || a.cursor >= len(a.visible) {
		return model.Bookmark{}, false
	}
	return a.visible[a.cursor], true
}

// SearchTerm returns the live search term.
func (a App) SearchTerm() string {
	return a.search.Term()
}

// SelectedCategory returns the active category filter.
func (a App) SelectedCategory() string {
	return a.category
}

// FormOpen reports whether the add form is shown.
func (a App) FormOpen() bool {
	return a.mode == ModeAdd
}

// Draft returns the add form's current values.
func (a App) Draft() model.Draft {
	return a.form.Draft()
}

// Message returns the status line text.
func (a App) Message() string {
	return a.messageText
}

func (a *App) setMessage(t MessageType, text string) {
	a.messageType = t
	a.messageText = text
}

func (a *App) clearMessage() {
	a.messageText = ""
	a.messageType = MessageInfo
}

// columns returns how many cards fit in one grid row.
func (a App) columns() int {
	return layout.CalculateGrid(a.width, a.layoutConfig.Grid).Columns
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		switch a.mode {
		case ModeSearch:
			return a.updateSearch(msg)
		case ModeAdd:
			return a.updateForm(msg)
		case ModeConfirmDelete:
			return a.updateConfirmDelete(msg)
		case ModeHelp:
			return a.updateHelp(msg)
		default:
			return a.updateNormal(msg)
		}
	}

	return a, nil
}

func (a App) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Handle gg sequence
	if key.Matches(msg, a.keys.Top) {
		if a.lastKeyWasG {
			a.cursor = 0
			a.lastKeyWasG = false
			return a, nil
		}
		a.lastKeyWasG = true
		return a, nil
	}

	// Reset g flag for any other key
	a.lastKeyWasG = false
	a.clearMessage()

	columns := a.columns()

	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit

	case key.Matches(msg, a.keys.Down):
		if a.cursor+columns < len(a.visible) {
			a.cursor += columns
		}

	case key.Matches(msg, a.keys.Up):
		if a.cursor-columns >= 0 {
			a.cursor -= columns
		}

	case key.Matches(msg, a.keys.Left):
		if a.cursor > 0 {
			a.cursor--
		}

	case key.Matches(msg, a.keys.Right):
		if a.cursor < len(a.visible)-1 {
			a.cursor++
		}

	case key.Matches(msg, a.keys.Bottom):
		if len(a.visible) > 0 {
			a.cursor = len(a.visible) - 1
		}

	case key.Matches(msg, a.keys.Search):
		a.mode = ModeSearch
		return a, a.search.Input.Focus()

	case key.Matches(msg, a.keys.NextCategory):
		a.cycleCategory(1)

	case key.Matches(msg, a.keys.PrevCategory):
		a.cycleCategory(-1)

	case key.Matches(msg, a.keys.Add):
		return a, a.openForm()

	case key.Matches(msg, a.keys.Open):
		a.openSelected()

	case key.Matches(msg, a.keys.YankURL):
		a.yankSelectedURL()

	case key.Matches(msg, a.keys.Delete):
		if b, ok := a.Selected(); ok {
			a.confirm = ConfirmState{ID: b.ID, Name: b.Name}
			a.mode = ModeConfirmDelete
		}

	case key.Matches(msg, a.keys.Help):
		a.mode = ModeHelp
	}

	return a, nil
}

// cycleCategory moves the category filter by delta, wrapping around.
func (a *App) cycleCategory(delta int) {
	categories := a.manager.Categories()

	current := 0
	for i, c := range categories {
		if c == a.category {
			current = i
			break
		}
	}

	next := (current + delta + len(categories)) % len(categories)
	a.category = categories[next]
	a.cursor = 0
	a.refreshVisible()
}

func (a *App) openSelected() {
	b, ok := a.Selected()
	if !ok {
		return
	}
	if err := a.manager.Open(b.URL); err != nil {
		a.setMessage(MessageError, "Open failed: "+err.Error())
		return
	}
	a.setMessage(MessageInfo, "Opened "+b.Name)
}

func (a *App) yankSelectedURL() {
	b, ok := a.Selected()
	if !ok {
		return
	}
	if err := a.clipboard(b.URL); err != nil {
		a.logger.Warn("copy url failed", zap.String("url", b.URL), zap.Error(err))
		a.setMessage(MessageError, "Copy failed: "+err.Error())
		return
	}
	a.setMessage(MessageSuccess, "Copied "+b.URL)
}

func (a App) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Cancel):
		a.search.Reset()
		a.search.Input.Blur()
		a.mode = ModeNormal
		a.refreshVisible()
		return a, nil

	case key.Matches(msg, a.keys.Submit):
		a.search.Input.Blur()
		a.mode = ModeNormal
		return a, nil
	}

	var cmd tea.Cmd
	a.search.Input, cmd = a.search.Input.Update(msg)
	a.cursor = 0
	a.refreshVisible()
	return a, cmd
}

// openForm shows an empty add form.
func (a *App) openForm() tea.Cmd {
	a.form.Reset(model.Draft{
		Category: a.defaultCategory,
		Icon:     a.defaultIcon,
	}, search.Selectable(a.manager.Bookmarks()))
	a.mode = ModeAdd
	return a.form.FocusField(FieldName)
}

// closeForm hides the add form and discards the draft.
func (a *App) closeForm() {
	a.form.Reset(model.Draft{
		Category: a.defaultCategory,
		Icon:     a.defaultIcon,
	}, nil)
	a.mode = ModeNormal
}

func (a App) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Cancel):
		a.closeForm()
		return a, nil

	case key.Matches(msg, a.keys.Submit):
		a.submitForm()
		return a, nil

	case key.Matches(msg, a.keys.NextField):
		return a, a.form.MoveFocus(1)

	case key.Matches(msg, a.keys.PrevField):
		return a, a.form.MoveFocus(-1)

	case key.Matches(msg, a.keys.NextOption):
		a.form.CycleCategory(1)
		return a, nil

	case key.Matches(msg, a.keys.PrevOption):
		a.form.CycleCategory(-1)
		return a, nil
	}

	if a.form.Focus == FieldCategory {
		switch {
		case key.Matches(msg, a.keys.Right), key.Matches(msg, a.keys.Down):
			a.form.CycleCategory(1)
		case key.Matches(msg, a.keys.Left), key.Matches(msg, a.keys.Up):
			a.form.CycleCategory(-1)
		}
		return a, nil
	}

	return a, a.form.Update(msg)
}

// submitForm adds the draft. An incomplete draft keeps the form open as is.
func (a *App) submitForm() {
	b, ok, err := a.manager.Add(a.form.Draft())
	if err != nil {
		a.setMessage(MessageError, "Save failed: "+err.Error())
		return
	}
	if !ok {
		return
	}

	a.closeForm()
	a.refreshVisible()
	for i := range a.visible {
		if a.visible[i].ID == b.ID {
			a.cursor = i
			break
		}
	}
	a.setMessage(MessageSuccess, "Added "+b.Name)
}

func (a App) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	confirmed := key.Matches(msg, a.keys.Confirm)
	if !confirmed && !key.Matches(msg, a.keys.Deny) {
		return a, nil
	}

	pending := a.confirm
	a.confirm = ConfirmState{}
	a.mode = ModeNormal

	answer := manager.ConfirmFunc(func(string) bool { return confirmed })
	removed, err := a.manager.Delete(pending.ID, answer)
	if err != nil {
		a.setMessage(MessageError, "Save failed: "+err.Error())
		return a, nil
	}

	a.refreshVisible()
	if removed {
		a.setMessage(MessageSuccess, "Deleted "+pending.Name)
	}
	return a, nil
}

func (a App) updateHelp(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Help), key.Matches(msg, a.keys.Quit), key.Matches(msg, a.keys.Cancel):
		a.mode = ModeNormal
	}
	return a, nil
}

// View implements tea.Model.
func (a App) View() string {
	return a.renderView()
}
