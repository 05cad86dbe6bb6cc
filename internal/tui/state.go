package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/nikbrunner/techbook/internal/model"
	"github.com/nikbrunner/techbook/internal/tui/layout"
)

// MessageType controls how the status message is styled.
type MessageType int

const (
	MessageInfo MessageType = iota
	MessageSuccess
	MessageWarning
	MessageError
)

// FormField identifies a field of the add form.
type FormField int

const (
	FieldName FormField = iota
	FieldURL
	FieldCategory
	FieldIcon
	fieldCount
)

// FormState holds the add bookmark form. The category is picked from a closed
// option list, the other fields are free text.
type FormState struct {
	NameInput textinput.Model
	URLInput  textinput.Model
	IconInput textinput.Model
	Category  string
	Options   []string // selectable categories, "All" excluded
	Focus     FormField
}

// NewFormState creates a FormState with initialized inputs.
func NewFormState(cfg layout.LayoutConfig) FormState {
	name := textinput.New()
	name.Placeholder = "e.g., GitHub"
	name.CharLimit = cfg.Input.NameCharLimit
	name.Width = cfg.Input.StandardWidth

	url := textinput.New()
	url.Placeholder = "e.g., github.com"
	url.CharLimit = cfg.Input.URLCharLimit
	url.Width = cfg.Input.StandardWidth

	icon := textinput.New()
	icon.CharLimit = cfg.Input.IconCharLimit
	icon.Width = cfg.Input.IconWidth

	return FormState{
		NameInput: name,
		URLInput:  url,
		IconInput: icon,
	}
}

// Reset fills the form from draft and blurs every input.
func (f *FormState) Reset(draft model.Draft, options []string) {
	f.NameInput.SetValue(draft.Name)
	f.URLInput.SetValue(draft.URL)
	f.IconInput.SetValue(draft.Icon)
	f.NameInput.CursorEnd()
	f.URLInput.CursorEnd()
	f.IconInput.CursorEnd()
	f.Category = draft.Category
	f.Options = options
	f.Focus = FieldName
	f.Blur()
}

// Blur removes focus from every input.
func (f *FormState) Blur() {
	f.NameInput.Blur()
	f.URLInput.Blur()
	f.IconInput.Blur()
}

// Draft returns the current form values.
func (f FormState) Draft() model.Draft {
	return model.Draft{
		Name:     f.NameInput.Value(),
		URL:      f.URLInput.Value(),
		Category: f.Category,
		Icon:     f.IconInput.Value(),
	}
}

// FocusField moves focus to field, blurring the others.
func (f *FormState) FocusField(field FormField) tea.Cmd {
	f.Focus = field
	f.Blur()

	switch field {
	case FieldName:
		return f.NameInput.Focus()
	case FieldURL:
		return f.URLInput.Focus()
	case FieldIcon:
		return f.IconInput.Focus()
	}
	return nil
}

// MoveFocus shifts focus by delta fields, wrapping around.
func (f *FormState) MoveFocus(delta int) tea.Cmd {
	next := (int(f.Focus) + delta + int(fieldCount)) % int(fieldCount)
	return f.FocusField(FormField(next))
}

// CycleCategory steps through Options by delta, wrapping around. A category
// that isn't one of the options jumps to the first (or last) option.
func (f *FormState) CycleCategory(delta int) {
	if len(f.Options) == 0 {
		return
	}

	current := -1
	for i, opt := range f.Options {
		if opt == f.Category {
			current = i
			break
		}
	}

	var next int
	switch {
	case current == -1 && delta < 0:
		next = len(f.Options) - 1
	case current == -1:
		next = 0
	default:
		next = (current + delta%len(f.Options) + len(f.Options)) % len(f.Options)
	}
	f.Category = f.Options[next]
}

// Update forwards msg to the focused text input.
func (f *FormState) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch f.Focus {
	case FieldName:
		f.NameInput, cmd = f.NameInput.Update(msg)
	case FieldURL:
		f.URLInput, cmd = f.URLInput.Update(msg)
	case FieldIcon:
		f.IconInput, cmd = f.IconInput.Update(msg)
	}
	return cmd
}

// SearchState holds the live search box.
type SearchState struct {
	Input textinput.Model
}

// NewSearchState creates a SearchState with an initialized input.
func NewSearchState(cfg layout.LayoutConfig) SearchState {
	input := textinput.New()
	input.Placeholder = "Search bookmarks..."
	input.CharLimit = cfg.Input.SearchCharLimit
	input.Width = cfg.Input.SearchWidth
	input.Prompt = "🔍 "

	return SearchState{Input: input}
}

// Term returns the current search term.
func (s SearchState) Term() string {
	return s.Input.Value()
}

// Reset clears the search term.
func (s *SearchState) Reset() {
	s.Input.Reset()
}

// ConfirmState holds the bookmark awaiting delete confirmation.
type ConfirmState struct {
	ID   int64
	Name string
}
