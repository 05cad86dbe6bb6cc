package model

import "strings"

// Draft is the unsaved state of the add bookmark form.
type Draft struct {
	Name     string
	URL      string
	Category string
	Icon     string
}

// NewDraft returns an empty draft with the default category and icon.
func NewDraft() Draft {
	return Draft{
		Category: DefaultCategory,
		Icon:     DefaultIcon,
	}
}

// Valid reports whether the draft has both a name and a URL.
func (d Draft) Valid() bool {
	return strings.TrimSpace(d.Name) != "" && strings.TrimSpace(d.URL) != ""
}
