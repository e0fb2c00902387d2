// Package editor converts the profile document into an editable form tree and
// back. The tree is a plain value: it carries its own path and key metadata,
// so parsing never needs the document the form was built from.
package editor

import (
	"errors"
	"fmt"
)

// Kind tells how a section maps onto the document.
type Kind string

const (
	KindObject     Kind = "object"
	KindObjectList Kind = "objectList"
	KindStringList Kind = "stringList"
)

type InputType string

const (
	InputText  InputType = "text"
	InputEmail InputType = "email"
)

var (
	ErrUnknownSection = errors.New("unknown form section")
	ErrNotRepeatable  = errors.New("section has no repeatable items")
	ErrItemNotFound   = errors.New("form item not found")
)

// Field is one labeled input.
type Field struct {
	ID    string    `json:"id"`
	Key   string    `json:"key,omitempty"`
	Label string    `json:"label"`
	Type  InputType `json:"type"`
	Value string    `json:"value"`
}

// Item is one repeatable entry of a list section.
type Item struct {
	Fields    []Field `json:"fields"`
	Removable bool    `json:"removable"`
}

// Section is one fieldset of the form, bound to a document path such as
// "education" or "projects.it".
type Section struct {
	Path       string   `json:"path"`
	Legend     string   `json:"legend"`
	Kind       Kind     `json:"kind"`
	Keys       []string `json:"keys,omitempty"`
	Fields     []Field  `json:"fields,omitempty"`
	Items      []Item   `json:"items,omitempty"`
	Appendable bool     `json:"appendable"`
}

// Form is the whole editable tree, sections in display order.
type Form struct {
	Sections []Section `json:"sections"`
}

// Section returns the section bound to path.
func (f *Form) Section(path string) (*Section, bool) {
	for i := range f.Sections {
		if f.Sections[i].Path == path {
			return &f.Sections[i], true
		}
	}
	return nil, false
}

// AddItem appends an item with empty values to the list section at path.
func (f *Form) AddItem(path string) error {
	s, l, err := f.listSection(path)
	if err != nil {
		return err
	}
	s.Items = append(s.Items, l.item(len(s.Items), nil))
	return nil
}

// RemoveItem drops the item at index from the list section at path and
// renumbers the items after it.
func (f *Form) RemoveItem(path string, index int) error {
	s, l, err := f.listSection(path)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(s.Items) {
		return fmt.Errorf("%w: %s[%d]", ErrItemNotFound, path, index)
	}
	s.Items = append(s.Items[:index], s.Items[index+1:]...)
	for i := index; i < len(s.Items); i++ {
		l.renumber(&s.Items[i], i)
	}
	return nil
}

func (f *Form) listSection(path string) (*Section, layout, error) {
	l, ok := layoutFor(path)
	if !ok {
		return nil, layout{}, fmt.Errorf("%w: %s", ErrUnknownSection, path)
	}
	if l.kind == KindObject {
		return nil, layout{}, fmt.Errorf("%w: %s", ErrNotRepeatable, path)
	}
	s, ok := f.Section(path)
	if !ok {
		return nil, layout{}, fmt.Errorf("%w: %s", ErrUnknownSection, path)
	}
	return s, l, nil
}
