package editor

import (
	"slices"

	"github.com/harizal/portfolio/pkg/profile"
)

// Build produces the editable form for doc. Missing sections yield empty
// lists and missing values empty strings. The result depends only on doc.
func Build(doc profile.Document) Form {
	form := Form{Sections: make([]Section, 0, len(layouts))}
	for _, l := range layouts {
		form.Sections = append(form.Sections, l.build(extract(doc, l.path)))
	}
	return form
}

func (l layout) build(rows [][]string) Section {
	s := Section{
		Path:   l.path,
		Legend: l.legend,
		Kind:   l.kind,
		Keys:   slices.Clone(l.keys),
	}
	if l.kind == KindObject {
		var row []string
		if len(rows) > 0 {
			row = rows[0]
		}
		s.Fields = make([]Field, len(l.keys))
		for k, key := range l.keys {
			typ := InputText
			if key == "email" {
				typ = InputEmail
			}
			s.Fields[k] = Field{
				ID:    l.path + "-" + key,
				Key:   key,
				Label: label(key),
				Type:  typ,
				Value: at(row, k),
			}
		}
		return s
	}
	s.Appendable = true
	s.Items = make([]Item, 0, len(rows))
	for i, row := range rows {
		s.Items = append(s.Items, l.item(i, row))
	}
	return s
}
