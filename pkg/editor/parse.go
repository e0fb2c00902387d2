package editor

import (
	"slices"
	"strings"

	"github.com/harizal/portfolio/pkg/profile"
)

// Parse rebuilds a document from an edited form. Values are trimmed,
// all-blank object items and blank list values are dropped, and sections
// the form does not carry come back empty. Sections are matched by path;
// unknown paths are ignored.
func Parse(form Form) profile.Document {
	doc := profile.Default()
	for _, s := range form.Sections {
		l, ok := layoutFor(s.Path)
		if !ok {
			continue
		}
		assign(&doc, l.path, l.parse(s))
	}
	return doc.Normalize()
}

func (l layout) parse(s Section) [][]string {
	switch l.kind {
	case KindObject:
		// empty strings are kept for the scalar section
		return [][]string{l.values(s.Fields)}
	case KindObjectList:
		rows := make([][]string, 0, len(s.Items))
		for _, it := range s.Items {
			row := l.values(it.Fields)
			if slices.ContainsFunc(row, func(v string) bool { return v != "" }) {
				rows = append(rows, row)
			}
		}
		return rows
	default:
		rows := make([][]string, 0, len(s.Items))
		for _, it := range s.Items {
			for _, f := range it.Fields {
				if v := strings.TrimSpace(f.Value); v != "" {
					rows = append(rows, []string{v})
				}
			}
		}
		return rows
	}
}

// values reads fields by declared key; fields with undeclared keys are skipped.
func (l layout) values(fields []Field) []string {
	row := make([]string, len(l.keys))
	for _, f := range fields {
		if i := slices.Index(l.keys, f.Key); i >= 0 {
			row[i] = strings.TrimSpace(f.Value)
		}
	}
	return row
}
