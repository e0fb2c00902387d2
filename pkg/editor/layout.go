package editor

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/harizal/portfolio/pkg/profile"
)

// layout is the fixed description of one section: where it lives in the
// document, how it repeats, and which keys its objects declare.
type layout struct {
	path   string
	legend string
	kind   Kind
	keys   []string
}

var layouts = []layout{
	{path: "personalInfo", legend: "Personal Info", kind: KindObject, keys: []string{"name", "title", "address", "email"}},
	{path: "education", legend: "Education", kind: KindObjectList, keys: []string{"degree", "institution", "status"}},
	{path: "workExperience", legend: "Work Experience", kind: KindObjectList, keys: []string{"period", "company", "position"}},
	{path: "certifications", legend: "Certifications", kind: KindStringList},
	{path: "trainings", legend: "Trainings", kind: KindStringList},
	projectLayout("it"),
	projectLayout("network_infrastructure"),
	projectLayout("security"),
}

func projectLayout(category string) layout {
	return layout{
		path:   "projects." + category,
		legend: "Projects - " + titleCase(category),
		kind:   KindStringList,
	}
}

func layoutFor(path string) (layout, bool) {
	for _, l := range layouts {
		if l.path == path {
			return l, true
		}
	}
	return layout{}, false
}

func (l layout) item(idx int, row []string) Item {
	it := Item{Removable: true}
	if l.kind == KindStringList {
		it.Fields = []Field{{Type: InputText, Value: at(row, 0)}}
	} else {
		it.Fields = make([]Field, len(l.keys))
		for k, key := range l.keys {
			it.Fields[k] = Field{Key: key, Label: label(key), Type: InputText, Value: at(row, k)}
		}
	}
	l.renumber(&it, idx)
	return it
}

// renumber sets the ids and positional labels of an item at idx.
func (l layout) renumber(it *Item, idx int) {
	for k := range it.Fields {
		f := &it.Fields[k]
		if l.kind == KindStringList {
			f.ID = fmt.Sprintf("%s-%d", l.path, idx)
			f.Label = fmt.Sprintf("Item %d", idx+1)
			continue
		}
		f.ID = fmt.Sprintf("%s-%d-%s", l.path, idx, f.Key)
	}
}

// extract reads the section at l.path as rows of strings in key order.
func extract(d profile.Document, path string) [][]string {
	switch path {
	case "personalInfo":
		p := d.PersonalInfo
		return [][]string{{p.Name, p.Title, p.Address, p.Email}}
	case "education":
		rows := make([][]string, 0, len(d.Education))
		for _, e := range d.Education {
			rows = append(rows, []string{e.Degree, e.Institution, e.Status})
		}
		return rows
	case "workExperience":
		rows := make([][]string, 0, len(d.WorkExperience))
		for _, w := range d.WorkExperience {
			rows = append(rows, []string{w.Period, w.Company, w.Position})
		}
		return rows
	case "certifications":
		return column(d.Certifications)
	case "trainings":
		return column(d.Trainings)
	case "projects.it":
		return column(d.Projects.IT)
	case "projects.network_infrastructure":
		return column(d.Projects.NetworkInfrastructure)
	case "projects.security":
		return column(d.Projects.Security)
	}
	return nil
}

// assign is the inverse of extract.
func assign(d *profile.Document, path string, rows [][]string) {
	switch path {
	case "personalInfo":
		var row []string
		if len(rows) > 0 {
			row = rows[0]
		}
		d.PersonalInfo = profile.PersonalInfo{Name: at(row, 0), Title: at(row, 1), Address: at(row, 2), Email: at(row, 3)}
	case "education":
		d.Education = make([]profile.EducationItem, 0, len(rows))
		for _, r := range rows {
			d.Education = append(d.Education, profile.EducationItem{Degree: at(r, 0), Institution: at(r, 1), Status: at(r, 2)})
		}
	case "workExperience":
		d.WorkExperience = make([]profile.WorkItem, 0, len(rows))
		for _, r := range rows {
			d.WorkExperience = append(d.WorkExperience, profile.WorkItem{Period: at(r, 0), Company: at(r, 1), Position: at(r, 2)})
		}
	case "certifications":
		d.Certifications = flatten(rows)
	case "trainings":
		d.Trainings = flatten(rows)
	case "projects.it":
		d.Projects.IT = flatten(rows)
	case "projects.network_infrastructure":
		d.Projects.NetworkInfrastructure = flatten(rows)
	case "projects.security":
		d.Projects.Security = flatten(rows)
	}
}

func column(values []string) [][]string {
	rows := make([][]string, 0, len(values))
	for _, v := range values {
		rows = append(rows, []string{v})
	}
	return rows
}

func flatten(rows [][]string) []string {
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, at(r, 0))
	}
	return out
}

func at(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

// label turns "workExperience" into "Work Experience".
func label(key string) string {
	var b strings.Builder
	for i, r := range key {
		switch {
		case i == 0:
			b.WriteRune(unicode.ToUpper(r))
		case unicode.IsUpper(r):
			b.WriteRune(' ')
			b.WriteRune(r)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// titleCase turns "network_infrastructure" into "Network Infrastructure".
func titleCase(s string) string {
	words := strings.Split(s, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
