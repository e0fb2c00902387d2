package profile

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed schema/document.schema.json
var documentSchema []byte

var loadSchema = sync.OnceValues(func() (*gojsonschema.Schema, error) {
	return gojsonschema.NewSchema(gojsonschema.NewBytesLoader(documentSchema))
})

// ValidationError lists the shape problems found in a submitted document.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return "invalid profile document: " + strings.Join(e.Problems, "; ")
}

// Decode checks raw against the document schema and decodes it.
// Only presence and types are checked; values are taken as they come.
func Decode(raw []byte) (Document, error) {
	schema, err := loadSchema()
	if err != nil {
		return Document{}, fmt.Errorf("compile profile schema: %w", err)
	}
	res, err := schema.Validate(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return Document{}, &ValidationError{Problems: []string{"payload is not valid JSON"}}
	}
	if !res.Valid() {
		problems := make([]string, 0, len(res.Errors()))
		for _, e := range res.Errors() {
			problems = append(problems, e.String())
		}
		return Document{}, &ValidationError{Problems: problems}
	}
	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return Document{}, &ValidationError{Problems: []string{err.Error()}}
	}
	return doc.Normalize(), nil
}
