package export

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode"

	"ShapeBoard/internal/state"
)

// MediaType is the only media type export produces and import accepts.
const MediaType = "application/json"

// ParseError reports an import file that is malformed or incomplete.
type ParseError struct {
	Missing string // required field that was absent or null
	Err     error  // decode failure, if any
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid file format: %v", e.Err)
	}
	return fmt.Sprintf("invalid file format: missing %q", e.Missing)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Serialize encodes a document for export. The output carries exactly the
// name and shapes fields, indented by two spaces, and is identical for
// identical documents.
func Serialize(doc state.Document) ([]byte, error) {
	if doc.Shapes == nil {
		doc.Shapes = []state.Shape{}
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode document %q: %w", doc.Name, err)
	}
	return data, nil
}

// wireDocument keeps track of which required fields were actually present.
type wireDocument struct {
	Name   *string       `json:"name"`
	Shapes []state.Shape `json:"shapes"`
}

// Parse decodes an exported document. It only checks that name and shapes
// are present and not null; individual shapes are taken as they are.
func Parse(data []byte) (state.Document, error) {
	var w wireDocument
	if err := json.Unmarshal(data, &w); err != nil {
		return state.Document{}, &ParseError{Err: err}
	}
	if w.Name == nil {
		return state.Document{}, &ParseError{Missing: "name"}
	}
	if w.Shapes == nil {
		return state.Document{}, &ParseError{Missing: "shapes"}
	}
	return state.Document{Name: *w.Name, Shapes: w.Shapes}, nil
}

// Filename derives the download name for a document: every run of
// whitespace in the name becomes a single underscore, followed by ext.
func Filename(name, ext string) string {
	var sb strings.Builder
	inSpace := false
	for _, r := range name {
		if unicode.IsSpace(r) || r == '\uFEFF' {
			if !inSpace {
				sb.WriteByte('_')
			}
			inSpace = true
			continue
		}
		inSpace = false
		sb.WriteRune(r)
	}
	sb.WriteString(ext)
	return sb.String()
}

// JSONFilename is Filename with the export extension.
func JSONFilename(name string) string {
	return Filename(name, ".json")
}
