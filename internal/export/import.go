package export

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"ShapeBoard/internal/state"
)

// ImportState is a step of the import flow.
type ImportState int

const (
	Idle ImportState = iota
	FileSelected
	Reading
	ParsedOK
	Applied
	ParseFailed
)

func (s ImportState) String() string {
	switch s {
	case Idle:
		return "idle"
	case FileSelected:
		return "file-selected"
	case Reading:
		return "reading"
	case ParsedOK:
		return "parsed-ok"
	case Applied:
		return "applied"
	case ParseFailed:
		return "parse-failed"
	default:
		return "unknown"
	}
}

// ErrUnsupportedMediaType is returned for files that are not JSON. The
// flow goes back to Idle without reading them and callers normally stay
// silent about it.
var ErrUnsupportedMediaType = errors.New("unsupported media type")

// File is a user-selected import candidate.
type File struct {
	Name      string
	MediaType string
	Open      func() (io.ReadCloser, error)
}

// Importer runs the import flow against one board.
type Importer struct {
	board *state.Board

	// OnState, if set, observes every transition.
	OnState func(ImportState)
}

func NewImporter(board *state.Board) *Importer {
	return &Importer{board: board}
}

func (im *Importer) enter(s ImportState) {
	if im.OnState != nil {
		im.OnState(s)
	}
}

// Import reads f, parses it and replaces the board's document. On any
// failure the board is left untouched. A malformed file yields a
// *ParseError; a non-JSON file yields ErrUnsupportedMediaType.
func (im *Importer) Import(ctx context.Context, f File) (state.Document, error) {
	im.enter(FileSelected)
	if f.MediaType != MediaType {
		log.Printf("[IMPORT] Skipping %s: media type %q", f.Name, f.MediaType)
		im.enter(Idle)
		return state.Document{}, ErrUnsupportedMediaType
	}

	im.enter(Reading)
	data, err := readAll(ctx, f)
	if err != nil {
		im.enter(Idle)
		return state.Document{}, fmt.Errorf("could not read %s: %w", f.Name, err)
	}

	doc, err := Parse(data)
	if err != nil {
		log.Printf("[IMPORT] %s: %v", f.Name, err)
		im.enter(ParseFailed)
		im.enter(Idle)
		return state.Document{}, err
	}
	im.enter(ParsedOK)

	im.board.Replace(doc)
	im.enter(Applied)
	log.Printf("[IMPORT] Loaded %q from %s (%d shapes)", doc.Name, f.Name, len(doc.Shapes))
	return doc, nil
}

func readAll(ctx context.Context, f File) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return data, ctx.Err()
}

// Notice is the user-facing text for an import error, or "" when the error
// should not be shown.
func Notice(err error) string {
	var perr *ParseError
	switch {
	case err == nil, errors.Is(err, ErrUnsupportedMediaType):
		return ""
	case errors.As(err, &perr):
		return "Invalid file format"
	default:
		return "Could not read file"
	}
}
