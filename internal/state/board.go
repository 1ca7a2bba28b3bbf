package state

import (
	"log"
	"sync"
)

// DefaultName is the title of a fresh drawing.
const DefaultName = "My Painting"

// Board owns a Document and is the only place it gets mutated.
type Board struct {
	mu    sync.RWMutex
	doc   Document
	clock *Clock
}

// NewBoard creates an empty board with the given document name.
func NewBoard(name string) *Board {
	return &Board{
		doc:   Document{Name: name, Shapes: make([]Shape, 0)},
		clock: NewClock(),
	}
}

// Place centers a new shape on the drop point, clamps it into the canvas,
// and appends it. It returns false, and places nothing, if the dropped type
// is not a known shape.
func (b *Board) Place(d Drop) (Shape, bool) {
	if !d.Type.Valid() {
		log.Printf("[STATE] Ignoring drop of unknown shape type %q", d.Type)
		return Shape{}, false
	}

	x, y := PlacementOrigin(d.X, d.Y, d.CanvasWidth, d.CanvasHeight)

	b.mu.Lock()
	defer b.mu.Unlock()

	s := Shape{
		ID:    b.clock.Next(),
		Type:  d.Type,
		X:     x,
		Y:     y,
		Color: d.Color,
	}
	b.doc.Shapes = append(b.doc.Shapes, s)

	log.Printf("[STATE] Shape placed: %d (%s at %.0f,%.0f)", s.ID, s.Type, s.X, s.Y)
	return s, true
}

// Remove deletes the shape with the given id. Removing an id that is not on
// the board is a no-op; the return value reports whether anything changed.
func (b *Board) Remove(id int64) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	kept := make([]Shape, 0, len(b.doc.Shapes))
	for _, s := range b.doc.Shapes {
		if s.ID != id {
			kept = append(kept, s)
		}
	}
	if len(kept) == len(b.doc.Shapes) {
		return false
	}
	b.doc.Shapes = kept
	log.Printf("[STATE] Shape removed: %d", id)
	return true
}

// Rename replaces the document name. Any string is accepted.
func (b *Board) Rename(name string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.doc.Name = name
}

// Replace swaps the whole document, name and shapes together. Imported
// shapes are taken as they are; only the id clock is advanced past them.
func (b *Board) Replace(doc Document) {
	doc = doc.Clone()

	b.mu.Lock()
	defer b.mu.Unlock()

	for _, s := range doc.Shapes {
		b.clock.Observe(s.ID)
	}
	b.doc = doc
	log.Printf("[STATE] Document replaced: %q with %d shapes", doc.Name, len(doc.Shapes))
}

// Document returns a snapshot of the current drawing.
func (b *Board) Document() Document {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.doc.Clone()
}

// Name returns the current document name.
func (b *Board) Name() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.doc.Name
}

// Len returns the number of shapes on the board.
func (b *Board) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.doc.Shapes)
}

// Counts tallies the shapes on the board per type. Every known type is
// present in the result, with zero when there are none; shapes of an
// unknown type (possible after an import) are not counted.
func (b *Board) Counts() map[ShapeType]int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return CountShapes(b.doc.Shapes)
}

// CountShapes is the tally used by Counts.
func CountShapes(shapes []Shape) map[ShapeType]int {
	counts := make(map[ShapeType]int, len(ShapeTypes))
	for _, t := range ShapeTypes {
		counts[t] = 0
	}
	for _, s := range shapes {
		if s.Type.Valid() {
			counts[s.Type]++
		}
	}
	return counts
}
