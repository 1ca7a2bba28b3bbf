package state

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceCentersShapeOnDropPoint(t *testing.T) {
	b := NewBoard(DefaultName)

	s, ok := b.Place(Drop{Type: Circle, Color: "#4ecdc4", X: 100, Y: 100, CanvasWidth: 800, CanvasHeight: 600})
	require.True(t, ok)
	assert.Equal(t, 75.0, s.X)
	assert.Equal(t, 75.0, s.Y)
	assert.Equal(t, Circle, s.Type)
	assert.Equal(t, "#4ecdc4", s.Color)

	assert.Equal(t, map[ShapeType]int{Square: 0, Circle: 1, Triangle: 0, Trapezoid: 0}, b.Counts())
	assert.Equal(t, "My Painting", b.Name())
}

func TestPlaceClampsIntoCanvas(t *testing.T) {
	tests := []struct {
		name         string
		x, y         float64
		w, h         float64
		wantX, wantY float64
	}{
		{"top left corner", 3, 4, 800, 600, 0, 0},
		{"bottom right corner", 799, 599, 800, 600, 750, 550},
		{"outside canvas", -200, 5000, 800, 600, 0, 550},
		{"exact fit", 25, 25, 50, 50, 0, 0},
		{"narrow canvas", 30, 300, 20, 600, 0, 275},
		{"tiny canvas", 10, 10, 0, 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBoard("clamp")
			s, ok := b.Place(Drop{Type: Square, X: tt.x, Y: tt.y, CanvasWidth: tt.w, CanvasHeight: tt.h})
			require.True(t, ok)
			assert.Equal(t, tt.wantX, s.X)
			assert.Equal(t, tt.wantY, s.Y)
		})
	}
}

func TestPlaceClampingHoldsForRandomDrops(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	b := NewBoard("random")
	for i := 0; i < 1000; i++ {
		w := 50 + rng.Float64()*1500
		h := 50 + rng.Float64()*1500
		d := Drop{
			Type:         ShapeTypes[rng.Intn(len(ShapeTypes))],
			X:            rng.Float64()*3000 - 1000,
			Y:            rng.Float64()*3000 - 1000,
			CanvasWidth:  w,
			CanvasHeight: h,
		}
		s, ok := b.Place(d)
		require.True(t, ok)
		require.GreaterOrEqual(t, s.X, 0.0)
		require.LessOrEqual(t, s.X, w-ShapeWidth)
		require.GreaterOrEqual(t, s.Y, 0.0)
		require.LessOrEqual(t, s.Y, h-ShapeHeight)
	}
}

func TestPlaceRejectsUnknownType(t *testing.T) {
	b := NewBoard("unknown")
	_, ok := b.Place(Drop{Type: "hexagon", X: 100, Y: 100, CanvasWidth: 800, CanvasHeight: 600})
	assert.False(t, ok)
	assert.Zero(t, b.Len())
}

func TestPlaceAllocatesUniqueIDsInDropOrder(t *testing.T) {
	b := NewBoard("ids")
	for i := 0; i < 500; i++ {
		_, ok := b.Place(Drop{Type: Triangle, X: float64(i), Y: 10, CanvasWidth: 800, CanvasHeight: 600})
		require.True(t, ok)
	}

	doc := b.Document()
	seen := make(map[int64]bool, len(doc.Shapes))
	for i, s := range doc.Shapes {
		assert.False(t, seen[s.ID], "duplicate id %d", s.ID)
		seen[s.ID] = true
		if i > 0 {
			assert.Greater(t, s.ID, doc.Shapes[i-1].ID)
		}
	}
}

func TestRemoveIsIdempotent(t *testing.T) {
	b := NewBoard("remove")
	first, _ := b.Place(Drop{Type: Square, X: 100, Y: 100, CanvasWidth: 800, CanvasHeight: 600})
	second, _ := b.Place(Drop{Type: Circle, X: 200, Y: 200, CanvasWidth: 800, CanvasHeight: 600})

	assert.True(t, b.Remove(first.ID))
	once := b.Document()

	assert.False(t, b.Remove(first.ID))
	assert.Equal(t, once, b.Document())
	require.Len(t, once.Shapes, 1)
	assert.Equal(t, second, once.Shapes[0])

	assert.False(t, b.Remove(12345))
	assert.Equal(t, once, b.Document())
}

func TestRemovedIDsAreNotReused(t *testing.T) {
	b := NewBoard("reuse")
	s, _ := b.Place(Drop{Type: Square, CanvasWidth: 800, CanvasHeight: 600})
	b.Remove(s.ID)
	next, _ := b.Place(Drop{Type: Square, CanvasWidth: 800, CanvasHeight: 600})
	assert.NotEqual(t, s.ID, next.ID)
}

func TestCountsMatchFreshTally(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	b := NewBoard("counts")
	var placed []int64
	for i := 0; i < 300; i++ {
		if len(placed) > 0 && rng.Intn(3) == 0 {
			idx := rng.Intn(len(placed))
			b.Remove(placed[idx])
			placed = append(placed[:idx], placed[idx+1:]...)
		} else {
			s, _ := b.Place(Drop{Type: ShapeTypes[rng.Intn(len(ShapeTypes))], X: 10, Y: 10, CanvasWidth: 800, CanvasHeight: 600})
			placed = append(placed, s.ID)
		}

		want := map[ShapeType]int{Square: 0, Circle: 0, Triangle: 0, Trapezoid: 0}
		for _, s := range b.Document().Shapes {
			want[s.Type]++
		}
		require.Equal(t, want, b.Counts())
	}
}

func TestCountsOnEmptyBoardCoverEveryType(t *testing.T) {
	counts := NewBoard("").Counts()
	assert.Len(t, counts, 4)
	for _, st := range ShapeTypes {
		v, ok := counts[st]
		assert.True(t, ok)
		assert.Zero(t, v)
	}
}

func TestRenameAcceptsAnything(t *testing.T) {
	b := NewBoard(DefaultName)
	b.Rename("")
	assert.Equal(t, "", b.Name())
	b.Rename("Sunset over   the bay")
	assert.Equal(t, "Sunset over   the bay", b.Name())
}

func TestReplaceSwapsNameAndShapes(t *testing.T) {
	b := NewBoard(DefaultName)
	b.Place(Drop{Type: Square, X: 100, Y: 100, CanvasWidth: 800, CanvasHeight: 600})

	imported := Document{
		Name: "Imported",
		Shapes: []Shape{
			{ID: 1 << 50, Type: Circle, X: 900, Y: -4, Color: "#45b7d1"},
			{ID: 7, Type: "hexagon", X: 1, Y: 2, Color: "plaid"},
		},
	}
	b.Replace(imported)

	got := b.Document()
	assert.Equal(t, imported, got)
	assert.Equal(t, map[ShapeType]int{Square: 0, Circle: 1, Triangle: 0, Trapezoid: 0}, b.Counts())

	// Mutating the caller's slice must not reach into the board.
	imported.Shapes[0].X = 0
	assert.Equal(t, 900.0, b.Document().Shapes[0].X)

	next, _ := b.Place(Drop{Type: Square, CanvasWidth: 800, CanvasHeight: 600})
	assert.Greater(t, next.ID, int64(1<<50))
}

func TestDocumentReturnsSnapshot(t *testing.T) {
	b := NewBoard("snap")
	b.Place(Drop{Type: Square, X: 100, Y: 100, CanvasWidth: 800, CanvasHeight: 600})
	doc := b.Document()
	doc.Shapes[0].X = 999
	doc.Name = "changed"
	assert.Equal(t, 75.0, b.Document().Shapes[0].X)
	assert.Equal(t, "snap", b.Name())
}
