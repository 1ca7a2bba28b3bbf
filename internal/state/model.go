package state

// ShapeType is the closed set of shapes a user can drop on the canvas.
type ShapeType string

const (
	Square    ShapeType = "square"
	Circle    ShapeType = "circle"
	Triangle  ShapeType = "triangle"
	Trapezoid ShapeType = "trapezoid"
)

// ShapeTypes lists every known type in toolbar order.
var ShapeTypes = []ShapeType{Square, Circle, Triangle, Trapezoid}

// Valid reports whether t is one of the known shape types.
func (t ShapeType) Valid() bool {
	switch t {
	case Square, Circle, Triangle, Trapezoid:
		return true
	}
	return false
}

// Footprint of every shape regardless of its silhouette.
const (
	ShapeWidth  = 50
	ShapeHeight = 50
)

// Shape is a placed drawing primitive.
type Shape struct {
	ID    int64     `json:"id"`
	Type  ShapeType `json:"type"`
	X     float64   `json:"x"`
	Y     float64   `json:"y"`
	Color string    `json:"color"`
}

// Document is the full drawing: a name and the shapes in drop order.
type Document struct {
	Name   string  `json:"name"`
	Shapes []Shape `json:"shapes"`
}

// Clone returns a copy that shares no backing array with d.
func (d Document) Clone() Document {
	shapes := make([]Shape, len(d.Shapes))
	copy(shapes, d.Shapes)
	return Document{Name: d.Name, Shapes: shapes}
}

// Drop is the result of a completed drag gesture: what was dragged and
// where it was released, in canvas-local coordinates.
type Drop struct {
	Type         ShapeType
	Color        string
	X, Y         float64
	CanvasWidth  float64
	CanvasHeight float64
}
