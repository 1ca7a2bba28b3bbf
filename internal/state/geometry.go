package state

import "math"

// Point is a position in canvas-local pixels.
type Point struct{ X, Y float64 }

// PlacementOrigin turns a drop point into the top-left corner of a shape
// centered on it, clamped so the shape stays inside a canvas of the given
// size. On a canvas smaller than the footprint the origin collapses to 0.
func PlacementOrigin(dropX, dropY, canvasWidth, canvasHeight float64) (float64, float64) {
	x := clamp(dropX-ShapeWidth/2, 0, canvasWidth-ShapeWidth)
	y := clamp(dropY-ShapeHeight/2, 0, canvasHeight-ShapeHeight)
	return x, y
}

// clamp bounds v to [lo, hi]; lo wins when hi < lo, and NaN maps to lo.
func clamp(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo || math.IsNaN(v) {
		v = lo
	}
	return v
}

// Outline returns the polygon of a shape type inside its footprint, relative
// to the top-left corner. Circle has no polygon outline and returns nil.
func Outline(t ShapeType) []Point {
	switch t {
	case Square:
		return []Point{{0, 0}, {ShapeWidth, 0}, {ShapeWidth, ShapeHeight}, {0, ShapeHeight}}
	case Triangle:
		return []Point{{ShapeWidth / 2, 0}, {ShapeWidth, ShapeHeight}, {0, ShapeHeight}}
	case Trapezoid:
		return []Point{{10, 0}, {ShapeWidth - 10, 0}, {ShapeWidth, ShapeHeight}, {0, ShapeHeight}}
	case Circle:
		return nil
	}
	return nil
}

// Radius of the circle shape.
const Radius = ShapeWidth / 2

// Contains reports whether the footprint-relative point p is inside the
// silhouette of shape type t.
func Contains(t ShapeType, p Point) bool {
	if p.X < 0 || p.Y < 0 || p.X > ShapeWidth || p.Y > ShapeHeight {
		return false
	}
	switch t {
	case Circle:
		dx, dy := p.X-Radius, p.Y-Radius
		return dx*dx+dy*dy <= Radius*Radius
	case Square, Triangle, Trapezoid:
		return inPolygon(Outline(t), p)
	}
	return false
}

// inPolygon is the even-odd ray casting test.
func inPolygon(poly []Point, p Point) bool {
	inside := false
	for i, j := 0, len(poly)-1; i < len(poly); j, i = i, i+1 {
		a, b := poly[i], poly[j]
		if (a.Y > p.Y) != (b.Y > p.Y) &&
			p.X < (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y)+a.X {
			inside = !inside
		}
	}
	return inside
}
