package ui

import (
	"image/color"
	"log"

	"ShapeBoard/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// CanvasView shows the shapes of a board and receives drops from the
// sidebar. Double-tapping a shape deletes it.
type CanvasView struct {
	widget.BaseWidget
	board *state.Board

	// OnChanged is called after every change the view makes to the board.
	OnChanged func()
}

var _ fyne.Widget = (*CanvasView)(nil)

func NewCanvasView(board *state.Board) *CanvasView {
	v := &CanvasView{board: board}
	v.ExtendBaseWidget(v)
	return v
}

// DropAt places a shape where a drag was released. abs is an absolute
// window position; drops outside the canvas are ignored.
func (v *CanvasView) DropAt(abs fyne.Position, t state.ShapeType, hex string) bool {
	origin := fyne.CurrentApp().Driver().AbsolutePositionForObject(v)
	local := abs.Subtract(origin)
	size := v.Size()
	if local.X < 0 || local.Y < 0 || local.X > size.Width || local.Y > size.Height {
		return false
	}
	return v.PlaceAt(local, t, hex)
}

// PlaceAt places a shape centered on a canvas-local position.
func (v *CanvasView) PlaceAt(local fyne.Position, t state.ShapeType, hex string) bool {
	size := v.Size()
	_, ok := v.board.Place(state.Drop{
		Type:         t,
		Color:        hex,
		X:            float64(local.X),
		Y:            float64(local.Y),
		CanvasWidth:  float64(size.Width),
		CanvasHeight: float64(size.Height),
	})
	if ok {
		v.changed()
	}
	return ok
}

// Reload redraws the view after the board was changed elsewhere, e.g. by
// an import.
func (v *CanvasView) Reload() {
	v.changed()
}

func (v *CanvasView) remove(id int64) {
	if v.board.Remove(id) {
		v.changed()
	}
}

func (v *CanvasView) changed() {
	v.Refresh()
	if v.OnChanged != nil {
		v.OnChanged()
	}
}

func (v *CanvasView) CreateRenderer() fyne.WidgetRenderer {
	r := &canvasRenderer{
		view:       v,
		background: canvas.NewRectangle(color.White),
		placeholder: container.NewVBox(
			widget.NewLabel("Drag shapes here to start drawing"),
			widget.NewLabel("Double-click shapes to remove them"),
		),
	}
	r.rebuild()
	return r
}

type canvasRenderer struct {
	view        *CanvasView
	background  *canvas.Rectangle
	placeholder *fyne.Container
	items       []*shapeItem
}

func (r *canvasRenderer) rebuild() {
	doc := r.view.board.Document()
	r.items = make([]*shapeItem, 0, len(doc.Shapes))
	for _, s := range doc.Shapes {
		item := newShapeItem(s, r.view.remove)
		item.Resize(fyne.NewSize(state.ShapeWidth, state.ShapeHeight))
		item.Move(fyne.NewPos(float32(s.X), float32(s.Y)))
		r.items = append(r.items, item)
	}
	r.placeholder.Hidden = len(doc.Shapes) > 0
}

func (r *canvasRenderer) Objects() []fyne.CanvasObject {
	objects := make([]fyne.CanvasObject, 0, len(r.items)+2)
	objects = append(objects, r.background, r.placeholder)
	for _, item := range r.items {
		objects = append(objects, item)
	}
	return objects
}

func (r *canvasRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
	ph := r.placeholder.MinSize()
	r.placeholder.Resize(ph)
	r.placeholder.Move(fyne.NewPos((size.Width-ph.Width)/2, (size.Height-ph.Height)/2))
}

func (r *canvasRenderer) MinSize() fyne.Size {
	return fyne.NewSize(300, 300)
}

func (r *canvasRenderer) Refresh() {
	r.rebuild()
	r.Layout(r.view.Size())
	canvas.Refresh(r.view)
}

func (r *canvasRenderer) Destroy() {}

// shapeItem is one placed shape on the canvas.
type shapeItem struct {
	widget.BaseWidget
	shape    state.Shape
	onRemove func(id int64)
}

var _ fyne.DoubleTappable = (*shapeItem)(nil)

func newShapeItem(s state.Shape, onRemove func(int64)) *shapeItem {
	item := &shapeItem{shape: s, onRemove: onRemove}
	item.ExtendBaseWidget(item)
	return item
}

func (it *shapeItem) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(newShapeRaster(it.shape.Type, func() string { return it.shape.Color }))
}

func (it *shapeItem) DoubleTapped(*fyne.PointEvent) {
	log.Printf("[UI] Delete gesture on shape %d", it.shape.ID)
	if it.onRemove != nil {
		it.onRemove(it.shape.ID)
	}
}

var unknownColor = color.NRGBA{R: 0x88, G: 0x88, B: 0x88, A: 0xff}

// shapeColor resolves a stored color string, falling back to gray for
// values that did not come from the palette.
func shapeColor(hex string) color.Color {
	if c, ok := state.ParseColor(hex); ok {
		return c
	}
	return unknownColor
}

// newShapeRaster draws the silhouette of t scaled to whatever size the
// raster is given.
func newShapeRaster(t state.ShapeType, hex func() string) *canvas.Raster {
	return canvas.NewRasterWithPixels(func(x, y, w, h int) color.Color {
		if w == 0 || h == 0 {
			return color.Transparent
		}
		p := state.Point{
			X: (float64(x) + 0.5) * state.ShapeWidth / float64(w),
			Y: (float64(y) + 0.5) * state.ShapeHeight / float64(h),
		}
		if state.Contains(t, p) {
			return shapeColor(hex())
		}
		return color.Transparent
	})
}
