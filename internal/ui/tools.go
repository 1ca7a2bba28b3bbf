package ui

import (
	"image/color"
	"strings"

	"ShapeBoard/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// --- Color swatches ---
type colorSwatch struct {
	widget.BaseWidget
	Hex      string
	selected bool
	OnTapped func(hex string)
}

func newColorSwatch(hex string, tapped func(string)) *colorSwatch {
	s := &colorSwatch{Hex: hex, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(shapeColor(s.Hex))
	rect.SetMinSize(fyne.NewSize(32, 32))
	rect.CornerRadius = 16
	rect.StrokeWidth = 3
	r := &swatchRenderer{swatch: s, rect: rect}
	r.applySelection()
	return r
}

type swatchRenderer struct {
	swatch *colorSwatch
	rect   *canvas.Rectangle
}

func (r *swatchRenderer) applySelection() {
	if r.swatch.selected {
		r.rect.StrokeColor = color.Black
	} else {
		r.rect.StrokeColor = color.Transparent
	}
}

func (r *swatchRenderer) Layout(size fyne.Size) { r.rect.Resize(size) }
func (r *swatchRenderer) MinSize() fyne.Size { return r.rect.MinSize() }
func (r *swatchRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.rect}
}
func (r *swatchRenderer) Destroy() {}
func (r *swatchRenderer) Refresh() {
	r.applySelection()
	r.rect.Refresh()
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Hex)
	}
}

// --- Draggable shape sources ---

// shapeSource is a sidebar entry that can be dragged onto the canvas.
type shapeSource struct {
	widget.BaseWidget
	shapeType state.ShapeType
	color     func() string
	onDrop    func(abs fyne.Position, t state.ShapeType, hex string)

	dragging bool
	last     fyne.Position
}

var _ fyne.Draggable = (*shapeSource)(nil)

func newShapeSource(t state.ShapeType, color func() string, onDrop func(fyne.Position, state.ShapeType, string)) *shapeSource {
	s := &shapeSource{shapeType: t, color: color, onDrop: onDrop}
	s.ExtendBaseWidget(s)
	return s
}

func (s *shapeSource) CreateRenderer() fyne.WidgetRenderer {
	icon := newShapeRaster(s.shapeType, s.color)
	icon.SetMinSize(fyne.NewSize(30, 30))
	return widget.NewSimpleRenderer(container.NewHBox(icon, widget.NewLabel(title(s.shapeType))))
}

func (s *shapeSource) Dragged(e *fyne.DragEvent) {
	s.dragging = true
	s.last = e.AbsolutePosition
}

func (s *shapeSource) DragEnd() {
	if !s.dragging {
		return
	}
	s.dragging = false
	if s.onDrop != nil {
		s.onDrop(s.last, s.shapeType, s.color())
	}
}

func title(t state.ShapeType) string {
	name := string(t)
	if name == "" {
		return name
	}
	return strings.ToUpper(name[:1]) + name[1:]
}

// --- Sidebar ---

// Toolbox is the sidebar: the palette and one draggable source per shape.
type Toolbox struct {
	selected string
	swatches []*colorSwatch
	sources  []*shapeSource
}

// NewToolbox builds the sidebar. onDrop receives every completed drag.
func NewToolbox(onDrop func(abs fyne.Position, t state.ShapeType, hex string)) *Toolbox {
	tb := &Toolbox{selected: state.DefaultColor}
	for _, hex := range state.Palette {
		tb.swatches = append(tb.swatches, newColorSwatch(hex, tb.Select))
	}
	for _, t := range state.ShapeTypes {
		tb.sources = append(tb.sources, newShapeSource(t, tb.Selected, onDrop))
	}
	tb.refreshSwatches()
	return tb
}

// Selected returns the color new shapes get.
func (tb *Toolbox) Selected() string { return tb.selected }

// Select changes the color used for the next drops.
func (tb *Toolbox) Select(hex string) {
	tb.selected = hex
	tb.refreshSwatches()
	for _, s := range tb.sources {
		s.Refresh()
	}
}

func (tb *Toolbox) refreshSwatches() {
	for _, s := range tb.swatches {
		s.selected = s.Hex == tb.selected
		s.Refresh()
	}
}

// Content lays the toolbox out as a column.
func (tb *Toolbox) Content() fyne.CanvasObject {
	colors := container.NewHBox()
	for _, s := range tb.swatches {
		colors.Add(s)
	}
	shapes := container.NewVBox()
	for _, s := range tb.sources {
		shapes.Add(s)
	}
	return container.NewVBox(
		widget.NewLabelWithStyle("Shapes", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabel("Colors"),
		colors,
		widget.NewSeparator(),
		shapes,
		widget.NewSeparator(),
		widget.NewLabel("Double-tap to delete shapes"),
	)
}
