package ui

import (
	"fmt"
	"strings"

	"ShapeBoard/internal/export"
	"ShapeBoard/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// RunApp opens the drawing window on board and blocks until it is closed.
// status is shown in the footer, e.g. the address of a running server.
func RunApp(board *state.Board, status string) {
	myApp := app.NewWithID("io.shapeboard.desktop")
	myWindow := myApp.NewWindow("Shape Board")
	myWindow.Resize(fyne.NewSize(1024, 768))
	myWindow.SetContent(NewContent(myWindow, board, status))
	myWindow.ShowAndRun()
}

// NewContent assembles header, sidebar, canvas and footer around a board.
func NewContent(win fyne.Window, board *state.Board, status string) fyne.CanvasObject {
	view := NewCanvasView(board)
	toolbox := NewToolbox(func(abs fyne.Position, t state.ShapeType, hex string) {
		view.DropAt(abs, t, hex)
	})

	if status == "" {
		status = "Ready"
	}
	statusBar := widget.NewLabel(status)
	setStatus := func(text string) { statusBar.SetText(text) }

	counts := widget.NewLabel(FormatCounts(board.Counts()))
	view.OnChanged = func() {
		counts.SetText(FormatCounts(board.Counts()))
	}

	name := widget.NewEntry()
	name.SetText(board.Name())
	name.OnChanged = board.Rename

	importer := export.NewImporter(board)
	buttons := container.NewHBox(
		widget.NewButton("Import", func() {
			openImport(win, importer, func(doc state.Document) {
				name.SetText(doc.Name)
				view.Reload()
			}, setStatus)
		}),
		widget.NewButton("Export", func() { saveAs(win, board, ".json", renderJSON, setStatus) }),
		widget.NewButton("PDF", func() { saveAs(win, board, ".pdf", export.WritePDF, setStatus) }),
		widget.NewButton("SVG", func() { saveAs(win, board, ".svg", export.WriteSVG, setStatus) }),
	)

	header := container.NewBorder(nil, nil, nil, buttons, name)
	footer := container.NewHBox(counts, layout.NewSpacer(), statusBar)
	return container.NewBorder(header, footer, toolbox.Content(), nil, view)
}

var countLabels = map[state.ShapeType]string{
	state.Square:    "Squares",
	state.Circle:    "Circles",
	state.Triangle:  "Triangles",
	state.Trapezoid: "Trapezoids",
}

// FormatCounts renders the footer tally, one entry per shape type.
func FormatCounts(counts map[state.ShapeType]int) string {
	parts := make([]string, 0, len(state.ShapeTypes))
	for _, t := range state.ShapeTypes {
		parts = append(parts, fmt.Sprintf("%d %s", counts[t], countLabels[t]))
	}
	return strings.Join(parts, "   ")
}
