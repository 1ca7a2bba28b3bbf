package ui

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"

	"ShapeBoard/internal/export"
	"ShapeBoard/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
)

// renderer writes a document in one export format.
type renderer func(io.Writer, state.Document) error

func renderJSON(w io.Writer, doc state.Document) error {
	data, err := export.Serialize(doc)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// saveAs asks for a destination and writes the board's current document
// there in the format of render.
func saveAs(win fyne.Window, board *state.Board, ext string, render renderer, status func(string)) {
	doc := board.Document()
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, win)
			return
		}
		if writer == nil {
			return // cancelled
		}
		defer func() {
			if err := writer.Close(); err != nil {
				log.Printf("[UI] Error closing writer: %v", err)
			}
		}()

		var buf bytes.Buffer
		if err := render(&buf, doc); err != nil {
			log.Printf("[UI] Export failed: %v", err)
			dialog.ShowError(err, win)
			return
		}
		if _, err := buf.WriteTo(writer); err != nil {
			log.Printf("[UI] Error writing %s: %v", writer.URI(), err)
			status("Error writing file")
			return
		}
		status(fmt.Sprintf("Saved %d shapes to %s", len(doc.Shapes), writer.URI().Name()))
	}, win)
	d.SetFileName(export.Filename(doc.Name, ext))
	d.SetFilter(storage.NewExtensionFileFilter([]string{ext}))
	d.Show()
}

// openImport asks for a file and runs the import flow on it. The file is
// read off the UI goroutine; applied is called back on it once the board
// has been replaced.
func openImport(win fyne.Window, im *export.Importer, applied func(state.Document), status func(string)) {
	d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, win)
			return
		}
		if reader == nil {
			return // cancelled
		}

		f := export.File{
			Name:      reader.URI().Name(),
			MediaType: reader.URI().MimeType(),
			Open: func() (io.ReadCloser, error) {
				return io.NopCloser(reader), nil
			},
		}
		go func() {
			defer reader.Close()
			doc, err := im.Import(context.Background(), f)
			fyne.Do(func() {
				if err != nil {
					if text := export.Notice(err); text != "" {
						dialog.ShowInformation("Import", text, win)
					}
					return
				}
				applied(doc)
				status(fmt.Sprintf("Loaded %d shapes", len(doc.Shapes)))
			})
		}()
	}, win)
	d.SetFilter(storage.NewExtensionFileFilter([]string{".json"}))
	d.Show()
}
