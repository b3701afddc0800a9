package ui

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"

	"PixelPad/internal/export"
)

// NewFileMenu builds the File menu: PNG import/export, scaled PNG export,
// and PDF export. All encoding lives in internal/export; this layer only
// runs the dialogs and surfaces errors.
func NewFileMenu(win fyne.Window, board *CanvasWidget) *fyne.Menu {
	return fyne.NewMenu("File",
		fyne.NewMenuItem("Open PNG...", func() { openPNG(win, board) }),
		fyne.NewMenuItem("Export PNG...", func() { savePNG(win, board, 1) }),
		fyne.NewMenuItem("Export PNG x8...", func() { savePNG(win, board, 8) }),
		fyne.NewMenuItem("Export PDF...", func() { savePDF(win, board) }),
	)
}

func openPNG(win fyne.Window, board *CanvasWidget) {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer func() {
			if err := reader.Close(); err != nil {
				log.Printf("error closing reader: %v", err)
			}
		}()

		w, h, pix, err := export.DecodePNG(reader)
		if err != nil {
			dialog.ShowError(err, win)
			return
		}
		if !board.session.LoadImage(w, h, pix) {
			dialog.ShowError(fmt.Errorf("image is too large for the canvas"), win)
			return
		}
		board.FitToViewport()
		log.Printf("imported %dx%d image", w, h)
	}, win)
	fd.SetFilter(storage.NewExtensionFileFilter([]string{".png"}))
	fd.Show()
}

func savePNG(win fyne.Window, board *CanvasWidget, scale int) {
	fd := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		defer func() {
			if err := writer.Close(); err != nil {
				log.Printf("error closing writer: %v", err)
			}
		}()

		if err := export.EncodePNGScaled(writer, board.session.Buffer, scale); err != nil {
			dialog.ShowError(err, win)
			return
		}
		st := board.session.State
		log.Printf("exported %dx%d png at x%d", st.Width, st.Height, scale)
	}, win)
	fd.SetFileName("artwork.png")
	fd.SetFilter(storage.NewExtensionFileFilter([]string{".png"}))
	fd.Show()
}

func savePDF(win fyne.Window, board *CanvasWidget) {
	fd := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		path := writer.URI().Path()
		if err := writer.Close(); err != nil {
			log.Printf("error closing writer: %v", err)
		}

		if err := export.ExportPDF(path, board.session.Buffer); err != nil {
			dialog.ShowError(err, win)
			return
		}
		log.Printf("exported pdf to %s", path)
	}, win)
	fd.SetFileName("artwork.pdf")
	fd.SetFilter(storage.NewExtensionFileFilter([]string{".pdf"}))
	fd.Show()
}
