package ui

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"PixelPad/internal/prefs"
	"PixelPad/internal/state"
)

// RunApp starts the editor window for the given session. shareLink, when
// non-empty, is shown in the status bar so viewers can be pointed at it.
func RunApp(sess *state.Session, p *prefs.Prefs, shareLink string) {
	myApp := app.New()
	myWindow := myApp.NewWindow("PixelPad")
	myWindow.Resize(fyne.NewSize(1024, 768))

	light, dark := p.CheckerColors()
	board := NewCanvasWidget(sess, light, dark)
	toolbar := NewToolbar(myWindow, board, p)

	status := widget.NewLabel("Ready")
	if shareLink != "" {
		status.SetText("Sharing at " + shareLink)
	}
	sess.State.Subscribe(func(s *state.EditorState) {
		status.SetText(statusText(s))
	})

	myWindow.SetMainMenu(fyne.NewMainMenu(NewFileMenu(myWindow, board)))
	content := container.NewBorder(toolbar, status, nil, nil, board)
	myWindow.SetContent(content)
	myWindow.ShowAndRun()
}

func statusText(s *state.EditorState) string {
	return fmt.Sprintf("%s  %s  %dx%d  zoom %d",
		s.CurrentTool, prefs.FormatHexColor(s.CurrentColor),
		s.Width, s.Height, s.Zoom)
}

// RunViewer starts the view-only window of a live share. Frames arrive as
// PNG bytes from the watch goroutine via ApplyFrame.
func RunViewer(hostAddr string, watch func(onFrame func([]byte))) {
	myApp := app.New()
	myWindow := myApp.NewWindow("PixelPad Viewer — " + hostAddr)
	myWindow.Resize(fyne.NewSize(800, 600))

	img := canvas.NewImageFromImage(image.NewNRGBA(image.Rect(0, 0, 1, 1)))
	img.ScaleMode = canvas.ImageScalePixels
	img.FillMode = canvas.ImageFillContain

	go watch(func(frame []byte) {
		decoded, _, err := image.Decode(bytes.NewReader(frame))
		if err != nil {
			log.Printf("bad frame from host: %v", err)
			return
		}
		fyne.Do(func() {
			img.Image = decoded
			img.Refresh()
		})
	})

	myWindow.SetContent(img)
	myWindow.ShowAndRun()
}
