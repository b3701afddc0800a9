package ui

import (
	"image/color"
	"log"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"PixelPad/internal/prefs"
	"PixelPad/internal/state"
)

// --- Custom Widget for Color Swatches ---
type colorSwatch struct {
	widget.BaseWidget
	Color    color.NRGBA
	OnTapped func(color.NRGBA)
}

func newColorSwatch(c color.NRGBA, tapped func(color.NRGBA)) *colorSwatch {
	s := &colorSwatch{Color: c, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(s.Color)
	rect.SetMinSize(fyne.NewSize(24, 24))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(rect, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Color)
	}
}

var paletteColors = []color.NRGBA{
	{R: 0, G: 0, B: 0, A: 255},
	{R: 255, G: 255, B: 255, A: 255},
	{R: 228, G: 59, B: 68, A: 255},
	{R: 254, G: 174, B: 52, A: 255},
	{R: 254, G: 231, B: 97, A: 255},
	{R: 99, G: 199, B: 77, A: 255},
	{R: 0, G: 149, B: 233, A: 255},
	{R: 104, G: 56, B: 108, A: 255},
}

// NewToolbar builds the tool strip: tools, undo/redo, view controls, color
// palette with hex entry, and the brush size slider. Widgets that mirror
// state rebuild themselves from the subscribe channel.
func NewToolbar(win fyne.Window, board *CanvasWidget, p *prefs.Prefs) fyne.CanvasObject {
	st := board.session.State

	toolButtons := map[state.Tool]*widget.Button{}
	newToolButton := func(tool state.Tool, icon fyne.Resource) *widget.Button {
		btn := widget.NewButtonWithIcon(tool.String(), icon, func() {
			st.SetTool(tool)
		})
		toolButtons[tool] = btn
		return btn
	}

	pencil := newToolButton(state.ToolPencil, theme.DocumentCreateIcon())
	eraser := newToolButton(state.ToolEraser, theme.ContentClearIcon())
	fill := newToolButton(state.ToolFill, theme.ColorPaletteIcon())
	eyedropper := newToolButton(state.ToolEyedropper, theme.SearchIcon())
	hand := newToolButton(state.ToolHand, theme.MoveUpIcon())

	undoBtn := widget.NewButtonWithIcon("", theme.NavigateBackIcon(), func() {
		if board.session.Undo() == nil {
			log.Println("undo: at baseline")
		}
	})
	redoBtn := widget.NewButtonWithIcon("", theme.NavigateNextIcon(), func() {
		if board.session.Redo() == nil {
			log.Println("redo: nothing to redo")
		}
	})

	fitBtn := widget.NewButtonWithIcon("", theme.ViewFullScreenIcon(), func() {
		board.FitToViewport()
	})

	resizeBtn := widget.NewButtonWithIcon("", theme.ViewRestoreIcon(), func() {
		showResizeDialog(win, board)
	})

	// Hex entry rejects invalid text; the last valid color is retained.
	hexEntry := widget.NewEntry()
	hexEntry.SetText(prefs.FormatHexColor(st.CurrentColor))
	hexEntry.OnSubmitted = func(s string) {
		c, err := prefs.ParseHexColor(s)
		if err != nil {
			log.Printf("color entry: %v", err)
			hexEntry.SetText(prefs.FormatHexColor(st.CurrentColor))
			return
		}
		st.SetColor(c)
	}

	swatches := make([]fyne.CanvasObject, 0, len(paletteColors))
	for _, c := range paletteColors {
		swatches = append(swatches, newColorSwatch(c, func(c color.NRGBA) {
			st.SetColor(c)
		}))
	}
	colorBox := container.NewHBox(swatches...)

	brushSlider := widget.NewSlider(state.MinBrushSize, state.MaxBrushSize)
	brushSlider.Step = 1
	brushSlider.SetValue(float64(st.BrushSize))
	brushSlider.OnChanged = func(val float64) {
		st.SetBrushSize(int(val))
		p.BrushSize = st.BrushSize
	}
	sliderBox := container.New(layout.NewGridWrapLayout(fyne.NewSize(120, 35)), brushSlider)
	brushLabel := widget.NewLabel(strconv.Itoa(st.BrushSize))

	st.Subscribe(func(s *state.EditorState) {
		for tool, btn := range toolButtons {
			if tool == s.CurrentTool {
				btn.Importance = widget.HighImportance
			} else {
				btn.Importance = widget.MediumImportance
			}
			btn.Refresh()
		}
		hexEntry.SetText(prefs.FormatHexColor(s.CurrentColor))
		brushLabel.SetText(strconv.Itoa(s.BrushSize))
	})

	return container.NewHBox(
		pencil, eraser, fill, eyedropper, hand,
		widget.NewSeparator(),
		undoBtn, redoBtn,
		widget.NewSeparator(),
		fitBtn, resizeBtn,
		widget.NewSeparator(),
		colorBox,
		hexEntry,
		widget.NewSeparator(),
		widget.NewLabel("Brush:"),
		sliderBox,
		brushLabel,
		layout.NewSpacer(),
	)
}

func showResizeDialog(win fyne.Window, board *CanvasWidget) {
	st := board.session.State
	widthEntry := widget.NewEntry()
	widthEntry.SetText(strconv.Itoa(st.Width))
	heightEntry := widget.NewEntry()
	heightEntry.SetText(strconv.Itoa(st.Height))

	items := []*widget.FormItem{
		widget.NewFormItem("Width", widthEntry),
		widget.NewFormItem("Height", heightEntry),
	}
	dialog.ShowForm("Resize Canvas", "Resize", "Cancel", items, func(ok bool) {
		if !ok {
			return
		}
		w, errW := strconv.Atoi(widthEntry.Text)
		h, errH := strconv.Atoi(heightEntry.Text)
		if errW != nil || errH != nil || !board.session.ResizeGrid(w, h) {
			dialog.ShowInformation("Resize Canvas",
				"Dimensions must be between 1 and 320.", win)
			return
		}
		board.FitToViewport()
	}, win)
}
