package ui

import (
	"image"
	"image/color"
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"PixelPad/internal/state"
)

// CanvasWidget is the viewport renderer: it presents the raster buffer over
// a two-color checkerboard, scaled by the current zoom with nearest-neighbor
// sampling and offset by the pan, and feeds pointer events into the
// interaction session.
type CanvasWidget struct {
	widget.BaseWidget
	session *state.Session

	checkerLight color.NRGBA
	checkerDark  color.NRGBA

	// surface carries one texel per grid cell; the display object scales
	// it to Width*Zoom x Height*Zoom on screen without smoothing, so the
	// result is pixel-identical to rendering at full surface resolution.
	surface *image.NRGBA
	display *canvas.Image

	viewportSize fyne.Size
}

var _ fyne.Widget = (*CanvasWidget)(nil)
var _ fyne.Draggable = (*CanvasWidget)(nil)
var _ desktop.Mouseable = (*CanvasWidget)(nil)

// NewCanvasWidget creates the canvas for a session. The checkerboard pair is
// injected by the caller; the widget subscribes to the editor state and
// re-renders on every mutation.
func NewCanvasWidget(sess *state.Session, checkerLight, checkerDark color.NRGBA) *CanvasWidget {
	c := &CanvasWidget{
		session:      sess,
		checkerLight: checkerLight,
		checkerDark:  checkerDark,
	}
	c.display = canvas.NewImageFromImage(image.NewNRGBA(image.Rect(0, 0, 1, 1)))
	c.display.ScaleMode = canvas.ImageScalePixels
	c.display.FillMode = canvas.ImageFillStretch
	c.ExtendBaseWidget(c)

	sess.State.Subscribe(func(*state.EditorState) {
		c.renderSurface()
		c.Refresh()
	})
	c.renderSurface()
	return c
}

// renderSurface composites the checkerboard and the logical Width x Height
// region of the buffer. The backing image is reallocated only when the grid
// dimensions change; content from outside the logical region can never
// appear.
func (c *CanvasWidget) renderSurface() {
	st := c.session.State
	buf := c.session.Buffer

	if c.surface == nil || c.surface.Rect.Dx() != st.Width || c.surface.Rect.Dy() != st.Height {
		c.surface = image.NewNRGBA(image.Rect(0, 0, st.Width, st.Height))
		c.display.Image = c.surface
	}

	for y := 0; y < st.Height; y++ {
		for x := 0; x < st.Width; x++ {
			bg := c.checkerLight
			if (x+y)%2 == 1 {
				bg = c.checkerDark
			}
			out := bg
			if buf.InBounds(x, y) {
				out = blendOver(buf.At(x, y), bg)
			}
			i := c.surface.PixOffset(x, y)
			c.surface.Pix[i] = out.R
			c.surface.Pix[i+1] = out.G
			c.surface.Pix[i+2] = out.B
			c.surface.Pix[i+3] = 255
		}
	}
}

func floorf(v float32) float32 {
	return float32(math.Floor(float64(v)))
}

// blendOver composites src over an opaque background.
func blendOver(src, bg color.NRGBA) color.NRGBA {
	if src.A == 255 {
		return src
	}
	if src.A == 0 {
		return bg
	}
	a := uint32(src.A)
	inv := 255 - a
	return color.NRGBA{
		R: uint8((uint32(src.R)*a + uint32(bg.R)*inv) / 255),
		G: uint8((uint32(src.G)*a + uint32(bg.G)*inv) / 255),
		B: uint8((uint32(src.B)*a + uint32(bg.B)*inv) / 255),
		A: 255,
	}
}

// SetCheckerColors swaps the checkerboard pair and re-renders.
func (c *CanvasWidget) SetCheckerColors(light, dark color.NRGBA) {
	c.checkerLight = light
	c.checkerDark = dark
	c.renderSurface()
	c.Refresh()
}

// FitToViewport recomputes zoom and pan so the whole grid is centered and
// maximally visible.
func (c *CanvasWidget) FitToViewport() {
	st := c.session.State
	size := c.viewportSize
	if size.Width <= 0 || size.Height <= 0 {
		return
	}
	zoom, panX, panY := state.CalculateFit(size.Width, size.Height, st.Width, st.Height)
	st.SetView(zoom, panX, panY)
}

// CenterInViewport re-centers the grid without changing zoom.
func (c *CanvasWidget) CenterInViewport() {
	st := c.session.State
	size := c.viewportSize
	if size.Width <= 0 || size.Height <= 0 {
		return
	}
	panX, panY := state.CenterPan(size.Width, size.Height, st.Width, st.Height, st.Zoom)
	st.SetPan(panX, panY)
}

// cellAt converts a widget-local pointer position to grid cell coordinates.
func (c *CanvasWidget) cellAt(pos fyne.Position) (int, int) {
	st := c.session.State
	originX := floorf(st.PanX)
	originY := floorf(st.PanY)
	surfaceW := float32(st.Width * st.Zoom)
	surfaceH := float32(st.Height * st.Zoom)
	return state.ScreenToCell(pos.X, pos.Y, originX, originY, surfaceW, surfaceH, st.Width, st.Height)
}

func (c *CanvasWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	x, y := c.cellAt(e.Position)
	c.session.Start(x, y)
}

func (c *CanvasWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	c.session.End()
}

func (c *CanvasWidget) Dragged(e *fyne.DragEvent) {
	st := c.session.State
	if st.IsPanning || st.CurrentTool == state.ToolHand {
		st.SetPan(st.PanX+e.Dragged.DX, st.PanY+e.Dragged.DY)
		return
	}
	x, y := c.cellAt(e.Position)
	c.session.Move(x, y)
}

func (c *CanvasWidget) DragEnd() {
	c.session.End()
}

// Scrolled zooms with the mouse wheel, one pixel-per-cell step at a time,
// then re-centers so zooming keeps the grid in view.
func (c *CanvasWidget) Scrolled(e *fyne.ScrollEvent) {
	st := c.session.State
	zoom := st.Zoom
	if e.Scrolled.DY > 0 {
		zoom++
	} else if e.Scrolled.DY < 0 {
		zoom--
	}
	if zoom == st.Zoom {
		return
	}
	if zoom < state.MinZoom || zoom > state.MaxZoom {
		return
	}
	if c.viewportSize.Width > 0 {
		panX, panY := state.CenterPan(c.viewportSize.Width, c.viewportSize.Height, st.Width, st.Height, zoom)
		st.SetView(zoom, panX, panY)
	} else {
		st.SetZoom(zoom)
	}
}

func (c *CanvasWidget) CreateRenderer() fyne.WidgetRenderer {
	bg := canvas.NewRectangle(color.NRGBA{R: 40, G: 40, B: 40, A: 255})
	return &canvasWidgetRenderer{widget: c, background: bg}
}

type canvasWidgetRenderer struct {
	widget     *CanvasWidget
	background *canvas.Rectangle
}

func (r *canvasWidgetRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)

	first := r.widget.viewportSize.Width <= 0
	resized := size != r.widget.viewportSize
	r.widget.viewportSize = size
	if first {
		r.widget.FitToViewport()
	} else if resized {
		r.widget.CenterInViewport()
	}
	r.placeDisplay()
}

// placeDisplay sizes the display object to Width*Zoom x Height*Zoom and
// applies the pan floored to integer pixels, avoiding sub-pixel seams.
func (r *canvasWidgetRenderer) placeDisplay() {
	st := r.widget.session.State
	d := r.widget.display
	d.Resize(fyne.NewSize(float32(st.Width*st.Zoom), float32(st.Height*st.Zoom)))
	d.Move(fyne.NewPos(floorf(st.PanX), floorf(st.PanY)))
}

func (r *canvasWidgetRenderer) MinSize() fyne.Size {
	return fyne.NewSize(300, 300)
}

func (r *canvasWidgetRenderer) Refresh() {
	r.placeDisplay()
	r.widget.display.Refresh()
	canvas.Refresh(r.widget)
}

func (r *canvasWidgetRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.background, r.widget.display}
}

func (r *canvasWidgetRenderer) Destroy() {}

func (c *CanvasWidget) MouseIn(*desktop.MouseEvent) {}
func (c *CanvasWidget) MouseOut()                   {}
func (c *CanvasWidget) MouseMoved(*desktop.MouseEvent) {}
