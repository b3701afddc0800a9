package state

import (
	"image/color"
	"log"

	"PixelPad/internal/raster"
)

// Tool identifies the active editing tool.
type Tool int

const (
	ToolPencil Tool = iota
	ToolEraser
	ToolFill
	ToolEyedropper
	ToolHand
)

func (t Tool) String() string {
	switch t {
	case ToolPencil:
		return "pencil"
	case ToolEraser:
		return "eraser"
	case ToolFill:
		return "fill"
	case ToolEyedropper:
		return "eyedropper"
	case ToolHand:
		return "hand"
	}
	return "unknown"
}

const (
	MinZoom      = 1
	MaxZoom      = 100
	MinBrushSize = 1
	MaxBrushSize = 16
)

// Subscriber is notified with the full current state after every mutation.
type Subscriber func(*EditorState)

// EditorState is the single source of truth for the editing session. One
// instance is created at startup and passed explicitly to every consumer;
// every mutation fans out synchronously to all subscribers in registration
// order.
type EditorState struct {
	Width  int
	Height int

	Zoom       int
	PanX, PanY float32

	CurrentColor color.NRGBA
	CurrentTool  Tool
	BrushSize    int

	IsDrawing bool
	IsPanning bool

	history   []*Snapshot
	redoStack []*Snapshot

	subscribers []subscriberEntry
	nextSubID   int
}

type subscriberEntry struct {
	id int
	fn Subscriber
}

// NewEditorState creates the editor state for a width x height grid.
func NewEditorState(width, height int) *EditorState {
	return &EditorState{
		Width:        width,
		Height:       height,
		Zoom:         MinZoom,
		CurrentColor: color.NRGBA{R: 0, G: 0, B: 0, A: 255},
		CurrentTool:  ToolPencil,
		BrushSize:    1,
	}
}

// Subscribe registers a callback and returns its unsubscribe function.
// (Un)subscribing must not happen reentrantly inside a notification.
func (s *EditorState) Subscribe(fn Subscriber) func() {
	s.nextSubID++
	id := s.nextSubID
	s.subscribers = append(s.subscribers, subscriberEntry{id: id, fn: fn})
	return func() {
		for i, e := range s.subscribers {
			if e.id == id {
				s.subscribers = append(s.subscribers[:i], s.subscribers[i+1:]...)
				return
			}
		}
	}
}

// NotifyChanged fans the current state out to every subscriber. Callers that
// mutate state outside the setters (e.g. after editing the raster buffer)
// invoke this once per mutation.
func (s *EditorState) NotifyChanged() {
	for _, e := range s.subscribers {
		e.fn(s)
	}
}

// SetTool switches the active tool.
func (s *EditorState) SetTool(t Tool) {
	s.CurrentTool = t
	s.NotifyChanged()
}

// SetColor sets the pencil/fill color.
func (s *EditorState) SetColor(c color.NRGBA) {
	s.CurrentColor = c
	s.NotifyChanged()
}

// SetBrushSize sets the pencil/eraser brush size, clamped to the valid range.
func (s *EditorState) SetBrushSize(size int) {
	if size < MinBrushSize {
		size = MinBrushSize
	}
	if size > MaxBrushSize {
		size = MaxBrushSize
	}
	s.BrushSize = size
	s.NotifyChanged()
}

// SetZoom sets the pixels-per-cell scale, clamped to [MinZoom, MaxZoom].
func (s *EditorState) SetZoom(zoom int) {
	if zoom < MinZoom {
		zoom = MinZoom
	}
	if zoom > MaxZoom {
		zoom = MaxZoom
	}
	s.Zoom = zoom
	s.NotifyChanged()
}

// SetPan sets the grid-origin offset in viewport space.
func (s *EditorState) SetPan(x, y float32) {
	s.PanX = x
	s.PanY = y
	s.NotifyChanged()
}

// SetView applies a zoom and pan together in one notification.
func (s *EditorState) SetView(zoom int, panX, panY float32) {
	if zoom < MinZoom {
		zoom = MinZoom
	}
	if zoom > MaxZoom {
		zoom = MaxZoom
	}
	s.Zoom = zoom
	s.PanX = panX
	s.PanY = panY
	s.NotifyChanged()
}

// SetGridSize changes the grid dimensions. Values outside 1..raster.MaxDim
// are rejected and logged.
func (s *EditorState) SetGridSize(width, height int) bool {
	if width < 1 || height < 1 || width > raster.MaxDim || height > raster.MaxDim {
		log.Printf("rejected grid size %dx%d (max %d)", width, height, raster.MaxDim)
		return false
	}
	s.Width = width
	s.Height = height
	s.NotifyChanged()
	return true
}
