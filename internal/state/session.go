package state

import (
	"log"

	"PixelPad/internal/raster"
)

// Session owns the raster buffer and drives the interaction state machine.
// Pointer events arrive as grid cell coordinates via Start/Move/End; each
// call runs to completion before the next event is processed.
type Session struct {
	State  *EditorState
	Buffer *raster.Buffer

	// OnCommit, when set, is invoked after every committed change to the
	// artwork: stroke end, fill, resize, import, undo, redo.
	OnCommit func(*Snapshot)

	lastX, lastY int
}

// NewSession creates a session with a transparent buffer matching the state's
// grid, and records the initial buffer as the permanent history baseline.
func NewSession(s *EditorState) *Session {
	sess := &Session{
		State:  s,
		Buffer: raster.NewBuffer(s.Width, s.Height),
	}
	s.SaveHistory(NewSnapshot(sess.Buffer))
	return sess
}

// Start begins an interaction at the given cell. Out-of-bounds coordinates
// are ignored entirely.
func (s *Session) Start(x, y int) {
	if !s.Buffer.InBounds(x, y) {
		return
	}
	st := s.State
	switch st.CurrentTool {
	case ToolPencil:
		st.IsDrawing = true
		s.Buffer.Stamp(x, y, st.BrushSize, raster.ModePaint, st.CurrentColor)
		s.lastX, s.lastY = x, y
		st.NotifyChanged()
	case ToolEraser:
		st.IsDrawing = true
		s.Buffer.Stamp(x, y, st.BrushSize, raster.ModeErase, st.CurrentColor)
		s.lastX, s.lastY = x, y
		st.NotifyChanged()
	case ToolFill:
		st.IsDrawing = true
		s.Buffer.FloodFill(x, y, st.CurrentColor)
		st.NotifyChanged()
	case ToolEyedropper:
		// Sampling consumes no history slot and never enters the
		// drawing state.
		if c, ok := s.Buffer.SampleColor(x, y); ok {
			st.SetColor(c)
		}
	case ToolHand:
		st.IsPanning = true
		st.NotifyChanged()
	}
}

// Move continues a pencil/eraser stroke to the given cell, rasterizing a
// gap-free line from the last recorded point. Other tools ignore drag.
func (s *Session) Move(x, y int) {
	st := s.State
	if !st.IsDrawing {
		return
	}
	switch st.CurrentTool {
	case ToolPencil:
		s.Buffer.StampLine(s.lastX, s.lastY, x, y, st.BrushSize, raster.ModePaint, st.CurrentColor)
	case ToolEraser:
		s.Buffer.StampLine(s.lastX, s.lastY, x, y, st.BrushSize, raster.ModeErase, st.CurrentColor)
	default:
		return
	}
	s.lastX, s.lastY = x, y
	st.NotifyChanged()
}

// End finalizes the current interaction. A finished stroke commits one
// history snapshot; duplicate End events are no-ops.
func (s *Session) End() bool {
	st := s.State
	if st.IsPanning {
		st.IsPanning = false
		st.NotifyChanged()
	}
	if !st.IsDrawing {
		return false
	}
	st.IsDrawing = false
	snap := NewSnapshot(s.Buffer)
	st.SaveHistory(snap)
	st.NotifyChanged()
	if s.OnCommit != nil {
		s.OnCommit(snap)
	}
	return true
}

// Undo restores the previous snapshot into the buffer (resizing the grid to
// match) and returns it, or nil when at the baseline.
func (s *Session) Undo() *Snapshot {
	snap := s.State.Undo()
	if snap == nil {
		return nil
	}
	s.restore(snap)
	return snap
}

// Redo re-applies the most recently undone snapshot, or returns nil.
func (s *Session) Redo() *Snapshot {
	snap := s.State.Redo()
	if snap == nil {
		return nil
	}
	s.restore(snap)
	return snap
}

func (s *Session) restore(snap *Snapshot) {
	snap.Apply(s.Buffer)
	s.State.Width = snap.Width
	s.State.Height = snap.Height
	s.State.NotifyChanged()
	if s.OnCommit != nil {
		s.OnCommit(snap)
	}
}

// ResizeGrid changes the grid dimensions, preserving overlapping content,
// and commits the result as a history snapshot.
func (s *Session) ResizeGrid(width, height int) bool {
	if width < 1 || height < 1 || width > raster.MaxDim || height > raster.MaxDim {
		log.Printf("rejected grid resize to %dx%d (max %d)", width, height, raster.MaxDim)
		return false
	}
	s.Buffer.Resize(width, height)
	s.State.Width = width
	s.State.Height = height
	snap := NewSnapshot(s.Buffer)
	s.State.SaveHistory(snap)
	s.State.NotifyChanged()
	if s.OnCommit != nil {
		s.OnCommit(snap)
	}
	return true
}

// LoadImage replaces the artwork with imported pixel data and commits it.
// Oversized imports are rejected with no state change.
func (s *Session) LoadImage(width, height int, pix []uint8) bool {
	if width < 1 || height < 1 || width > raster.MaxDim || height > raster.MaxDim {
		log.Printf("rejected import %dx%d (max %d)", width, height, raster.MaxDim)
		return false
	}
	s.Buffer.Load(width, height, pix)
	s.State.Width = width
	s.State.Height = height
	snap := NewSnapshot(s.Buffer)
	s.State.SaveHistory(snap)
	s.State.NotifyChanged()
	if s.OnCommit != nil {
		s.OnCommit(snap)
	}
	return true
}
