package state

import (
	"bytes"

	"github.com/google/uuid"

	"PixelPad/internal/raster"
)

// MaxHistory bounds the undo history; the oldest snapshot is evicted when a
// new one would exceed it.
const MaxHistory = 50

// Snapshot is an immutable, self-describing copy of the raster buffer at one
// instant. The pixel bytes are private to the snapshot; nothing mutates them
// once captured.
type Snapshot struct {
	ID     string
	Width  int
	Height int
	pix    []uint8
}

// NewSnapshot captures the buffer's current contents.
func NewSnapshot(b *raster.Buffer) *Snapshot {
	pix := make([]uint8, len(b.Pix))
	copy(pix, b.Pix)
	return &Snapshot{
		ID:     uuid.NewString(),
		Width:  b.Width,
		Height: b.Height,
		pix:    pix,
	}
}

// Pixels returns a copy of the snapshot's pixel bytes.
func (s *Snapshot) Pixels() []uint8 {
	pix := make([]uint8, len(s.pix))
	copy(pix, s.pix)
	return pix
}

// Apply restores the snapshot into the buffer, resizing it to the
// snapshot's dimensions.
func (s *Snapshot) Apply(b *raster.Buffer) {
	b.Load(s.Width, s.Height, s.pix)
}

// Equal reports content equality (dimensions and pixel bytes).
func (s *Snapshot) Equal(o *Snapshot) bool {
	return s.Width == o.Width && s.Height == o.Height && bytes.Equal(s.pix, o.pix)
}

// SaveHistory pushes a snapshot onto the history stack, evicting the oldest
// entry past MaxHistory. Any new edit invalidates the redo timeline, so the
// redo stack is cleared unconditionally.
func (s *EditorState) SaveHistory(snap *Snapshot) {
	s.history = append(s.history, snap)
	if len(s.history) > MaxHistory {
		s.history = s.history[1:]
	}
	s.redoStack = nil
}

// Undo pops the current top of history onto the redo stack and returns the
// new top, which stays in history as the current state. The earliest entry
// is the permanent baseline: undo is a no-op while at most one entry exists.
func (s *EditorState) Undo() *Snapshot {
	if len(s.history) <= 1 {
		return nil
	}
	top := s.history[len(s.history)-1]
	s.history = s.history[:len(s.history)-1]
	s.redoStack = append(s.redoStack, top)
	return s.history[len(s.history)-1]
}

// Redo pops the most recently undone snapshot back onto history and returns
// it, or nil when there is nothing to redo.
func (s *EditorState) Redo() *Snapshot {
	if len(s.redoStack) == 0 {
		return nil
	}
	snap := s.redoStack[len(s.redoStack)-1]
	s.redoStack = s.redoStack[:len(s.redoStack)-1]
	s.history = append(s.history, snap)
	return snap
}

// HistoryLen returns the number of snapshots currently held.
func (s *EditorState) HistoryLen() int { return len(s.history) }

// RedoLen returns the number of snapshots available to redo.
func (s *EditorState) RedoLen() int { return len(s.redoStack) }

// HistoryAt returns the i-th snapshot, oldest first.
func (s *EditorState) HistoryAt(i int) *Snapshot { return s.history[i] }
