package state

import (
	"image/color"
	"testing"
)

func TestSubscribersNotifiedInOrder(t *testing.T) {
	st := NewEditorState(8, 8)
	var order []int
	st.Subscribe(func(*EditorState) { order = append(order, 1) })
	st.Subscribe(func(*EditorState) { order = append(order, 2) })
	st.Subscribe(func(*EditorState) { order = append(order, 3) })

	st.SetTool(ToolFill)
	if len(order) != 3 || order[0] != 1 || order[1] != 2 || order[2] != 3 {
		t.Fatalf("notification order = %v, want [1 2 3]", order)
	}
}

func TestSubscriberSeesCurrentState(t *testing.T) {
	st := NewEditorState(8, 8)
	var seen Tool
	st.Subscribe(func(s *EditorState) { seen = s.CurrentTool })
	st.SetTool(ToolEyedropper)
	if seen != ToolEyedropper {
		t.Fatalf("subscriber saw tool %v, want %v", seen, ToolEyedropper)
	}
}

func TestUnsubscribe(t *testing.T) {
	st := NewEditorState(8, 8)
	var a, b int
	unsubA := st.Subscribe(func(*EditorState) { a++ })
	st.Subscribe(func(*EditorState) { b++ })

	st.SetBrushSize(3)
	unsubA()
	st.SetBrushSize(4)

	if a != 1 {
		t.Fatalf("unsubscribed callback ran %d times, want 1", a)
	}
	if b != 2 {
		t.Fatalf("remaining callback ran %d times, want 2", b)
	}
	unsubA() // second call is harmless
}

func TestEveryMutationNotifies(t *testing.T) {
	st := NewEditorState(8, 8)
	var n int
	st.Subscribe(func(*EditorState) { n++ })

	st.SetTool(ToolHand)
	st.SetColor(color.NRGBA{R: 1, A: 255})
	st.SetBrushSize(2)
	st.SetZoom(10)
	st.SetPan(5, 5)
	st.SetView(12, 0, 0)
	st.SetGridSize(16, 16)
	st.NotifyChanged()

	if n != 8 {
		t.Fatalf("notifications = %d, want 8", n)
	}
}

func TestClamping(t *testing.T) {
	st := NewEditorState(8, 8)

	st.SetZoom(0)
	if st.Zoom != MinZoom {
		t.Fatalf("zoom = %d, want clamp to %d", st.Zoom, MinZoom)
	}
	st.SetZoom(1000)
	if st.Zoom != MaxZoom {
		t.Fatalf("zoom = %d, want clamp to %d", st.Zoom, MaxZoom)
	}

	st.SetBrushSize(0)
	if st.BrushSize != MinBrushSize {
		t.Fatalf("brush = %d, want clamp to %d", st.BrushSize, MinBrushSize)
	}
	st.SetBrushSize(99)
	if st.BrushSize != MaxBrushSize {
		t.Fatalf("brush = %d, want clamp to %d", st.BrushSize, MaxBrushSize)
	}
}

func TestSetGridSizeRejectsInvalid(t *testing.T) {
	st := NewEditorState(8, 8)
	var n int
	st.Subscribe(func(*EditorState) { n++ })

	for _, d := range [][2]int{{0, 8}, {8, 0}, {321, 8}, {8, 321}} {
		if st.SetGridSize(d[0], d[1]) {
			t.Fatalf("SetGridSize(%d,%d) accepted invalid dimensions", d[0], d[1])
		}
	}
	if n != 0 {
		t.Fatal("rejected grid size notified subscribers")
	}
	if st.Width != 8 || st.Height != 8 {
		t.Fatal("rejected grid size mutated state")
	}
}
