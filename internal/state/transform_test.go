package state

import "testing"

func TestScreenToCell(t *testing.T) {
	tests := []struct {
		name         string
		px, py       float32
		ox, oy       float32
		sw, sh       float32
		gw, gh       int
		wantX, wantY int
	}{
		{"origin cell", 0, 0, 0, 0, 160, 160, 16, 16, 0, 0},
		{"inside first cell", 9.9, 9.9, 0, 0, 160, 160, 16, 16, 0, 0},
		{"second cell", 10, 0, 0, 0, 160, 160, 16, 16, 1, 0},
		{"last cell", 159, 159, 0, 0, 160, 160, 16, 16, 15, 15},
		{"offset surface", 105, 62, 100, 60, 160, 160, 16, 16, 0, 0},
		{"left of surface floors negative", 95, 60, 100, 60, 160, 160, 16, 16, -1, 0},
		{"past right edge", 260, 0, 100, 0, 160, 160, 16, 16, 16, 0},
		{"non-square cells", 30, 30, 0, 0, 100, 50, 10, 10, 3, 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := ScreenToCell(tt.px, tt.py, tt.ox, tt.oy, tt.sw, tt.sh, tt.gw, tt.gh)
			if x != tt.wantX || y != tt.wantY {
				t.Fatalf("ScreenToCell = (%d,%d), want (%d,%d)", x, y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestCalculateFit(t *testing.T) {
	zoom, panX, panY := CalculateFit(800, 600, 16, 16)

	// available = 700x500; floor(min(700/16, 500/16)) = 31
	if zoom != 31 {
		t.Fatalf("zoom = %d, want 31", zoom)
	}
	wantPanX := (800 - float32(16*zoom)) / 2
	wantPanY := (600 - float32(16*zoom)) / 2
	if panX != wantPanX || panY != wantPanY {
		t.Fatalf("pan = (%v,%v), want (%v,%v)", panX, panY, wantPanX, wantPanY)
	}
}

func TestCalculateFitClamps(t *testing.T) {
	// Tiny viewport: available floors to 10 per axis, zoom clamps to 1.
	zoom, _, _ := CalculateFit(50, 50, 320, 320)
	if zoom != MinZoom {
		t.Fatalf("zoom = %d, want %d", zoom, MinZoom)
	}

	// Huge viewport, tiny grid: zoom clamps to 100.
	zoom, _, _ = CalculateFit(4000, 4000, 2, 2)
	if zoom != MaxZoom {
		t.Fatalf("zoom = %d, want %d", zoom, MaxZoom)
	}
}

func TestCalculateFitDeterministic(t *testing.T) {
	z1, x1, y1 := CalculateFit(1024, 768, 32, 24)
	z2, x2, y2 := CalculateFit(1024, 768, 32, 24)
	if z1 != z2 || x1 != x2 || y1 != y2 {
		t.Fatal("CalculateFit is not deterministic")
	}
}

func TestCenterPan(t *testing.T) {
	panX, panY := CenterPan(800, 600, 16, 16, 20)
	if panX != 240 || panY != 140 {
		t.Fatalf("pan = (%v,%v), want (240,140)", panX, panY)
	}
}
