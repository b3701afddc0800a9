package raster

import (
	"image/color"
	"testing"
)

var (
	red   = color.NRGBA{R: 255, A: 255}
	green = color.NRGBA{G: 255, A: 255}
	blue  = color.NRGBA{B: 255, A: 255}
)

func TestNewBufferTransparent(t *testing.T) {
	b := NewBuffer(8, 6)
	for y := 0; y < 6; y++ {
		for x := 0; x < 8; x++ {
			if got := b.At(x, y); got != (color.NRGBA{}) {
				t.Fatalf("cell (%d,%d) = %v, want transparent", x, y, got)
			}
		}
	}
}

func TestSetAt(t *testing.T) {
	b := NewBuffer(16, 16)
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			c := color.NRGBA{R: uint8(x * 16), G: uint8(y * 16), B: 7, A: 255}
			b.Set(x, y, c)
			if got := b.At(x, y); got != c {
				t.Fatalf("cell (%d,%d) = %v, want %v", x, y, got, c)
			}
		}
	}
}

func TestSetOutOfBoundsIgnored(t *testing.T) {
	b := NewBuffer(4, 4)
	b.Set(-1, 0, red)
	b.Set(0, -1, red)
	b.Set(4, 0, red)
	b.Set(0, 4, red)
	for _, v := range b.Pix {
		if v != 0 {
			t.Fatal("out-of-bounds Set mutated the buffer")
		}
	}
}

func TestResize(t *testing.T) {
	tests := []struct {
		name       string
		fromW, fromH int
		toW, toH   int
	}{
		{"grow", 4, 4, 8, 8},
		{"shrink", 8, 8, 4, 4},
		{"grow wide shrink tall", 6, 6, 10, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBuffer(tt.fromW, tt.fromH)
			for y := 0; y < tt.fromH; y++ {
				for x := 0; x < tt.fromW; x++ {
					b.Set(x, y, color.NRGBA{R: uint8(x), G: uint8(y), A: 255})
				}
			}
			b.Resize(tt.toW, tt.toH)

			if b.Width != tt.toW || b.Height != tt.toH {
				t.Fatalf("dimensions = %dx%d, want %dx%d", b.Width, b.Height, tt.toW, tt.toH)
			}
			if len(b.Pix) != tt.toW*tt.toH*4 {
				t.Fatalf("pix length = %d, want %d", len(b.Pix), tt.toW*tt.toH*4)
			}
			for y := 0; y < tt.toH; y++ {
				for x := 0; x < tt.toW; x++ {
					got := b.At(x, y)
					if x < tt.fromW && y < tt.fromH {
						want := color.NRGBA{R: uint8(x), G: uint8(y), A: 255}
						if got != want {
							t.Fatalf("overlap cell (%d,%d) = %v, want %v", x, y, got, want)
						}
					} else if got != (color.NRGBA{}) {
						t.Fatalf("new cell (%d,%d) = %v, want transparent", x, y, got)
					}
				}
			}
		})
	}
}

func TestCloneIndependent(t *testing.T) {
	b := NewBuffer(4, 4)
	b.Set(1, 1, red)
	c := b.Clone()
	c.Set(1, 1, blue)
	if b.At(1, 1) != red {
		t.Fatal("mutating the clone changed the original")
	}
}

func TestLoadCopiesData(t *testing.T) {
	b := NewBuffer(2, 2)
	pix := make([]uint8, 2*2*4)
	pix[0] = 200
	pix[3] = 255
	b.Load(2, 2, pix)
	pix[0] = 0
	if b.At(0, 0).R != 200 {
		t.Fatal("Load aliased the caller's slice")
	}
}

func TestImageCoversLogicalRegion(t *testing.T) {
	b := NewBuffer(5, 3)
	b.Set(4, 2, green)
	img := b.Image()
	if img.Bounds().Dx() != 5 || img.Bounds().Dy() != 3 {
		t.Fatalf("image bounds = %v, want 5x3", img.Bounds())
	}
	if got := img.NRGBAAt(4, 2); got != green {
		t.Fatalf("image pixel (4,2) = %v, want %v", got, green)
	}
}
