package raster

import (
	"image"
	"image/color"
)

// MaxDim is the largest grid dimension the editor supports on either axis.
const MaxDim = 320

// Buffer is the canonical RGBA8 pixel store for the artwork. It is exactly
// Width x Height cells; the scaled display surface is derived from it, never
// the other way around.
type Buffer struct {
	Width  int
	Height int
	Pix    []uint8 // 4 bytes per cell, row-major
}

// NewBuffer creates a fully transparent buffer.
func NewBuffer(width, height int) *Buffer {
	return &Buffer{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height*4),
	}
}

// InBounds reports whether (x, y) addresses a cell of the buffer.
func (b *Buffer) InBounds(x, y int) bool {
	return x >= 0 && x < b.Width && y >= 0 && y < b.Height
}

// At returns the cell color. Callers must bounds-check first.
func (b *Buffer) At(x, y int) color.NRGBA {
	i := (y*b.Width + x) * 4
	return color.NRGBA{R: b.Pix[i], G: b.Pix[i+1], B: b.Pix[i+2], A: b.Pix[i+3]}
}

// Set writes the cell color. Out-of-bounds writes are ignored.
func (b *Buffer) Set(x, y int, c color.NRGBA) {
	if !b.InBounds(x, y) {
		return
	}
	i := (y*b.Width + x) * 4
	b.Pix[i] = c.R
	b.Pix[i+1] = c.G
	b.Pix[i+2] = c.B
	b.Pix[i+3] = c.A
}

// Resize reallocates the buffer to the new dimensions, copying the
// overlapping region. New cells are transparent; nothing is scaled and no
// bytes from outside the new bounds survive.
func (b *Buffer) Resize(width, height int) {
	if width == b.Width && height == b.Height {
		return
	}
	pix := make([]uint8, width*height*4)
	copyW := b.Width
	if width < copyW {
		copyW = width
	}
	copyH := b.Height
	if height < copyH {
		copyH = height
	}
	for y := 0; y < copyH; y++ {
		src := y * b.Width * 4
		dst := y * width * 4
		copy(pix[dst:dst+copyW*4], b.Pix[src:src+copyW*4])
	}
	b.Width = width
	b.Height = height
	b.Pix = pix
}

// Clone returns an independent copy of the buffer.
func (b *Buffer) Clone() *Buffer {
	pix := make([]uint8, len(b.Pix))
	copy(pix, b.Pix)
	return &Buffer{Width: b.Width, Height: b.Height, Pix: pix}
}

// Load replaces the buffer contents with the given pixel data, resizing to
// match. The data is copied, not aliased.
func (b *Buffer) Load(width, height int, pix []uint8) {
	b.Width = width
	b.Height = height
	b.Pix = make([]uint8, width*height*4)
	copy(b.Pix, pix)
}

// Image wraps the buffer bytes as an image.NRGBA covering exactly the
// logical grid, for encoding and compositing. The pixel data is shared.
func (b *Buffer) Image() *image.NRGBA {
	return &image.NRGBA{
		Pix:    b.Pix,
		Stride: b.Width * 4,
		Rect:   image.Rect(0, 0, b.Width, b.Height),
	}
}
