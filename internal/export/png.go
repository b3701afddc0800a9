// Package export converts the artwork between the raster buffer and durable
// image formats. The encoded region is always exactly the logical grid.
package export

import (
	"fmt"
	"image"
	"image/png"
	"io"

	xdraw "golang.org/x/image/draw"

	"PixelPad/internal/raster"
)

// EncodePNG writes the buffer's logical width x height region as a PNG.
func EncodePNG(w io.Writer, b *raster.Buffer) error {
	if err := png.Encode(w, b.Image()); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// EncodePNGScaled writes the buffer scaled up by an integer factor using
// nearest-neighbor sampling, keeping pixel edges crisp.
func EncodePNGScaled(w io.Writer, b *raster.Buffer, scale int) error {
	if scale < 1 {
		scale = 1
	}
	if scale == 1 {
		return EncodePNG(w, b)
	}
	dst := image.NewNRGBA(image.Rect(0, 0, b.Width*scale, b.Height*scale))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), b.Image(), b.Image().Bounds(), xdraw.Src, nil)
	if err := png.Encode(w, dst); err != nil {
		return fmt.Errorf("encode scaled png: %w", err)
	}
	return nil
}

// DecodePNG reads an image and returns its dimensions and NRGBA pixel bytes.
// Images larger than the maximum grid dimension are rejected with the
// source state untouched.
func DecodePNG(r io.Reader) (width, height int, pix []uint8, err error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return 0, 0, nil, fmt.Errorf("decode image: %w", err)
	}
	bounds := img.Bounds()
	width = bounds.Dx()
	height = bounds.Dy()
	if width > raster.MaxDim || height > raster.MaxDim {
		return 0, 0, nil, fmt.Errorf("image is %dx%d; the maximum canvas size is %dx%d",
			width, height, raster.MaxDim, raster.MaxDim)
	}

	nrgba := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			nrgba.Set(x, y, img.At(bounds.Min.X+x, bounds.Min.Y+y))
		}
	}
	return width, height, nrgba.Pix, nil
}
