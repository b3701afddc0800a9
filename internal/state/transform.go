package state

import "math"

// FitPadding is the viewport margin left around a fitted grid, per axis.
const FitPadding = 100

// ScreenToCell converts a pointer position to integer grid cell coordinates.
// The rendered surface spans (originX, originY) to (originX+surfaceW,
// originY+surfaceH) and covers gridW x gridH cells. The result may lie
// outside the grid; callers must bounds-check.
func ScreenToCell(px, py, originX, originY, surfaceW, surfaceH float32, gridW, gridH int) (int, int) {
	cellW := surfaceW / float32(gridW)
	cellH := surfaceH / float32(gridH)
	x := int(math.Floor(float64((px - originX) / cellW)))
	y := int(math.Floor(float64((py - originY) / cellH)))
	return x, y
}

// CalculateFit computes the zoom and pan that center the grid in the
// viewport at the largest whole-pixel cell size that fits, leaving
// FitPadding of margin per axis. Pure; no side effects.
func CalculateFit(viewportW, viewportH float32, gridW, gridH int) (zoom int, panX, panY float32) {
	availW := viewportW - FitPadding
	if availW < 10 {
		availW = 10
	}
	availH := viewportH - FitPadding
	if availH < 10 {
		availH = 10
	}

	zoomW := int(availW) / gridW
	zoomH := int(availH) / gridH
	zoom = zoomW
	if zoomH < zoom {
		zoom = zoomH
	}
	if zoom < MinZoom {
		zoom = MinZoom
	}
	if zoom > MaxZoom {
		zoom = MaxZoom
	}

	panX, panY = CenterPan(viewportW, viewportH, gridW, gridH, zoom)
	return zoom, panX, panY
}

// CenterPan returns the pan that centers a gridW x gridH grid rendered at
// the given zoom within the viewport.
func CenterPan(viewportW, viewportH float32, gridW, gridH, zoom int) (panX, panY float32) {
	panX = (viewportW - float32(gridW*zoom)) / 2
	panY = (viewportH - float32(gridH*zoom)) / 2
	return panX, panY
}
