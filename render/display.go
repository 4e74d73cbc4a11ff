package render

import (
	"image"
	"image/color"
)

// Display is the pixel surface the renderer draws on
type Display interface {
	Clear(c color.Color)
	SetColor(c color.Color)
	// DrawText draws in the current colour with the top-left corner at x, y
	DrawText(text string, x, y, scale int)
	// DrawImage blits the src region of asset, or all of it for a nil src
	DrawImage(asset string, x, y int, src *image.Rectangle) error
	Present()
	Bounds() image.Rectangle
}
