package render

import (
	"image"
	"image/color"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/lixenwraith/vi-pet/asset"
)

// upperHalfBlock paints the upper pixel as foreground, the lower as background
const upperHalfBlock = '▀'

// glyphHeight is the cell height of basicfont.Face7x13
const glyphHeight = 13

// TerminalDisplay renders a pixel framebuffer onto a tcell screen
// Each terminal cell shows two vertically stacked pixels after downsampling
type TerminalDisplay struct {
	screen     tcell.Screen
	store      *asset.Store
	fb         *image.RGBA
	small      *image.RGBA
	pen        color.Color
	pixelScale int
	hint       string
	hintStyle  tcell.Style
}

// NewTerminalDisplay creates a width x height framebuffer shown on screen
func NewTerminalDisplay(screen tcell.Screen, store *asset.Store, width, height, pixelScale int) *TerminalDisplay {
	if pixelScale < 1 {
		pixelScale = 1
	}
	sw := (width + pixelScale - 1) / pixelScale
	sh := (height + pixelScale - 1) / pixelScale
	return &TerminalDisplay{
		screen:     screen,
		store:      store,
		fb:         image.NewRGBA(image.Rect(0, 0, width, height)),
		small:      image.NewRGBA(image.Rect(0, 0, sw, sh)),
		pen:        color.White,
		pixelScale: pixelScale,
	}
}

// SetHint sets the key hint line shown below the pixel area
func (d *TerminalDisplay) SetHint(hint string, c color.Color) {
	d.hint = hint
	d.hintStyle = tcell.StyleDefault.Foreground(toTcell(c)).Background(tcell.ColorBlack)
}

// Bounds returns the framebuffer size
func (d *TerminalDisplay) Bounds() image.Rectangle {
	return d.fb.Bounds()
}

// Clear fills the framebuffer
func (d *TerminalDisplay) Clear(c color.Color) {
	xdraw.Draw(d.fb, d.fb.Bounds(), image.NewUniform(c), image.Point{}, xdraw.Src)
}

// SetColor sets the pen used by DrawText
func (d *TerminalDisplay) SetColor(c color.Color) {
	d.pen = c
}

// TextScale converts a display text scale to a glyph magnification
// Scale 1 matches an 8px font; basicfont glyphs are 13px tall
func TextScale(scale int) int {
	s := (scale*8 + 6) / glyphHeight
	if s < 1 {
		return 1
	}
	return s
}

// DrawText renders text with basicfont, magnified by TextScale(scale)
func (d *TerminalDisplay) DrawText(text string, x, y, scale int) {
	face := basicfont.Face7x13
	w := font.MeasureString(face, text).Ceil()
	if w <= 0 {
		return
	}

	glyphs := image.NewRGBA(image.Rect(0, 0, w, glyphHeight))
	drawer := font.Drawer{
		Dst:  glyphs,
		Src:  image.NewUniform(d.pen),
		Face: face,
		Dot:  fixed.P(0, face.Ascent),
	}
	drawer.DrawString(text)

	s := TextScale(scale)
	dst := image.Rect(x, y, x+w*s, y+glyphHeight*s)
	xdraw.NearestNeighbor.Scale(d.fb, dst, glyphs, glyphs.Bounds(), xdraw.Over, nil)
}

// DrawImage blits an asset region at x, y
func (d *TerminalDisplay) DrawImage(name string, x, y int, src *image.Rectangle) error {
	img, err := d.store.Region(name, src)
	if err != nil {
		return err
	}
	b := img.Bounds()
	dst := image.Rect(x, y, x+b.Dx(), y+b.Dy())
	xdraw.Draw(d.fb, dst, img, b.Min, xdraw.Over)
	return nil
}

// Present downsamples the framebuffer and paints it with half blocks
func (d *TerminalDisplay) Present() {
	xdraw.ApproxBiLinear.Scale(d.small, d.small.Bounds(), d.fb, d.fb.Bounds(), xdraw.Src, nil)

	cols, rows := d.screen.Size()
	sb := d.small.Bounds()
	cellRows := (sb.Dy() + 1) / 2

	d.screen.Clear()
	for cy := 0; cy < cellRows && cy < rows; cy++ {
		for cx := 0; cx < sb.Dx() && cx < cols; cx++ {
			upper := d.small.RGBAAt(cx, 2*cy)
			lower := color.RGBA{0, 0, 0, 255}
			if 2*cy+1 < sb.Dy() {
				lower = d.small.RGBAAt(cx, 2*cy+1)
			}
			style := tcell.StyleDefault.Foreground(toTcell(upper)).Background(toTcell(lower))
			d.screen.SetContent(cx, cy, upperHalfBlock, nil, style)
		}
	}

	if d.hint != "" && cellRows < rows {
		d.drawHint(cellRows, cols)
	}
	d.screen.Show()
}

func (d *TerminalDisplay) drawHint(row, cols int) {
	line := runewidth.Truncate(d.hint, cols, "…")
	x := 0
	for _, r := range line {
		d.screen.SetContent(x, row, r, nil, d.hintStyle)
		x += runewidth.RuneWidth(r)
	}
}

// CellSize returns the terminal size needed to show the full framebuffer and hint
func (d *TerminalDisplay) CellSize() (cols, rows int) {
	sb := d.small.Bounds()
	return sb.Dx(), (sb.Dy()+1)/2 + 1
}
