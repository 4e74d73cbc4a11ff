package render

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-pet/asset"
)

func newSimScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init screen: %v", err)
	}
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)
	return screen
}

func TestTerminalDisplayPresent(t *testing.T) {
	screen := newSimScreen(t, 80, 30)
	d := NewTerminalDisplay(screen, asset.NewStore(t.TempDir()), 8, 8, 2)
	d.SetHint("keys", color.White)

	d.Clear(color.RGBA{255, 0, 0, 255})
	d.Present()

	cols, rows := d.CellSize()
	if cols != 4 || rows != 3 {
		t.Fatalf("CellSize() = %d,%d, want 4,3", cols, rows)
	}

	mainc, _, style, _ := screen.GetContent(0, 0)
	if mainc != upperHalfBlock {
		t.Errorf("cell rune = %q", mainc)
	}
	fg, bg, _ := style.Decompose()
	red := tcell.NewRGBColor(255, 0, 0)
	if fg != red || bg != red {
		t.Errorf("cell colours fg %v bg %v, want red", fg, bg)
	}

	hint, _, _, _ := screen.GetContent(0, 2)
	if hint != 'k' {
		t.Errorf("hint row starts with %q", hint)
	}
	if outside, _, _, _ := screen.GetContent(4, 0); outside == upperHalfBlock {
		t.Error("painted past the framebuffer width")
	}
}

func TestTerminalDisplayHintTruncated(t *testing.T) {
	screen := newSimScreen(t, 5, 10)
	d := NewTerminalDisplay(screen, asset.NewStore(t.TempDir()), 4, 4, 1)
	d.SetHint("abcdefghij", color.White)
	d.Present()

	last, _, _, _ := screen.GetContent(4, 2)
	if last != '…' {
		t.Errorf("truncated hint ends with %q", last)
	}
}

func TestTerminalDisplayDrawImage(t *testing.T) {
	dir := t.TempDir()
	img := image.NewNRGBA(image.Rect(0, 0, 4, 2))
	for x := 0; x < 4; x++ {
		img.Set(x, 0, color.NRGBA{0, 255, 0, 255})
		img.Set(x, 1, color.NRGBA{0, 0, 255, 255})
	}
	f, err := os.Create(filepath.Join(dir, "sheet.png"))
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	f.Close()

	d := NewTerminalDisplay(newSimScreen(t, 20, 10), asset.NewStore(dir), 10, 10, 1)
	d.Clear(color.Black)

	src := image.Rect(2, 0, 4, 2)
	if err := d.DrawImage("sheet.png", 3, 5, &src); err != nil {
		t.Fatalf("DrawImage() error = %v", err)
	}
	if got := d.fb.RGBAAt(3, 5); got != (color.RGBA{0, 255, 0, 255}) {
		t.Errorf("pixel (3,5) = %v", got)
	}
	if got := d.fb.RGBAAt(4, 6); got != (color.RGBA{0, 0, 255, 255}) {
		t.Errorf("pixel (4,6) = %v", got)
	}
	if got := d.fb.RGBAAt(5, 5); got != (color.RGBA{0, 0, 0, 255}) {
		t.Errorf("pixel (5,5) outside the region = %v", got)
	}

	if err := d.DrawImage("missing.png", 0, 0, nil); err == nil {
		t.Error("expected error for missing asset")
	}
}

func TestTerminalDisplayDrawText(t *testing.T) {
	d := NewTerminalDisplay(newSimScreen(t, 20, 10), asset.NewStore(t.TempDir()), 240, 135, 2)
	d.Clear(color.Black)
	d.SetColor(color.RGBA{255, 255, 255, 255})
	d.DrawText("Hunger", 10, 20, 3)

	lit := 0
	scale := TextScale(3)
	for y := 20; y < 20+glyphHeight*scale; y++ {
		for x := 10; x < 10+6*7*scale; x++ {
			if d.fb.RGBAAt(x, y).R > 0 {
				lit++
			}
		}
	}
	if lit == 0 {
		t.Error("no text pixels drawn")
	}
	if d.fb.RGBAAt(5, 5).R != 0 {
		t.Error("text drawn outside its box")
	}
}

func TestTextScale(t *testing.T) {
	tests := []struct{ in, want int }{
		{0, 1},
		{1, 1},
		{2, 1},
		{3, 2},
		{5, 3},
	}
	for _, tt := range tests {
		if got := TextScale(tt.in); got != tt.want {
			t.Errorf("TextScale(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestParsePalette(t *testing.T) {
	p, err := ParsePalette(PaletteHex{Selected: "#00ff00"})
	if err != nil {
		t.Fatalf("ParsePalette() error = %v", err)
	}
	if p.Selected != (color.RGBA{0, 255, 0, 255}) {
		t.Errorf("Selected = %v", p.Selected)
	}
	if p.Text != DefaultPalette().Text {
		t.Errorf("Text changed to %v", p.Text)
	}

	if _, err := ParsePalette(PaletteHex{Warning: "red"}); err == nil {
		t.Error("expected error for non-hex colour")
	}
}
