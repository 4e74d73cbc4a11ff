package render

import (
	"image/color"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
)

// Palette holds the colours used on the pixel display
type Palette struct {
	Background color.RGBA
	Text       color.RGBA
	Selected   color.RGBA
	Warning    color.RGBA // Highlighted option still cooling down
	Hint       color.RGBA
}

// DefaultPalette returns black background with white text
func DefaultPalette() Palette {
	return Palette{
		Background: color.RGBA{0, 0, 0, 255},
		Text:       color.RGBA{255, 255, 255, 255},
		Selected:   color.RGBA{255, 105, 180, 255}, // Pink
		Warning:    color.RGBA{255, 0, 0, 255},
		Hint:       color.RGBA{180, 180, 180, 255}, // Brighter gray
	}
}

// PaletteHex names palette entries as hex strings, empty keeps the default
type PaletteHex struct {
	Background string `yaml:"background"`
	Text       string `yaml:"text"`
	Selected   string `yaml:"selected"`
	Warning    string `yaml:"warning"`
	Hint       string `yaml:"hint"`
}

// ParsePalette overlays hex colours onto the default palette
func ParsePalette(h PaletteHex) (Palette, error) {
	p := DefaultPalette()
	fields := []struct {
		name string
		hex  string
		dst  *color.RGBA
	}{
		{"background", h.Background, &p.Background},
		{"text", h.Text, &p.Text},
		{"selected", h.Selected, &p.Selected},
		{"warning", h.Warning, &p.Warning},
		{"hint", h.Hint, &p.Hint},
	}

	for _, f := range fields {
		if f.hex == "" {
			continue
		}
		c, err := colorful.Hex(f.hex)
		if err != nil {
			return p, errors.Wrapf(err, "palette %s", f.name)
		}
		r, g, b := c.RGB255()
		*f.dst = color.RGBA{r, g, b, 255}
	}
	return p, nil
}

// toTcell converts any colour to a tcell RGB colour, dropping alpha
func toTcell(c color.Color) tcell.Color {
	r, g, b, _ := c.RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}
