package render

import (
	"fmt"
	"image"
	"log"

	"github.com/lixenwraith/vi-pet/constants"
	"github.com/lixenwraith/vi-pet/engine"
	"github.com/lixenwraith/vi-pet/modes"
)

// Renderer draws the pet and the active menu once per tick
type Renderer struct {
	display Display
	ctx     *engine.PetContext
	menu    *modes.MenuStateMachine
	palette Palette
	failed  map[string]bool // assets already reported as failing
}

// NewRenderer creates a renderer over display
func NewRenderer(display Display, ctx *engine.PetContext, menu *modes.MenuStateMachine, palette Palette) *Renderer {
	return &Renderer{
		display: display,
		ctx:     ctx,
		menu:    menu,
		palette: palette,
		failed:  make(map[string]bool),
	}
}

// Render draws a full frame
func (r *Renderer) Render() {
	r.display.Clear(r.palette.Background)

	// The marker stays on screen under every menu
	mode := r.menu.Mode()
	if mode == modes.ModeMain {
		r.drawPet()
	}
	r.drawMarker()

	switch mode {
	case modes.ModeMain:
		r.drawIcons()
	case modes.ModeStats:
		r.drawStats()
	default:
		r.drawOptions(mode)
	}

	r.display.Present()
}

func (r *Renderer) drawPet() {
	name, src, ok := r.ctx.Animation.FrameSource()
	if !ok {
		return
	}
	pb := r.ctx.Animation.Playback()
	r.drawImage(name, pb.X, pb.Y, src)
}

func (r *Renderer) drawMarker() {
	m := r.ctx.Ambient.Marker()
	if !m.Visible {
		return
	}
	r.drawImage(constants.MarkerAsset, m.X, m.Y, nil)
}

func (r *Renderer) drawIcons() {
	cursor := r.menu.Cursor(modes.ModeMain)
	width := r.display.Bounds().Dx()

	for i := 0; i < constants.IconCount; i++ {
		item := modes.MainItem(i)
		x := constants.IconLeftX
		row := i
		if i >= constants.IconsPerColumn {
			x = width - constants.IconRightInset
			row = i - constants.IconsPerColumn
		}
		y := constants.IconTopY + row*constants.IconSpacingY
		r.drawImage(item.Icon(i == cursor), x, y, nil)
	}
}

func (r *Renderer) drawOptions(mode modes.Mode) {
	r.display.SetColor(r.palette.Text)
	r.display.DrawText(r.menu.Title(mode), constants.MenuTextX, constants.MenuTitleY, constants.MenuTextScale)

	cursor := r.menu.Cursor(mode)
	for i, label := range r.menu.Options(mode) {
		switch {
		case i != cursor:
			r.display.SetColor(r.palette.Text)
		case !r.menu.OptionAvailable(mode, i):
			r.display.SetColor(r.palette.Warning)
		default:
			r.display.SetColor(r.palette.Selected)
		}
		y := constants.MenuOptionTopY + i*constants.MenuOptionStepY
		r.display.DrawText(label, constants.MenuTextX, y, constants.MenuTextScale)
	}
}

func (r *Renderer) drawStats() {
	stats := r.ctx.Stats.Snapshot()
	r.display.SetColor(r.palette.Text)
	for i, stat := range engine.AllStats {
		line := fmt.Sprintf("%s: %d", stat, stats.Get(stat))
		y := constants.StatsTopY + i*constants.StatsStepY
		r.display.DrawText(line, constants.MenuTextX, y, constants.MenuTextScale)
	}
}

// drawImage skips failed assets, logging each one once
func (r *Renderer) drawImage(name string, x, y int, src *image.Rectangle) {
	if err := r.display.DrawImage(name, x, y, src); err != nil {
		if !r.failed[name] {
			r.failed[name] = true
			log.Printf("render: %v", err)
		}
	}
}
