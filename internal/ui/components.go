package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ingyamilmolinar/colorball/core/engine"
	"github.com/ingyamilmolinar/colorball/core/model"
)

// RodStyle draws a rod and the balls stacked on it.
type RodStyle struct {
	Fill       color.Color
	BallRadius float32
}

func (s RodStyle) Draw(dst *ebiten.Image, l engine.Layout, i int, r *model.Rod) {
	drawRect(dst, l.RodRect(i), s.Fill, true)
	for slot, c := range r.Balls() {
		p := l.BallCenter(i, slot)
		drawCircle(dst, float32(p.X), float32(p.Y), s.BallRadius, ballColor(c))
	}
}

// ButtonStyle describes rectangular button visuals.
type ButtonStyle struct {
	Fill  color.Color
	Label color.Color
}

// Draw renders the button with its label inset from the top-left corner.
func (s ButtonStyle) Draw(dst *ebiten.Image, r image.Rectangle, label string) {
	drawRect(dst, r, s.Fill, true)
	drawText(dst, label, r.Min.X+10, r.Min.Y+10, s.Label)
}
