package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// The primitives below are variables so tests can override them to capture
// draw calls without a graphics context.

var fillScreen = func(dst *ebiten.Image, c color.Color) {
	dst.Fill(c)
}

var drawRect = func(dst *ebiten.Image, r image.Rectangle, c color.Color, filled bool) {
	if filled {
		vector.DrawFilledRect(dst, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), c, false)
	} else {
		vector.StrokeRect(dst, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), 1, c, false)
	}
}

var drawCircle = func(dst *ebiten.Image, x, y, radius float32, c color.Color) {
	vector.DrawFilledCircle(dst, x, y, radius, c, true)
}

// drawText places s with its top-left corner at (x, y).
var drawText = func(dst *ebiten.Image, s string, x, y int, c color.Color) {
	face := basicfont.Face7x13
	text.Draw(dst, s, face, x, y+face.Ascent, c)
}
