package ui

import (
	"image/color"

	"github.com/ingyamilmolinar/colorball/core/model"
)

var (
	colBackground = color.RGBA{200, 200, 200, 255}
	colRod        = color.RGBA{150, 75, 0, 255}

	colWinText    = color.RGBA{0, 255, 0, 255}
	colButton     = color.RGBA{0, 200, 0, 255}
	colButtonText = color.RGBA{255, 255, 255, 255}
)

var ballColors = map[model.Color]color.RGBA{
	model.Red:    {255, 0, 0, 255},
	model.Green:  {0, 255, 0, 255},
	model.Blue:   {0, 0, 255, 255},
	model.Yellow: {255, 255, 0, 255},
	model.Orange: {255, 165, 0, 255},
}

// ballColor maps a ball to its screen color; unknown values draw black.
func ballColor(c model.Color) color.Color {
	if rgba, ok := ballColors[c]; ok {
		return rgba
	}
	return color.Black
}
