package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ingyamilmolinar/colorball/core/model"
)

const (
	confettiCount  = 100
	confettiRadius = 5
)

type particle struct {
	x, y  float64
	speed float64 // px per frame, upward
	color model.Color
}

// Confetti is the celebration shown while a round is won.
type Confetti struct {
	particles []particle
	w, h      int
}

// Generate scatters confettiCount particles over a w×h screen.
func (c *Confetti) Generate(rng model.RandomSource, w, h int) {
	c.w, c.h = w, h
	c.particles = make([]particle, confettiCount)
	for i := range c.particles {
		c.particles[i] = particle{
			x:     float64(rng.IntN(w + 1)),
			y:     float64(rng.IntN(h + 1)),
			speed: float64(1 + rng.IntN(5)),
			color: model.AllColors[rng.IntN(len(model.AllColors))],
		}
	}
}

// Update floats every particle upward, wrapping to the bottom once it leaves
// the screen.
func (c *Confetti) Update() {
	for i := range c.particles {
		p := &c.particles[i]
		p.y -= p.speed
		if p.y < -confettiRadius {
			p.y = float64(c.h + confettiRadius)
		}
	}
}

func (c *Confetti) Clear() { c.particles = nil }

func (c *Confetti) Active() bool { return len(c.particles) > 0 }

func (c *Confetti) Draw(dst *ebiten.Image) {
	for _, p := range c.particles {
		drawCircle(dst, float32(p.x), float32(p.y), confettiRadius, ballColor(p.color))
	}
}
