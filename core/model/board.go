package model

import (
	"fmt"
	"strings"

	game_log "github.com/ingyamilmolinar/colorball/internal/log"
)

const (
	NumRods       = 5
	PaletteSize   = 4 // colors in play per round
	BallsPerColor = 5
)

// Board owns the rods of one round and tracks whether it has been won.
type Board struct {
	rods    []*Rod
	palette []Color
	won     bool
	round   int
	rng     RandomSource
	logger  *game_log.Logger
}

// NewBoard returns a board with a freshly dealt round. A nil rng falls back
// to DefaultRNG.
func NewBoard(rng RandomSource, logger *game_log.Logger) *Board {
	if rng == nil {
		rng = DefaultRNG()
	}
	b := &Board{rng: rng, logger: logger}
	b.Setup()
	return b
}

// Setup starts a new round: samples the palette, shuffles 5 balls of each
// color and deals them into every rod but the last, which stays empty.
// Nothing from the previous round survives.
func (b *Board) Setup() {
	colors := append([]Color(nil), AllColors...)
	for i := 0; i < PaletteSize; i++ {
		j := i + b.rng.IntN(len(colors)-i)
		colors[i], colors[j] = colors[j], colors[i]
	}
	b.palette = colors[:PaletteSize]

	balls := make([]Color, 0, PaletteSize*BallsPerColor)
	for _, c := range b.palette {
		for k := 0; k < BallsPerColor; k++ {
			balls = append(balls, c)
		}
	}
	for i := len(balls) - 1; i > 0; i-- {
		j := b.rng.IntN(i + 1)
		balls[i], balls[j] = balls[j], balls[i]
	}

	b.rods = make([]*Rod, NumRods)
	for i := range b.rods {
		b.rods[i] = NewRod()
	}
	next := 0
	for _, r := range b.rods[:NumRods-1] {
		for k := 0; k < RodCapacity && next < len(balls); k++ {
			r.Push(balls[next])
			next++
		}
	}

	b.won = false
	b.round++
	b.logger.Infof("[BOARD] Round %d palette=%v", b.round, b.palette)
	b.logger.Debugf("[BOARD] Dealt %s", b)
}

// PickUp pops the top ball of rod i. The ball leaves the board until it is
// dropped again. NoColor means nothing could be picked up.
func (b *Board) PickUp(i int) Color {
	r := b.Rod(i)
	if r == nil {
		return NoColor
	}
	c := r.Pop()
	if c != NoColor {
		b.logger.Debugf("[BOARD] Picked %s from rod %d", c, i)
	}
	return c
}

// TryDrop pushes c onto rod i and reports success. Reverting a failed drop is
// the caller's job.
func (b *Board) TryDrop(i int, c Color) bool {
	r := b.Rod(i)
	if r == nil {
		return false
	}
	ok := r.Push(c)
	b.logger.Debugf("[BOARD] Drop %s on rod %d ok=%t", c, i, ok)
	return ok
}

// IsWon reports whether every rod is solved.
func (b *Board) IsWon() bool {
	for _, r := range b.rods {
		if !r.IsSolved() {
			return false
		}
	}
	return true
}

// Tick recomputes the win condition once per frame. It returns true only on
// the frame the board becomes won; the flag then sticks until Setup.
func (b *Board) Tick() bool {
	if b.won || !b.IsWon() {
		return false
	}
	b.won = true
	b.logger.Infof("[BOARD] Round %d won", b.round)
	return true
}

func (b *Board) Won() bool  { return b.won }
func (b *Board) Round() int { return b.round }

func (b *Board) NumRods() int { return len(b.rods) }

// Rod returns rod i, or nil when i is out of range.
func (b *Board) Rod(i int) *Rod {
	if i < 0 || i >= len(b.rods) {
		return nil
	}
	return b.rods[i]
}

func (b *Board) Rods() []*Rod {
	return append([]*Rod(nil), b.rods...)
}

// Palette returns the colors in play this round.
func (b *Board) Palette() []Color {
	return append([]Color(nil), b.palette...)
}

// Counts returns how many balls of each color sit on the rods.
func (b *Board) Counts() map[Color]int {
	counts := make(map[Color]int)
	for _, r := range b.rods {
		for _, c := range r.balls {
			counts[c]++
		}
	}
	return counts
}

// Total returns the number of balls on the rods.
func (b *Board) Total() int {
	n := 0
	for _, r := range b.rods {
		n += r.Len()
	}
	return n
}

func (b *Board) String() string {
	var buf strings.Builder
	for _, r := range b.rods {
		buf.WriteString(r.String())
	}
	return buf.String()
}

// NewBoardWith builds a board holding exactly the given rods, bottom ball
// first. It is meant for replaying known positions; the palette is taken from
// the colors present.
func NewBoardWith(layout [][]Color, logger *game_log.Logger) (*Board, error) {
	if len(layout) != NumRods {
		return nil, fmt.Errorf("board needs %d rods, got %d", NumRods, len(layout))
	}
	b := &Board{rng: DefaultRNG(), logger: logger, round: 1}
	seen := make(map[Color]bool)
	b.rods = make([]*Rod, NumRods)
	for i, balls := range layout {
		b.rods[i] = NewRod()
		for _, c := range balls {
			if !b.rods[i].Push(c) {
				return nil, fmt.Errorf("rod %d: cannot place %s", i, c)
			}
			if !seen[c] {
				seen[c] = true
				b.palette = append(b.palette, c)
			}
		}
	}
	return b, nil
}
