package model

import "strings"

// RodCapacity is the number of balls a rod holds when full.
const RodCapacity = 5

// Rod is a bounded stack of balls. Index 0 is the bottom.
type Rod struct {
	balls []Color
}

func NewRod() *Rod {
	return &Rod{balls: make([]Color, 0, RodCapacity)}
}

func (r *Rod) Len() int    { return len(r.balls) }
func (r *Rod) Cap() int    { return RodCapacity }
func (r *Rod) Empty() bool { return len(r.balls) == 0 }
func (r *Rod) Full() bool  { return len(r.balls) >= RodCapacity }

// Push adds c on top. It fails without side effects when the rod is full or
// c is not a palette color.
func (r *Rod) Push(c Color) bool {
	if !c.Valid() || r.Full() {
		return false
	}
	r.balls = append(r.balls, c)
	return true
}

// Pop removes and returns the top ball, or NoColor when the rod is empty.
func (r *Rod) Pop() Color {
	if r.Empty() {
		return NoColor
	}
	top := r.balls[len(r.balls)-1]
	r.balls = r.balls[:len(r.balls)-1]
	return top
}

// Top returns the top ball without removing it.
func (r *Rod) Top() Color {
	if r.Empty() {
		return NoColor
	}
	return r.balls[len(r.balls)-1]
}

// Balls returns a copy of the rod contents, bottom first.
func (r *Rod) Balls() []Color {
	out := make([]Color, len(r.balls))
	copy(out, r.balls)
	return out
}

// IsUniform reports whether the rod is empty or holds a single color.
func (r *Rod) IsUniform() bool {
	for _, c := range r.balls {
		if c != r.balls[0] {
			return false
		}
	}
	return true
}

// IsSolved reports whether the rod is uniform and either empty or full.
// Partially filled rods never count, even when uniform.
func (r *Rod) IsSolved() bool {
	return r.IsUniform() && (r.Empty() || len(r.balls) == RodCapacity)
}

func (r *Rod) String() string {
	var buf strings.Builder
	buf.WriteByte('|')
	for i := 0; i < RodCapacity; i++ {
		if i < len(r.balls) {
			buf.WriteRune(r.balls[i].Rune())
		} else {
			buf.WriteByte(' ')
		}
	}
	buf.WriteByte('|')
	return buf.String()
}
