package engine

import "image"

// EventKind is the kind of pointer event delivered by the presentation layer.
type EventKind int

const (
	PointerDown EventKind = iota
	PointerMove
	PointerUp
)

func (k EventKind) String() string {
	switch k {
	case PointerDown:
		return "down"
	case PointerMove:
		return "move"
	case PointerUp:
		return "up"
	default:
		return "unknown"
	}
}

// Event is a pointer event at a screen position.
type Event struct {
	Kind EventKind
	Pos  image.Point
}

func Down(x, y int) Event { return Event{Kind: PointerDown, Pos: image.Pt(x, y)} }
func Move(x, y int) Event { return Event{Kind: PointerMove, Pos: image.Pt(x, y)} }
func Up(x, y int) Event   { return Event{Kind: PointerUp, Pos: image.Pt(x, y)} }

// Outcome tells the presentation layer what an event did.
type Outcome int

const (
	None     Outcome = iota
	Picked           // a ball left its rod
	Dropped          // the held ball landed on the rod under the pointer
	Reverted         // the held ball went back to its source rod
	NewGame          // the board was reset
)

func (o Outcome) String() string {
	switch o {
	case Picked:
		return "picked"
	case Dropped:
		return "dropped"
	case Reverted:
		return "reverted"
	case NewGame:
		return "new-game"
	default:
		return "none"
	}
}
