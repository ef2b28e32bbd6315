package model

// Color is one ball color. The zero value NoColor is the "no ball" sentinel
// returned by Pop and PickUp on empty rods.
type Color uint8

const (
	NoColor Color = iota
	Red
	Green
	Blue
	Yellow
	Orange
)

// AllColors is the fixed palette each round samples from.
var AllColors = []Color{Red, Green, Blue, Yellow, Orange}

// Valid reports whether c is one of AllColors.
func (c Color) Valid() bool {
	return c >= Red && c <= Orange
}

func (c Color) String() string {
	switch c {
	case Red:
		return "red"
	case Green:
		return "green"
	case Blue:
		return "blue"
	case Yellow:
		return "yellow"
	case Orange:
		return "orange"
	default:
		return "none"
	}
}

// Rune is the single-letter form used by Rod.String.
func (c Color) Rune() rune {
	switch c {
	case Red:
		return 'R'
	case Green:
		return 'G'
	case Blue:
		return 'B'
	case Yellow:
		return 'Y'
	case Orange:
		return 'O'
	default:
		return ' '
	}
}
