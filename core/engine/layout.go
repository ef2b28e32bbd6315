package engine

import "image"

// Default screen geometry, in pixels.
const (
	ScreenWidth  = 600
	ScreenHeight = 600
	BallRadius   = 20
	RodWidth     = 10
	RodHeight    = 200
	RodSpacing   = 100
)

// Layout maps screen points to rods and to the New Game button.
type Layout struct {
	Width, Height int
	RodCount      int
	RodTop        int
	Button        image.Rectangle
}

// DefaultLayout returns the geometry for n rods on the default screen.
func DefaultLayout(n int) Layout {
	return Layout{
		Width:    ScreenWidth,
		Height:   ScreenHeight,
		RodCount: n,
		RodTop:   ScreenHeight / 2,
		Button:   image.Rect(ScreenWidth/2-60, ScreenHeight/2, ScreenWidth/2+60, ScreenHeight/2+50),
	}
}

// RodX is the left edge of rod i.
func (l Layout) RodX(i int) int {
	return RodSpacing + i*RodSpacing
}

// RodRect is the drawn body of rod i.
func (l Layout) RodRect(i int) image.Rectangle {
	x := l.RodX(i)
	return image.Rect(x, l.RodTop, x+RodWidth, l.RodTop+RodHeight)
}

// RodAt returns the rod whose hit band contains p. A band spans the rod's
// x-extent, edges included, over the full screen height.
func (l Layout) RodAt(p image.Point) (int, bool) {
	for i := 0; i < l.RodCount; i++ {
		x := l.RodX(i)
		if p.X >= x && p.X <= x+RodWidth {
			return i, true
		}
	}
	return -1, false
}

// InButton reports whether p hits the New Game button.
func (l Layout) InButton(p image.Point) bool {
	return p.In(l.Button)
}

// BallCenter is where the ball in the given slot (0 = bottom) of rod i is drawn.
func (l Layout) BallCenter(i, slot int) image.Point {
	return image.Pt(l.RodX(i)+RodWidth/2, l.RodTop+RodHeight-(slot+1)*BallRadius*2)
}
