package engine

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRodAtBands(t *testing.T) {
	l := DefaultLayout(5)
	for i := 0; i < 5; i++ {
		x := l.RodX(i)
		for _, px := range []int{x, x + RodWidth/2, x + RodWidth} {
			got, ok := l.RodAt(image.Pt(px, 0))
			assert.True(t, ok, "x=%d", px)
			assert.Equal(t, i, got, "x=%d", px)
			got, ok = l.RodAt(image.Pt(px, ScreenHeight-1))
			assert.True(t, ok)
			assert.Equal(t, i, got, "band spans full height")
		}
		_, ok := l.RodAt(image.Pt(x-1, 300))
		assert.False(t, ok, "left of rod %d", i)
		_, ok = l.RodAt(image.Pt(x+RodWidth+1, 300))
		assert.False(t, ok, "right of rod %d", i)
	}
}

func TestInButton(t *testing.T) {
	l := DefaultLayout(5)
	assert.True(t, l.InButton(image.Pt(240, 300)))
	assert.True(t, l.InButton(image.Pt(359, 349)))
	assert.False(t, l.InButton(image.Pt(360, 320)))
	assert.False(t, l.InButton(image.Pt(250, 299)))
}

func TestBallCenterStacksUpward(t *testing.T) {
	l := DefaultLayout(5)
	bottom := l.BallCenter(0, 0)
	assert.Equal(t, image.Pt(105, 460), bottom)
	assert.Equal(t, bottom.Y-2*BallRadius, l.BallCenter(0, 1).Y)
}
