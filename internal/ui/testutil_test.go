package ui

import (
	"io"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ingyamilmolinar/colorball/core/engine"
	"github.com/ingyamilmolinar/colorball/core/model"
	game_log "github.com/ingyamilmolinar/colorball/internal/log"
)

var testLogger = game_log.New(io.Discard, game_log.LevelError)

func init() {
	// Never open an audio device from tests.
	playSound = func(string) {}
}

// frame runs one Update with the cursor at (x,y) and the left button in the
// given state.
func frame(g *Game, x, y int, pressed bool) error {
	restore := SetInputForTest(
		func() (int, int) { return x, y },
		func(b ebiten.MouseButton) bool { return pressed && b == ebiten.MouseButtonLeft },
		func(ebiten.Key) bool { return false },
	)
	defer restore()
	return g.Update()
}

// drag presses at (x1,y1), moves to (x2,y2) and releases there.
func drag(g *Game, x1, y1, x2, y2 int) {
	frame(g, x1, y1, true)
	frame(g, x2, y2, true)
	frame(g, x2, y2, false)
}

// click simulates a mouse click at (x,y) and releases it on the next frame.
func click(g *Game, x, y int) {
	frame(g, x, y, true)
	frame(g, x, y, false)
}

// captureSounds records cues instead of playing them.
func captureSounds() (*[]string, func()) {
	var got []string
	orig := playSound
	playSound = func(id string) { got = append(got, id) }
	return &got, func() { playSound = orig }
}

// almostWonGame returns a game one move from winning: rod 4 holds the last yellow.
func almostWonGame(t interface{ Fatalf(string, ...any) }) *Game {
	g := New(model.NewSeededRNG(1), testLogger)
	b, err := model.NewBoardWith([][]model.Color{
		{model.Red, model.Red, model.Red, model.Red, model.Red},
		{model.Green, model.Green, model.Green, model.Green, model.Green},
		{model.Blue, model.Blue, model.Blue, model.Blue, model.Blue},
		{model.Yellow, model.Yellow, model.Yellow, model.Yellow},
		{model.Yellow},
	}, testLogger)
	if err != nil {
		t.Fatalf("board: %v", err)
	}
	g.ctrl = engine.NewController(b, g.layout, testLogger)
	return g
}
