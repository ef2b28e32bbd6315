package ui

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ingyamilmolinar/colorball/core/engine"
	"github.com/ingyamilmolinar/colorball/core/model"
	"github.com/ingyamilmolinar/colorball/internal/audio"
	game_log "github.com/ingyamilmolinar/colorball/internal/log"
)

const WindowTitle = "Color Sorting Game"

// playSound plays a sound cue. Overridden in tests.
var playSound = audio.Play

var cueFor = map[engine.Outcome]string{
	engine.Picked:   audio.CuePick,
	engine.Dropped:  audio.CueDrop,
	engine.Reverted: audio.CueRevert,
}

// Game adapts the puzzle controller to ebiten: it turns mouse state into
// pointer events once per tick and renders the board.
type Game struct {
	ctrl     *engine.Controller
	layout   engine.Layout
	rng      model.RandomSource
	logger   *game_log.Logger
	confetti Confetti

	rodStyle    RodStyle
	buttonStyle ButtonStyle

	leftPrev bool
	lastPos  image.Point
	frame    int64
}

// New deals a fresh board using rng; a nil rng uses system entropy.
func New(rng model.RandomSource, logger *game_log.Logger) *Game {
	if rng == nil {
		rng = model.DefaultRNG()
	}
	board := model.NewBoard(rng, logger)
	layout := engine.DefaultLayout(board.NumRods())
	return &Game{
		ctrl:        engine.NewController(board, layout, logger),
		layout:      layout,
		rng:         rng,
		logger:      logger,
		rodStyle:    RodStyle{Fill: colRod, BallRadius: engine.BallRadius},
		buttonStyle: ButtonStyle{Fill: colButton, Label: colButtonText},
	}
}

func (g *Game) Controller() *engine.Controller { return g.ctrl }

func (g *Game) Layout(w, h int) (int, int) {
	return g.layout.Width, g.layout.Height
}

// pollEvents derives this frame's pointer events from the mouse state.
// The move comes first so a drop lands where the button was released.
func (g *Game) pollEvents() []engine.Event {
	x, y := cursorPosition()
	pos := image.Pt(x, y)
	pressed := isMouseButtonPressed(ebiten.MouseButtonLeft)

	var events []engine.Event
	if pos != g.lastPos && g.ctrl.State() == engine.Holding {
		events = append(events, engine.Event{Kind: engine.PointerMove, Pos: pos})
	}
	switch {
	case pressed && !g.leftPrev:
		events = append(events, engine.Event{Kind: engine.PointerDown, Pos: pos})
	case !pressed && g.leftPrev:
		events = append(events, engine.Event{Kind: engine.PointerUp, Pos: pos})
	}
	g.leftPrev = pressed
	g.lastPos = pos
	return events
}

func (g *Game) Update() error {
	if isKeyJustPressed(ebiten.KeyEscape) {
		g.logger.Infof("[GAME] Escape pressed, quitting")
		return ebiten.Termination
	}

	for _, ev := range g.pollEvents() {
		out := g.ctrl.Handle(ev)
		if out == engine.None {
			continue
		}
		g.logger.Debugf("[GAME] frame=%d %s at %v -> %s", g.frame, ev.Kind, ev.Pos, out)
		if out == engine.NewGame {
			g.confetti.Clear()
		}
		if cue, ok := cueFor[out]; ok {
			playSound(cue)
		}
	}

	if g.ctrl.Tick() {
		g.confetti.Generate(g.rng, g.layout.Width, g.layout.Height)
		playSound(audio.CueWin)
	}
	g.confetti.Update()
	g.frame++
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	fillScreen(screen, colBackground)
	board := g.ctrl.Board()

	if board.Won() {
		drawText(screen, "You Win!", g.layout.Width/2-50, g.layout.Height/4, colWinText)
		g.buttonStyle.Draw(screen, g.layout.Button, "New Game")
	}

	for i, r := range board.Rods() {
		g.rodStyle.Draw(screen, g.layout, i, r)
	}

	if h, ok := g.ctrl.Held(); ok {
		drawCircle(screen, float32(h.Pos.X), float32(h.Pos.Y), engine.BallRadius, ballColor(h.Color))
	}

	if board.Won() {
		g.confetti.Draw(screen)
	}
}
