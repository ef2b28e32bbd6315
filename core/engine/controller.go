package engine

import (
	"fmt"
	"image"

	"github.com/ingyamilmolinar/colorball/core/model"
	game_log "github.com/ingyamilmolinar/colorball/internal/log"
)

// State is the controller's drag state.
type State int

const (
	Idle State = iota
	Holding
)

func (s State) String() string {
	if s == Holding {
		return "holding"
	}
	return "idle"
}

// Held is the in-flight ball: taken off Source and following the pointer.
type Held struct {
	Color  model.Color
	Source int
	Pos    image.Point
}

// Controller turns pointer events into moves on a Board. The ball is removed
// from its rod at pick-up, so mid-drag the source rod is one ball short.
type Controller struct {
	board  *model.Board
	layout Layout
	logger *game_log.Logger

	state State
	held  Held
}

func NewController(board *model.Board, layout Layout, logger *game_log.Logger) *Controller {
	return &Controller{board: board, layout: layout, logger: logger}
}

func (c *Controller) Board() *model.Board { return c.board }
func (c *Controller) Layout() Layout      { return c.layout }
func (c *Controller) State() State        { return c.state }

// Held returns the in-flight ball while holding.
func (c *Controller) Held() (Held, bool) {
	return c.held, c.state == Holding
}

// Handle applies one event. A pointer-up always leaves every ball on a rod.
func (c *Controller) Handle(ev Event) Outcome {
	switch c.state {
	case Idle:
		if ev.Kind == PointerDown {
			return c.pointerDown(ev.Pos)
		}
	case Holding:
		switch ev.Kind {
		case PointerMove:
			c.held.Pos = ev.Pos
		case PointerUp:
			return c.pointerUp(ev.Pos)
		}
	}
	return None
}

func (c *Controller) pointerDown(p image.Point) Outcome {
	if c.board.Won() {
		if c.layout.InButton(p) {
			c.board.Setup()
			c.logger.Infof("[CTRL] New game, round %d", c.board.Round())
			return NewGame
		}
		return None
	}
	i, ok := c.layout.RodAt(p)
	if !ok {
		return None
	}
	col := c.board.PickUp(i)
	if col == model.NoColor {
		return None
	}
	c.state = Holding
	c.held = Held{Color: col, Source: i, Pos: p}
	c.logger.Debugf("[CTRL] Holding %s from rod %d", col, i)
	return Picked
}

func (c *Controller) pointerUp(p image.Point) Outcome {
	h := c.held
	c.state = Idle
	c.held = Held{}

	if i, ok := c.layout.RodAt(p); ok && c.board.TryDrop(i, h.Color) {
		c.logger.Debugf("[CTRL] Dropped %s on rod %d", h.Color, i)
		return Dropped
	}
	if !c.board.TryDrop(h.Source, h.Color) {
		// The source rod had room a moment ago; failing here means a ball was lost.
		c.logger.Errorf("[CTRL] Could not return %s to rod %d: %s", h.Color, h.Source, c.board)
		panic(fmt.Sprintf("engine: ball %s lost returning to rod %d", h.Color, h.Source))
	}
	c.logger.Debugf("[CTRL] Returned %s to rod %d", h.Color, h.Source)
	return Reverted
}

// Tick recomputes the win condition; it reports the frame the round is won.
func (c *Controller) Tick() bool {
	return c.board.Tick()
}
