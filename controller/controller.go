package controller

import (
	"flowers/engine"
	"sync"
)

// Controller serializes access to an engine so the window loop and any other
// goroutine can share one grid.
type Controller struct {
	mu     sync.Mutex
	engine *engine.Engine
}

func New(e *engine.Engine) *Controller {
	return &Controller{engine: e}
}

func (c *Controller) Dimensions() (int, int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.engine.Dimensions()
}

func (c *Controller) ColorAt(x, y int) engine.Color {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.engine.ColorAt(x, y)
}

// Place ignores positions off the board instead of panicking, since they
// usually come straight from pointer input.
func (c *Controller) Place(x, y int, color engine.Color) []engine.Coord {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.engine.Board().InBounds(x, y) {
		return nil
	}
	return c.engine.Place(x, y, color)
}

// PlaceRandom places a randomly colored flower. Off-board positions are ignored.
func (c *Controller) PlaceRandom(x, y int) []engine.Coord {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.engine.Board().InBounds(x, y) {
		return nil
	}
	return c.engine.PlaceRandom(x, y)
}

func (c *Controller) ClearArea(x, y, radius int) []engine.Coord {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.engine.ClearArea(x, y, radius)
}

// Clear wipes the configured default square around (x, y).
func (c *Controller) Clear(x, y int) []engine.Coord {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.engine.ClearArea(x, y, c.engine.Config().ClearRadius)
}

func (c *Controller) Seed(n int) []engine.Coord {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.engine.Seed(n)
}

func (c *Controller) Tick() []engine.Coord {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.engine.Tick()
}

func (c *Controller) Population() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.engine.Population()
}

func (c *Controller) Ticks() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.engine.Ticks()
}

// Snapshot returns a copy of the grid that is safe to read without the lock.
func (c *Controller) Snapshot() *engine.Board {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.engine.Board().Clone()
}

func (c *Controller) Config() engine.Config {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.engine.Config()
}
