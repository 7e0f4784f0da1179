package engine

import (
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

/**
 * Flower growth engine (only the simulation, no windowing)
 */

type Engine struct {
	board      *Board
	config     Config
	rng        Rand
	logger     log.Logger
	population int
	ticks      uint64
}

func NewEngine(board *Board, config Config, rng Rand, logger log.Logger) *Engine {
	if logger == nil {
		logger = log.NewNopLogger()
	}

	return &Engine{
		board:      board,
		config:     config,
		rng:        rng,
		logger:     log.With(logger, "component", "engine"),
		population: board.Population(),
	}
}

// Board exposes the grid for reads. Writes should go through the engine so
// the population stays in sync.
func (e *Engine) Board() *Board {
	return e.board
}

func (e *Engine) Config() Config {
	return e.config
}

func (e *Engine) Dimensions() (int, int) {
	return e.board.Width(), e.board.Height()
}

func (e *Engine) ColorAt(x, y int) Color {
	return e.board.ColorAt(x, y)
}

func (e *Engine) Population() int {
	return e.population
}

func (e *Engine) Ticks() uint64 {
	return e.ticks
}

// Place puts a flower at (x, y). The position must be on the board.
func (e *Engine) Place(x, y int, color Color) []Coord {
	cell := e.board.Cell(x, y)
	if cell.IsEmpty() {
		e.population++
	}
	*cell = Flower(color)

	level.Debug(e.logger).Log("msg", "placed flower", "x", x, "y", y, "color", color)

	return []Coord{{X: x, Y: y}}
}

// PlaceRandom places a flower with a color drawn from the engine's generator.
func (e *Engine) PlaceRandom(x, y int) []Coord {
	return e.Place(x, y, RandomColor(e.rng))
}

// ClearArea empties the (2*radius+1) square centred on (cx, cy), clipped to
// the board. Every on-board position in the square is reported, empty or not.
func (e *Engine) ClearArea(cx, cy, radius int) []Coord {
	var changed []Coord

	x0, x1 := clipSpan(cx, radius, e.board.Width())
	y0, y1 := clipSpan(cy, radius, e.board.Height())

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			cell := e.board.Cell(x, y)
			if !cell.IsEmpty() {
				e.population--
			}
			*cell = Empty
			changed = append(changed, Coord{X: x, Y: y})
		}
	}

	level.Debug(e.logger).Log("msg", "cleared area", "x", cx, "y", cy, "radius", radius, "cells", len(changed))

	return changed
}

// Seed places n randomly colored flowers at random positions.
func (e *Engine) Seed(n int) []Coord {
	changed := make([]Coord, 0, n)

	for i := 0; i < n; i++ {
		x := e.rng.IntN(e.board.Width())
		y := e.rng.IntN(e.board.Height())
		changed = append(changed, e.PlaceRandom(x, y)...)
	}

	return changed
}

/*
Tick samples IterationsPerTick random positions. Every sampled flower tries
to spread a mutated copy of its color into each empty orthogonal neighbour
(left, right, up, down). Occupied cells are never overwritten and nothing dies.
*/
func (e *Engine) Tick() []Coord {
	var changed []Coord

	for i := 0; i < e.config.IterationsPerTick; i++ {
		x := e.rng.IntN(e.board.Width())
		y := e.rng.IntN(e.board.Height())

		changed = e.spread(Coord{X: x, Y: y}, changed)
	}

	e.ticks++
	e.population += len(changed)

	level.Debug(e.logger).Log("msg", "tick", "tick", e.ticks, "grown", len(changed), "population", e.population)

	return changed
}

func (e *Engine) spread(from Coord, changed []Coord) []Coord {
	parent, ok := e.board.At(from.X, from.Y).Color()
	if !ok {
		return changed
	}

	for _, dir := range Directions {
		n := GetNeighbor(dir, from)
		if !e.board.InBounds(n.X, n.Y) {
			continue
		}

		neighbor := e.board.Cell(n.X, n.Y)
		if !neighbor.IsEmpty() {
			continue
		}

		*neighbor = Flower(parent.Mutate(e.rng, e.config.MutationDelta))
		changed = append(changed, n)
	}

	return changed
}
