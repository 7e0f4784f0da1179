package ui

import (
	"flowers/controller"
	"flowers/engine"
	"image"
	"image/color"
	"testing"
	"time"

	"gioui.org/f32"
	"gioui.org/io/pointer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUI(w, h int) *UI {
	e := engine.NewEngine(engine.NewBoard(w, h), engine.DefaultConfig(), engine.NewRand(3), nil)
	return New(controller.New(e), nil)
}

func TestCellAtScalesToWindow(t *testing.T) {
	ui := newTestUI(100, 50)

	x, y := ui.cellAt(f32.Point{X: 399, Y: 100}, image.Point{X: 400, Y: 200})
	assert.Equal(t, 99, x)
	assert.Equal(t, 25, y)

	x, y = ui.cellAt(f32.Point{X: 10, Y: 10}, image.Point{})
	assert.Equal(t, -1, x)
	assert.Equal(t, -1, y)
}

func TestBrushFor(t *testing.T) {
	assert.Equal(t, Idle, brushFor(0))
	assert.Equal(t, Plant, brushFor(pointer.ButtonPrimary))
	assert.Equal(t, Clear, brushFor(pointer.ButtonSecondary))
	assert.Equal(t, Clear, brushFor(pointer.ButtonPrimary|pointer.ButtonSecondary))
	assert.Equal(t, "Clear", Clear.String())
}

func TestComputeFPS(t *testing.T) {
	assert.Equal(t, 0, computeFPS(nil))
	assert.Equal(t, 50, computeFPS([]time.Duration{20 * time.Millisecond, 20 * time.Millisecond}))
}

func TestRepaintFollowsGrid(t *testing.T) {
	ui := newTestUI(10, 10)

	ui.repaint(ui.controller.Place(2, 3, engine.Color{R: 10, G: 20, B: 30}))
	assert.Equal(t, color.RGBA{R: 10, G: 20, B: 30, A: 255}, ui.surface.RGBAAt(2, 3))

	ui.repaint(ui.controller.ClearArea(2, 3, 1))
	assert.Equal(t, color.RGBA{A: 255}, ui.surface.RGBAAt(2, 3))
}

func TestStepClearsUnderCursor(t *testing.T) {
	ui := newTestUI(100, 100)
	size := image.Point{X: 100, Y: 100}
	ui.controller.Place(50, 50, engine.Color{G: 200})
	ui.controller.Place(5, 5, engine.Color{G: 100})

	ui.cursor = f32.Point{X: 50.5, Y: 50.5}
	ui.setBrush(Clear)
	ui.step(size)

	// the tick after clearing may regrow from (5,5) but cannot reach (50,50)
	assert.Equal(t, engine.Background, ui.controller.ColorAt(50, 50))
	require.Greater(t, ui.controller.Population(), 0)
	assert.Equal(t, color.RGBA{A: 255}, ui.surface.RGBAAt(50, 50))
}

func TestSurfaceStartsFromGrid(t *testing.T) {
	e := engine.NewEngine(engine.NewBoard(4, 4), engine.DefaultConfig(), engine.NewRand(3), nil)
	e.Place(1, 1, engine.Color{B: 77})

	ui := New(controller.New(e), nil)

	assert.Equal(t, color.RGBA{B: 77, A: 255}, ui.surface.RGBAAt(1, 1))
}
