package ui

import (
	"flowers/controller"
	"flowers/engine"
	"flowers/snapshot"
	"fmt"
	"image"
	"image/color"
	"os"
	"time"

	"gioui.org/app"
	"gioui.org/f32"
	"gioui.org/io/event"
	"gioui.org/io/input"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// ui constants
const AppTitle = "Flower automaton"
const keepFrames = 120

var theme = material.NewTheme()

type UI struct {
	controller         *controller.Controller
	logger             log.Logger
	surface            *image.RGBA
	brush              Brush
	cursor             f32.Point
	lastFramesDuration []time.Duration
	lastFrameTime      time.Time
}

func New(ctrl *controller.Controller, logger log.Logger) *UI {
	if logger == nil {
		logger = log.NewNopLogger()
	}

	return &UI{
		controller:    ctrl,
		logger:        log.With(logger, "component", "ui"),
		surface:       snapshot.Image(ctrl.Snapshot()),
		brush:         Idle,
		lastFrameTime: time.Now(),
	}
}

// repaint copies the colors of changed cells into the surface.
func (ui *UI) repaint(changed []engine.Coord) {
	for _, c := range changed {
		ui.surface.SetRGBA(c.X, c.Y, snapshot.RGBA(ui.controller.ColorAt(c.X, c.Y)))
	}
}

// cellAt converts a window position to grid coordinates. The result may be off the board.
func (ui *UI) cellAt(pos f32.Point, size image.Point) (int, int) {
	if size.X <= 0 || size.Y <= 0 {
		return -1, -1
	}

	bounds := ui.surface.Bounds()
	x := int(pos.X * float32(bounds.Dx()) / float32(size.X))
	y := int(pos.Y * float32(bounds.Dy()) / float32(size.Y))

	return x, y
}

func (ui *UI) setBrush(b Brush) {
	if b == ui.brush {
		return
	}
	level.Debug(ui.logger).Log("msg", "brush changed", "from", ui.brush, "to", b)
	ui.brush = b
}

func (ui *UI) handleEvents(source input.Source, tag *bool, size image.Point) {
	for {
		ev, ok := source.Event(pointer.Filter{
			Target: tag,
			Kinds:  pointer.Move | pointer.Press | pointer.Release | pointer.Drag,
		})

		if !ok {
			break
		}

		x, ok := ev.(pointer.Event)
		if !ok {
			continue
		}

		ui.cursor = x.Position

		if x.Kind == pointer.Press && x.Buttons.Contain(pointer.ButtonPrimary) {
			cx, cy := ui.cellAt(x.Position, size)
			ui.repaint(ui.controller.PlaceRandom(cx, cy))
		}

		ui.setBrush(brushFor(x.Buttons))
	}
}

// step applies the held brush and advances the simulation by one tick.
func (ui *UI) step(size image.Point) {
	if ui.brush == Clear {
		cx, cy := ui.cellAt(ui.cursor, size)
		ui.repaint(ui.controller.Clear(cx, cy))
	}

	ui.repaint(ui.controller.Tick())
}

func (ui *UI) draw(window *app.Window) error {
	var ops op.Ops

	tag := new(bool)

	for {
		switch e := window.Event().(type) {
		case app.DestroyEvent:
			return e.Err
		case app.FrameEvent:
			gtx := app.NewContext(&ops, e)
			size := gtx.Constraints.Max

			ui.handleEvents(e.Source, tag, size)
			ui.step(size)

			ui.drawGrid(gtx)

			if ui.brush == Clear {
				ui.drawClearArea(gtx, size)
			}

			// register for pointer input over the whole window
			area := clip.Rect(image.Rectangle{Max: size}).Push(gtx.Ops)
			event.Op(gtx.Ops, tag)
			area.Pop()

			ui.drawStats(gtx)

			e.Frame(gtx.Ops)

			ui.updateFPS()

			window.Invalidate()
		}
	}
}

func (ui *UI) drawGrid(gtx layout.Context) {
	src := paint.NewImageOp(ui.surface)
	src.Filter = paint.FilterNearest

	widget.Image{Src: src, Fit: widget.Fill}.Layout(gtx)
}

func (ui *UI) drawClearArea(gtx layout.Context, size image.Point) {
	bounds := ui.surface.Bounds()
	// anything wider than the board covers the whole window anyway
	radius := min(ui.controller.Config().ClearRadius, max(bounds.Dx(), bounds.Dy()))
	cx, cy := ui.cellAt(ui.cursor, size)

	toWindow := func(x, y int) image.Point {
		return image.Point{
			X: x * size.X / bounds.Dx(),
			Y: y * size.Y / bounds.Dy(),
		}
	}

	drawRect(gtx, image.Rectangle{
		Min: toWindow(cx-radius, cy-radius),
		Max: toWindow(cx+radius+1, cy+radius+1),
	}.Intersect(image.Rectangle{Max: size}), slightRed)
}

func (ui *UI) drawStats(gtx layout.Context) {
	text := fmt.Sprintf("FPS: %d  Flowers: %d  Brush: %s",
		computeFPS(ui.lastFramesDuration), ui.controller.Population(), ui.brush)

	label := material.Label(theme, unit.Sp(16), text)
	label.Color = whiteColor

	macro := op.Record(gtx.Ops)
	dims := label.Layout(gtx)
	call := macro.Stop()

	drawRect(gtx, image.Rectangle{Max: dims.Size}, slightDark)
	call.Add(gtx.Ops)
}

func (ui *UI) updateFPS() {
	ui.lastFramesDuration = append(ui.lastFramesDuration, time.Since(ui.lastFrameTime))

	if len(ui.lastFramesDuration) > keepFrames {
		ui.lastFramesDuration = ui.lastFramesDuration[len(ui.lastFramesDuration)-keepFrames:]
	}

	ui.lastFrameTime = time.Now()
}

func computeFPS(lastFramesDuration []time.Duration) int {
	if len(lastFramesDuration) == 0 {
		return 0
	}

	sum := time.Duration(0)

	for _, duration := range lastFramesDuration {
		sum += duration
	}

	avg := sum / time.Duration(len(lastFramesDuration))

	if avg == 0 {
		return 0
	}

	return int(time.Second / avg)
}

func drawRect(gtx layout.Context, rect image.Rectangle, color color.NRGBA) {
	if rect.Empty() {
		return
	}

	paint.FillShape(gtx.Ops, color, clip.Rect(rect).Op())
}

func (ui *UI) run(window *app.Window) error {
	return ui.draw(window)
}

// Run opens the window and drives the simulation one tick per frame. It never returns.
func (ui *UI) Run() {
	w, h := ui.controller.Dimensions()

	go func() {
		window := new(app.Window)

		window.Option(
			app.Title(AppTitle),
			app.Size(unit.Dp(w), unit.Dp(h)),
		)

		if err := ui.run(window); err != nil {
			level.Error(ui.logger).Log("msg", "window closed", "err", err)
			os.Exit(1)
		}
		os.Exit(0)
	}()
	app.Main()
}
