// Package ui draws the rack in a Gio window and feeds pointer and tick
// events to the controller.
package ui

import (
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
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget/material"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"tilerack/controller"
	"tilerack/rack"
	"tilerack/utils"
)

const textSize = unit.Sp(24)

var theme = material.NewTheme()

// UI owns the window loop: frame events, pointer dispatch, fixed-rate
// ticks and drawing.
type UI struct {
	rack   *rack.Rack
	ctrl   *controller.Controller
	logger log.Logger
	tickHz int

	mouseLocation f32.Point
	dragStart     f32.Point
	pressed       bool
	lastPhase     DragPhase

	lastFramesDuration []time.Duration
	lastFrameTime      time.Time
}

// New creates a UI around the rack and its controller.
func New(r *rack.Rack, ctrl *controller.Controller, logger log.Logger, tickHz int) *UI {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	if tickHz <= 0 {
		tickHz = 500
	}
	return &UI{rack: r, ctrl: ctrl, logger: logger, tickHz: tickHz}
}

// Run opens the window, sized so the rack origin doubles as a margin, and
// blocks until the window is closed.
func (ui *UI) Run() {
	go func() {
		window := new(app.Window)

		bounds := ui.rack.Bounds()
		window.Option(
			app.Title("tilerack"),
			app.Size(
				unit.Dp(int(bounds.X*2+bounds.W)),
				unit.Dp(int(bounds.Y*2+bounds.H)),
			),
		)

		if err := ui.loop(window); err != nil {
			level.Error(ui.logger).Log("msg", "window closed with error", "err", err)
			os.Exit(1)
		}
		os.Exit(0)
	}()
	app.Main()
}

// tickEmitter feeds the update channel at a fixed rate, independent of the
// render frame rate.
func tickEmitter(tickChannel chan struct{}, hz int) {
	interval := time.Second / time.Duration(hz)
	for {
		tickChannel <- struct{}{}
		time.Sleep(interval)
	}
}

func (ui *UI) loop(window *app.Window) error {
	var ops op.Ops

	tag := new(bool)

	tickChannel := make(chan struct{}, 256)
	go tickEmitter(tickChannel, ui.tickHz)

	level.Info(ui.logger).Log("msg", "window loop started", "tickHz", ui.tickHz, "letters", ui.rack.Letters())

	for {
		switch e := window.Event().(type) {
		case app.DestroyEvent:
			return e.Err
		case app.FrameEvent:
			gtx := app.NewContext(&ops, e)

			// run the fixed-rate updates that came due since the last frame,
			// keeping all rack mutation on this goroutine
		drain:
			for {
				select {
				case <-tickChannel:
					ui.rack.Tick()
				default:
					break drain
				}
			}

			phase := ui.phase()
			if phase != ui.lastPhase {
				level.Debug(ui.logger).Log("msg", "drag phase changed", "phase", showDragPhase(phase))
				ui.lastPhase = phase
			}

			drawRect(gtx, 0, 0, gtx.Constraints.Max.X, gtx.Constraints.Max.Y, phaseBackground(phase))

			ui.drawRack(gtx)

			event.Op(&ops, tag)
			ui.handleEvents(e.Source, tag)

			if ui.pressed {
				d := utils.Distance(ui.dragStart, ui.mouseLocation)
				radius := int(utils.Lerp(6, 14, 0, 300, d))
				drawCircle(int(ui.mouseLocation.X), int(ui.mouseLocation.Y), gtx, slightBlue, radius)
			}

			fps := computeFPS(ui.lastFramesDuration)
			fpsLabel := material.Label(theme, textSize, fmt.Sprintf("FPS: %d", fps))
			fpsLabel.Color = maroon
			fpsLabel.Layout(gtx)

			e.Frame(gtx.Ops)

			ui.lastFramesDuration = append(ui.lastFramesDuration, time.Since(ui.lastFrameTime))
			keepFrames := 120
			if len(ui.lastFramesDuration) > keepFrames {
				ui.lastFramesDuration = ui.lastFramesDuration[len(ui.lastFramesDuration)-keepFrames:]
			}
			ui.lastFrameTime = time.Now()

			window.Invalidate()
		}
	}
}

func (ui *UI) handleEvents(source input.Source, tag *bool) {
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

		switch x.Kind {
		case pointer.Press:
			ui.pressed = true
			ui.dragStart = x.Position
			ui.mouseLocation = x.Position
			ui.ctrl.OnPointerDown(x.Position.X, x.Position.Y)
		case pointer.Move, pointer.Drag:
			ui.mouseLocation = x.Position
			ui.ctrl.OnPointerMove(x.Position.X, x.Position.Y)
		case pointer.Release:
			ui.pressed = false
			ui.ctrl.OnPointerUp(x.Position.X, x.Position.Y)
		}
	}
}

func (ui *UI) phase() DragPhase {
	if _, tile := ui.rack.DraggingTile(); tile != nil {
		return Dragging
	}
	if ui.rack.Settling() {
		return Settling
	}
	return Idle
}

func phaseBackground(phase DragPhase) color.NRGBA {
	switch phase {
	case Idle:
		return backgroundColor
	case Dragging:
		return backgroundDragColor
	case Settling:
		return backgroundSettleColor
	default:
		panic(fmt.Sprintf("Invalid drag phase: %d", phase))
	}
}

// drawRack draws the tiles back to front; DrawOrder puts the dragging tile
// last so it renders on top.
func (ui *UI) drawRack(gtx layout.Context) {
	for _, tile := range ui.rack.DrawOrder() {
		ui.drawTile(gtx, tile)
	}
}

func (ui *UI) drawTile(gtx layout.Context, tile *rack.Tile) {
	cfg := ui.rack.Config()
	x, y := int(tile.Pos.X), int(tile.Pos.Y)
	width, height := int(cfg.TileWidth), int(cfg.TileHeight)

	fill := tileColor
	if tile.Dragging {
		fill = tileDragColor
	}
	drawRect(gtx, x, y, width, height, fill)

	// center the letter in the tile
	stack := op.Offset(image.Point{X: x, Y: y + (height-gtx.Sp(textSize))/2}).Push(gtx.Ops)
	lgtx := gtx
	lgtx.Constraints.Min.X = width
	lgtx.Constraints.Max.X = width
	letter := material.Label(theme, textSize, string(tile.Letter))
	letter.Color = letterColor
	letter.Alignment = text.Middle
	letter.Layout(lgtx)
	stack.Pop()
}

func drawRect(gtx layout.Context, x, y, width, height int, color color.NRGBA) {
	if width <= 0 || height <= 0 {
		return
	}

	// offset
	stack := op.Offset(image.Point{X: x, Y: y}).Push(gtx.Ops)
	defer stack.Pop()

	paint.FillShape(gtx.Ops, color, clip.Rect{Max: image.Point{X: width, Y: height}}.Op())
}

func drawCircle(
	x, y int,
	gtx layout.Context,
	color color.NRGBA,
	radius int,
) {
	// draw the circle using clip
	ellipse := clip.Ellipse{
		// drawing with center at the coordinates
		Min: image.Point{X: x - radius, Y: y - radius},
		Max: image.Point{X: x + radius, Y: y + radius},
	}

	paint.FillShape(gtx.Ops, color, ellipse.Op(gtx.Ops))
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
