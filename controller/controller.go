// Package controller translates raw pointer events into rack commands.
package controller

import (
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"tilerack/rack"
)

// Feedback receives drag cues, typically to play a sound.
type Feedback interface {
	Pickup()
	Drop()
}

// Controller owns the pointer-to-rack translation. The hosting event loop
// calls OnPointerDown/Move/Up with absolute coordinates in the same space
// as tile positions.
type Controller struct {
	rack     *rack.Rack
	logger   log.Logger
	feedback Feedback
}

// New creates a Controller. logger and feedback may be nil.
func New(r *rack.Rack, logger log.Logger, feedback Feedback) *Controller {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	return &Controller{rack: r, logger: logger, feedback: feedback}
}

// OnPointerDown hit-tests the press against the actual tile rectangles and
// starts a drag on the tile it finds. A press on the inter-tile spacing
// finds no tile and does nothing.
func (c *Controller) OnPointerDown(x, y float32) {
	for i := 0; i < c.rack.Size(); i++ {
		if !c.rack.BoundsOf(i).Contains(x, y) {
			continue
		}
		if err := c.rack.BeginDrag(i, x, y); err != nil {
			level.Warn(c.logger).Log("msg", "drag rejected", "slot", i, "err", err)
			return
		}
		level.Debug(c.logger).Log("msg", "drag begin", "slot", i, "x", x, "y", y)
		if c.feedback != nil {
			c.feedback.Pickup()
		}
		return
	}
}

// OnPointerMove keeps the dragged tile under the pointer. No-op without an
// active drag.
func (c *Controller) OnPointerMove(x, y float32) {
	c.rack.DragTo(x, y)
}

// OnPointerUp drops the dragged tile at its current position and commits
// the reorder. No-op without an active drag.
func (c *Controller) OnPointerUp(x, y float32) {
	from, to, ok := c.rack.EndDrag()
	if !ok {
		return
	}
	level.Debug(c.logger).Log("msg", "drag commit", "from", from, "to", to, "order", c.rack.Letters())
	if c.feedback != nil {
		c.feedback.Drop()
	}
}
