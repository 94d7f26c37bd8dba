// Package rack implements a horizontal rack of letter tiles that can be
// dragged into a new order, with the other tiles sliding aside to preview
// the drop and animating toward their slots a fixed number of steps per
// tick.
package rack

import (
	"errors"
	"fmt"

	"gioui.org/f32"
)

// ErrDragInProgress is returned by BeginDrag while another tile is still
// being dragged.
var ErrDragInProgress = errors.New("drag already in progress")

// Config holds the layout and timing constants shared by a whole rack.
type Config struct {
	TileWidth      float32
	TileHeight     float32
	Spacing        float32
	AnimationSteps int
}

// DefaultConfig returns the standard tile geometry.
func DefaultConfig() Config {
	return Config{
		TileWidth:      50,
		TileHeight:     50,
		Spacing:        10,
		AnimationSteps: 100,
	}
}

// Rect is an axis-aligned rectangle in rack coordinates.
type Rect struct {
	X, Y, W, H float32
}

// Contains reports whether the point lies inside the rectangle.
func (r Rect) Contains(x, y float32) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Rack is an ordered, fixed-size collection of tile slots. Slot i rests at
// origin.X + i*(TileWidth+Spacing); reorders permute the sequence and
// never add or remove tiles.
type Rack struct {
	origin f32.Point
	tiles  []*Tile
	cfg    Config
}

// New creates a Rack anchored at (x, y) with one tile per letter, filling
// slots left to right.
func (cfg Config) New(x, y float32, letters string) (*Rack, error) {
	if letters == "" {
		return nil, errors.New("rack needs at least one letter")
	}
	if cfg.TileWidth <= 0 {
		return nil, fmt.Errorf("invalid tile width %v", cfg.TileWidth)
	}
	r := &Rack{origin: f32.Point{X: x, Y: y}, cfg: cfg}
	for i, letter := range []rune(letters) {
		r.tiles = append(r.tiles, newTile(r.slotX(i), y, letter))
	}
	return r, nil
}

func (r *Rack) slotX(i int) float32 {
	return r.origin.X + float32(i)*(r.cfg.TileWidth+r.cfg.Spacing)
}

// Size returns the number of slots.
func (r *Rack) Size() int {
	return len(r.tiles)
}

// Config returns the rack's layout constants.
func (r *Rack) Config() Config {
	return r.cfg
}

// Origin returns the anchor of slot 0.
func (r *Rack) Origin() f32.Point {
	return r.origin
}

// Tiles returns the tiles in slot order.
func (r *Rack) Tiles() []*Tile {
	return r.tiles
}

// Letters returns the rack's letters in slot order.
func (r *Rack) Letters() string {
	letters := make([]rune, len(r.tiles))
	for i, t := range r.tiles {
		letters[i] = t.Letter
	}
	return string(letters)
}

// DraggingTile returns the dragging tile and its slot index, or (-1, nil).
// If more than one tile is ever marked dragging, the first in slot order
// wins; that is a fallback, not a supported state.
func (r *Rack) DraggingTile() (int, *Tile) {
	for i, t := range r.tiles {
		if t.Dragging {
			return i, t
		}
	}
	return -1, nil
}

// TargetIndex maps an x coordinate to the slot whose center is nearest,
// clamped to [0, Size()-1].
func (r *Rack) TargetIndex(x float32) int {
	i := int((x - r.origin.X + r.cfg.TileWidth/2) / (r.cfg.TileWidth + r.cfg.Spacing))
	if i < 0 {
		i = 0
	}
	if i > len(r.tiles)-1 {
		i = len(r.tiles) - 1
	}
	return i
}

// BeginDrag marks the tile at slot i as dragging and records the grab
// offset from the pointer. Rejects an out-of-range slot and rejects a
// second concurrent drag.
func (r *Rack) BeginDrag(i int, px, py float32) error {
	if i < 0 || i >= len(r.tiles) {
		return fmt.Errorf("slot %d out of range [0, %d)", i, len(r.tiles))
	}
	if j, _ := r.DraggingTile(); j >= 0 {
		return ErrDragInProgress
	}
	t := r.tiles[i]
	t.Dragging = true
	t.grab = &f32.Point{X: px - t.Pos.X, Y: py - t.Pos.Y}
	t.anim = nil
	return nil
}

// DragTo moves the dragging tile so it keeps its grab offset from the
// pointer. No-op without an active drag.
func (r *Rack) DragTo(px, py float32) {
	_, t := r.DraggingTile()
	if t == nil {
		return
	}
	t.SetPos(px-t.grab.X, py-t.grab.Y)
}

// EndDrag drops the dragging tile into the slot under its current
// position, moving it there in the sequence and shifting the tiles in
// between by one slot. Reports the move as (from, to); ok is false when no
// drag was active. The dropped tile animates home on subsequent ticks.
func (r *Rack) EndDrag() (from, to int, ok bool) {
	i, t := r.DraggingTile()
	if t == nil {
		return 0, 0, false
	}
	t.Dragging = false
	t.grab = nil
	to = r.TargetIndex(t.Pos.X)
	switch {
	case to < i:
		copy(r.tiles[to+1:i+1], r.tiles[to:i])
	case to > i:
		copy(r.tiles[i:to], r.tiles[i+1:to+1])
	}
	r.tiles[to] = t
	return i, to, true
}

// Tick advances every non-dragging tile one animation frame toward its
// current target. While a drag is live, the target of each tile between
// the drag's origin slot and its prospective landing slot is displaced by
// one slot, re-evaluated every tick, so the rack previews the drop.
func (r *Rack) Tick() {
	from, dragged := r.DraggingTile()
	to := -1
	if dragged != nil {
		to = r.TargetIndex(dragged.Pos.X)
	}
	slot := r.cfg.TileWidth + r.cfg.Spacing
	for i, t := range r.tiles {
		if t.Dragging {
			continue
		}
		x := r.slotX(i)
		if dragged != nil {
			if to <= i && i <= from {
				// in the gap the dragged tile would pass through moving left
				x += slot
			} else if from <= i && i <= to {
				x -= slot
			}
		}
		t.animateToward(f32.Point{X: x, Y: r.origin.Y}, r.cfg.AnimationSteps)
	}
}

// Settling reports whether any non-dragging tile is away from its resting
// slot position.
func (r *Rack) Settling() bool {
	for i, t := range r.tiles {
		if t.Dragging {
			continue
		}
		if t.Pos != (f32.Point{X: r.slotX(i), Y: r.origin.Y}) {
			return true
		}
	}
	return false
}

// DrawOrder returns the tiles with the dragging tile last, so a renderer
// iterating in order draws it on top.
func (r *Rack) DrawOrder() []*Tile {
	out := make([]*Tile, 0, len(r.tiles))
	var dragged *Tile
	for _, t := range r.tiles {
		if t.Dragging {
			dragged = t
			continue
		}
		out = append(out, t)
	}
	if dragged != nil {
		out = append(out, dragged)
	}
	return out
}

// Bounds returns the rack's overall rectangle, for hit-testing the rack as
// a whole.
func (r *Rack) Bounds() Rect {
	return Rect{
		X: r.origin.X,
		Y: r.origin.Y,
		W: float32(len(r.tiles))*(r.cfg.TileWidth+r.cfg.Spacing) - r.cfg.Spacing,
		H: r.cfg.TileHeight,
	}
}

// BoundsOf returns the actual rectangle of the tile at slot i, which may
// be away from its resting position while dragged or settling.
func (r *Rack) BoundsOf(i int) Rect {
	t := r.tiles[i]
	return Rect{X: t.Pos.X, Y: t.Pos.Y, W: r.cfg.TileWidth, H: r.cfg.TileHeight}
}
