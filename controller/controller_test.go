package controller

import (
	"testing"

	"tilerack/rack"
)

type countingFeedback struct {
	pickups int
	drops   int
}

func (f *countingFeedback) Pickup() { f.pickups++ }
func (f *countingFeedback) Drop()   { f.drops++ }

func newTestRack(t *testing.T) *rack.Rack {
	t.Helper()
	cfg := rack.Config{TileWidth: 50, TileHeight: 50, Spacing: 10, AnimationSteps: 0}
	r, err := cfg.New(0, 0, "AEINRST")
	if err != nil {
		t.Fatalf("unwanted error: %v", err)
	}
	return r
}

func TestOnPointerDownHitTest(t *testing.T) {
	hitTests := []struct {
		x, y     float32
		wantSlot int // -1 when no drag should start
	}{
		{x: 10, y: 10, wantSlot: 0},
		{x: 49, y: 49, wantSlot: 0},
		{x: 55, y: 10, wantSlot: -1}, // inter-tile gap
		{x: 60, y: 10, wantSlot: 1},
		{x: 190, y: 25, wantSlot: 3},
		{x: 10, y: 60, wantSlot: -1}, // below the rack
		{x: -5, y: 10, wantSlot: -1},
		{x: 400, y: 10, wantSlot: 6},
	}
	for i, test := range hitTests {
		r := newTestRack(t)
		feedback := &countingFeedback{}
		c := New(r, nil, feedback)
		c.OnPointerDown(test.x, test.y)
		slot, _ := r.DraggingTile()
		if slot != test.wantSlot {
			t.Errorf("Test %v: press at (%v, %v): wanted slot %v dragging, got %v", i, test.x, test.y, test.wantSlot, slot)
		}
		wantPickups := 1
		if test.wantSlot == -1 {
			wantPickups = 0
		}
		if feedback.pickups != wantPickups {
			t.Errorf("Test %v: wanted %v pickup cues, got %v", i, wantPickups, feedback.pickups)
		}
	}
}

func TestPointerSequenceReorders(t *testing.T) {
	r := newTestRack(t)
	feedback := &countingFeedback{}
	c := New(r, nil, feedback)

	// grab the N tile and carry it to the far left
	c.OnPointerDown(190, 10)
	c.OnPointerMove(120, 15)
	c.OnPointerMove(20, 10)
	c.OnPointerUp(20, 10)

	if got := r.Letters(); got != "NAEIRST" {
		t.Errorf("wanted order %q, got %q", "NAEIRST", got)
	}
	if slot, _ := r.DraggingTile(); slot != -1 {
		t.Errorf("slot %v still dragging after release", slot)
	}
	if feedback.pickups != 1 || feedback.drops != 1 {
		t.Errorf("wanted 1 pickup and 1 drop cue, got %v and %v", feedback.pickups, feedback.drops)
	}
}

func TestPointerUpWithoutDragIsNoop(t *testing.T) {
	r := newTestRack(t)
	feedback := &countingFeedback{}
	c := New(r, nil, feedback)
	c.OnPointerMove(100, 100)
	c.OnPointerUp(100, 100)
	if got := r.Letters(); got != "AEINRST" {
		t.Errorf("order changed to %q without a drag", got)
	}
	if feedback.drops != 0 {
		t.Errorf("wanted no drop cue, got %v", feedback.drops)
	}
}

func TestOnPointerDownOnMovedTile(t *testing.T) {
	// hit-testing follows the actual tile rectangle, not the slot column
	r := newTestRack(t)
	r.Tiles()[2].SetPos(300, 100)
	c := New(r, nil, nil)
	c.OnPointerDown(310, 110)
	slot, tile := r.DraggingTile()
	if slot != 2 || tile == nil {
		t.Fatalf("wanted slot 2 dragging, got %v", slot)
	}
	c.OnPointerDown(125, 10) // the vacated column finds nothing
	if dragging, _ := r.DraggingTile(); dragging != 2 {
		t.Errorf("wanted slot 2 to stay the dragging tile, got %v", dragging)
	}
}
