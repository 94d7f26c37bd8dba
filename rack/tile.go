package rack

import "gioui.org/f32"

// Tile is a single draggable letter. All policy lives on the Rack; a Tile
// only stores position, identity and drag/animation state.
type Tile struct {
	Pos      f32.Point
	Letter   rune
	Dragging bool

	// grab is the offset between the pointer and the tile origin at drag
	// start. Set iff Dragging.
	grab *f32.Point

	anim *animation
}

// animation is one interpolation run toward a target. The step vector is
// fixed when the run starts; a target that moves mid-run does not re-aim
// it until the run completes.
type animation struct {
	steps int
	step  f32.Point
}

func newTile(x, y float32, letter rune) *Tile {
	return &Tile{Pos: f32.Point{X: x, Y: y}, Letter: letter}
}

// SetPos moves the tile.
func (t *Tile) SetPos(x, y float32) {
	t.Pos = f32.Point{X: x, Y: y}
}

// animateToward advances the tile one frame toward target. A new run
// starts whenever the tile is off target with no run active; the run ends
// by landing exactly on the target the tick its step counter reaches
// animationSteps. With animationSteps <= 0 any offset snaps in one tick.
func (t *Tile) animateToward(target f32.Point, animationSteps int) {
	if t.Pos == target {
		t.anim = nil
		return
	}
	if animationSteps <= 0 || (t.anim != nil && t.anim.steps >= animationSteps) {
		t.Pos = target
		t.anim = nil
		return
	}
	if t.anim == nil {
		t.anim = &animation{step: f32.Point{
			X: (target.X - t.Pos.X) / float32(animationSteps),
			Y: (target.Y - t.Pos.Y) / float32(animationSteps),
		}}
	}
	t.Pos = t.Pos.Add(t.anim.step)
	t.anim.steps++
	if t.anim.steps >= animationSteps {
		t.Pos = target
		t.anim = nil
	}
}
