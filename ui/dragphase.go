package ui

import "fmt"

// DragPhase is what the rack is visibly doing, used to tint the
// background.
type DragPhase int

const (
	Idle DragPhase = iota
	Dragging
	Settling
)

func showDragPhase(phase DragPhase) string {
	switch phase {
	case Idle:
		return "Idle"
	case Dragging:
		return "Dragging"
	case Settling:
		return "Settling"
	default:
		panic(fmt.Sprintf("Invalid drag phase: %d", phase))
	}
}
