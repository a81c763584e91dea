// Package decide turns a wall snapshot into the slot the player should move to.
package decide

import (
	"math"

	"hexbot/hexagon"
)

// NoObstacle marks a slot with no present wall in the aggregate.
const NoObstacle = math.MaxUint32

// Decision is the outcome of one tick.
type Decision struct {
	Slot         uint32
	MinDistances []uint32
}

// Present reports whether a wall takes part in the decision. A zero
// distance means the wall has not spawned yet.
func Present(w hexagon.Wall) bool {
	return w.IsEnabled() && w.Distance != 0
}

// MinDistances returns, for every slot, the distance of the nearest present
// wall in it, or NoObstacle.
func MinDistances(walls []hexagon.Wall, numSlots uint32) []uint32 {
	mins := make([]uint32, numSlots)
	for i := range mins {
		mins[i] = NoObstacle
	}
	if numSlots == 0 {
		return mins
	}

	for _, w := range walls {
		if !Present(w) {
			continue
		}
		slot := w.Slot % numSlots
		mins[slot] = min(mins[slot], w.Distance)
	}
	return mins
}

// SelectSlot returns the index of the largest entry. The lowest index wins
// ties. An empty aggregate selects 0.
func SelectSlot(mins []uint32) uint32 {
	best := 0
	for i := 1; i < len(mins); i++ {
		if mins[i] > mins[best] {
			best = i
		}
	}
	return uint32(best)
}

// Decide picks the target slot for a snapshot. It returns false when there
// is nothing to act on this tick.
func Decide(numSlots uint32, walls []hexagon.Wall) (Decision, bool) {
	if numSlots == 0 || len(walls) == 0 {
		return Decision{}, false
	}

	mins := MinDistances(walls, numSlots)
	return Decision{Slot: SelectSlot(mins), MinDistances: mins}, true
}
