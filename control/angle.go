// Package control writes decisions back into the game and drives the
// polling loop.
package control

import (
	"fmt"
	"strings"
)

// AngleForSlot maps a slot to the player angle at the middle of that slot,
// in whole degrees, the way the game stores it.
func AngleForSlot(slot, numSlots uint32) uint32 {
	if numSlots == 0 {
		return 0
	}
	return 360/numSlots*(slot%numSlots) + 180/numSlots
}

// Direction is a held movement button.
type Direction int

const (
	None Direction = iota
	Left
	Right
)

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "none"
	}
}

// Towards returns the button that moves from slot current to slot target
// along the shorter way round. Left lowers the slot index. Equal arcs go
// right.
func Towards(current, target, numSlots uint32) Direction {
	if numSlots == 0 {
		return None
	}
	current %= numSlots
	target %= numSlots
	if current == target {
		return None
	}

	right := (target + numSlots - current) % numSlots
	left := (current + numSlots - target) % numSlots
	if right <= left {
		return Right
	}
	return Left
}

// Mode selects how the player is moved to the target slot.
type Mode string

const (
	// Teleport writes the target angle directly.
	Teleport Mode = "teleport"

	// Steer holds the movement buttons until the player reaches the target.
	Steer Mode = "steer"
)

func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case Teleport, Steer:
		return m, nil
	default:
		return "", fmt.Errorf("unknown mode %q (want %q or %q)", s, Teleport, Steer)
	}
}
