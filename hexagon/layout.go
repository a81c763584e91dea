package hexagon

import (
	"fmt"

	"hexbot/process"
)

// Layout is the table of addresses and offsets that describes where the
// playfield lives inside one specific build of the game. Every offset except
// BasePointer is relative to the address stored at BasePointer.
type Layout struct {
	BasePointer    process.ProcessMemoryAddress
	PointerSize    process.ProcessMemorySize
	NumSlots       process.ProcessMemorySize
	NumWalls       process.ProcessMemorySize
	FirstWall      process.ProcessMemorySize
	MaxWalls       uint32
	PlayerAngle    process.ProcessMemorySize
	PlayerAngle2   process.ProcessMemorySize
	WorldAngle     process.ProcessMemorySize
	MouseDownLeft  process.ProcessMemorySize
	MouseDownRight process.ProcessMemorySize
	MouseDown      process.ProcessMemorySize
}

// DefaultLayout matches the 32-bit Windows release of Super Hexagon.
func DefaultLayout() Layout {
	return Layout{
		BasePointer:    0x694B00,
		PointerSize:    4,
		NumSlots:       0x1BC,
		NumWalls:       0x2930,
		FirstWall:      0x220,
		MaxWalls:       (0x2930 - 0x220) / WallSize,
		PlayerAngle:    0x2958,
		PlayerAngle2:   0x2954,
		WorldAngle:     0x1AC,
		MouseDownLeft:  0x42858,
		MouseDownRight: 0x4285A,
		MouseDown:      0x42C45,
	}
}

// Validate checks the layout for values that can never describe a playfield.
func (l Layout) Validate() error {
	if l.PointerSize != 4 && l.PointerSize != 8 {
		return fmt.Errorf("pointer size must be 4 or 8, got %d", l.PointerSize)
	}
	if l.BasePointer == 0 {
		return fmt.Errorf("base pointer address is zero")
	}
	if l.MaxWalls == 0 {
		return fmt.Errorf("max walls is zero")
	}
	return nil
}

// Span returns the number of bytes from the playfield base that covers every
// field in the layout, including the full wall array.
func (l Layout) Span() process.ProcessMemorySize {
	span := l.FirstWall + process.ProcessMemorySize(l.MaxWalls)*WallSize
	for _, end := range []process.ProcessMemorySize{
		l.NumSlots + 4,
		l.NumWalls + 4,
		l.PlayerAngle + 4,
		l.PlayerAngle2 + 4,
		l.WorldAngle + 4,
		l.MouseDownLeft + 1,
		l.MouseDownRight + 1,
		l.MouseDown + 1,
	} {
		if end > span {
			span = end
		}
	}
	return span
}
