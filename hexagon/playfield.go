// Package hexagon describes the playfield structure of a running Super
// Hexagon process and gives typed access to it.
package hexagon

import (
	"errors"
	"fmt"

	"hexbot/pod"
	"hexbot/process"

	"github.com/Moonlight-Companies/gologger/coloransi"
	"github.com/Moonlight-Companies/gologger/logger"
)

var (
	// ErrNullBase is returned when the base pointer holds zero, which means
	// the game has not created its playfield yet.
	ErrNullBase = errors.New("playfield base pointer is null")

	// ErrInvalidSnapshot marks a playfield state that cannot be acted on
	// right now but may become valid on a later tick.
	ErrInvalidSnapshot = errors.New("invalid playfield snapshot")

	ErrNoSlots   = fmt.Errorf("%w: zero slots", ErrInvalidSnapshot)
	ErrWallCount = fmt.Errorf("%w: wall count out of range", ErrInvalidSnapshot)
)

// Playfield reads and writes game state through a process.Memory.
type Playfield struct {
	mem    process.Memory
	layout Layout
	base   process.ProcessMemoryAddress
	log    *logger.Logger
}

// Snapshot is one tick's view of the obstacles.
type Snapshot struct {
	NumSlots uint32
	Walls    []Wall
}

// NewPlayfield resolves the playfield base address through layout.BasePointer.
func NewPlayfield(mem process.Memory, layout Layout) (*Playfield, error) {
	if err := layout.Validate(); err != nil {
		return nil, fmt.Errorf("invalid layout: %w", err)
	}

	var base process.ProcessMemoryAddress
	switch layout.PointerSize {
	case 4:
		v, err := pod.ReadT[uint32](mem, layout.BasePointer)
		if err != nil {
			return nil, fmt.Errorf("read base pointer: %w", err)
		}
		base = process.ProcessMemoryAddress(v)
	default:
		v, err := pod.ReadT[uint64](mem, layout.BasePointer)
		if err != nil {
			return nil, fmt.Errorf("read base pointer: %w", err)
		}
		base = process.ProcessMemoryAddress(v)
	}

	if base == 0 {
		return nil, fmt.Errorf("%w at %s", ErrNullBase, layout.BasePointer.ToString())
	}

	p := &Playfield{
		mem:    mem,
		layout: layout,
		base:   base,
		log:    logger.NewLogger(coloransi.Color(coloransi.ColorOrange, coloransi.ColorPurple, "playfield")),
	}
	p.log.Infoln("Playfield at", base.ToString(), "in process", mem.GetPID())

	return p, nil
}

// Base returns the resolved playfield address.
func (p *Playfield) Base() process.ProcessMemoryAddress {
	return p.base
}

func (p *Playfield) Layout() Layout {
	return p.layout
}

func (p *Playfield) at(offset process.ProcessMemorySize) process.ProcessMemoryAddress {
	return p.base.Add(offset)
}

func (p *Playfield) NumSlots() (uint32, error) {
	return pod.ReadT[uint32](p.mem, p.at(p.layout.NumSlots))
}

func (p *Playfield) NumWalls() (uint32, error) {
	return pod.ReadT[uint32](p.mem, p.at(p.layout.NumWalls))
}

// Walls reads the current wall array in one transfer. A count above
// Layout.MaxWalls is reported as ErrWallCount without touching the array.
func (p *Playfield) Walls() ([]Wall, error) {
	n, err := p.NumWalls()
	if err != nil {
		return nil, err
	}
	if n > p.layout.MaxWalls {
		return nil, fmt.Errorf("%w: %d > %d", ErrWallCount, n, p.layout.MaxWalls)
	}

	return pod.ReadSliceT[Wall](p.mem, p.at(p.layout.FirstWall), int(n))
}

// Snapshot reads the slot count and the wall array for one tick.
func (p *Playfield) Snapshot() (Snapshot, error) {
	walls, err := p.Walls()
	if err != nil {
		return Snapshot{}, err
	}

	slots, err := p.NumSlots()
	if err != nil {
		return Snapshot{}, err
	}
	if slots == 0 {
		return Snapshot{}, ErrNoSlots
	}

	return Snapshot{NumSlots: slots, Walls: walls}, nil
}

func (p *Playfield) PlayerAngle() (uint32, error) {
	return pod.ReadT[uint32](p.mem, p.at(p.layout.PlayerAngle))
}

// PlayerSlot converts the player angle into the slot it currently sits in.
func (p *Playfield) PlayerSlot() (uint32, error) {
	angle, err := p.PlayerAngle()
	if err != nil {
		return 0, err
	}

	slots, err := p.NumSlots()
	if err != nil {
		return 0, err
	}
	if slots == 0 {
		return 0, ErrNoSlots
	}

	return uint32(float32(angle) / 360.0 * float32(slots)), nil
}

// SetPlayerAngle writes angle to both mirrored angle fields.
func (p *Playfield) SetPlayerAngle(angle uint32) error {
	if err := pod.WriteT(p.mem, p.at(p.layout.PlayerAngle), angle); err != nil {
		return err
	}
	return pod.WriteT(p.mem, p.at(p.layout.PlayerAngle2), angle)
}

func (p *Playfield) WorldAngle() (uint32, error) {
	return pod.ReadT[uint32](p.mem, p.at(p.layout.WorldAngle))
}

func (p *Playfield) SetWorldAngle(angle uint32) error {
	return pod.WriteT(p.mem, p.at(p.layout.WorldAngle), angle)
}

func (p *Playfield) setButton(offset process.ProcessMemorySize, down bool) error {
	var v uint8
	if down {
		v = 1
	}
	return pod.WriteT(p.mem, p.at(offset), v)
}

// StartMovingLeft holds the left button down until ReleaseMouse.
func (p *Playfield) StartMovingLeft() error {
	if err := p.setButton(p.layout.MouseDownLeft, true); err != nil {
		return err
	}
	return p.setButton(p.layout.MouseDown, true)
}

// StartMovingRight holds the right button down until ReleaseMouse.
func (p *Playfield) StartMovingRight() error {
	if err := p.setButton(p.layout.MouseDownRight, true); err != nil {
		return err
	}
	return p.setButton(p.layout.MouseDown, true)
}

func (p *Playfield) ReleaseMouse() error {
	for _, offset := range []process.ProcessMemorySize{p.layout.MouseDownLeft, p.layout.MouseDownRight, p.layout.MouseDown} {
		if err := p.setButton(offset, false); err != nil {
			return err
		}
	}
	return nil
}
