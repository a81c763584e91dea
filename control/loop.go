package control

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"hexbot/decide"
	"hexbot/hexagon"

	"github.com/Moonlight-Companies/gologger/coloransi"
	"github.com/Moonlight-Companies/gologger/logger"
	"github.com/rs/xid"
)

// DefaultInterval is the pause between two ticks.
const DefaultInterval = 10 * time.Millisecond

// Options tune a Loop.
type Options struct {
	Mode     Mode
	Interval time.Duration

	// PinWorldAngle, when set, is written to the world angle every tick.
	PinWorldAngle *uint32

	// Status receives one line per decision. Nil discards it.
	Status io.Writer
}

// Loop runs snapshot, decide, act, wait until the context ends or a memory
// transfer fails. Nothing but the held button carries over between ticks.
type Loop struct {
	field *hexagon.Playfield
	opts  Options
	id    xid.ID
	log   *logger.Logger

	holding   Direction
	ticks     uint64
	decisions uint64
}

// NewLoop creates a loop over field. Zero options fall back to teleport mode
// and DefaultInterval.
func NewLoop(field *hexagon.Playfield, opts Options) *Loop {
	if opts.Mode == "" {
		opts.Mode = Teleport
	}
	if opts.Interval <= 0 {
		opts.Interval = DefaultInterval
	}
	if opts.Status == nil {
		opts.Status = io.Discard
	}

	id := xid.New()
	return &Loop{
		field: field,
		opts:  opts,
		id:    id,
		log:   logger.NewLogger(coloransi.Color(coloransi.ColorPurple, coloransi.Red, "loop-"+id.String())),
	}
}

func (l *Loop) ID() string {
	return l.id.String()
}

// Ticks is the number of ticks run so far.
func (l *Loop) Ticks() uint64 {
	return l.ticks
}

// Decisions is the number of ticks that produced a target slot.
func (l *Loop) Decisions() uint64 {
	return l.decisions
}

// Run ticks every Options.Interval. It returns nil when ctx is done and the
// first fatal error otherwise.
func (l *Loop) Run(ctx context.Context) error {
	l.log.Infoln("Loop started in", string(l.opts.Mode), "mode every", l.opts.Interval)

	defer func() {
		if l.holding != None {
			if rerr := l.field.ReleaseMouse(); rerr != nil {
				l.log.Warn("Failed to release buttons: ", rerr)
			}
			l.holding = None
		}
		l.log.Infoln("Loop stopped after", l.ticks, "ticks,", l.decisions, "decisions")
	}()

	ticker := time.NewTicker(l.opts.Interval)
	defer ticker.Stop()

	for {
		if ctx.Err() != nil {
			return nil
		}

		if err := l.Tick(); err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

// Tick runs one iteration. Invalid snapshots are skipped; any other error
// is fatal to the loop.
func (l *Loop) Tick() error {
	l.ticks++

	snap, err := l.field.Snapshot()
	if errors.Is(err, hexagon.ErrInvalidSnapshot) {
		l.log.Debugln("Skipping tick:", err)
		return nil
	}
	if err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}

	if l.opts.PinWorldAngle != nil {
		if err := l.field.SetWorldAngle(*l.opts.PinWorldAngle); err != nil {
			return fmt.Errorf("pin world angle: %w", err)
		}
	}

	d, ok := decide.Decide(snap.NumSlots, snap.Walls)
	if !ok {
		return nil
	}
	l.decisions++

	world, err := l.field.WorldAngle()
	if err != nil {
		return fmt.Errorf("world angle: %w", err)
	}
	fmt.Fprintf(l.opts.Status, "Moving to slot [%d]; world angle is: %d.\n", d.Slot, world)

	switch l.opts.Mode {
	case Steer:
		err = l.steer(d.Slot, snap.NumSlots)
	default:
		err = l.field.SetPlayerAngle(AngleForSlot(d.Slot, snap.NumSlots))
	}
	if err != nil {
		return fmt.Errorf("move to slot %d: %w", d.Slot, err)
	}

	return nil
}

// steer only writes the buttons when the wanted direction changes; holding
// them set is the same as holding the input down.
func (l *Loop) steer(target, numSlots uint32) error {
	current, err := l.field.PlayerSlot()
	if err != nil {
		return err
	}

	dir := Towards(current, target, numSlots)
	if dir == l.holding {
		return nil
	}

	if l.holding != None {
		if err := l.field.ReleaseMouse(); err != nil {
			return err
		}
		l.holding = None
	}

	switch dir {
	case Left:
		err = l.field.StartMovingLeft()
	case Right:
		err = l.field.StartMovingRight()
	}
	if err != nil {
		return err
	}

	l.holding = dir
	return nil
}
