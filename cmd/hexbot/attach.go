package main

import (
	"fmt"

	"hexbot/config"
	"hexbot/hexagon"
	"hexbot/locate"
	"hexbot/process"

	"github.com/tebeka/atexit"
)

// attach finds and opens the game and resolves its playfield. The handle is
// registered with atexit so fatal exits release it too; callers also defer
// Close, which is safe to call twice.
func attach(cfg config.Config) (process.ProcessInfo, process.Memory, *hexagon.Playfield, error) {
	info, err := locate.Find(cfg.PID, cfg.ProcessName)
	if err != nil {
		return info, nil, nil, err
	}

	mem, err := locate.Open(info.PID)
	if err != nil {
		return info, nil, nil, fmt.Errorf("open process %d: %w", info.PID, err)
	}
	atexit.Register(func() { mem.Close() })

	field, err := hexagon.NewPlayfield(mem, cfg.Layout)
	if err != nil {
		mem.Close()
		return info, nil, nil, err
	}

	return info, mem, field, nil
}
