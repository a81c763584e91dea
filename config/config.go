// Package config gathers run settings from defaults, a .env file and the
// environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"hexbot/control"
	"hexbot/hexagon"
	"hexbot/process"

	"github.com/joho/godotenv"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "HEXBOT_"

// DefaultProcessName is the executable searched for when no pid is given.
const DefaultProcessName = "superhexagon"

// Config holds everything needed to attach to the game and run the loop.
type Config struct {
	ProcessName string
	PID         process.ProcessID

	Layout hexagon.Layout

	Mode       control.Mode
	Interval   time.Duration
	WorldAngle *uint32
	Quiet      bool
}

// Default returns the settings for the shipped game build.
func Default() Config {
	return Config{
		ProcessName: DefaultProcessName,
		Layout:      hexagon.DefaultLayout(),
		Mode:        control.Teleport,
		Interval:    control.DefaultInterval,
	}
}

// Load starts from Default, merges envFile (if it exists) into the process
// environment without overriding variables already set, then applies every
// HEXBOT_* variable.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	cfg := Default()
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ApplyEnv overrides fields from lookup, which is normally os.LookupEnv.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	get := func(name string) (string, bool) {
		v, ok := lookup(EnvPrefix + name)
		v = strings.TrimSpace(v)
		return v, ok && v != ""
	}

	if v, ok := get("PROCESS"); ok {
		c.ProcessName = v
	}
	if v, ok := get("PID"); ok {
		pid, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%sPID: %w", EnvPrefix, err)
		}
		c.PID = process.ProcessID(pid)
	}
	if v, ok := get("MODE"); ok {
		mode, err := control.ParseMode(v)
		if err != nil {
			return fmt.Errorf("%sMODE: %w", EnvPrefix, err)
		}
		c.Mode = mode
	}
	if v, ok := get("INTERVAL"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%sINTERVAL: %w", EnvPrefix, err)
		}
		c.Interval = d
	}
	if v, ok := get("WORLD_ANGLE"); ok {
		angle, err := ParseUint(v, 32)
		if err != nil {
			return fmt.Errorf("%sWORLD_ANGLE: %w", EnvPrefix, err)
		}
		a := uint32(angle)
		c.WorldAngle = &a
	}
	if v, ok := get("QUIET"); ok {
		quiet, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%sQUIET: %w", EnvPrefix, err)
		}
		c.Quiet = quiet
	}

	if v, ok := get("BASE_POINTER"); ok {
		addr, err := ParseUint(v, 64)
		if err != nil {
			return fmt.Errorf("%sBASE_POINTER: %w", EnvPrefix, err)
		}
		c.Layout.BasePointer = process.ProcessMemoryAddress(addr)
	}
	if v, ok := get("MAX_WALLS"); ok {
		n, err := ParseUint(v, 32)
		if err != nil {
			return fmt.Errorf("%sMAX_WALLS: %w", EnvPrefix, err)
		}
		c.Layout.MaxWalls = uint32(n)
	}

	for name, field := range c.offsetFields() {
		v, ok := get(name)
		if !ok {
			continue
		}
		n, err := ParseUint(v, 32)
		if err != nil {
			return fmt.Errorf("%s%s: %w", EnvPrefix, name, err)
		}
		*field = process.ProcessMemorySize(n)
	}

	return nil
}

// offsetFields names the layout offsets that can be overridden.
func (c *Config) offsetFields() map[string]*process.ProcessMemorySize {
	return map[string]*process.ProcessMemorySize{
		"POINTER_SIZE":       &c.Layout.PointerSize,
		"NUM_SLOTS":          &c.Layout.NumSlots,
		"NUM_WALLS":          &c.Layout.NumWalls,
		"FIRST_WALL":         &c.Layout.FirstWall,
		"PLAYER_ANGLE":       &c.Layout.PlayerAngle,
		"PLAYER_ANGLE2":      &c.Layout.PlayerAngle2,
		"WORLD_ANGLE_OFFSET": &c.Layout.WorldAngle,
		"MOUSE_DOWN_LEFT":    &c.Layout.MouseDownLeft,
		"MOUSE_DOWN_RIGHT":   &c.Layout.MouseDownRight,
		"MOUSE_DOWN":         &c.Layout.MouseDown,
	}
}

// Validate rejects settings the loop cannot run with.
func (c Config) Validate() error {
	if c.PID < 0 {
		return fmt.Errorf("pid must not be negative, got %d", c.PID)
	}
	if c.PID == 0 && c.ProcessName == "" {
		return errors.New("either a pid or a process name is required")
	}
	if _, err := control.ParseMode(string(c.Mode)); err != nil {
		return err
	}
	if c.Interval <= 0 {
		return fmt.Errorf("interval must be positive, got %s", c.Interval)
	}
	return c.Layout.Validate()
}

// ParseUint accepts decimal or 0x-prefixed hexadecimal.
func ParseUint(s string, bits int) (uint64, error) {
	return strconv.ParseUint(strings.TrimSpace(s), 0, bits)
}
