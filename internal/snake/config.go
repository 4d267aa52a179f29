package snake

import (
	"fmt"
	"strconv"
)

const (
	// DefaultAreaSize is the side length of the square play field.
	DefaultAreaSize = 20
	// DefaultMinimumTailLength is the length a fresh or collided snake has.
	DefaultMinimumTailLength = 5
)

// Policy holds the gameplay rules that differ between historical versions
// of the game.
type Policy struct {
	// FreezeOnCollision stops the snake (heading None) when it bites
	// itself. When false the snake keeps its heading and only shrinks.
	FreezeOnCollision bool
	// TrimCap limits how many tail segments are dropped per step. Zero
	// trims until the body fits the tail length.
	TrimCap int
}

// Config controls the grid dimensions and gameplay policy.
type Config struct {
	AreaSize          int
	MinimumTailLength int

	Seed int64

	Policy Policy
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		AreaSize:          DefaultAreaSize,
		MinimumTailLength: DefaultMinimumTailLength,
		Seed:              1337,
	}
}

// Validate reports configurations that cannot host a game.
func (c Config) Validate() error {
	if c.AreaSize < 2 {
		return fmt.Errorf("area size %d: must be at least 2", c.AreaSize)
	}
	if c.MinimumTailLength < 1 {
		return fmt.Errorf("minimum tail length %d: must be at least 1", c.MinimumTailLength)
	}
	if c.Policy.TrimCap < 0 {
		return fmt.Errorf("trim cap %d: must not be negative", c.Policy.TrimCap)
	}
	return nil
}

// ConfigKeys lists the keys FromMap understands.
var ConfigKeys = []string{"area_size", "min_tail", "seed", "freeze_on_collision", "trim_cap"}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Unparseable or out-of-range values leave the default in place.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["area_size"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 2 {
			c.AreaSize = parsed
		}
	}
	if v, ok := cfg["min_tail"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 1 {
			c.MinimumTailLength = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["freeze_on_collision"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Policy.FreezeOnCollision = parsed
		}
	}
	if v, ok := cfg["trim_cap"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Policy.TrimCap = parsed
		}
	}
	return c
}
