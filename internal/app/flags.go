package app

import (
	"flag"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"snake/internal/logging"
	"snake/internal/snake"
)

// Config represents the command-line parameters shared by the snake hosts.
type Config struct {
	AreaSize          int
	MinTail           int
	TPS               int
	Seed              int64
	Scale             int
	FreezeOnCollision bool
	TrimCap           int
	Overrides         kvList

	Record string
	Serve  string

	LogLevel  string
	LogFormat string
	LogFile   string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		AreaSize:  snake.DefaultAreaSize,
		MinTail:   snake.DefaultMinimumTailLength,
		TPS:       12,
		Seed:      1337,
		Scale:     20,
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.AreaSize, "size", c.AreaSize, "grid side length in cells")
	fs.IntVar(&c.MinTail, "min-tail", c.MinTail, "tail length of a fresh snake")
	fs.IntVar(&c.TPS, "tps", c.TPS, "game ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for apple placement")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixels per cell (window host)")
	fs.BoolVar(&c.FreezeOnCollision, "freeze-on-collision", c.FreezeOnCollision, "stop the snake when it bites itself")
	fs.IntVar(&c.TrimCap, "trim-cap", c.TrimCap, "max tail segments dropped per tick, 0 for unbounded")
	fs.Var(&c.Overrides, "set", "game option override in key=value form (repeatable)")
	fs.StringVar(&c.Record, "record", c.Record, "write every tick to this parquet file")
	fs.StringVar(&c.Serve, "serve", c.Serve, "stream snapshots over websocket on this address, e.g. :8080")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "debug, info, warn or error")
	fs.StringVar(&c.LogFormat, "log-format", c.LogFormat, "text or json")
	fs.StringVar(&c.LogFile, "log-file", c.LogFile, "append logs to this file instead of stderr")
}

// SnakeConfig converts the flags into a game configuration. -set
// overrides win over the dedicated flags.
func (c *Config) SnakeConfig() snake.Config {
	opts := map[string]string{
		"area_size":           strconv.Itoa(c.AreaSize),
		"min_tail":            strconv.Itoa(c.MinTail),
		"seed":                strconv.FormatInt(c.Seed, 10),
		"freeze_on_collision": strconv.FormatBool(c.FreezeOnCollision),
		"trim_cap":            strconv.Itoa(c.TrimCap),
	}
	for _, kv := range c.Overrides {
		k, v, _ := strings.Cut(kv, "=")
		opts[k] = v
	}
	return snake.FromMap(opts)
}

func (c *Config) flagSnakeConfig() snake.Config {
	sc := snake.DefaultConfig()
	sc.AreaSize = c.AreaSize
	sc.MinimumTailLength = c.MinTail
	sc.Seed = c.Seed
	sc.Policy = snake.Policy{
		FreezeOnCollision: c.FreezeOnCollision,
		TrimCap:           c.TrimCap,
	}
	return sc
}

// Validate reports flag combinations no host can run with.
func (c *Config) Validate() error {
	if err := c.flagSnakeConfig().Validate(); err != nil {
		return err
	}
	for _, kv := range c.Overrides {
		k, _, _ := strings.Cut(kv, "=")
		if !slices.Contains(snake.ConfigKeys, k) {
			return fmt.Errorf("-set %s: unknown option, want one of %s", k, strings.Join(snake.ConfigKeys, ", "))
		}
	}
	if c.TPS <= 0 {
		return fmt.Errorf("tps %d: must be positive", c.TPS)
	}
	if c.Scale <= 0 {
		return fmt.Errorf("scale %d: must be positive", c.Scale)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	if !strings.Contains(value, "=") {
		return fmt.Errorf("%q: want key=value", value)
	}
	*l = append(*l, value)
	return nil
}
