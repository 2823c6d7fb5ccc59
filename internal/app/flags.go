package app

import (
	"flag"
	"time"
)

// Config represents the command-line parameters shared by the front ends.
type Config struct {
	Seed          int64
	FPS           int
	FramesPerTick int
	Verbose       bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Seed: 0, FPS: 30, FramesPerTick: 3}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for food placement (0 picks one from the clock)")
	fs.IntVar(&c.FPS, "fps", c.FPS, "frames per second for input polling and drawing")
	fs.IntVar(&c.FramesPerTick, "frames-per-tick", c.FramesPerTick, "frames between simulation ticks")
	fs.BoolVar(&c.Verbose, "v", c.Verbose, "log game lifecycle events")
}

// Normalize replaces non-positive rates with the defaults.
func (c *Config) Normalize() {
	def := NewConfig()
	if c.FPS <= 0 {
		c.FPS = def.FPS
	}
	if c.FramesPerTick <= 0 {
		c.FramesPerTick = def.FramesPerTick
	}
}

// ResolveSeed returns the configured seed, or a clock-derived one when unset.
func (c *Config) ResolveSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}
