// Package config defines and loads the matching engine's recognized
// options. Defaulting follows the usual convention for this kind of
// struct: a zero value in any field is replaced by a sane default
// rather than rejected, so callers can construct a Config with only
// the fields they care about.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config carries the three options the core recognizes. Nothing else
// is in scope: no risk limits, no persistence knobs; those live in
// the adjacent packages that own them.
type Config struct {
	// MaxOrders bounds concurrently resting orders per engine.
	// Exceeding it yields Reject{CapacityExceeded}.
	MaxOrders int

	// RingSize is the event ring's fixed capacity.
	RingSize int

	// TickSize is a positive real number used only for Price
	// conversion; the engine itself stores ticks.
	TickSize float64
}

const (
	defaultMaxOrders = 1 << 20
	defaultRingSize  = 1 << 12
	defaultTickSize  = 0.01
)

// Default returns a Config with the defaults used throughout this
// repository's demos and tests.
func Default() Config {
	return Config{
		MaxOrders: defaultMaxOrders,
		RingSize:  defaultRingSize,
		TickSize:  defaultTickSize,
	}
}

// WithDefaults fills zero-valued fields of cfg with defaults, in
// place of requiring every caller to specify every option.
func (cfg Config) WithDefaults() Config {
	if cfg.MaxOrders == 0 {
		cfg.MaxOrders = defaultMaxOrders
	}
	if cfg.RingSize == 0 {
		cfg.RingSize = defaultRingSize
	}
	if cfg.TickSize == 0 {
		cfg.TickSize = defaultTickSize
	}
	return cfg
}

// LoadEnv is a convenience for the CLI demo: it loads a .env file (if
// present; a missing file is not an error) and reads
// LOB_MAX_ORDERS, LOB_RING_SIZE, LOB_TICK_SIZE, falling back to
// Default() for anything unset or unparsable. The engine constructor
// itself never touches the environment, only cmd/lobsim does.
func LoadEnv(path string) Config {
	_ = godotenv.Load(path)
	cfg := Default()
	if v := os.Getenv("LOB_MAX_ORDERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MaxOrders = n
		}
	}
	if v := os.Getenv("LOB_RING_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.RingSize = n
		}
	}
	if v := os.Getenv("LOB_TICK_SIZE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			cfg.TickSize = f
		}
	}
	return cfg
}
