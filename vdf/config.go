package vdf

import "go.uber.org/zap"

// Config carries the tunable parameters of the evaluator and prover. The
// zero value is not usable directly; construct one with NewConfig so the
// defaults below apply.
type Config struct {
	// LogMemory is the memory exponent of the (k, l) heuristic in
	// approximateParameters. It only takes effect when log2(T) exceeds
	// it: l is then ⌈2^(LogMemory-20)⌉ instead of 1, which spaces the
	// intermediates further apart. A value of 20 or less leaves l at 1.
	LogMemory float64

	// DiscriminantBits records the bit length the discriminant was
	// derived with. It is not consulted by the evaluator or prover
	// directly (both take D), but callers building Config once per
	// discriminant find it convenient to carry alongside the other
	// knobs.
	DiscriminantBits int

	// CancelPollInterval is how many squarings elapse between calls to
	// the caller-supplied should_continue probe.
	CancelPollInterval uint64

	logger *zap.Logger
}

// Option mutates a Config under construction.
type Option func(*Config)

// NewConfig builds a Config with the reference defaults: log_mem =
// 23.25349666 and a cancellation probe every 2^16 squarings, applying opts
// in order.
func NewConfig(opts ...Option) Config {
	cfg := Config{
		LogMemory:          23.25349666,
		CancelPollInterval: 1 << 16,
		logger:             zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

func WithLogMemory(logMemory float64) Option {
	return func(c *Config) { c.LogMemory = logMemory }
}

func WithDiscriminantBits(bits int) Option {
	return func(c *Config) { c.DiscriminantBits = bits }
}

func WithCancelPollInterval(interval uint64) Option {
	return func(c *Config) { c.CancelPollInterval = interval }
}

func WithLogger(logger *zap.Logger) Option {
	return func(c *Config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

func (c Config) logging() *zap.Logger {
	if c.logger == nil {
		return zap.NewNop()
	}
	return c.logger
}
