package generator

import (
	"math/rand"
	"time"
)

// Option customizes the randomness source used by a generator.
type Option func(*config)

type config struct {
	rng *rand.Rand
}

func newConfig(opts ...Option) *config {
	cfg := &config{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

// WithRand sets an explicit *rand.Rand source. A nil r is a no-op.
func WithRand(r *rand.Rand) Option {
	return func(cfg *config) {
		if r != nil {
			cfg.rng = r
		}
	}
}

// WithSeed seeds a new *rand.Rand for reproducible generation.
func WithSeed(seed int64) Option {
	return func(cfg *config) {
		cfg.rng = rand.New(rand.NewSource(seed))
	}
}
