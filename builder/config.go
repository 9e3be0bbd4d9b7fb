// Package builder's functional options resolve into an immutable
// builderConfig before any constructor runs: an optional RNG (nil means
// every randomized constructor is rejected with ErrNeedRandSource) and an
// IDFn mapping a zero-based index to a vertex ID.
package builder

import "golang.org/x/exp/rand"

// BuilderOption mutates a builderConfig before construction begins.
type BuilderOption func(cfg *builderConfig)

// builderConfig holds the resolved, read-only configuration for a
// BuildGraph call. Not safe for concurrent mutation; each call to
// newBuilderConfig produces its own instance.
type builderConfig struct {
	rng  *rand.Rand
	idFn IDFn
}

// newBuilderConfig applies defaults (no RNG, DefaultIDFn) then every opt in
// order; later options override earlier ones.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{idFn: DefaultIDFn}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithIDScheme injects a custom IDFn. A nil idFn is a no-op.
func WithIDScheme(idFn IDFn) BuilderOption {
	return func(cfg *builderConfig) {
		if idFn != nil {
			cfg.idFn = idFn
		}
	}
}

// WithRand sets an explicit RNG source. A nil rng is a no-op.
func WithRand(rng *rand.Rand) BuilderOption {
	return func(cfg *builderConfig) {
		if rng != nil {
			cfg.rng = rng
		}
	}
}

// WithSeed seeds a new RNG and assigns it, for reproducible randomized
// construction.
func WithSeed(seed uint64) BuilderOption {
	return func(cfg *builderConfig) {
		cfg.rng = rand.New(rand.NewSource(seed))
	}
}
