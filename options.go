package kmeans

import (
	"log/slog"

	ikmeans "github.com/hupe1980/kmeans/internal/kmeans"
	"github.com/hupe1980/kmeans/random"
)

// DefaultMaxIterations bounds the number of center re-estimations per run.
const DefaultMaxIterations = ikmeans.DefaultMaxIterations

type options struct {
	k                int
	initMethod       InitMethod
	initializer      Initializer
	source           random.Source
	seed             uint64
	random           bool
	maxIterations    int
	emptyPolicy      EmptyClusterPolicy
	logger           *Logger
	metricsCollector MetricsCollector
}

func defaultOptions() options {
	return options{
		initMethod:       InitKMeansPP,
		seed:             random.DefaultSeed,
		random:           true,
		maxIterations:    DefaultMaxIterations,
		emptyPolicy:      EmptyKeep,
		logger:           NoopLogger(),
		metricsCollector: NoopMetricsCollector{},
	}
}

// Option configures a Clusterer.
type Option func(*options)

// WithK sets the number of clusters.
func WithK(k int) Option {
	return func(o *options) {
		o.k = k
	}
}

// WithInitMethod selects a built-in initialization strategy.
// Default: InitKMeansPP.
func WithInitMethod(m InitMethod) Option {
	return func(o *options) {
		o.initMethod = m
	}
}

// WithInitializer installs a custom initialization strategy. It takes
// precedence over WithInitMethod. Pass nil to fall back to the init method.
func WithInitializer(seeder Initializer) Option {
	return func(o *options) {
		o.initializer = seeder
	}
}

// WithSource injects the random source used for seeding and for the
// EmptyReseed policy. It takes precedence over WithSeed and WithRandom.
//
// The source is shared across runs: a second run continues the sequence
// where the first one stopped.
func WithSource(src random.Source) Option {
	return func(o *options) {
		o.source = src
	}
}

// WithSeed requests a reproducible run seeded with seed.
// Equivalent to WithRandom(false) plus a custom seed.
func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.seed = seed
		o.random = false
	}
}

// WithRandom sets the determinism flag. true draws from an entropy-seeded
// source, false replays a fixed sequence so repeated runs on identical input
// give identical results. Default: true.
func WithRandom(r bool) Option {
	return func(o *options) {
		o.random = r
	}
}

// WithMaxIterations bounds the number of center re-estimations.
// Values <= 0 select DefaultMaxIterations.
//
// A run that hits the bound ends in StateExhausted; its labels still match
// its centers but the centers are not a fixed point.
func WithMaxIterations(n int) Option {
	return func(o *options) {
		if n <= 0 {
			n = DefaultMaxIterations
		}
		o.maxIterations = n
	}
}

// WithEmptyClusterPolicy selects how empty clusters are handled.
// Default: EmptyKeep.
func WithEmptyClusterPolicy(p EmptyClusterPolicy) Option {
	return func(o *options) {
		o.emptyPolicy = p
	}
}

// WithLogger configures structured logging for clustering runs.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := kmeans.NewJSONLogger(slog.LevelDebug)
//	c := kmeans.New(kmeans.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithMetricsCollector configures a metrics collector for monitoring runs.
// Pass nil to disable metrics collection.
//
//	metrics := &kmeans.BasicMetricsCollector{}
//	c := kmeans.New(kmeans.WithMetricsCollector(metrics))
//	// ... run ...
//	stats := metrics.GetStats()
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// runSource returns the source for a single run.
func (o *options) runSource() random.Source {
	switch {
	case o.source != nil:
		return o.source
	case o.random:
		return random.NewEntropy()
	default:
		return random.New(o.seed)
	}
}

// runInitializer returns the strategy for a single run.
func (o *options) runInitializer() (Initializer, error) {
	if o.initializer != nil {
		return o.initializer, nil
	}
	return o.initMethod.Initializer()
}
