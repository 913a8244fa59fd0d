package spatialhash

import (
	"log/slog"

	"github.com/hupe1980/spatialhash/quantize"
)

type options struct {
	logger  *Logger
	metrics MetricsCollector
	hasher  quantize.Hasher
}

// Option configures index construction behavior. Required parameters
// (dimension count and precision) are positional arguments to New; options
// cover the pluggable surfaces.
type Option func(*options)

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := spatialhash.NewJSONLogger(slog.LevelDebug)
//	idx, _ := spatialhash.New[float64, *Player](2, 16, spatialhash.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
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

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &spatialhash.BasicMetricsCollector{}
//	idx, _ := spatialhash.New[float64, *Player](2, 16, spatialhash.WithMetricsCollector(metrics))
//	// ... use idx ...
//	stats := metrics.GetStats()
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		o.metrics = mc
	}
}

// WithHasher configures the scalar cell hasher used by CellSets created
// through Index.CellSet (caller-side bookkeeping of touched-cell sets). The
// bucket map itself is keyed by the collision-free composite quantize.Key,
// and the move fast paths compare cells exactly; both are unaffected.
//
// Any substitute must be deterministic within a process run; hash values are
// never persisted.
func WithHasher(h quantize.Hasher) Option {
	return func(o *options) {
		if h == nil {
			h = quantize.MixHasher{}
		}
		o.hasher = h
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		logger:  NoopLogger(),
		metrics: NoopMetricsCollector{},
		hasher:  quantize.MixHasher{},
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if o.logger == nil {
		o.logger = NoopLogger()
	}
	if o.metrics == nil {
		o.metrics = NoopMetricsCollector{}
	}
	return o
}
