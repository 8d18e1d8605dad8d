package engine

import (
	"time"

	"github.com/muhammadchandra19/orderbook/pkg/config"
	"github.com/muhammadchandra19/orderbook/pkg/metrics"
)

// Options represents configuration options for the Engine.
type Options struct {
	SnapshotInterval    time.Duration
	SnapshotOffsetDelta int64
	// ReadBackoff is how long the processor waits after a failed read.
	ReadBackoff time.Duration
	// Metrics may be nil.
	Metrics *metrics.Metrics
}

// DefaultEngineOptions returns the default engine options.
func DefaultEngineOptions() *Options {
	return &Options{
		SnapshotInterval:    30 * time.Second,
		SnapshotOffsetDelta: 1000,
		ReadBackoff:         100 * time.Millisecond,
	}
}

// OptionsFromConfig returns the default options overridden by the non-zero engine settings.
func OptionsFromConfig(cfg config.EngineConfig) *Options {
	opts := DefaultEngineOptions()
	if cfg.SnapshotInterval > 0 {
		opts.SnapshotInterval = cfg.SnapshotInterval
	}
	if cfg.SnapshotOffsetDelta > 0 {
		opts.SnapshotOffsetDelta = cfg.SnapshotOffsetDelta
	}
	return opts
}
