package slotlist

import "log/slog"

// DefaultGrowIncrement is the number of slots a SlotArray adds when full.
const DefaultGrowIncrement = 10

type options struct {
	growIncrement    int // 0 means "not configured"
	initialCapacity  int
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures a SlotArray or GenerationalList.
type Option func(*options)

// WithGrowIncrement sets how many slots are added when the storage is full.
// Values below 1 are raised to 1.
//
// A SlotArray uses DefaultGrowIncrement unless configured. A GenerationalList
// doubles its storage unless configured, and grows by the fixed increment
// once this option is given.
func WithGrowIncrement(n int) Option {
	return func(o *options) {
		o.growIncrement = clampIncrement(n)
	}
}

// WithInitialCapacity preallocates room for n items.
func WithInitialCapacity(n int) Option {
	return func(o *options) {
		o.initialCapacity = max(n, 0)
	}
}

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &slotlist.BasicMetricsCollector{}
//	arr := slotlist.NewSlotArray[int](slotlist.WithMetricsCollector(metrics))
//	// ... use arr ...
//	stats := metrics.GetStats()
//	fmt.Printf("Adds: %d, Reused: %d\n", stats.AddCount, stats.ReuseCount)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for growth and contract violations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := slotlist.NewJSONLogger(slog.LevelDebug)
//	list := slotlist.NewGenerationalList[*Entity](slotlist.WithLogger(logger))
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

func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.metricsCollector == nil {
		o.metricsCollector = NoopMetricsCollector{}
	}
	return o
}

func clampIncrement(n int) int {
	if n < 1 {
		return 1
	}
	return n
}
