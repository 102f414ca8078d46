package slotlist

import (
	"sync/atomic"
)

// Container names reported to loggers and metrics collectors.
const (
	ContainerSlotArray        = "slot_array"
	ContainerGenerationalList = "generational_list"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Containers call the collector synchronously on every operation, so
// implementations should be cheap. A collector shared by containers living on
// different goroutines must be safe for concurrent use.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    adds *prometheus.CounterVec
//	}
//
//	func (p *PrometheusCollector) RecordAdd(container string, reused bool) {
//	    p.adds.WithLabelValues(container, strconv.FormatBool(reused)).Inc()
//	}
type MetricsCollector interface {
	// RecordAdd is called after each add. reused is true when the item was
	// placed into a recycled slot.
	RecordAdd(container string, reused bool)

	// RecordRemove is called after each remove attempt; err is nil if successful.
	RecordRemove(container string, err error)

	// RecordGrow is called whenever the backing storage grows from one
	// capacity to another.
	RecordGrow(container string, from, to int)

	// RecordMiss is called when a lookup (Get, Ptr) is rejected.
	RecordMiss(container, op string)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordAdd(string, bool)      {}
func (NoopMetricsCollector) RecordRemove(string, error)  {}
func (NoopMetricsCollector) RecordGrow(string, int, int) {}
func (NoopMetricsCollector) RecordMiss(string, string)   {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	AddCount     atomic.Int64
	ReuseCount   atomic.Int64
	RemoveCount  atomic.Int64
	RemoveErrors atomic.Int64
	GrowCount    atomic.Int64
	GrownSlots   atomic.Int64
	MissCount    atomic.Int64
}

// RecordAdd implements MetricsCollector.
func (b *BasicMetricsCollector) RecordAdd(_ string, reused bool) {
	b.AddCount.Add(1)
	if reused {
		b.ReuseCount.Add(1)
	}
}

// RecordRemove implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRemove(_ string, err error) {
	if err != nil {
		b.RemoveErrors.Add(1)
		return
	}
	b.RemoveCount.Add(1)
}

// RecordGrow implements MetricsCollector.
func (b *BasicMetricsCollector) RecordGrow(_ string, from, to int) {
	b.GrowCount.Add(1)
	b.GrownSlots.Add(int64(to - from))
}

// RecordMiss implements MetricsCollector.
func (b *BasicMetricsCollector) RecordMiss(string, string) {
	b.MissCount.Add(1)
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		AddCount:     b.AddCount.Load(),
		ReuseCount:   b.ReuseCount.Load(),
		RemoveCount:  b.RemoveCount.Load(),
		RemoveErrors: b.RemoveErrors.Load(),
		GrowCount:    b.GrowCount.Load(),
		GrownSlots:   b.GrownSlots.Load(),
		MissCount:    b.MissCount.Load(),
	}
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	AddCount     int64
	ReuseCount   int64
	RemoveCount  int64
	RemoveErrors int64
	GrowCount    int64
	GrownSlots   int64
	MissCount    int64
}
