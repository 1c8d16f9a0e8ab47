// Copyright 2026 The Hermes Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package ast

// MetricsCollector receives counters and timings for a Heap's
// allocation and collection activity. Implementations are expected to be
// safe to call while a ViewSession is open; the otel subpackage provides
// an OpenTelemetry-backed implementation. NoOpMetricsCollector is the
// default.
type MetricsCollector interface {
	// AllocationCount adds delta to the total number of nodes allocated.
	AllocationCount(delta int64)
	// ChunkGrowth records that a new chunk of the given capacity was
	// allocated.
	ChunkGrowth(newCapacity int)
	// CollectionDuration records the wall-clock duration, in
	// nanoseconds, of a completed collection.
	CollectionDuration(nanos int64)
	// CollectionReclaimed records how many entries a completed
	// collection freed.
	CollectionReclaimed(count int64)
}

// NoOpMetricsCollector discards everything.
type NoOpMetricsCollector struct{}

func (NoOpMetricsCollector) AllocationCount(int64)     {}
func (NoOpMetricsCollector) ChunkGrowth(int)           {}
func (NoOpMetricsCollector) CollectionDuration(int64)  {}
func (NoOpMetricsCollector) CollectionReclaimed(int64) {}
