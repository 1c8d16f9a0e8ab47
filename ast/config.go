// Copyright 2026 The Hermes Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package ast

// Option configures a Heap at construction time. Heaps are built with
// functional options rather than an exported config struct so that new
// knobs can be added without breaking callers that only ever pass the
// options they care about.
type Option func(*heapConfig)

type heapConfig struct {
	logger              Logger
	metrics             MetricsCollector
	timeProvider        TimeProvider
	initialChunkCapacity int
}

func defaultHeapConfig() heapConfig {
	return heapConfig{
		logger:               NoOpLogger{},
		metrics:              NoOpMetricsCollector{},
		timeProvider:         systemTimeProvider{},
		initialChunkCapacity: minChunkCapacity,
	}
}

// WithLogger sets the Logger a Heap reports lifecycle events to.
func WithLogger(l Logger) Option {
	return func(c *heapConfig) { c.logger = l }
}

// WithMetricsCollector sets the MetricsCollector a Heap reports
// allocation and collection activity to.
func WithMetricsCollector(m MetricsCollector) Option {
	return func(c *heapConfig) { c.metrics = m }
}

// WithTimeProvider overrides the clock a Heap uses to time collections.
// Tests use this to get deterministic CollectionDuration values.
func WithTimeProvider(t TimeProvider) Option {
	return func(c *heapConfig) { c.timeProvider = t }
}

// WithInitialChunkCapacity overrides the capacity of the first chunk a
// Heap allocates. Later chunks still double from this value up to the
// package's maximum chunk capacity. It exists mainly so tests can force
// chunk growth without allocating thousands of nodes.
func WithInitialChunkCapacity(capacity int) Option {
	return func(c *heapConfig) {
		if capacity > 0 {
			c.initialChunkCapacity = capacity
		}
	}
}
