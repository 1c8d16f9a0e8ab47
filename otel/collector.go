// Copyright 2026 The Hermes Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

// Package otel adapts the ast package's MetricsCollector interface onto
// OpenTelemetry instruments. It is its own module, with its own go.mod,
// so that depending on the core ast package never pulls in the
// OpenTelemetry SDK for callers who don't want it.
package otel

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel/metric"

	"github.com/ftanuma/hermes/ast"
)

// Options configures Collector construction.
type Options struct {
	// MeterName is the instrumentation name reported to the configured
	// MeterProvider. Defaults to "github.com/ftanuma/hermes/ast" if empty.
	MeterName string
}

// Option applies one setting to Options.
type Option func(*Options)

// WithMeterName overrides the instrumentation name reported to the
// configured MeterProvider.
func WithMeterName(name string) Option {
	return func(o *Options) { o.MeterName = name }
}

// Collector implements ast.MetricsCollector by recording every event
// onto a set of OpenTelemetry instruments obtained from the given Meter.
type Collector struct {
	allocations    metric.Int64Counter
	chunkGrowths   metric.Int64Counter
	lastChunkSize  metric.Int64Gauge
	collectionTime metric.Int64Histogram
	reclaimedTotal metric.Int64Counter
}

// New builds a Collector using instruments obtained from provider.
func New(provider metric.MeterProvider, opts ...Option) (*Collector, error) {
	if provider == nil {
		return nil, errors.New("meter provider cannot be nil")
	}

	options := Options{MeterName: "github.com/ftanuma/hermes/ast"}
	for _, opt := range opts {
		opt(&options)
	}
	meter := provider.Meter(options.MeterName)

	allocations, err := meter.Int64Counter(
		"hermes.ast.allocations",
		metric.WithDescription("total number of nodes allocated"),
		metric.WithUnit("{node}"),
	)
	if err != nil {
		return nil, err
	}

	chunkGrowths, err := meter.Int64Counter(
		"hermes.ast.chunk_growths",
		metric.WithDescription("number of times a heap allocated a new chunk"),
		metric.WithUnit("{chunk}"),
	)
	if err != nil {
		return nil, err
	}

	lastChunkSize, err := meter.Int64Gauge(
		"hermes.ast.last_chunk_capacity",
		metric.WithDescription("capacity of the most recently allocated chunk"),
		metric.WithUnit("{entry}"),
	)
	if err != nil {
		return nil, err
	}

	collectionTime, err := meter.Int64Histogram(
		"hermes.ast.collection_duration",
		metric.WithDescription("wall-clock duration of a completed collection"),
		metric.WithUnit("ns"),
	)
	if err != nil {
		return nil, err
	}

	reclaimedTotal, err := meter.Int64Counter(
		"hermes.ast.collection_reclaimed",
		metric.WithDescription("total number of entries freed by collections"),
		metric.WithUnit("{node}"),
	)
	if err != nil {
		return nil, err
	}

	return &Collector{
		allocations:    allocations,
		chunkGrowths:   chunkGrowths,
		lastChunkSize:  lastChunkSize,
		collectionTime: collectionTime,
		reclaimedTotal: reclaimedTotal,
	}, nil
}

var _ ast.MetricsCollector = (*Collector)(nil)

// AllocationCount implements ast.MetricsCollector.
func (c *Collector) AllocationCount(delta int64) {
	c.allocations.Add(context.Background(), delta)
}

// ChunkGrowth implements ast.MetricsCollector.
func (c *Collector) ChunkGrowth(newCapacity int) {
	ctx := context.Background()
	c.chunkGrowths.Add(ctx, 1)
	c.lastChunkSize.Record(ctx, int64(newCapacity))
}

// CollectionDuration implements ast.MetricsCollector.
func (c *Collector) CollectionDuration(nanos int64) {
	c.collectionTime.Record(context.Background(), nanos)
}

// CollectionReclaimed implements ast.MetricsCollector.
func (c *Collector) CollectionReclaimed(count int64) {
	c.reclaimedTotal.Add(context.Background(), count)
}
