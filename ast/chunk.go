// Copyright 2026 The Hermes Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package ast

// minChunkCapacity and maxChunkCapacity bound the size of each
// successive chunk a Heap allocates. Capacities double starting from
// minChunkCapacity until they reach maxChunkCapacity, after which every
// further chunk is allocated at maxChunkCapacity; this keeps the number
// of chunks (and therefore the number of backing arrays the GC has to
// walk across) small for long-lived heaps, without ever moving an entry
// once it has an address.
const (
	minChunkCapacity = 1024
	maxChunkCapacity = minChunkCapacity * minChunkCapacity
)

// chunk is a fixed-size run of storageEntry slots. Its backing array is
// allocated once at the chunk's declared capacity and never appended to,
// so a *storageEntry handed out of a chunk remains valid for the chunk's
// entire lifetime: Go's garbage collector does not relocate heap
// allocations, but append() growing past cap would silently invalidate
// every existing pointer into the old array, which is exactly the
// non-relocation guarantee this package exists to provide.
type chunk struct {
	entries []storageEntry
}

func newChunk(capacity int) *chunk {
	return &chunk{entries: make([]storageEntry, capacity)}
}

// nextChunkCapacity returns the capacity to use for the next chunk,
// given the capacity of the most recently allocated one (0 if there are
// no chunks yet).
func nextChunkCapacity(lastCapacity int) int {
	if lastCapacity == 0 {
		return minChunkCapacity
	}
	if lastCapacity >= maxChunkCapacity {
		return maxChunkCapacity
	}
	next := lastCapacity * 2
	if next > maxChunkCapacity {
		return maxChunkCapacity
	}
	return next
}
