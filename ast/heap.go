// Copyright 2026 The Hermes Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package ast

import "sync/atomic"

// nextHeapID hands out process-wide unique heap identities. It starts at
// 1 so that 0 stays available as "no heap" / "free entry" sentinel in
// storageEntry.ownerMark.
var nextHeapID uint32 = 0

func allocateHeapID() uint32 {
	return atomic.AddUint32(&nextHeapID, 1)
}

// Heap owns a chunked arena of nodes, an AtomTable, and a SourceManager.
// All access to the nodes it owns goes through a ViewSession; Heap
// itself exposes only lifecycle and introspection methods.
type Heap struct {
	id            uint32
	cfg           heapConfig
	chunks        []*chunk
	freelist      []*storageEntry
	curMark       uint32
	liveCount     int
	atomTable     *AtomTable
	sourceManager *SourceManager
}

// New creates an empty Heap. The heap owns no nodes until a ViewSession
// allocates some.
func New(opts ...Option) *Heap {
	cfg := defaultHeapConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	h := &Heap{
		id:            allocateHeapID(),
		cfg:           cfg,
		atomTable:     newAtomTable(),
		sourceManager: newSourceManager(),
	}
	h.growBy(cfg.initialChunkCapacity)
	return h
}

// ID returns the heap's process-wide unique identity, used to detect a
// Handle or *Node being used through a session bound to a different
// heap.
func (h *Heap) ID() uint32 { return h.id }

// AtomTable returns the heap's string interning table.
func (h *Heap) AtomTable() *AtomTable { return h.atomTable }

// SourceManager returns the heap's source file registry.
func (h *Heap) SourceManager() *SourceManager { return h.sourceManager }

// LiveCount returns the number of currently occupied entries. It is
// intended for tests and diagnostics, not for production control flow.
func (h *Heap) LiveCount() int { return h.liveCount }

// Close releases the heap's chunks. It panics with
// ErrCodeHeapDestroyedWithHandles if any entry still has a positive
// handle refcount, since destroying the heap out from under a live
// Handle would leave that Handle dangling with no way to detect the
// problem later.
func (h *Heap) Close() {
	var live uint32
	var sample string
	for _, c := range h.chunks {
		for i := range c.entries {
			e := &c.entries[i]
			if e.isFree() {
				continue
			}
			if e.handleRefcount > 0 {
				live++
				if sample == "" {
					sample = e.node.Kind().String()
				}
			}
		}
	}
	if live > 0 {
		panic(newHeapDestroyedWithHandles(h.id, live, sample))
	}
	h.chunks = nil
	h.freelist = nil
}

// growBy allocates one more chunk of exactly the given capacity and
// pushes all of its entries onto the freelist. New calls it with the
// configured initial capacity (WithInitialChunkCapacity, default
// minChunkCapacity); allocate's growth path calls it with
// nextChunkCapacity of the last chunk.
func (h *Heap) growBy(capacity int) {
	c := newChunk(capacity)
	h.chunks = append(h.chunks, c)
	for i := range c.entries {
		h.freelist = append(h.freelist, &c.entries[i])
	}
	h.cfg.logger.Debug("heap chunk allocated", "heap_id", h.id, "capacity", capacity, "total_chunks", len(h.chunks))
	h.cfg.metrics.ChunkGrowth(capacity)
}

// lastChunkCapacity returns the capacity of the most recently allocated
// chunk, or 0 if none exist yet.
func (h *Heap) lastChunkCapacity() int {
	if len(h.chunks) == 0 {
		return 0
	}
	return len(h.chunks[len(h.chunks)-1].entries)
}

// allocate places tpl into a free entry and returns a pointer to its
// Node payload, growing the arena first if the freelist is empty. The
// returned pointer is valid for as long as the entry remains occupied;
// callers (ViewSession.Allocate) are responsible for only handing it out
// for a lifetime the collector's reachability tracing will honor.
func (h *Heap) allocate(tpl Template) *Node {
	if len(h.freelist) == 0 {
		h.growBy(nextChunkCapacity(h.lastChunkCapacity()))
	}
	last := len(h.freelist) - 1
	e := h.freelist[last]
	h.freelist = h.freelist[:last]

	e.occupy(h.id, h.curMark)
	tpl.apply(&e.node)
	h.liveCount++
	h.cfg.metrics.AllocationCount(1)
	return &e.node
}
