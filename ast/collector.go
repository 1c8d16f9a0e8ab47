// Copyright 2026 The Hermes Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package ast

// Collect performs a full mark-and-sweep collection of h: every entry
// reachable from a Handle (an entry with a positive handle refcount) is
// kept, and everything else is returned to the freelist. Reachability,
// not refcounting, decides what survives. A chain or cycle of nodes with
// no Handle anywhere in it is collected even though the nodes still
// point at each other, and a Handle on a node nested anywhere in a tree
// keeps that node and everything below it alive, but not the nodes above
// it.
//
// Collect requires exclusive access to h: it panics if any goroutine
// (including the caller) already has a ViewSession open on h, the same
// way opening a second session on one goroutine panics. For the marking
// walk itself, Collect opens its own short-lived internal ViewSession on
// h and closes it before sweeping, so the collector exercises the same
// single-active-session invariant every other reader of h's nodes does,
// rather than reaching into entries with no session at all.
//
// Marking uses a polarity flip instead of clearing mark bits in a
// separate pass: each collection targets the opposite bit value from the
// last one, so a live entry only ever needs one write (stamping it with
// the new polarity) and a freshly swept heap never needs to be walked
// again just to reset state for next time.
func (h *Heap) Collect() {
	if heapHasActiveSession(h.id) {
		panic(newCollectWithActiveSession(h.id))
	}

	start := h.cfg.timeProvider.Now()

	markSess := NewViewSession(h)

	newMark := h.curMark ^ markBit
	var roots []*storageEntry
	for _, c := range h.chunks {
		for i := range c.entries {
			e := &c.entries[i]
			if !e.isFree() && e.handleRefcount > 0 {
				roots = append(roots, e)
			}
		}
	}

	for _, e := range roots {
		markEntry(e, newMark)
	}

	markSess.Close()

	var reclaimed int64
	for _, c := range h.chunks {
		for i := range c.entries {
			e := &c.entries[i]
			if e.isFree() {
				continue
			}
			if e.marked(newMark) {
				continue
			}
			e.release()
			h.freelist = append(h.freelist, e)
			h.liveCount--
			reclaimed++
		}
	}

	h.curMark = newMark

	elapsed := h.cfg.timeProvider.Now() - start
	h.cfg.metrics.CollectionDuration(elapsed)
	h.cfg.metrics.CollectionReclaimed(reclaimed)
	h.cfg.logger.Info("collection completed",
		"heap_id", h.id,
		"reclaimed", reclaimed,
		"live", h.liveCount,
		"duration_ns", elapsed,
	)
}

// markEntry marks e and everything reachable from it with newMark. It
// returns immediately if e is already marked with newMark, which both
// terminates cycles and avoids re-walking subtrees shared by more than
// one root or more than one parent.
func markEntry(e *storageEntry, newMark uint32) {
	if e.marked(newMark) {
		return
	}
	e.setMarked(newMark)
	e.node.forEachChild(func(child *Node) {
		markEntry(storageEntryFromNode(child), newMark)
	})
}
