// Copyright 2026 The Hermes Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package ast

// markBit is the top bit of the owner/mark cell. It is flipped wholesale
// between collections (see collector.go) rather than cleared in a
// separate sweep pass.
const markBit uint32 = 1 << 31

// ownerMask recovers the heap id packed into the low 31 bits of the
// owner/mark cell. A value of zero in these bits means the slot is free.
const ownerMask uint32 = markBit - 1

// storageEntry is one slot of a chunk: a header cell packing the owning
// heap's id together with the collector's mark bit, a handle refcount,
// and exactly one Node payload by value. Nodes are never boxed
// individually; the entry they live in is the unit of allocation,
// marking, and freeing.
//
// The header is a single uint32 so that marking a live entry during
// collection is one load-test-store instead of two separate fields,
// mirroring the packed representation the arena allocator this design is
// grounded on uses for its own per-slot metadata.
type storageEntry struct {
	ownerMark      uint32
	handleRefcount uint32
	node           Node
}

// isFree reports whether the entry holds no live node.
func (e *storageEntry) isFree() bool {
	return e.ownerMark&ownerMask == 0
}

// ownerHeapID returns the id of the heap this entry belongs to, or zero
// if the entry is free.
func (e *storageEntry) ownerHeapID() uint32 {
	return e.ownerMark & ownerMask
}

// marked reports whether the entry's mark bit matches curMark, i.e.
// whether the entry has already been visited in the collection in
// progress.
func (e *storageEntry) marked(curMark uint32) bool {
	return e.ownerMark&markBit == curMark
}

// setMarked sets the entry's mark bit to match curMark, leaving the
// owner id untouched.
func (e *storageEntry) setMarked(curMark uint32) {
	e.ownerMark = (e.ownerMark & ownerMask) | curMark
}

// occupy stamps the entry as live and owned by heapID, with the mark bit
// set to curMark, the heap's current "unmarked" polarity, so a freshly
// allocated entry reads as unmarked to the next collection (which marks
// with the opposite polarity) and survives it only if it is reachable.
func (e *storageEntry) occupy(heapID uint32, curMark uint32) {
	e.ownerMark = (heapID & ownerMask) | curMark
	e.handleRefcount = 0
}

// release clears the entry back to free, by zeroing the owner bits while
// preserving the current mark polarity (a free slot's mark bit is never
// inspected, but leaving garbage there would misrepresent ownerHeapID).
func (e *storageEntry) release() {
	e.ownerMark &= markBit
	e.node = Node{}
}
