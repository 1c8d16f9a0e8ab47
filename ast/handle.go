// Copyright 2026 The Hermes Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package ast

// Handle is a refcounted, heap-bound reference to a node that outlives
// any single ViewSession. Unlike a *Node obtained mid-session, a Handle
// may be stored in a long-lived struct and dereferenced again later
// through a fresh session on the same Heap.
//
// A Handle's refcount lives directly in the storageEntry it points to
// (storageEntry.handleRefcount) rather than in a separate block the way
// the design this package is adapted from keeps a dedicated
// HandleCounter allocation. That indirection exists there to keep
// refcounts valid even if the owning heap struct itself is moved or
// reallocated; it isn't needed here because every storageEntry this
// package hands out lives in a chunk's backing array, which is sized
// once and never regrown, so its address is already as stable as a
// separate allocation would be.
type Handle struct {
	entry  *storageEntry
	heapID uint32
}

// NewHandle promotes a session-scoped node reference to a Handle,
// incrementing its refcount. n must have been obtained from a
// ViewSession on the same heap this Handle will later be dereferenced
// through; promoting a node obtained from a different heap is the
// caller's bug to avoid; CrossHeapDereference is only caught at Deref
// time, not at promotion time, to keep promotion a single increment.
func NewHandle(n *Node) Handle {
	e := storageEntryFromNode(n)
	e.handleRefcount++
	return Handle{entry: e, heapID: e.ownerHeapID()}
}

// Clone increments the handle's refcount and returns an independent
// Handle value referring to the same node. Both the receiver and the
// result must eventually be Released.
func (h Handle) Clone() Handle {
	h.entry.handleRefcount++
	return h
}

// Release decrements the handle's refcount. Once a given promotion's
// refcount reaches zero, the node it refers to is no longer a root for
// collection purposes (though it remains reachable, and therefore
// alive, if something else still reaches it).
func (h Handle) Release() {
	if h.entry.handleRefcount > 0 {
		h.entry.handleRefcount--
	}
}

// HeapID returns the id of the heap this handle belongs to, for
// matching against a ViewSession's heap at Deref time.
func (h Handle) HeapID() uint32 {
	return h.heapID
}

// deref returns the node a handle refers to, for ViewSession.Deref to
// hand out. It panics with ErrCodeCrossHeapDereference if sessHeapID,
// the id of the heap the dereferencing session views, is not the heap
// this handle was created from; a Handle carries no session of its own.
func (h Handle) deref(sessHeapID uint32) *Node {
	if h.heapID != sessHeapID {
		panic(newCrossHeapDereference(h.heapID, sessHeapID))
	}
	return &h.entry.node
}
