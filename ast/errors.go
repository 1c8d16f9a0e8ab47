// Copyright 2026 The Hermes Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package ast

import (
	goerrors "github.com/agilira/go-errors"
)

// Error codes for the ast package's programming-error (fatal) and
// data-error (recoverable) conditions. Programming errors indicate
// corruption of the core's invariants (spec.md §7) and are always
// surfaced as panics carrying one of these codes; InvalidStringProperty
// is the one recoverable kind and is returned as a normal error.
const (
	ErrCodeCrossHeapDereference     goerrors.ErrorCode = "AST_CROSS_HEAP_DEREFERENCE"
	ErrCodeMultipleSessions         goerrors.ErrorCode = "AST_MULTIPLE_SESSIONS"
	ErrCodeHeapDestroyedWithHandles goerrors.ErrorCode = "AST_HEAP_DESTROYED_WITH_LIVE_HANDLES"
	ErrCodeInvalidStringProperty    goerrors.ErrorCode = "AST_INVALID_STRING_PROPERTY"
)

const (
	msgCrossHeapDereference     = "handle dereferenced through a session bound to a different heap"
	msgMultipleSessions         = "attempt to open a second view session on a thread that already has one active"
	msgCollectWithActiveSession = "collect called while a view session is still active on the heap"
	msgHeapDestroyedWithHandles = "heap destroyed while handles into it are still live"
	msgInvalidStringProperty    = "text does not name a known operator/keyword for this property"
)

// newCrossHeapDereference builds the panic value for Handle.Deref when the
// session's heap id does not match the id the handle was created in.
func newCrossHeapDereference(handleHeapID, sessionHeapID uint32) error {
	return goerrors.NewWithContext(ErrCodeCrossHeapDereference, msgCrossHeapDereference, map[string]interface{}{
		"handle_heap_id":  handleHeapID,
		"session_heap_id": sessionHeapID,
	})
}

// newMultipleSessions builds the panic value for NewViewSession when the
// calling goroutine already has an active session on any heap.
func newMultipleSessions(goroutineID uint64) error {
	return goerrors.NewWithField(ErrCodeMultipleSessions, msgMultipleSessions, "goroutine_id", goroutineID)
}

// newCollectWithActiveSession builds the panic value for Heap.Collect when
// some goroutine still holds an open ViewSession on the heap being
// collected; Collect requires exclusive access.
func newCollectWithActiveSession(heapID uint32) error {
	return goerrors.NewWithField(ErrCodeMultipleSessions, msgCollectWithActiveSession, "heap_id", heapID)
}

// newHeapDestroyedWithHandles builds the panic value for Heap.Close when
// the handle count is still positive. liveCount is the number of entries
// with a positive handle refcount; firstOffending, when non-empty, is the
// kind name of the first such entry.
func newHeapDestroyedWithHandles(heapID uint32, liveCount uint32, firstOffending string) error {
	ctx := map[string]interface{}{
		"heap_id":    heapID,
		"live_count": liveCount,
	}
	if firstOffending != "" {
		ctx["first_offending_entry"] = firstOffending
	}
	return goerrors.NewWithContext(ErrCodeHeapDestroyedWithHandles, msgHeapDestroyedWithHandles, ctx)
}

// NewInvalidStringPropertyError builds the recoverable error returned when
// parsing a textual operator/keyword name into its enumerated form finds
// no match.
func NewInvalidStringPropertyError(kind, text string) error {
	return goerrors.NewWithContext(ErrCodeInvalidStringProperty, msgInvalidStringProperty, map[string]interface{}{
		"enum": kind,
		"text": text,
	})
}
