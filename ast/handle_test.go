// Copyright 2026 The Hermes Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package ast

import "testing"

func TestHandleCloneKeepsNodeAliveUntilAllReleased(t *testing.T) {
	h := New()
	sess := NewViewSession(h)

	n := sess.Allocate(NewNumericLiteral(SourceRange{}, 1))
	h1 := NewHandle(n)
	h2 := h1.Clone()
	sess.Close()

	h1.Release()
	h.Collect()
	if h.LiveCount() != 1 {
		t.Fatalf("LiveCount() after releasing only one of two clones = %d, want 1", h.LiveCount())
	}

	h2.Release()
	h.Collect()
	if h.LiveCount() != 0 {
		t.Fatalf("LiveCount() after releasing the last clone = %d, want 0", h.LiveCount())
	}
}

func TestHandleHeapID(t *testing.T) {
	h := New()
	sess := NewViewSession(h)
	n := sess.Allocate(NewNumericLiteral(SourceRange{}, 1))
	handle := NewHandle(n)
	defer handle.Release()
	sess.Close()

	if handle.HeapID() != h.ID() {
		t.Fatalf("HeapID() = %d, want %d", handle.HeapID(), h.ID())
	}
}
