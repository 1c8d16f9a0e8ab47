// Copyright 2026 The Hermes Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package ast

import "testing"

func TestViewSessionAllocateAndDeref(t *testing.T) {
	h := New()
	sess := NewViewSession(h)
	defer sess.Close()

	n := sess.Allocate(NewNumericLiteral(SourceRange{}, 42))
	if n.Kind() != KindNumericLiteral {
		t.Fatalf("Kind() = %v, want KindNumericLiteral", n.Kind())
	}
	if n.NumberValue() != 42 {
		t.Fatalf("NumberValue() = %v, want 42", n.NumberValue())
	}

	handle := NewHandle(n)
	defer handle.Release()

	got := sess.Deref(handle)
	if got != n {
		t.Fatalf("Deref returned a different pointer than the one Allocate gave out")
	}
}

func TestViewSessionRejectsSecondSessionOnSameGoroutine(t *testing.T) {
	h := New()
	sess := NewViewSession(h)
	defer sess.Close()

	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected a panic opening a second session on the same goroutine")
		}
	}()
	second := NewViewSession(h)
	second.Close()
}

func TestViewSessionAllowsReopenAfterClose(t *testing.T) {
	h := New()

	sess1 := NewViewSession(h)
	sess1.Close()

	sess2 := NewViewSession(h)
	defer sess2.Close()

	sess2.Allocate(NewBooleanLiteral(SourceRange{}, true))
}

func TestViewSessionRejectsSessionOnDifferentHeapSameGoroutine(t *testing.T) {
	h1 := New()
	h2 := New()

	sess1 := NewViewSession(h1)
	defer sess1.Close()

	defer func() {
		if recover() == nil {
			t.Fatalf("expected a panic opening a session on h2 while h1's session is active")
		}
	}()
	sess2 := NewViewSession(h2)
	sess2.Close()
}

func TestHandleCrossHeapDerefPanics(t *testing.T) {
	h1 := New()
	h2 := New()

	sess1 := NewViewSession(h1)
	n := sess1.Allocate(NewNumericLiteral(SourceRange{}, 1))
	handle := NewHandle(n)
	sess1.Close()

	sess2 := NewViewSession(h2)
	defer sess2.Close()
	defer handle.Release()

	defer func() {
		if recover() == nil {
			t.Fatalf("expected a panic dereferencing a handle through a session on a different heap")
		}
	}()
	sess2.Deref(handle)
}
