// Copyright 2026 The Hermes Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package ast

import (
	"testing"
	"unicode/utf16"
)

func TestStringLiteralValueIsRawUTF16NotAnAtom(t *testing.T) {
	h := New()
	sess := NewViewSession(h)
	defer sess.Close()

	// An unpaired high surrogate: legal in a JS string literal, not
	// representable as a well-formed Go string.
	raw := []uint16{utf16.Encode([]rune("héllo"))[0], 0xD800}

	n := sess.Allocate(NewStringLiteral(SourceRange{}, raw))
	got := n.StringValue()
	if len(got) != len(raw) {
		t.Fatalf("StringValue() length = %d, want %d", len(got), len(raw))
	}
	for i := range raw {
		if got[i] != raw[i] {
			t.Fatalf("StringValue()[%d] = %x, want %x", i, got[i], raw[i])
		}
	}
}

func TestVariableDeclarationKindRoundTripsThroughNode(t *testing.T) {
	h := New()
	sess := NewViewSession(h)
	defer sess.Close()

	for _, k := range []VariableDeclarationKind{DeclarationVar, DeclarationLet, DeclarationConst} {
		decl := sess.Allocate(NewVariableDeclaration(SourceRange{}, k, nil))
		if got := decl.DeclarationKind(); got != k {
			t.Fatalf("DeclarationKind() = %v, want %v", got, k)
		}
	}
}
