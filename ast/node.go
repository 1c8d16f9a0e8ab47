// Copyright 2026 The Hermes Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package ast

import "unsafe"

// NodeMetadata is the information every node carries regardless of kind:
// its source position. The spec's original leaves room for richer
// per-node metadata (leading comments, template literal cook data); this
// module carries only source position since no node kind here needs the
// rest.
type NodeMetadata struct {
	Range SourceRange
}

// Node is the payload of a storageEntry. Go has no closed sum types, so
// rather than one Go type per node kind (which would force every child
// slot to be boxed behind an interface, defeating the point of a compact
// arena), Node is one flat struct: a Kind tag plus a small set of
// generic slots that every kind reinterprets according to its own
// schema, declared in kindSchemas. This mirrors the compact tagged
// representation the arena allocator this design is grounded on uses for
// its own value cells, generalized from a scalar union to also cover
// child-node and child-list slots.
//
// Field access is always mediated by the per-kind accessor methods in
// kinds.go; code outside this package never reads these slots directly.
type Node struct {
	kind Kind
	meta NodeMetadata

	// Scalar slots. Which of these a given Kind uses, and what they mean,
	// is fixed by the per-kind constructors in kinds.go; unused slots are
	// simply left zero.
	num   float64  // NumericLiteral.Value
	str   Atom     // Identifier.Name, ...: well-formed text, safe to intern
	strBuf []uint16 // StringLiteral.Value: raw UTF-16 code units, may contain unpaired surrogates a JS string literal can legally hold, so it is never run through the AtomTable or Go's (UTF-8-only) string type
	flag1 bool    // BooleanLiteral.Value, UnaryExpression/UpdateExpression.Prefix
	flag2 bool    // MemberExpression.Computed
	op    uint8   // the operator/keyword enum appropriate to Kind (see operators.go): UnaryOperator, BinaryOperator, ..., VariableDeclarationKind, ...

	// Single/optional node-child slots (Child category: node, Option<node>).
	child1 *Node
	child2 *Node
	child3 *Node

	// Node-list slots (Child category: NodeList, Option<NodeList>). Most
	// kinds need only one list-shaped field; Program additionally needs a
	// second for its optional directive prologue, so there are two.
	list     []*Node
	listSet  bool // set by the constructors of kinds with a plain NodeList field; the walkers treat list as always present and do not read it
	list2    []*Node
	list2Set bool // for the Option<NodeList> field: whether list2 is "Some" (possibly empty) or "None"
}

// Kind returns the node's variant tag.
func (n *Node) Kind() Kind { return n.kind }

// Range returns the node's source range.
func (n *Node) Range() SourceRange { return n.meta.Range }

// storageEntryFromNode recovers the enclosing storageEntry from a *Node
// obtained through a session. This is the Go analogue of the original's
// pointer-offset recovery (there is no operator in Go for "the struct
// this field lives in", so the offset is computed once via
// unsafe.Offsetof and reapplied here); it only ever produces a valid
// result when n actually points at the node field of a storageEntry
// allocated by this package, which is true for every *Node a ViewSession
// ever hands out.
func storageEntryFromNode(n *Node) *storageEntry {
	offset := unsafe.Offsetof(storageEntry{}.node)
	base := unsafe.Pointer(uintptr(unsafe.Pointer(n)) - offset)
	return (*storageEntry)(base)
}
