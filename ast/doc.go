// Copyright 2026 The Hermes Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

// Package ast implements a managed heap and handle system for a JavaScript-
// family abstract syntax tree.
//
// Nodes are allocated into a chunked, non-relocating arena (Heap) and
// reclaimed by an explicit mark-and-sweep collection that traces from
// external roots (Handles). Transient code views the arena through a
// ViewSession, which is scoped and thread-exclusive so raw node references
// can never outlive their session or cross between heaps. Long-lived code
// promotes a session-scoped node reference to a Handle, which is
// refcounted and independent of any session.
//
// The package also provides the generic child-visiting machinery
// (Visitor, Mutator) that every consumer of the tree (a dumper, a
// validator, a transform pass) builds on, and an AtomTable that interns
// identifier text into small stable integers.
//
// Collection is always explicit: the package never triggers a collection
// on allocation pressure, and never shares nodes across heaps.
package ast
