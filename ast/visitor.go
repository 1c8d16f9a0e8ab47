// Copyright 2026 The Hermes Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package ast

// Visitor is implemented by read-only tree walkers (a dumper, a static
// analysis pass). Visit is called on entry to a node; returning false
// skips that node's children but still calls Leave on the node itself.
// Leave is called after all children (if any were visited) have been
// fully walked.
type Visitor interface {
	Visit(n *Node) bool
	Leave(n *Node)
}

// Walk performs a depth-first traversal of n and its descendants,
// dispatching through v. It never allocates: descending into children is
// done via forEachChild, which reads directly out of n's flat slot
// layout according to its kind's schema.
func (n *Node) Walk(v Visitor) {
	if n == nil {
		return
	}
	if v.Visit(n) {
		n.forEachChild(func(child *Node) {
			child.Walk(v)
		})
	}
	v.Leave(n)
}

// TransformResult reports whether a Mutator produced a new node (or left
// a list with at least one new element) or left its input untouched.
// Callers use this, not pointer comparison, to decide whether a parent
// needs to record a new child pointer.
type TransformResult uint8

const (
	Unchanged TransformResult = iota
	Changed
)

// Mutator is implemented by rewrite passes. Mutate is called once per
// node, pre-order; it returns the node to keep in that slot (n itself,
// if it made no changes of its own) and whether the returned node
// differs from n. A Mutator is responsible for recursing into the
// returned node's own children, typically by calling TransformChildren on
// it before returning.
type Mutator interface {
	Mutate(n *Node) (*Node, TransformResult)
}

// TransformChildren rewrites n's node-shaped children in place according
// to m, and reports whether any child actually changed. Required single
// children and present optional children are mutated directly; node
// lists use copy-on-first-write so that a list with no changed elements
// keeps its original backing array (same pointer identity as before,
// satisfying callers that rely on unchanged subtrees being == across a
// transform pass), and a list with a changed element gets a fresh slice
// whose untouched elements are the very same *Node pointers as before.
func (n *Node) TransformChildren(m Mutator) TransformResult {
	overall := Unchanged
	for _, f := range n.fields() {
		switch f.category {
		case ChildSingleNode:
			child := n.slotValue(f.slot)
			newChild, res := m.Mutate(child)
			if res == Changed {
				n.setSlotValue(f.slot, newChild)
				overall = Changed
			}
		case ChildOptionalNode:
			child := n.slotValue(f.slot)
			if child == nil {
				continue
			}
			newChild, res := m.Mutate(child)
			if res == Changed {
				n.setSlotValue(f.slot, newChild)
				overall = Changed
			}
		case ChildNodeList, ChildOptionalNodeList:
			present, list := n.listSlotValue(f.slot)
			if f.category == ChildOptionalNodeList && !present {
				continue
			}
			newList, res := transformNodeList(list, m)
			if res == Changed {
				n.setListSlotValue(f.slot, newList)
				overall = Changed
			}
		}
	}
	return overall
}

// transformNodeList applies m to every element of list. As long as every
// element comes back Unchanged, it returns the original slice verbatim.
// On the first Changed element it allocates a replacement slice, copies
// the untouched prefix into it, and continues writing results (changed
// or not) into the new slice for the remainder. Every element the
// mutator left unchanged, before or after the first change, keeps its
// pointer identity even though it now lives in a different array.
func transformNodeList(list []*Node, m Mutator) ([]*Node, TransformResult) {
	var out []*Node
	for i, el := range list {
		newEl, res := m.Mutate(el)
		if res == Changed && out == nil {
			out = make([]*Node, len(list))
			copy(out, list[:i])
		}
		if out != nil {
			out[i] = newEl
		}
	}
	if out == nil {
		return list, Unchanged
	}
	return out, Changed
}
