// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package tree models the component hierarchy of the TUI page and provides
// traversal over it: ancestors nearest-first, descendants in breadth-first
// order, and filtered nearest-match searches.
package tree

import (
	"errors"
	"iter"
)

// ErrNodeNotFound is returned when a required ancestor or descendant does
// not exist. Use errors.Is to test for it.
var ErrNodeNotFound = errors.New("node not found")

// =============================================================================
// NODE INTERFACE
// =============================================================================

// Node is a member of the component hierarchy. Every node has zero or one
// parent and zero or more children.
type Node interface {
	Parent() Node
	ChildCount() int
	Child(i int) Node
}

// =============================================================================
// BRANCH HELPER
// =============================================================================

// Branch is an embeddable Node implementation. Components embed a Branch and
// get hierarchy bookkeeping for free; Attach wires both directions.
type Branch struct {
	parent   Node
	children []Node
}

// Parent returns the node's parent, or nil at the root.
func (b *Branch) Parent() Node { return b.parent }

// ChildCount returns the number of direct children.
func (b *Branch) ChildCount() int { return len(b.children) }

// Child returns the i-th direct child.
func (b *Branch) Child(i int) Node { return b.children[i] }

// Attach adds child under self, recording self as the child's parent.
// The child must also embed a Branch; attaching a foreign Node implementation
// as a child is allowed but leaves its parent pointer untouched.
func (b *Branch) Attach(self Node, child Node) {
	b.children = append(b.children, child)
	if cb, ok := child.(interface{ setParent(Node) }); ok {
		cb.setParent(self)
	}
}

func (b *Branch) setParent(p Node) { b.parent = p }

// =============================================================================
// TRAVERSAL
// =============================================================================

// Ancestors enumerates the ancestors of n nearest-first, excluding n itself.
func Ancestors(n Node) iter.Seq[Node] {
	return func(yield func(Node) bool) {
		for p := n.Parent(); p != nil; p = p.Parent() {
			if !yield(p) {
				return
			}
		}
	}
}

// Descendants enumerates the descendants of n in breadth-first order,
// excluding n itself.
func Descendants(n Node) iter.Seq[Node] {
	return func(yield func(Node) bool) {
		queue := make([]Node, 0, n.ChildCount())
		for i := 0; i < n.ChildCount(); i++ {
			queue = append(queue, n.Child(i))
		}
		for len(queue) > 0 {
			next := queue[0]
			queue = queue[1:]
			if !yield(next) {
				return
			}
			for i := 0; i < next.ChildCount(); i++ {
				queue = append(queue, next.Child(i))
			}
		}
	}
}

// =============================================================================
// FILTERED SEARCH
// =============================================================================

// FindAncestor returns the nearest ancestor of n satisfying pred, or
// ErrNodeNotFound if no ancestor matches.
func FindAncestor(n Node, pred func(Node) bool) (Node, error) {
	for a := range Ancestors(n) {
		if pred(a) {
			return a, nil
		}
	}
	return nil, ErrNodeNotFound
}

// FindDescendant returns the nearest descendant of n (breadth-first) that
// satisfies pred, or ErrNodeNotFound if no descendant matches.
func FindDescendant(n Node, pred func(Node) bool) (Node, error) {
	for d := range Descendants(n) {
		if pred(d) {
			return d, nil
		}
	}
	return nil, ErrNodeNotFound
}

// TryFindDescendant is the non-failing variant of FindDescendant: the second
// return reports whether a match was found.
func TryFindDescendant(n Node, pred func(Node) bool) (Node, bool) {
	d, err := FindDescendant(n, pred)
	return d, err == nil
}

// FindDescendantOfType returns the nearest descendant assignable to type T
// that also satisfies pred. A nil pred matches every node of the type.
func FindDescendantOfType[T Node](n Node, pred func(T) bool) (T, error) {
	var zero T
	d, err := FindDescendant(n, func(c Node) bool {
		t, ok := c.(T)
		if !ok {
			return false
		}
		return pred == nil || pred(t)
	})
	if err != nil {
		return zero, err
	}
	return d.(T), nil
}

// FindAncestorOfType returns the nearest ancestor assignable to type T that
// also satisfies pred. A nil pred matches every node of the type.
func FindAncestorOfType[T Node](n Node, pred func(T) bool) (T, error) {
	var zero T
	a, err := FindAncestor(n, func(c Node) bool {
		t, ok := c.(T)
		if !ok {
			return false
		}
		return pred == nil || pred(t)
	})
	if err != nil {
		return zero, err
	}
	return a.(T), nil
}
