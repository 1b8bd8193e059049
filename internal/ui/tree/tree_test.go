// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package tree models the component hierarchy of the TUI page.
package tree

import (
	"errors"
	"slices"
	"testing"
)

// testNode is a minimal named node for traversal tests.
type testNode struct {
	Branch
	name string
}

func newTestNode(name string) *testNode {
	return &testNode{name: name}
}

func (n *testNode) attach(child *testNode) *testNode {
	n.Attach(n, child)
	return child
}

// buildTree constructs:
//
//	root
//	├── a
//	│   ├── a1
//	│   └── a2
//	└── b
//	    └── b1
//	        └── b1x
func buildTree() (root, a, a1, a2, b, b1, b1x *testNode) {
	root = newTestNode("root")
	a = root.attach(newTestNode("a"))
	b = root.attach(newTestNode("b"))
	a1 = a.attach(newTestNode("a1"))
	a2 = a.attach(newTestNode("a2"))
	b1 = b.attach(newTestNode("b1"))
	b1x = b1.attach(newTestNode("b1x"))
	return
}

func names(seq func(func(Node) bool)) []string {
	var out []string
	for n := range seq {
		out = append(out, n.(*testNode).name)
	}
	return out
}

// =============================================================================
// TRAVERSAL TESTS
// =============================================================================

func TestAncestors_NearestFirst(t *testing.T) {
	_, _, _, _, _, _, b1x := buildTree()

	got := names(Ancestors(b1x))
	want := []string{"b1", "b", "root"}
	if !slices.Equal(got, want) {
		t.Errorf("Ancestors = %v, want %v", got, want)
	}
}

func TestAncestors_RootHasNone(t *testing.T) {
	root, _, _, _, _, _, _ := buildTree()
	if got := names(Ancestors(root)); got != nil {
		t.Errorf("Ancestors(root) = %v, want none", got)
	}
}

func TestDescendants_BreadthFirst(t *testing.T) {
	root, _, _, _, _, _, _ := buildTree()

	got := names(Descendants(root))
	want := []string{"a", "b", "a1", "a2", "b1", "b1x"}
	if !slices.Equal(got, want) {
		t.Errorf("Descendants = %v, want %v", got, want)
	}
}

func TestDescendants_LeafHasNone(t *testing.T) {
	_, _, a1, _, _, _, _ := buildTree()
	if got := names(Descendants(a1)); got != nil {
		t.Errorf("Descendants(leaf) = %v, want none", got)
	}
}

// =============================================================================
// SEARCH TESTS
// =============================================================================

func TestFindAncestor(t *testing.T) {
	_, _, _, _, b, _, b1x := buildTree()

	got, err := FindAncestor(b1x, func(n Node) bool { return n.(*testNode).name == "b" })
	if err != nil {
		t.Fatalf("FindAncestor failed: %v", err)
	}
	if got != b {
		t.Errorf("FindAncestor = %v, want b", got)
	}

	_, err = FindAncestor(b1x, func(n Node) bool { return false })
	if !errors.Is(err, ErrNodeNotFound) {
		t.Errorf("no match = %v, want ErrNodeNotFound", err)
	}
}

func TestFindDescendant_NearestMatchWins(t *testing.T) {
	root, _, _, _, b, _, _ := buildTree()

	// Both "b" (depth 1) and "b1" (depth 2) start with 'b'; BFS finds "b".
	got, err := FindDescendant(root, func(n Node) bool {
		return n.(*testNode).name[0] == 'b'
	})
	if err != nil {
		t.Fatalf("FindDescendant failed: %v", err)
	}
	if got != b {
		t.Errorf("FindDescendant = %v, want b", got)
	}
}

func TestTryFindDescendant(t *testing.T) {
	root, _, _, _, _, _, _ := buildTree()

	if _, ok := TryFindDescendant(root, func(n Node) bool { return n.(*testNode).name == "a2" }); !ok {
		t.Error("TryFindDescendant(a2) = not found, want found")
	}
	if _, ok := TryFindDescendant(root, func(n Node) bool { return false }); ok {
		t.Error("TryFindDescendant(never) = found, want not found")
	}
}

func TestFindDescendantOfType(t *testing.T) {
	root, _, _, _, _, _, _ := buildTree()

	got, err := FindDescendantOfType[*testNode](root, func(n *testNode) bool { return n.name == "b1x" })
	if err != nil {
		t.Fatalf("FindDescendantOfType failed: %v", err)
	}
	if got.name != "b1x" {
		t.Errorf("FindDescendantOfType = %q, want b1x", got.name)
	}

	// Nil predicate matches the first node of the type in BFS order.
	first, err := FindDescendantOfType[*testNode](root, nil)
	if err != nil || first.name != "a" {
		t.Errorf("FindDescendantOfType(nil pred) = (%v, %v), want a", first, err)
	}
}

func TestFindAncestorOfType(t *testing.T) {
	_, _, _, _, _, b1, b1x := buildTree()

	got, err := FindAncestorOfType[*testNode](b1x, nil)
	if err != nil {
		t.Fatalf("FindAncestorOfType failed: %v", err)
	}
	if got != b1 {
		t.Errorf("FindAncestorOfType = %v, want nearest ancestor b1", got)
	}
}
