// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package aatree

// Tree - type to hold the root node of a tree
type Tree struct {
	root  *Node
	count int
}

// New - create an initially empty set
func New() *Tree {
	return &Tree{
		root:  nil,
		count: 0,
	}
}

// NewFromItems - create a set holding the given initial items,
// duplicates are merged
func NewFromItems(items ...Item) *Tree {
	tree := New()
	for _, item := range items {
		tree.Insert(item)
	}
	return tree
}

// NewFromRange - create a set from a pair of cursors over another
// set: first is included, last is excluded
func NewFromRange(first Iterator, last Iterator) *Tree {
	tree := New()
	for it := first; !it.Equal(last); it.Next() {
		tree.Insert(it.Item())
	}
	return tree
}

// Copy - create a new set holding the same items
func (tree *Tree) Copy() *Tree {
	copied := New()
	for p := tree.First(); nil != p; p = p.Next() {
		copied.Insert(p.item)
	}
	return copied
}

// Assign - replace the contents with a copy of another set,
// assigning a set to itself is a no-op
func (tree *Tree) Assign(src *Tree) {
	if tree == src {
		return
	}
	tree.Clear()
	for p := src.First(); nil != p; p = p.Next() {
		tree.Insert(p.item)
	}
}

// Clear - remove all items, releasing every node
func (tree *Tree) Clear() {
	clearNodes(tree.root)
	tree.root = nil
	tree.count = 0
}

// internal: post-order release of a sub-tree
func clearNodes(p *Node) {
	if nil == p {
		return
	}
	clearNodes(p.left)
	clearNodes(p.right)
	freeNode(p)
}

// IsEmpty - true if the set contains no items
func (tree *Tree) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of items currently in the set
func (tree *Tree) Count() int {
	return tree.count
}

// Root - return the root node of the tree
func (tree *Tree) Root() *Node {
	return tree.root
}

// Item - read the stored value from a node
func (p *Node) Item() Item {
	return p.item
}

// Parent - return parent node of a node
func (p *Node) Parent() *Node {
	return p.up
}

// Depth - get the depth of a node
func (p *Node) Depth() uint {
	count := uint(0)
	parent := p.up
	for parent != nil {
		count += 1
		parent = parent.up
	}
	return count
}
