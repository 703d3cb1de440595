// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package aatree

// First - return the node with the lowest item
func (tree *Tree) First() *Node {
	return tree.root.first()
}

// internal: lowest node in a sub-tree
func (tree *Node) first() *Node {
	if tree == nil {
		return nil
	}
	for tree.left != nil {
		tree = tree.left
	}
	return tree
}

// Last - return the node with the highest item
func (tree *Tree) Last() *Node {
	return tree.root.last()
}

// internal: highest node in a sub-tree
func (tree *Node) last() *Node {
	if tree == nil {
		return nil
	}
	for tree.right != nil {
		tree = tree.right
	}
	return tree
}

// Next - given a node, return the node with the next highest item or
// nil if no more nodes.
func (tree *Node) Next() *Node {
	if tree.right == nil {
		item := tree.item
		for {
			tree = tree.up
			if tree == nil {
				return nil
			}
			if tree.item.Compare(item) == 1 { // tree.item > item
				return tree
			}
		}
	}
	return tree.right.first()
}

// Prev - given a node, return the node with the next lowest item or
// nil if no more nodes
func (tree *Node) Prev() *Node {
	if tree.left == nil {
		item := tree.item
		for {
			tree = tree.up
			if tree == nil {
				return nil
			}
			if -1 == tree.item.Compare(item) { // tree.item < item
				return tree
			}
		}
	}
	return tree.left.last()
}

// Iterator - a bidirectional cursor over a set
//
// a nil node marks the end position, one past the highest item; the
// zero value is not useful, obtain cursors from Begin, End, Find or
// LowerBound
type Iterator struct {
	tree *Tree
	node *Node
}

// Begin - cursor on the lowest item, equal to End if the set is empty
func (tree *Tree) Begin() Iterator {
	return Iterator{
		tree: tree,
		node: tree.root.first(),
	}
}

// End - cursor one past the highest item
func (tree *Tree) End() Iterator {
	return Iterator{
		tree: tree,
	}
}

// IsEnd - true if the cursor is at the end position
func (it Iterator) IsEnd() bool {
	return nil == it.node
}

// Item - read the item under the cursor
// the end position holds no item, dereferencing it will panic
func (it Iterator) Item() Item {
	return it.node.item
}

// Node - the node under the cursor or nil at the end position
func (it Iterator) Node() *Node {
	return it.node
}

// Next - advance to the next item in order
// advancing the end position is a contract violation and will panic
func (it *Iterator) Next() {
	it.node = it.node.Next()
}

// Prev - step back to the previous item in order
// stepping back from the end position moves to the highest item, or
// stays at the end position if the set is empty
func (it *Iterator) Prev() {
	if nil == it.node {
		it.node = it.tree.root.last()
		return
	}
	it.node = it.node.Prev()
}

// Equal - true if both cursors refer to the same position of the
// same set
func (it Iterator) Equal(other Iterator) bool {
	return it.tree == other.tree && it.node == other.node
}
