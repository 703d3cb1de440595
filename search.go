// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package aatree

// Search - find the node holding a specific item
// returns nil if the item is not in the set
func (tree *Tree) Search(item Item) *Node {
	return search(item, tree.root)
}

func search(item Item, tree *Node) *Node {
	if nil == tree {
		return nil
	}

	switch tree.item.Compare(item) {
	case +1: // tree.item > item
		return search(item, tree.left)
	case -1: // tree.item < item
		return search(item, tree.right)
	default:
		return tree
	}
}

// LowerBound - cursor on the smallest item that is not less than the
// given item, or the end position if every item is less
func (tree *Tree) LowerBound(item Item) Iterator {
	var candidate *Node
	p := tree.root
	for nil != p {
		if -1 == p.item.Compare(item) { // p.item < item
			p = p.right
		} else {
			candidate = p
			p = p.left
		}
	}
	return Iterator{
		tree: tree,
		node: candidate,
	}
}

// Find - cursor on the given item if it is in the set, otherwise the
// end position
func (tree *Tree) Find(item Item) Iterator {
	it := tree.LowerBound(item)
	if nil != it.node && 0 == it.node.item.Compare(item) {
		return it
	}
	return tree.End()
}
