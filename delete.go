// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package aatree

// Delete - remove an item from the set
// returns true if the item was present, removing an absent item is a
// no-op and returns false
//
// only the node holding the removed item is released: an interior
// removal moves the neighbouring node into the vacated position by
// pointer rewiring, so node pointers on all surviving items stay
// valid
func (tree *Tree) Delete(item Item) bool {
	removed := false
	tree.root, removed = erase(item, tree.root)
	if removed {
		tree.count -= 1
	}
	return removed
}

// internal delete routine
func erase(item Item, p *Node) (*Node, bool) {
	if nil == p { // item not in tree
		return nil, false
	}
	removed := false
	switch p.item.Compare(item) {
	case +1: // p.item > item
		p.left, removed = erase(item, p.left)
		if nil != p.left {
			p.left.up = p
		}
	case -1: // p.item < item
		p.right, removed = erase(item, p.right)
		if nil != p.right {
			p.right.up = p
		}
	default: // found
		if nil == p.left && nil == p.right {
			freeNode(p)
			return nil, true
		}

		// unhook the in-order neighbour and rewire it into this
		// position, so the node keeps its address while the item
		// moves up the tree
		var n *Node
		if nil == p.left {
			n = p.right.first() // successor
			p.right = detach(n, p.right)
		} else {
			n = p.left.last() // predecessor
			p.left = detach(n, p.left)
		}
		n.left = p.left
		n.right = p.right
		n.up = p.up
		n.level = p.level
		if nil != n.left {
			n.left.up = n
		}
		if nil != n.right {
			n.right.up = n
		}
		freeNode(p)
		p = n
		removed = true
	}

	// a removal can leave level deficiencies at up to three adjacent
	// positions along the right spine, so the clean up is wider than
	// the single skew/split that insert needs
	p = decreaseLevel(p)
	p = skew(p)
	p.right = skew(p.right)
	if nil != p.right {
		p.right.right = skew(p.right.right)
	}
	p = split(p)
	p.right = split(p.right)
	return p, removed
}

// internal: remove one specific node from a sub-tree without
// releasing it, applying the same level clean up as erase along the
// path
//
// only called for the in-order neighbour of an interior node, which
// has at most one child
func detach(target *Node, p *Node) *Node {
	if p == target {
		child := p.left
		if nil == child {
			child = p.right
		}
		p = child
	} else if -1 == p.item.Compare(target.item) { // p.item < target.item
		p.right = detach(target, p.right)
		if nil != p.right {
			p.right.up = p
		}
	} else {
		p.left = detach(target, p.left)
		if nil != p.left {
			p.left.up = p
		}
	}

	if nil == p {
		return nil
	}
	p = decreaseLevel(p)
	p = skew(p)
	p.right = skew(p.right)
	if nil != p.right {
		p.right.right = skew(p.right.right)
	}
	p = split(p)
	p.right = split(p.right)
	return p
}
