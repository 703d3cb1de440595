// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package aatree

// Insert - add an item to the set
// returns true if the item was added, false if it was already present
func (tree *Tree) Insert(item Item) bool {
	added := false
	tree.root, added = insert(item, tree.root)
	if added {
		tree.count += 1
	}
	return added
}

// internal routine for insert
//
// one skew followed by one split on each level of the path is enough
// to restore the level rules: a single insert can create at most one
// left horizontal link and one double right horizontal link per level
func insert(item Item, p *Node) (*Node, bool) {
	if nil == p { // insert new leaf
		return newNode(item), true
	}
	added := false
	switch p.item.Compare(item) {
	case +1: // p.item > item
		p.left, added = insert(item, p.left)
		p.left.up = p
	case -1: // p.item < item
		p.right, added = insert(item, p.right)
		p.right.up = p
	default: // already present, the set is unchanged
		return p, false
	}
	p = skew(p)
	p = split(p)
	return p, added
}
