// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package aatree

import (
	"fmt"
)

// CheckUp - check the up pointers for consistency
func (tree *Tree) CheckUp() bool {
	return checkup(tree.root, nil)
}

// internal: consistency checker
func checkup(p *Node, up *Node) bool {
	if nil == p {
		return true
	}
	if p.up != up {
		fmt.Printf("fail at node: %v   actual: %p  expected: %p\n", p.item, p.up, up)
		return false
	}
	if !checkup(p.left, p) {
		return false
	}
	return checkup(p.right, p)
}

// CheckInvariants - verify the AA level rules, the ordering of the
// items and the item count over the whole tree
//
// the level rules are:
//  1. every leaf is level 1
//  2. a left child is strictly below its parent's level
//  3. a right child is at or below its parent's level
//  4. a right child's right child is strictly below its
//     grandparent's level
//  5. every node above level 1 has two children
func (tree *Tree) CheckInvariants() error {
	n, err := checkNode(tree.root)
	if nil != err {
		return err
	}
	if n != tree.count {
		return fmt.Errorf("count: actual: %d  expected: %d", tree.count, n)
	}

	// walking the whole tree must give every item exactly once in
	// strictly increasing order
	walked := 0
	var previous Item
	for p := tree.First(); nil != p; p = p.Next() {
		if nil != previous && previous.Compare(p.item) != -1 {
			return fmt.Errorf("ordering: %v does not follow %v", p.item, previous)
		}
		previous = p.item
		walked += 1
	}
	if walked != n {
		return fmt.Errorf("traversal: %d nodes of %d", walked, n)
	}
	return nil
}

// internal: validate the level rules of one sub-tree, returning its
// node count
func checkNode(p *Node) (int, error) {
	if nil == p {
		return 0, nil
	}
	if nil == p.left && nil == p.right && 1 != p.level {
		return 0, fmt.Errorf("leaf: %v has level: %d", p.item, p.level)
	}
	if p.level > 1 && (nil == p.left || nil == p.right) {
		return 0, fmt.Errorf("node: %v at level: %d is missing a child", p.item, p.level)
	}
	if nil != p.left && p.left.level >= p.level {
		return 0, fmt.Errorf("left horizontal link at: %v", p.item)
	}
	if nil != p.right {
		if p.right.level > p.level {
			return 0, fmt.Errorf("right child above: %v", p.item)
		}
		if nil != p.right.right && p.right.right.level >= p.level {
			return 0, fmt.Errorf("double right horizontal link at: %v", p.item)
		}
	}

	nl, err := checkNode(p.left)
	if nil != err {
		return 0, err
	}
	nr, err := checkNode(p.right)
	if nil != err {
		return 0, err
	}
	return 1 + nl + nr, nil
}
