// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package aatree

// the two AA rotations; both rewire the existing nodes in place and
// keep all up pointers consistent, the caller only has to store the
// returned sub-tree root

// skew - remove a left horizontal link by rotating right
//
//	      |                   |
//	      d                   b
//	     / \      ==>        / \
//	    b   f               a   d
//	   / \                     / \
//	  a   c                   c   f
//
// no-op unless the left child b is at the same level as d
func skew(p *Node) *Node {
	if nil == p || nil == p.left || p.left.level != p.level {
		return p
	}
	l := p.left
	p.left = l.right
	if nil != p.left {
		p.left.up = p
	}
	l.right = p
	l.up = p.up
	p.up = l
	return l
}

// split - remove two consecutive right horizontal links by rotating
// left and promoting the middle node one level
//
//	  |                          |
//	  b --- c --- e              c
//	 /     /         ==>        / \
//	a     d                    b   e
//	                          / \
//	                         a   d
//
// no-op unless the right child's right child e is at b's level
func split(p *Node) *Node {
	if nil == p || nil == p.right || nil == p.right.right || p.right.right.level != p.level {
		return p
	}
	r := p.right
	p.right = r.left
	if nil != p.right {
		p.right.up = p
	}
	r.left = p
	r.up = p.up
	p.up = r
	r.level += 1
	return r
}

// decreaseLevel - clamp the level of a node whose sub-trees have
// shrunk, pulling the right child down with it if that child would
// end up above the node
//
// a missing child counts as level 0, so a node that loses a child
// drops back towards level 1 instead of keeping a level it can no
// longer justify
func decreaseLevel(p *Node) *Node {
	want := level(p.left) + 1
	if level(p.right) < level(p.left) {
		want = level(p.right) + 1
	}
	if want < p.level {
		p.level = want
		if nil != p.right && want < p.right.level {
			p.right.level = want
		}
	}
	return p
}

// internal: level of a possibly missing node
func level(p *Node) int {
	if nil == p {
		return 0
	}
	return p.level
}
