// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package aatree

import (
	"fmt"
)

// to control the print routine
type branch int

const (
	root  branch = iota
	left  branch = iota
	right branch = iota
)

// Print - display an ASCII graphic representation of the tree
func (tree *Tree) Print(printLevels bool) int {
	return printTree(tree.root, "", root, printLevels)
}

// internal print - returns the maximum depth of the tree
func printTree(tree *Node, prefix string, br branch, printLevels bool) int {
	if nil == tree {
		return 0
	}
	rd := 0
	ld := 0
	if nil != tree.right {
		t := "       "
		if left == br {
			t = "|      "
		}
		rd = printTree(tree.right, prefix+t, right, printLevels)
	}
	switch br {
	case root:
		fmt.Printf("%s|------+ ", prefix)
	case left:
		fmt.Printf("%s\\------+ ", prefix)
	case right:
		fmt.Printf("%s/------+ ", prefix)
	}
	up := interface{}(nil)
	if nil != tree.up {
		up = tree.up.item
	}
	if printLevels {
		fmt.Printf("%v ^%v L%d\n", tree.item, up, tree.level)
	} else {
		fmt.Printf("%v ^%v\n", tree.item, up)
	}
	if nil != tree.left {
		t := "       "
		if right == br {
			t = "|      "
		}
		ld = printTree(tree.left, prefix+t, left, printLevels)
	}
	if rd > ld {
		return 1 + rd
	} else {
		return 1 + ld
	}
}
