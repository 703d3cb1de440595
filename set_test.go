// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package aatree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/aatree"
)

func TestNewFromItems(t *testing.T) {
	tree := aatree.NewFromItems(
		intItem(5), intItem(3), intItem(5), intItem(1), intItem(3),
	)

	assert.Equal(t, 3, tree.Count(), "duplicates must be merged")
	assertSequence(t, tree, []int{1, 3, 5})
}

func TestNewFromRange(t *testing.T) {
	src := newIntTree(0, 1, 2, 3, 4, 5, 6, 7, 8, 9)

	// whole set
	all := aatree.NewFromRange(src.Begin(), src.End())
	assert.Equal(t, 10, all.Count())
	assertSequence(t, all, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9})

	// a sub-range: [3, 7)
	sub := aatree.NewFromRange(src.Find(intItem(3)), src.Find(intItem(7)))
	assert.Equal(t, 4, sub.Count())
	assertSequence(t, sub, []int{3, 4, 5, 6})

	// empty range
	empty := aatree.NewFromRange(src.End(), src.End())
	assert.True(t, empty.IsEmpty())
}

func TestCopy(t *testing.T) {
	original := newIntTree(3, 1, 4, 1, 5, 9, 2, 6)

	copied := original.Copy()
	require.Equal(t, original.Count(), copied.Count())
	assertSequence(t, copied, collect(original))

	// the copy must be independent of the original
	copied.Insert(intItem(100))
	copied.Delete(intItem(3))
	assert.Equal(t, 7, original.Count())
	assert.NotNil(t, original.Search(intItem(3)))
	assert.Nil(t, original.Search(intItem(100)))
}

func TestAssign(t *testing.T) {
	dst := newIntTree(100, 200, 300)
	src := newIntTree(1, 2, 3, 4)

	dst.Assign(src)
	assert.Equal(t, 4, dst.Count())
	assertSequence(t, dst, []int{1, 2, 3, 4})

	// the old contents must be gone
	assert.Nil(t, dst.Search(intItem(100)))

	// and the assignment must be a copy, not a share
	dst.Delete(intItem(1))
	assert.NotNil(t, src.Search(intItem(1)))

	// self assignment is a no-op
	dst.Assign(dst)
	assert.Equal(t, 3, dst.Count())
	assertSequence(t, dst, []int{2, 3, 4})
}

func TestClear(t *testing.T) {
	tree := newIntTree(1, 2, 3, 4, 5)

	tree.Clear()
	assert.True(t, tree.IsEmpty())
	assert.Equal(t, 0, tree.Count())
	assert.True(t, tree.Begin().Equal(tree.End()))

	// the set stays usable after a clear
	require.True(t, tree.Insert(intItem(7)))
	assert.Equal(t, 1, tree.Count())
}

func TestMembershipRoundTrip(t *testing.T) {
	tree := aatree.New()

	for i := 0; i < 100; i += 1 {
		v := intItem(i * 37 % 100)
		require.True(t, tree.Insert(v), "insert: %d", v)
		it := tree.Find(v)
		require.False(t, it.IsEnd(), "find after insert: %d", v)
		require.Equal(t, v, it.Item())
	}
	require.Equal(t, 100, tree.Count())

	for i := 0; i < 100; i += 1 {
		v := intItem(i)
		require.True(t, tree.Delete(v), "delete: %d", v)
		require.True(t, tree.Find(v).Equal(tree.End()), "find after delete: %d", v)
	}
	require.True(t, tree.IsEmpty())
}

// erasing an item that was never inserted must not disturb anything
func TestEraseAbsent(t *testing.T) {
	tree := newIntTree(2, 4, 6, 8)
	before := collect(tree)

	assert.False(t, tree.Delete(intItem(5)))
	assert.Equal(t, 4, tree.Count())
	assertSequence(t, tree, before)
	require.NoError(t, tree.CheckInvariants())
}
