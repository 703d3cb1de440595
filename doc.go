// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package aatree - an ordered set backed by an AA balanced tree with
// the addition of parent pointers to allow iteration through the
// nodes
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// The base algorithm was described by Arne Andersson in the paper
// "Balanced Search Trees Made Simple".
//
// Items are deduplicated: inserting a value that is already in the
// set leaves the set unchanged.  Rebalancing rewires the existing
// nodes rather than recreating them, so a node pointer stays valid
// until the item it holds is removed from the set.
package aatree
