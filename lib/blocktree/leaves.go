// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package blocktree

import (
	"sync"

	"github.com/ChainSafe/gossamer-aura/lib/common"
)

// leafMap provides quick lookup for existing leaves
type leafMap struct {
	smap *sync.Map // map[common.Hash]*node
}

func newLeafMap(n *node) *leafMap {
	smap := &sync.Map{}
	for _, leaf := range n.getLeaves(nil) {
		smap.Store(leaf.hash, leaf)
	}

	return &leafMap{
		smap: smap,
	}
}

func (ls *leafMap) store(key common.Hash, value *node) {
	ls.smap.Store(key, value)
}

// replace deletes the old node from the map and inserts the new one
func (ls *leafMap) replace(oldNode, newNode *node) {
	ls.smap.Delete(oldNode.hash)
	ls.store(newNode.hash, newNode)
}

// deepestLeaf searches the stored leaves to the find the one with the greatest number.
// If there are two leaves with the same number, choose the one with the earliest arrival time.
func (ls *leafMap) deepestLeaf() *node {
	var deepest *node
	ls.smap.Range(func(_, n interface{}) bool {
		leaf := n.(*node)
		switch {
		case deepest == nil, leaf.number > deepest.number:
			deepest = leaf
		case leaf.number == deepest.number && leaf.arrivalTime.Before(deepest.arrivalTime):
			deepest = leaf
		}
		return true
	})

	return deepest
}

func (ls *leafMap) nodes() []*node {
	nodes := []*node{}

	ls.smap.Range(func(_, n interface{}) bool {
		nodes = append(nodes, n.(*node))
		return true
	})

	return nodes
}
