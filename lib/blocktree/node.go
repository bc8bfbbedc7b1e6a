// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package blocktree

import (
	"fmt"
	"time"

	"github.com/ChainSafe/gossamer-aura/lib/common"

	"github.com/disiqueira/gotree"
)

// node is an element in the BlockTree
type node struct {
	hash        common.Hash // Block hash
	parent      *node       // Parent Node
	children    []*node     // Nodes of children blocks
	number      uint        // block number
	arrivalTime time.Time   // Arrival time of the block
}

// addChild appends Node to n's list of children
func (n *node) addChild(node *node) {
	n.children = append(n.children, node)
}

// string returns stringified hash and number of node
func (n *node) string() string {
	return fmt.Sprintf("{hash: %s, number: %d, arrivalTime: %s}",
		n.hash.Short(), n.number, n.arrivalTime.Format(time.RFC3339Nano))
}

// createTree adds all the nodes children to the existing printable tree.
// Note: this is strictly for BlockTree.String()
func (n *node) createTree(tree gotree.Tree) {
	for _, child := range n.children {
		sub := tree.Add(child.string())
		child.createTree(sub)
	}
}

// subChain returns the path from n to the descendant, both included
func (n *node) subChain(descendant *node) ([]*node, error) {
	var path []*node
	for curr := descendant; curr != nil; curr = curr.parent {
		path = append([]*node{curr}, path...)
		if curr == n {
			return path, nil
		}
	}

	return nil, ErrDescendantNotFound
}

// isDescendantOf returns true if n is parent or one of its descendants
func (n *node) isDescendantOf(parent *node) bool {
	if parent == nil || n == nil || n.number < parent.number {
		return false
	}

	for curr := n; curr != nil; curr = curr.parent {
		if curr == parent {
			return true
		}
	}
	return false
}

func (n *node) highestCommonAncestor(other *node) *node {
	for curr := n; curr != nil; curr = curr.parent {
		if other.isDescendantOf(curr) {
			return curr
		}
	}

	return nil
}

// getLeaves returns all nodes that are leaf nodes with the current node as its ancestor
func (n *node) getLeaves(leaves []*node) []*node {
	if len(n.children) == 0 {
		leaves = append(leaves, n)
	}

	for _, child := range n.children {
		leaves = child.getLeaves(leaves)
	}

	return leaves
}

// getAllDescendants returns an array of the node's hash and all its descendants's hashes
func (n *node) getAllDescendants(desc []common.Hash) []common.Hash {
	desc = append(desc, n.hash)
	for _, child := range n.children {
		desc = child.getAllDescendants(desc)
	}

	return desc
}

// prune removes the nodes that are neither ancestors nor descendants of the
// finalised node and returns their hashes
func (n *node) prune(finalised *node, pruned []common.Hash) []common.Hash {
	// descendants of the finalised block are kept
	if n.isDescendantOf(finalised) {
		return pruned
	}

	if !finalised.isDescendantOf(n) {
		return n.getAllDescendants(pruned)
	}

	for _, child := range n.children {
		pruned = child.prune(finalised, pruned)
	}

	return pruned
}
