// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package blocktree

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/ChainSafe/gossamer-aura/dot/types"
	"github.com/ChainSafe/gossamer-aura/lib/common"

	"github.com/disiqueira/gotree"
)

// BlockTree represents the current state with all possible blocks
type BlockTree struct {
	root   *node
	leaves *leafMap
	nodes  map[common.Hash]*node
	sync.RWMutex
}

// NewBlockTreeFromRoot initialises a blocktree with a root block. The root block is always the most recently
// finalised block (ie the genesis block if the node is just starting.)
func NewBlockTreeFromRoot(root *types.Header) *BlockTree {
	n := &node{
		hash:   root.Hash(),
		number: root.Number,
	}

	return &BlockTree{
		root:   n,
		leaves: newLeafMap(n),
		nodes:  map[common.Hash]*node{n.hash: n},
	}
}

// Root returns the hash of the root block
func (bt *BlockTree) Root() common.Hash {
	bt.RLock()
	defer bt.RUnlock()
	return bt.root.hash
}

// AddBlock inserts the block as child of its parent node
func (bt *BlockTree) AddBlock(header *types.Header, arrivalTime time.Time) error {
	bt.Lock()
	defer bt.Unlock()

	parent, has := bt.nodes[header.ParentHash]
	if !has {
		return ErrParentNotFound
	}

	if header.Number != parent.number+1 {
		return fmt.Errorf("%w: parent number %d, block number %d",
			errUnexpectedNumber, parent.number, header.Number)
	}

	hash := header.Hash()
	if _, has := bt.nodes[hash]; has {
		return ErrBlockExists
	}

	n := &node{
		hash:        hash,
		parent:      parent,
		number:      header.Number,
		arrivalTime: arrivalTime,
	}
	parent.addChild(n)
	bt.leaves.replace(parent, n)
	bt.nodes[hash] = n

	return nil
}

// HasBlock returns true if the block is in the tree
func (bt *BlockTree) HasBlock(hash common.Hash) bool {
	bt.RLock()
	defer bt.RUnlock()
	_, has := bt.nodes[hash]
	return has
}

// BestBlockHash returns the hash of the deepest block in the blocktree.
// If there are multiple deepest blocks, it returns the one with the earliest arrival time.
func (bt *BlockTree) BestBlockHash() common.Hash {
	bt.RLock()
	defer bt.RUnlock()
	return bt.leaves.deepestLeaf().hash
}

// GetHashByNumber returns the hash of the block with the number on the best chain
func (bt *BlockTree) GetHashByNumber(number uint) (common.Hash, error) {
	bt.RLock()
	defer bt.RUnlock()

	deepest := bt.leaves.deepestLeaf()
	if number > deepest.number {
		return common.Hash{}, fmt.Errorf("%w: %d > %d", ErrNumGreaterThanHighest, number, deepest.number)
	}
	if number < bt.root.number {
		return common.Hash{}, fmt.Errorf("%w: %d < %d", ErrNumLowerThanRoot, number, bt.root.number)
	}

	curr := deepest
	for curr.number > number {
		curr = curr.parent
	}
	return curr.hash, nil
}

// Prune sets the given hash as the new blocktree root, removing all nodes that are not the new root node or its descendant
// It returns the hashes of the removed blocks which are not ancestors of the new root
func (bt *BlockTree) Prune(finalised common.Hash) (pruned []common.Hash) {
	bt.Lock()
	defer bt.Unlock()

	n, has := bt.nodes[finalised]
	if !has || n == bt.root {
		return nil
	}

	pruned = bt.root.prune(n, nil)
	for _, hash := range pruned {
		delete(bt.nodes, hash)
	}
	for curr := n.parent; curr != nil; curr = curr.parent {
		delete(bt.nodes, curr.hash)
	}

	n.parent = nil
	bt.root = n
	bt.leaves = newLeafMap(n)
	return pruned
}

// SubBlockchain returns the path from the node with Hash start to the node with Hash end
func (bt *BlockTree) SubBlockchain(start, end common.Hash) ([]common.Hash, error) {
	bt.RLock()
	defer bt.RUnlock()

	sn, has := bt.nodes[start]
	if !has {
		return nil, ErrStartNodeNotFound
	}
	en, has := bt.nodes[end]
	if !has {
		return nil, ErrEndNodeNotFound
	}

	path, err := sn.subChain(en)
	if err != nil {
		return nil, err
	}

	hashes := make([]common.Hash, len(path))
	for i, n := range path {
		hashes[i] = n.hash
	}
	return hashes, nil
}

// IsDescendantOf returns true if the child is a descendant of parent, false otherwise.
// it returns an error if either the child or parent are not in the blocktree.
func (bt *BlockTree) IsDescendantOf(parent, child common.Hash) (bool, error) {
	bt.RLock()
	defer bt.RUnlock()

	pn, has := bt.nodes[parent]
	if !has {
		return false, ErrStartNodeNotFound
	}
	cn, has := bt.nodes[child]
	if !has {
		return false, ErrEndNodeNotFound
	}
	return cn.isDescendantOf(pn), nil
}

// Leaves returns the leaves of the blocktree sorted by hash
func (bt *BlockTree) Leaves() []common.Hash {
	bt.RLock()
	defer bt.RUnlock()

	nodes := bt.leaves.nodes()
	leaves := make([]common.Hash, len(nodes))
	for i, n := range nodes {
		leaves[i] = n.hash
	}

	sort.Slice(leaves, func(i, j int) bool {
		return leaves[i].String() < leaves[j].String()
	})
	return leaves
}

// HighestCommonAncestor returns the highest block that is a Ancestor to both a and b
func (bt *BlockTree) HighestCommonAncestor(a, b common.Hash) (common.Hash, error) {
	bt.RLock()
	defer bt.RUnlock()

	an, has := bt.nodes[a]
	if !has {
		return common.Hash{}, ErrNodeNotFound
	}
	bn, has := bt.nodes[b]
	if !has {
		return common.Hash{}, ErrNodeNotFound
	}

	return an.highestCommonAncestor(bn).hash, nil
}

// GetAllBlocks returns all the blocks in the tree
func (bt *BlockTree) GetAllBlocks() []common.Hash {
	bt.RLock()
	defer bt.RUnlock()

	return bt.root.getAllDescendants(nil)
}

// String utilizes github.com/disiqueira/gotree to create a printable tree
func (bt *BlockTree) String() string {
	bt.RLock()
	defer bt.RUnlock()

	tree := gotree.New(bt.root.string())
	bt.root.createTree(tree)

	var leaves strings.Builder
	for _, leaf := range bt.leaves.nodes() {
		leaves.WriteString(fmt.Sprintf(" %s\n", leaf.hash))
	}

	return fmt.Sprintf("Leaves:\n%s\n%s", leaves.String(), tree.Print())
}
