// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package state

import (
	"context"
	"fmt"
	"sync"

	"github.com/ChainSafe/gossamer-aura/dot/types"
	"github.com/ChainSafe/gossamer-aura/lib/blocktree"
	"github.com/ChainSafe/gossamer-aura/lib/common"

	"github.com/benbjohnson/clock"
)

// BlockState holds the blocks of the chain in memory, ordered by a block tree.
// The best block is the deepest leaf, with ties broken by earliest arrival.
// Blocks deeper than the finality depth below the best block are finalised
// and their competing forks pruned.
type BlockState struct {
	clock         clock.Clock
	finalityDepth uint
	genesisHash   common.Hash

	sync.RWMutex
	bt        *blocktree.BlockTree
	blocks    map[common.Hash]*types.Block
	finalised common.Hash

	importedLock sync.RWMutex
	imported     map[chan *types.Block]struct{}
}

// NewBlockState returns a block state rooted at the genesis header.
func NewBlockState(genesis *types.Header, finalityDepth uint, c clock.Clock) (*BlockState, error) {
	if genesis == nil {
		return nil, errNilGenesis
	}
	if c == nil {
		c = clock.New()
	}

	genesisHash := genesis.Hash()
	return &BlockState{
		clock:         c,
		finalityDepth: finalityDepth,
		genesisHash:   genesisHash,
		bt:            blocktree.NewBlockTreeFromRoot(genesis),
		blocks: map[common.Hash]*types.Block{
			genesisHash: {Header: *genesis.DeepCopy(), Body: types.Body{}},
		},
		finalised: genesisHash,
		imported:  make(map[chan *types.Block]struct{}),
	}, nil
}

// GenesisHash returns the hash of the genesis block.
func (bs *BlockState) GenesisHash() common.Hash {
	return bs.genesisHash
}

// HasHeader returns true if the block is known.
func (bs *BlockState) HasHeader(hash common.Hash) bool {
	bs.RLock()
	defer bs.RUnlock()
	_, has := bs.blocks[hash]
	return has
}

// Header returns a copy of the header of the block with the given hash.
func (bs *BlockState) Header(_ context.Context, hash common.Hash) (*types.Header, error) {
	bs.RLock()
	defer bs.RUnlock()

	block, has := bs.blocks[hash]
	if !has {
		return nil, fmt.Errorf("%w: %s", ErrBlockNotFound, hash)
	}
	return block.Header.DeepCopy(), nil
}

// Body returns a copy of the body of the block with the given hash.
func (bs *BlockState) Body(hash common.Hash) (*types.Body, error) {
	bs.RLock()
	defer bs.RUnlock()

	block, has := bs.blocks[hash]
	if !has {
		return nil, fmt.Errorf("%w: %s", ErrBlockNotFound, hash)
	}
	body := block.Body.DeepCopy()
	return &body, nil
}

// BestBlockHash returns the hash of the head of the longest chain.
func (bs *BlockState) BestBlockHash() common.Hash {
	return bs.bt.BestBlockHash()
}

// BestBlockHeader returns the header of the head of the longest chain.
func (bs *BlockState) BestBlockHeader(ctx context.Context) (*types.Header, error) {
	return bs.Header(ctx, bs.bt.BestBlockHash())
}

// BestBlockNumber returns the number of the head of the longest chain.
func (bs *BlockState) BestBlockNumber() (uint, error) {
	header, err := bs.BestBlockHeader(context.Background())
	if err != nil {
		return 0, err
	}
	return header.Number, nil
}

// FinalizedNumber returns the number of the last finalised block.
func (bs *BlockState) FinalizedNumber() (uint, error) {
	best, err := bs.BestBlockNumber()
	if err != nil {
		return 0, err
	}
	if best <= bs.finalityDepth {
		return 0, nil
	}
	return best - bs.finalityDepth, nil
}

// FinalisedHash returns the hash of the last pruned finalised block.
func (bs *BlockState) FinalisedHash() common.Hash {
	bs.RLock()
	defer bs.RUnlock()
	return bs.finalised
}

// GetHashByNumber returns the hash of the block with the number on the best chain.
func (bs *BlockState) GetHashByNumber(number uint) (common.Hash, error) {
	return bs.bt.GetHashByNumber(number)
}

// Leaves returns the hashes of the heads of all forks.
func (bs *BlockState) Leaves() []common.Hash {
	return bs.bt.Leaves()
}

// AddBlock adds a block whose parent is known, notifies the imported block
// channels and prunes forks below the finalised block.
func (bs *BlockState) AddBlock(block *types.Block) error {
	hash := block.Header.Hash()

	bs.Lock()
	if err := bs.bt.AddBlock(&block.Header, bs.clock.Now()); err != nil {
		bs.Unlock()
		return fmt.Errorf("adding block %s to block tree: %w", hash, err)
	}
	bs.blocks[hash] = block.DeepCopy()
	bs.Unlock()

	logger.Debugf("added block number %d with hash %s", block.Header.Number, hash)
	bs.notifyImported(block)

	return bs.finalise()
}

func (bs *BlockState) finalise() error {
	number, err := bs.FinalizedNumber()
	if err != nil {
		return err
	}

	finalised, err := bs.bt.GetHashByNumber(number)
	if err != nil {
		return fmt.Errorf("getting finalised block hash: %w", err)
	}

	bs.Lock()
	defer bs.Unlock()

	if finalised == bs.finalised {
		return nil
	}

	pruned := bs.bt.Prune(finalised)
	for _, hash := range pruned {
		delete(bs.blocks, hash)
	}

	// ancestors of the new root are no longer reachable from the tree
	for hash, block := range bs.blocks {
		if block.Header.Number < number {
			delete(bs.blocks, hash)
		}
	}

	bs.finalised = finalised
	logger.Debugf("finalised block number %d with hash %s, pruned %d blocks",
		number, finalised, len(pruned))
	return nil
}

// String returns the block tree as a string.
func (bs *BlockState) String() string {
	return bs.bt.String()
}
