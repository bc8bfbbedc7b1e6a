// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package core

import (
	"context"
	"fmt"

	"github.com/ChainSafe/gossamer-aura/dot/types"
	"github.com/ChainSafe/gossamer-aura/lib/aura"
)

// BlockImportHandler executes verified blocks against their parent and adds
// them to the block state.
type BlockImportHandler struct {
	blockState BlockState
}

// NewBlockImportHandler returns an import handler adding blocks to the block state.
func NewBlockImportHandler(blockState BlockState) (*BlockImportHandler, error) {
	if blockState == nil {
		return nil, ErrNilBlockState
	}
	return &BlockImportHandler{blockState: blockState}, nil
}

// ImportBlock checks the block body and state transition, then adds the block.
// Importing a known block is a no-op.
func (h *BlockImportHandler) ImportBlock(ctx context.Context, verified *aura.VerifiedBlock) error {
	if verified == nil || verified.Block == nil {
		return ErrNilBlockHandlerParameter
	}

	if h.blockState.HasHeader(verified.Hash) {
		logger.Debugf("skipping known block %s", verified.Hash)
		return nil
	}

	block := verified.Block
	parent, err := h.blockState.Header(ctx, block.Header.ParentHash)
	if err != nil {
		return fmt.Errorf("getting parent header: %w", err)
	}

	if err := CheckBlock(parent, block); err != nil {
		return err
	}

	if err := h.blockState.AddBlock(block); err != nil {
		return fmt.Errorf("adding block to block state: %w", err)
	}

	logger.Debugf("imported block number %d with hash %s authored by %s in slot %d",
		block.Header.Number, verified.Hash, verified.Author, verified.Slot)
	return nil
}

// CheckBlock checks the block body against the header and the state root
// against the parent state.
func CheckBlock(parent *types.Header, block *types.Block) error {
	if parent == nil {
		return errNilParent
	}

	if len(block.Body) == 0 {
		return ErrMissingTimestamp
	}
	if _, err := DecodeTimestampInherent(block.Body[0]); err != nil {
		return err
	}

	extrinsicsRoot, err := block.Body.Root()
	if err != nil {
		return fmt.Errorf("computing extrinsics root: %w", err)
	}
	if extrinsicsRoot != block.Header.ExtrinsicsRoot {
		return fmt.Errorf("%w: expected %s, got %s",
			ErrInvalidExtrinsicsRoot, extrinsicsRoot, block.Header.ExtrinsicsRoot)
	}

	stateRoot, err := NextStateRoot(parent.StateRoot, extrinsicsRoot)
	if err != nil {
		return err
	}
	if stateRoot != block.Header.StateRoot {
		return fmt.Errorf("%w: expected %s, got %s",
			ErrInvalidStateRoot, stateRoot, block.Header.StateRoot)
	}
	return nil
}
