// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package aura

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/ChainSafe/gossamer-aura/dot/types"
	"github.com/ChainSafe/gossamer-aura/lib/common"
	"github.com/ChainSafe/gossamer-aura/lib/slots"
)

// DefaultMaxDeferredBlocks is the default capacity of the deferred block queue.
const DefaultMaxDeferredBlocks = 256

// ImportGateConfig is the configuration of the import gate.
type ImportGateConfig struct {
	Verifier    *Verifier
	Headers     HeaderBackend
	Importer    BlockImporter
	MaxDeferred int
}

// ImportGate verifies incoming blocks before handing them to the import pipeline.
// Blocks failing with a soft error are deferred and retried later.
type ImportGate struct {
	verifier *Verifier
	headers  HeaderBackend
	importer BlockImporter

	mutex       sync.Mutex
	maxDeferred int
	deferred    map[common.Hash]*types.Block
}

// NewImportGate returns an ImportGate.
func NewImportGate(cfg ImportGateConfig) (*ImportGate, error) {
	switch {
	case cfg.Verifier == nil:
		return nil, errors.New("verifier is nil")
	case cfg.Headers == nil:
		return nil, errors.New("header backend is nil")
	case cfg.Importer == nil:
		return nil, errors.New("block importer is nil")
	}

	maxDeferred := cfg.MaxDeferred
	if maxDeferred <= 0 {
		maxDeferred = DefaultMaxDeferredBlocks
	}

	return &ImportGate{
		verifier:    cfg.Verifier,
		headers:     cfg.Headers,
		importer:    cfg.Importer,
		maxDeferred: maxDeferred,
		deferred:    make(map[common.Hash]*types.Block),
	}, nil
}

// Import verifies the block and imports it. On a soft failure the block is
// deferred and the error is returned; IsRetryable reports true for it.
// A block whose parent is deferred is deferred as well.
func (g *ImportGate) Import(ctx context.Context, block *types.Block) (*VerifiedBlock, error) {
	verified, err := g.verifyAndImport(ctx, block)
	if errors.Is(err, ErrUnknownParent) && g.isDeferred(block.Header.ParentHash) {
		err = fmt.Errorf("%w: %s", ErrParentDeferred, block.Header.ParentHash)
	}
	if err == nil || !IsRetryable(err) {
		return verified, err
	}

	if deferErr := g.deferBlock(block); deferErr != nil {
		return nil, fmt.Errorf("%w: %s", deferErr, err)
	}
	logger.Debugf("deferred block %s: %s", block.Header.Hash(), err)
	return nil, err
}

func (g *ImportGate) verifyAndImport(ctx context.Context, block *types.Block) (*VerifiedBlock, error) {
	parent, err := g.headers.Header(ctx, block.Header.ParentHash)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnknownParent, block.Header.ParentHash, err)
	}

	verified, err := g.verifier.Verify(ctx, block, parent)
	if err != nil {
		return nil, fmt.Errorf("verifying block number %d: %w", block.Header.Number, err)
	}

	if err := g.importer.ImportBlock(ctx, verified); err != nil {
		return nil, fmt.Errorf("importing block %s: %w", verified.Hash, err)
	}

	logger.Debugf("imported block number %d with hash %s in slot %d",
		block.Header.Number, verified.Hash, verified.Slot)
	return verified, nil
}

func (g *ImportGate) deferBlock(block *types.Block) error {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	hash := block.Header.Hash()
	if _, has := g.deferred[hash]; has {
		return nil
	}

	if len(g.deferred) >= g.maxDeferred {
		return ErrDeferredQueueFull
	}

	g.deferred[hash] = block
	deferredGauge.Inc()
	return nil
}

func (g *ImportGate) isDeferred(hash common.Hash) bool {
	g.mutex.Lock()
	defer g.mutex.Unlock()
	_, has := g.deferred[hash]
	return has
}

// Deferred returns the number of deferred blocks.
func (g *ImportGate) Deferred() int {
	g.mutex.Lock()
	defer g.mutex.Unlock()
	return len(g.deferred)
}

// ProcessDeferred retries the deferred blocks, lowest block numbers first.
// Blocks failing with a soft error again stay deferred, blocks failing with a
// hard error are dropped. It returns the number of blocks imported.
func (g *ImportGate) ProcessDeferred(ctx context.Context) (imported int) {
	g.mutex.Lock()
	blocks := make([]*types.Block, 0, len(g.deferred))
	for _, block := range g.deferred {
		blocks = append(blocks, block)
	}
	g.deferred = make(map[common.Hash]*types.Block)
	deferredGauge.Sub(float64(len(blocks)))
	g.mutex.Unlock()

	sort.Slice(blocks, func(i, j int) bool {
		return blocks[i].Header.Number < blocks[j].Header.Number
	})

	for _, block := range blocks {
		if ctx.Err() != nil {
			_ = g.deferBlock(block)
			continue
		}

		_, err := g.Import(ctx, block)
		switch {
		case err == nil:
			imported++
		case IsRetryable(err):
		default:
			logger.Warnf("dropping deferred block %s: %s", block.Header.Hash(), err)
		}
	}

	return imported
}

// Run retries deferred blocks at every slot boundary until the context is cancelled.
func (g *ImportGate) Run(ctx context.Context) error {
	stream := slots.NewSlots(g.verifier.clock)
	for {
		if _, err := stream.Next(ctx); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}

		if g.Deferred() == 0 {
			continue
		}

		if imported := g.ProcessDeferred(ctx); imported > 0 {
			logger.Debugf("imported %d deferred blocks", imported)
		}
	}
}
