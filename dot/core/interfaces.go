// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package core

import (
	"context"

	"github.com/ChainSafe/gossamer-aura/dot/types"
	"github.com/ChainSafe/gossamer-aura/lib/common"
)

// BlockState is the interface for the block state.
type BlockState interface {
	Header(ctx context.Context, hash common.Hash) (*types.Header, error)
	HasHeader(hash common.Hash) bool
	AddBlock(block *types.Block) error
}
