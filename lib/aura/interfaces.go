// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package aura

import (
	"context"

	"github.com/ChainSafe/gossamer-aura/dot/types"
	"github.com/ChainSafe/gossamer-aura/lib/common"
	"github.com/ChainSafe/gossamer-aura/lib/crypto"
)

// AuthorityResolver returns the authority set in effect for children of the block at a chain position.
type AuthorityResolver interface {
	Resolve(ctx context.Context, position common.Hash) (*AuthoritySet, error)
}

// ChainHead selects the block to build on.
type ChainHead interface {
	BestBlockHeader(ctx context.Context) (*types.Header, error)
}

// HeaderBackend looks up headers by hash.
type HeaderBackend interface {
	Header(ctx context.Context, hash common.Hash) (*types.Header, error)
}

// FinalityOracle reports the number of the last finalised block.
type FinalityOracle interface {
	FinalizedNumber() (uint, error)
}

// Keystore holds the local authority keys.
type Keystore interface {
	HasKey(pub crypto.PublicKey) bool
	Sign(pub crypto.PublicKey, msg []byte) ([]byte, error)
}

// BlockBuilder assembles a block on top of the parent carrying the pre-runtime digest.
// It must return before the context deadline.
type BlockBuilder interface {
	Build(ctx context.Context, parent *types.Header, preDigest *types.PreRuntimeDigest) (*types.Block, error)
}

// BlockImporter adds verified blocks to the local chain.
type BlockImporter interface {
	ImportBlock(ctx context.Context, block *VerifiedBlock) error
}

// Announcer propagates authored blocks to peers.
type Announcer interface {
	Announce(ctx context.Context, block *types.Block) error
}

// EquivocationReporter receives equivocation proofs for submission.
type EquivocationReporter interface {
	ReportEquivocation(ctx context.Context, proof *types.EquivocationProof) error
}

// SyncOracle reports the sync status of the node.
type SyncOracle interface {
	IsMajorSyncing() bool
	IsOffline() bool
}

// AuxStore records the last slot authored by a local authority key.
type AuxStore interface {
	AuthoredSlot(authority types.AuthorityID) (slot uint64, ok bool, err error)
	SetAuthoredSlot(authority types.AuthorityID, slot uint64) error
}
