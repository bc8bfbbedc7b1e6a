// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package state

import (
	"testing"
	"time"

	"github.com/ChainSafe/gossamer-aura/dot/types"
	"github.com/ChainSafe/gossamer-aura/lib/common"
	"github.com/ChainSafe/gossamer-aura/lib/crypto"
	"github.com/ChainSafe/gossamer-aura/lib/keystore"
	"github.com/ChainSafe/gossamer-aura/lib/utils"

	"github.com/ChainSafe/chaindb"
	"github.com/stretchr/testify/require"
)

func newTestGenesisHeader() *types.Header {
	return types.NewHeader(common.Hash{}, common.Hash{1}, common.Hash{}, 0, types.NewDigest())
}

func newTestAuthorities(t *testing.T) []types.Authority {
	t.Helper()
	kr, err := keystore.NewKeyring(crypto.Sr25519Type)
	require.NoError(t, err)
	return []types.Authority{
		types.NewAuthority(kr.Alice().Public()),
		types.NewAuthority(kr.Bob().Public()),
	}
}

func newTestGenesis(t *testing.T) Genesis {
	t.Helper()
	return Genesis{
		Header:       newTestGenesisHeader(),
		Authorities:  newTestAuthorities(t),
		SlotDuration: 2 * time.Second,
		KeyType:      crypto.Sr25519Type,
	}
}

func newTestDB(t *testing.T) chaindb.Database {
	t.Helper()
	db, err := utils.SetupDatabase(t.TempDir(), true)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close()
	})
	return db
}

// newTestBlock returns a block on top of the parent. The nonce tells apart siblings.
func newTestBlock(parent *types.Header, slot uint64, nonce byte) *types.Block {
	header := types.NewHeader(parent.Hash(), common.Hash{nonce}, common.Hash{}, parent.Number+1,
		types.NewDigest(types.NewAuraPreRuntimeDigest(slot)))
	block := types.NewBlock(*header, types.Body{types.Extrinsic{nonce}})
	return &block
}

// addTestChain adds a chain of length blocks on top of the parent and returns them.
func addTestChain(t *testing.T, bs *BlockState, parent *types.Header, length int, nonce byte) []*types.Block {
	t.Helper()
	blocks := make([]*types.Block, length)
	for i := range blocks {
		block := newTestBlock(parent, uint64(parent.Number)+1, nonce)
		require.NoError(t, bs.AddBlock(block))
		blocks[i] = block
		parent = &block.Header
	}
	return blocks
}
