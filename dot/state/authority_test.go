// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package state

import (
	"context"
	"testing"
	"time"

	"github.com/ChainSafe/gossamer-aura/dot/types"
	"github.com/ChainSafe/gossamer-aura/lib/aura"
	"github.com/ChainSafe/gossamer-aura/lib/common"
	"github.com/ChainSafe/gossamer-aura/lib/crypto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_AuthorityState_Resolve(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	genesis := newTestGenesisHeader()
	bs, err := NewBlockState(genesis, 10, nil)
	require.NoError(t, err)
	block := newTestBlock(genesis, 1, 1)
	require.NoError(t, bs.AddBlock(block))

	authorities := newTestAuthorities(t)
	s := NewAuthorityState(db, bs, crypto.Sr25519Type)
	require.NoError(t, s.StoreGenesisAuthorities(authorities, 2*time.Second))

	testCases := map[string]struct {
		position common.Hash
		errIs    error
	}{
		"genesis": {
			position: genesis.Hash(),
		},
		"known_block": {
			position: block.Header.Hash(),
		},
		"unknown_block": {
			position: common.Hash{0xff},
			errIs:    aura.ErrResolution,
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			set, err := s.Resolve(context.Background(), testCase.position)
			if testCase.errIs != nil {
				require.ErrorIs(t, err, testCase.errIs)
				assert.Nil(t, set)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 2*time.Second, set.SlotDuration)
			require.Len(t, set.Authorities, len(authorities))
			for i := range authorities {
				assert.Equal(t, authorities[i].ID(), set.Authorities[i].ID())
			}
		})
	}
}

func Test_AuthorityState_loadsStoredSet(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	genesis := newTestGenesisHeader()
	bs, err := NewBlockState(genesis, 10, nil)
	require.NoError(t, err)

	authorities := newTestAuthorities(t)
	require.NoError(t, NewAuthorityState(db, bs, crypto.Sr25519Type).
		StoreGenesisAuthorities(authorities, 3*time.Second))

	reopened := NewAuthorityState(db, bs, crypto.Sr25519Type)
	set, err := reopened.Resolve(context.Background(), genesis.Hash())
	require.NoError(t, err)
	assert.Equal(t, 3*time.Second, set.SlotDuration)
	require.Len(t, set.Authorities, 2)
	assert.Equal(t, authorities[1].ID(), set.Authorities[1].ID())
}

func Test_AuthorityState_noStoredSet(t *testing.T) {
	t.Parallel()

	genesis := newTestGenesisHeader()
	bs, err := NewBlockState(genesis, 10, nil)
	require.NoError(t, err)

	s := NewAuthorityState(newTestDB(t), bs, crypto.Sr25519Type)
	_, err = s.Resolve(context.Background(), genesis.Hash())
	assert.ErrorIs(t, err, aura.ErrResolution)
}

func Test_AuthorityState_StoreGenesisAuthorities_invalid(t *testing.T) {
	t.Parallel()

	genesis := newTestGenesisHeader()
	bs, err := NewBlockState(genesis, 10, nil)
	require.NoError(t, err)
	s := NewAuthorityState(newTestDB(t), bs, crypto.Sr25519Type)

	err = s.StoreGenesisAuthorities(nil, time.Second)
	assert.ErrorIs(t, err, aura.ErrInvalidAuthoritySet)

	alice := newTestAuthorities(t)[0]
	err = s.StoreGenesisAuthorities([]types.Authority{alice, alice}, time.Second)
	assert.ErrorIs(t, err, aura.ErrInvalidAuthoritySet)
}
