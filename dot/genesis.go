// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package dot

import (
	"fmt"
	"time"

	"github.com/ChainSafe/gossamer-aura/dot/state"
	"github.com/ChainSafe/gossamer-aura/dot/types"
	"github.com/ChainSafe/gossamer-aura/lib/common"
	"github.com/ChainSafe/gossamer-aura/lib/crypto"
)

// NewGenesis returns the genesis of a development chain with the authorities.
// The genesis state root commits to the authority set and slot duration, so
// chains with different authorities have different genesis hashes.
func NewGenesis(authorities []types.Authority, slotDuration time.Duration,
	keyType crypto.KeyType) (state.Genesis, error) {
	enc, err := types.EncodeAuthorities(authorities)
	if err != nil {
		return state.Genesis{}, fmt.Errorf("encoding genesis authorities: %w", err)
	}

	duration := []byte(slotDuration.String())
	stateRoot, err := common.Blake2bHash(append(enc, duration...))
	if err != nil {
		return state.Genesis{}, fmt.Errorf("computing genesis state root: %w", err)
	}

	header := types.NewHeader(common.Hash{}, stateRoot, common.Hash{}, 0, types.NewDigest())
	return state.Genesis{
		Header:       header,
		Authorities:  authorities,
		SlotDuration: slotDuration,
		KeyType:      keyType,
	}, nil
}
