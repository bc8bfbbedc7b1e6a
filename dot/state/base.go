// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package state

import (
	"errors"
	"fmt"

	"github.com/ChainSafe/gossamer-aura/lib/common"

	"github.com/ChainSafe/chaindb"
)

var genesisHashKey = []byte("genesis_hash")

// BaseState is a wrapper for the chaindb.Database, without any prefixes
type BaseState struct {
	db chaindb.Database
}

// NewBaseState returns a new BaseState
func NewBaseState(db chaindb.Database) *BaseState {
	return &BaseState{
		db: db,
	}
}

// StoreGenesisHash stores the hash of the chain genesis.
func (s *BaseState) StoreGenesisHash(hash common.Hash) error {
	return s.db.Put(genesisHashKey, hash[:])
}

// LoadGenesisHash returns the stored genesis hash and false if none was stored.
func (s *BaseState) LoadGenesisHash() (hash common.Hash, ok bool, err error) {
	data, err := s.db.Get(genesisHashKey)
	if errors.Is(err, chaindb.ErrKeyNotFound) {
		return hash, false, nil
	} else if err != nil {
		return hash, false, err
	}

	if len(data) != len(hash) {
		return hash, false, fmt.Errorf("stored genesis hash has length %d", len(data))
	}
	copy(hash[:], data)
	return hash, true, nil
}

// checkGenesis stores the genesis hash on first use and otherwise checks it matches.
func (s *BaseState) checkGenesis(genesis common.Hash) error {
	stored, ok, err := s.LoadGenesisHash()
	if err != nil {
		return fmt.Errorf("loading genesis hash: %w", err)
	}

	if !ok {
		return s.StoreGenesisHash(genesis)
	}

	if stored != genesis {
		return fmt.Errorf("%w: stored %s, expected %s", ErrGenesisMismatch, stored, genesis)
	}
	return nil
}
