// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package state

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/ChainSafe/gossamer-aura/dot/types"
	"github.com/ChainSafe/gossamer-aura/lib/aura"
	"github.com/ChainSafe/gossamer-aura/lib/common"
	"github.com/ChainSafe/gossamer-aura/lib/crypto"

	"github.com/ChainSafe/chaindb"
)

const authorityTablePrefix = "authority"

var (
	authoritiesKey  = []byte("genesis_authorities")
	slotDurationKey = []byte("slot_duration")
)

// AuthorityState answers which authority set governs the children of a block.
// The chain carries no authority changes, so every known block resolves to
// the genesis set.
type AuthorityState struct {
	db         chaindb.Database
	blockState *BlockState
	keyType    crypto.KeyType

	mutex sync.RWMutex
	set   *aura.AuthoritySet
}

// NewAuthorityState returns an authority state backed by the database.
func NewAuthorityState(db chaindb.Database, blockState *BlockState, keyType crypto.KeyType) *AuthorityState {
	return &AuthorityState{
		db:         chaindb.NewTable(db, authorityTablePrefix),
		blockState: blockState,
		keyType:    keyType,
	}
}

// StoreGenesisAuthorities validates and stores the genesis authority set.
func (s *AuthorityState) StoreGenesisAuthorities(authorities []types.Authority, slotDuration time.Duration) error {
	set, err := aura.NewAuthoritySet(authorities, slotDuration)
	if err != nil {
		return err
	}

	enc, err := types.EncodeAuthorities(authorities)
	if err != nil {
		return fmt.Errorf("encoding authorities: %w", err)
	}

	duration := make([]byte, 8)
	binary.LittleEndian.PutUint64(duration, uint64(slotDuration.Milliseconds()))

	batch := s.db.NewBatch()
	if err := batch.Put(authoritiesKey, enc); err != nil {
		return err
	}
	if err := batch.Put(slotDurationKey, duration); err != nil {
		return err
	}
	if err := batch.Flush(); err != nil {
		return fmt.Errorf("writing genesis authorities: %w", err)
	}

	s.mutex.Lock()
	s.set = set
	s.mutex.Unlock()
	return nil
}

// Resolve returns the authority set in effect for children of the block at position.
func (s *AuthorityState) Resolve(_ context.Context, position common.Hash) (*aura.AuthoritySet, error) {
	if !s.blockState.HasHeader(position) {
		return nil, fmt.Errorf("%w: unknown block %s", aura.ErrResolution, position)
	}

	set, err := s.genesisSet()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", aura.ErrResolution, err)
	}

	return &aura.AuthoritySet{
		Authorities:  append([]types.Authority(nil), set.Authorities...),
		SlotDuration: set.SlotDuration,
	}, nil
}

func (s *AuthorityState) genesisSet() (*aura.AuthoritySet, error) {
	s.mutex.RLock()
	set := s.set
	s.mutex.RUnlock()
	if set != nil {
		return set, nil
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()
	if s.set != nil {
		return s.set, nil
	}

	set, err := s.load()
	if err != nil {
		return nil, err
	}
	s.set = set
	return set, nil
}

func (s *AuthorityState) load() (*aura.AuthoritySet, error) {
	enc, err := s.db.Get(authoritiesKey)
	if errors.Is(err, chaindb.ErrKeyNotFound) {
		return nil, errors.New("no genesis authorities stored")
	} else if err != nil {
		return nil, fmt.Errorf("loading genesis authorities: %w", err)
	}

	authorities, err := types.DecodeAuthorities(enc, s.keyType)
	if err != nil {
		return nil, fmt.Errorf("decoding genesis authorities: %w", err)
	}

	duration, err := s.db.Get(slotDurationKey)
	if err != nil {
		return nil, fmt.Errorf("loading slot duration: %w", err)
	}
	if len(duration) != 8 {
		return nil, fmt.Errorf("stored slot duration has length %d", len(duration))
	}
	slotDuration := time.Duration(binary.LittleEndian.Uint64(duration)) * time.Millisecond

	return aura.NewAuthoritySet(authorities, slotDuration)
}
