// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package state

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/ChainSafe/gossamer-aura/dot/types"

	"github.com/ChainSafe/chaindb"
)

const auxTablePrefix = "aux"

var authoredSlotKey = []byte("authored_slot")

// AuxState persists the last slot each local authority authored in,
// so a restarted node does not author twice in the same slot.
type AuxState struct {
	db chaindb.Database
}

// NewAuxState returns the aux state stored in db.
func NewAuxState(db chaindb.Database) *AuxState {
	return &AuxState{
		db: chaindb.NewTable(db, auxTablePrefix),
	}
}

// AuthoredSlot returns the last slot authored by the authority, and false if it never authored.
func (s *AuxState) AuthoredSlot(authority types.AuthorityID) (slot uint64, ok bool, err error) {
	data, err := s.db.Get(authoredKey(authority))
	if errors.Is(err, chaindb.ErrKeyNotFound) {
		return 0, false, nil
	} else if err != nil {
		return 0, false, fmt.Errorf("getting authored slot of %s: %w", authority, err)
	}

	if len(data) != 8 {
		return 0, false, fmt.Errorf("authored slot of %s has length %d", authority, len(data))
	}
	return binary.LittleEndian.Uint64(data), true, nil
}

// SetAuthoredSlot records the slot as authored by the authority.
func (s *AuxState) SetAuthoredSlot(authority types.AuthorityID, slot uint64) error {
	data := make([]byte, 8)
	binary.LittleEndian.PutUint64(data, slot)
	return s.db.Put(authoredKey(authority), data)
}

func authoredKey(authority types.AuthorityID) []byte {
	return bytes.Join([][]byte{authoredSlotKey, authority[:]}, nil)
}
