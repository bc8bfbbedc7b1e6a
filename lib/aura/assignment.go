// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package aura

import (
	"fmt"
	"time"

	"github.com/ChainSafe/gossamer-aura/dot/types"
)

// AuthoritySet is the ordered set of authorities in effect at a chain position,
// together with the slot duration.
type AuthoritySet struct {
	Authorities  []types.Authority
	SlotDuration time.Duration
}

// NewAuthoritySet returns a validated authority set.
func NewAuthoritySet(authorities []types.Authority, slotDuration time.Duration) (*AuthoritySet, error) {
	set := &AuthoritySet{
		Authorities:  authorities,
		SlotDuration: slotDuration,
	}
	if err := set.Validate(); err != nil {
		return nil, err
	}
	return set, nil
}

// Validate checks the set is not empty and holds no duplicate keys.
func (s *AuthoritySet) Validate() error {
	if len(s.Authorities) == 0 {
		return fmt.Errorf("%w: no authorities", ErrInvalidAuthoritySet)
	}

	seen := make(map[types.AuthorityID]int, len(s.Authorities))
	for i, authority := range s.Authorities {
		if authority.Key == nil {
			return fmt.Errorf("%w: authority %d has no key", ErrInvalidAuthoritySet, i)
		}
		id := authority.ID()
		if j, has := seen[id]; has {
			return fmt.Errorf("%w: authorities %d and %d share key %s",
				ErrInvalidAuthoritySet, j, i, authority)
		}
		seen[id] = i
	}
	return nil
}

// Len returns the number of authorities.
func (s *AuthoritySet) Len() int {
	return len(s.Authorities)
}

// IndexOf returns the index of the authority with the given id.
func (s *AuthoritySet) IndexOf(id types.AuthorityID) (index uint32, ok bool) {
	for i, authority := range s.Authorities {
		if authority.ID() == id {
			return uint32(i), true
		}
	}
	return 0, false
}

// ExpectedAuthor returns the index of the authority entitled to author the slot.
func ExpectedAuthor(slot uint64, authorities []types.Authority) (uint32, error) {
	if len(authorities) == 0 {
		return 0, fmt.Errorf("%w: no authorities", ErrInvalidAuthoritySet)
	}
	return uint32(slot % uint64(len(authorities))), nil
}

// SlotAuthor returns the authority entitled to author the slot and its index.
func SlotAuthor(slot uint64, set *AuthoritySet) (types.Authority, uint32, error) {
	if set == nil {
		return types.Authority{}, 0, fmt.Errorf("%w: nil set", ErrInvalidAuthoritySet)
	}

	index, err := ExpectedAuthor(slot, set.Authorities)
	if err != nil {
		return types.Authority{}, 0, err
	}
	return set.Authorities[index], index, nil
}
