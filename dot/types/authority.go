// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package types

import (
	"bytes"
	"fmt"
	"io"

	"github.com/ChainSafe/gossamer-aura/lib/crypto"
	"github.com/ChainSafe/gossamer-aura/lib/crypto/ed25519"
	"github.com/ChainSafe/gossamer-aura/lib/crypto/sr25519"

	"github.com/centrifuge/go-substrate-rpc-client/v4/scale"
)

// AuthorityID is the 32 byte public key encoding of an authority.
type AuthorityID [32]byte

// String returns the hex encoding of the authority id.
func (a AuthorityID) String() string {
	return fmt.Sprintf("0x%x", a[:])
}

// Authority holds the public key of a block authoring authority.
type Authority struct {
	Key crypto.PublicKey
}

// NewAuthority returns an Authority for the public key.
func NewAuthority(pub crypto.PublicKey) Authority {
	return Authority{Key: pub}
}

// ID returns the authority id of the authority key.
func (a Authority) ID() (id AuthorityID) {
	copy(id[:], a.Key.Encode())
	return id
}

// String returns the SS58 address of the authority key.
func (a Authority) String() string {
	return string(a.Key.Address())
}

// DecodeAuthorityID decodes an authority id into a public key of the given type.
func DecodeAuthorityID(id AuthorityID, keyType crypto.KeyType) (Authority, error) {
	switch keyType {
	case crypto.Sr25519Type:
		pub, err := sr25519.NewPublicKey(id[:])
		if err != nil {
			return Authority{}, err
		}
		return NewAuthority(pub), nil
	case crypto.Ed25519Type:
		pub, err := ed25519.NewPublicKey(id[:])
		if err != nil {
			return Authority{}, err
		}
		return NewAuthority(pub), nil
	default:
		return Authority{}, fmt.Errorf("%w: %s", crypto.ErrUnknownKeyType, keyType)
	}
}

// EncodeAuthorities returns the SCALE encoding of the authority ids, in order.
func EncodeAuthorities(authorities []Authority) ([]byte, error) {
	buffer := bytes.NewBuffer(nil)
	enc := scale.NewEncoder(buffer)
	if err := encodeCompact(enc, uint64(len(authorities))); err != nil {
		return nil, err
	}
	for _, authority := range authorities {
		id := authority.ID()
		if err := enc.Write(id[:]); err != nil {
			return nil, err
		}
	}
	return buffer.Bytes(), nil
}

// DecodeAuthorities decodes SCALE encoded authority ids into authorities of the key type.
func DecodeAuthorities(in []byte, keyType crypto.KeyType) (authorities []Authority, err error) {
	err = decodeAll(in, func(r io.Reader) error {
		dec := scale.NewDecoder(r)
		num, err := decodeLength(r, dec)
		if err != nil {
			return err
		}

		authorities = make([]Authority, num)
		for i := range authorities {
			id, err := readHash(dec)
			if err != nil {
				return fmt.Errorf("cannot decode authority %d: %w", i, err)
			}
			authorities[i], err = DecodeAuthorityID(id, keyType)
			if err != nil {
				return fmt.Errorf("cannot decode authority %d: %w", i, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return authorities, nil
}
