// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package types

import (
	"encoding/binary"
	"errors"
	"fmt"
)

const (
	// AuraPreDigestLength is the encoded length of an aura pre-digest, a little endian u64 slot.
	AuraPreDigestLength = 8
	// AuraSealLength is the encoded length of an aura seal signature.
	AuraSealLength = 64
)

var (
	// ErrNoAuraPreDigest is returned when a non-genesis header carries no aura pre-runtime digest.
	ErrNoAuraPreDigest = errors.New("no aura pre-runtime digest found")
	// ErrMultipleAuraPreDigests is returned when a header carries more than one aura pre-runtime digest.
	ErrMultipleAuraPreDigests = errors.New("multiple aura pre-runtime digests")
	// ErrInvalidAuraPreDigest is returned for a pre-digest payload of the wrong length.
	ErrInvalidAuraPreDigest = errors.New("invalid aura pre-runtime digest")
	// ErrNoAuraSeal is returned when the last digest item is not an aura seal.
	ErrNoAuraSeal = errors.New("no aura seal found")
	// ErrInvalidAuraSeal is returned for a seal payload of the wrong length.
	ErrInvalidAuraSeal = errors.New("invalid aura seal")
)

// AuraPreDigest is the slot claimed by the block author.
type AuraPreDigest struct {
	Slot uint64
}

// Encode returns the little endian encoding of the slot.
func (d AuraPreDigest) Encode() []byte {
	enc := make([]byte, AuraPreDigestLength)
	binary.LittleEndian.PutUint64(enc, d.Slot)
	return enc
}

// DecodeAuraPreDigest decodes a pre-runtime digest payload into the claimed slot.
func DecodeAuraPreDigest(data []byte) (AuraPreDigest, error) {
	if len(data) != AuraPreDigestLength {
		return AuraPreDigest{}, fmt.Errorf("%w: expected %d bytes, got %d",
			ErrInvalidAuraPreDigest, AuraPreDigestLength, len(data))
	}
	return AuraPreDigest{Slot: binary.LittleEndian.Uint64(data)}, nil
}

// AuraSeal is the authority signature over the pre-seal header hash.
type AuraSeal struct {
	Signature [AuraSealLength]byte
}

// DecodeAuraSeal decodes a seal digest payload.
func DecodeAuraSeal(data []byte) (seal AuraSeal, err error) {
	if len(data) != AuraSealLength {
		return seal, fmt.Errorf("%w: expected %d bytes, got %d",
			ErrInvalidAuraSeal, AuraSealLength, len(data))
	}
	copy(seal.Signature[:], data)
	return seal, nil
}

// FindAuraPreDigest returns the slot claimed in the header.
// The genesis header has the implicit slot 0.
func FindAuraPreDigest(header *Header) (slot uint64, err error) {
	if header.Number == 0 {
		return 0, nil
	}

	var found *PreRuntimeDigest
	for _, item := range header.Digest {
		d, ok := item.(*PreRuntimeDigest)
		if !ok || d.ConsensusEngineID != AuraEngineID {
			continue
		}
		if found != nil {
			return 0, ErrMultipleAuraPreDigests
		}
		found = d
	}

	if found == nil {
		return 0, ErrNoAuraPreDigest
	}

	preDigest, err := DecodeAuraPreDigest(found.Data)
	if err != nil {
		return 0, err
	}
	return preDigest.Slot, nil
}

// FindAuraSeal returns the seal of the header, which must be the last digest item.
func FindAuraSeal(header *Header) (AuraSeal, error) {
	if len(header.Digest) == 0 {
		return AuraSeal{}, ErrNoAuraSeal
	}

	seal, ok := header.Digest[len(header.Digest)-1].(*SealDigest)
	if !ok || seal.ConsensusEngineID != AuraEngineID {
		return AuraSeal{}, ErrNoAuraSeal
	}

	return DecodeAuraSeal(seal.Data)
}
