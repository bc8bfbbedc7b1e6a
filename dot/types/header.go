// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package types

import (
	"bytes"
	"fmt"
	"io"

	"github.com/ChainSafe/gossamer-aura/lib/common"

	"github.com/centrifuge/go-substrate-rpc-client/v4/scale"
)

// Header is a state block header
type Header struct {
	ParentHash     common.Hash `json:"parentHash"`
	Number         uint        `json:"number"`
	StateRoot      common.Hash `json:"stateRoot"`
	ExtrinsicsRoot common.Hash `json:"extrinsicsRoot"`
	Digest         Digest      `json:"digest"`
}

// NewHeader creates a new block header
func NewHeader(parentHash, stateRoot, extrinsicsRoot common.Hash,
	number uint, digest Digest) *Header {
	return &Header{
		ParentHash:     parentHash,
		Number:         number,
		StateRoot:      stateRoot,
		ExtrinsicsRoot: extrinsicsRoot,
		Digest:         digest,
	}
}

// NewEmptyHeader returns a new header with all zero values
func NewEmptyHeader() *Header {
	return &Header{
		Digest: Digest{},
	}
}

// DeepCopy returns a deep copy of the header to prevent side effects down the road
func (bh *Header) DeepCopy() *Header {
	cp := *bh
	cp.Digest = bh.Digest.DeepCopy()
	return &cp
}

// String returns the formatted header as a string
func (bh *Header) String() string {
	return fmt.Sprintf("ParentHash=%s Number=%d StateRoot=%s ExtrinsicsRoot=%s Digest=%v Hash=%s",
		bh.ParentHash, bh.Number, bh.StateRoot, bh.ExtrinsicsRoot, bh.Digest, bh.Hash())
}

// Hash returns the blake2b hash of the SCALE encoded header.
// If hashing the header errors, this will panic.
func (bh *Header) Hash() common.Hash {
	enc, err := bh.Encode()
	if err != nil {
		panic(err)
	}
	return common.MustBlake2bHash(enc)
}

// Encode returns the SCALE encoding of a header
func (bh *Header) Encode() ([]byte, error) {
	buffer := bytes.NewBuffer(nil)
	enc := scale.NewEncoder(buffer)

	if err := enc.Write(bh.ParentHash[:]); err != nil {
		return nil, err
	}
	if err := encodeCompact(enc, uint64(bh.Number)); err != nil {
		return nil, err
	}
	if err := enc.Write(bh.StateRoot[:]); err != nil {
		return nil, err
	}
	if err := enc.Write(bh.ExtrinsicsRoot[:]); err != nil {
		return nil, err
	}

	digest, err := bh.Digest.Encode()
	if err != nil {
		return nil, err
	}
	buffer.Write(digest)

	return buffer.Bytes(), nil
}

// Decode decodes the SCALE encoded input into this header
func (bh *Header) Decode(r io.Reader) (err error) {
	dec := scale.NewDecoder(r)

	if bh.ParentHash, err = readHash(dec); err != nil {
		return fmt.Errorf("cannot decode parent hash: %w", err)
	}

	number, err := decodeCompact(dec)
	if err != nil {
		return fmt.Errorf("cannot decode number: %w", err)
	}
	bh.Number = uint(number)

	if bh.StateRoot, err = readHash(dec); err != nil {
		return fmt.Errorf("cannot decode state root: %w", err)
	}
	if bh.ExtrinsicsRoot, err = readHash(dec); err != nil {
		return fmt.Errorf("cannot decode extrinsics root: %w", err)
	}

	return bh.Digest.Decode(r)
}

// DecodeHeader decodes a SCALE encoded header, rejecting trailing bytes.
func DecodeHeader(in []byte) (*Header, error) {
	header := NewEmptyHeader()
	if err := decodeAll(in, header.Decode); err != nil {
		return nil, err
	}
	return header, nil
}

// WithoutSeal returns a copy of the header without its final seal digest item,
// and that seal. The seal is nil if the last digest item is not a seal.
func (bh *Header) WithoutSeal() (*Header, *SealDigest) {
	cp := bh.DeepCopy()
	if len(cp.Digest) == 0 {
		return cp, nil
	}

	seal, ok := cp.Digest[len(cp.Digest)-1].(*SealDigest)
	if !ok {
		return cp, nil
	}

	cp.Digest = cp.Digest[:len(cp.Digest)-1]
	return cp, seal
}

// PreSealHash returns the hash of the header without its final seal digest item.
// This is the message signed by the block author.
func (bh *Header) PreSealHash() common.Hash {
	unsealed, _ := bh.WithoutSeal()
	return unsealed.Hash()
}

// Seal detaches the final seal digest item from the header and returns it.
// The header is left unchanged if the last digest item is not a seal.
func (bh *Header) Seal() *SealDigest {
	if len(bh.Digest) == 0 {
		return nil
	}

	seal, ok := bh.Digest[len(bh.Digest)-1].(*SealDigest)
	if !ok {
		return nil
	}

	bh.Digest = bh.Digest[:len(bh.Digest)-1]
	return seal
}
