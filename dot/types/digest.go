// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package types

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/centrifuge/go-substrate-rpc-client/v4/scale"
)

// ErrInvalidDigestItemType is returned when decoding an unknown digest item type.
var ErrInvalidDigestItemType = errors.New("invalid digest item type")

// ConsensusEngineID is a 4-character identifier of the consensus engine that produced the digest.
type ConsensusEngineID [4]byte

// NewConsensusEngineID casts a byte array to ConsensusEngineID
// if the input is longer than 4 bytes, it takes the first 4 bytes
func NewConsensusEngineID(in []byte) (res ConsensusEngineID) {
	copy(res[:], in)
	return res
}

// ToBytes turns ConsensusEngineID to a byte array
func (h ConsensusEngineID) ToBytes() []byte {
	b := [4]byte(h)
	return b[:]
}

// AuraEngineID is the hard-coded aura ID
var AuraEngineID = ConsensusEngineID{'a', 'u', 'r', 'a'}

// Digest item types, as their SCALE enum index.
const (
	OtherDigestType                     = byte(0)
	ConsensusDigestType                 = byte(4)
	SealDigestType                      = byte(5)
	PreRuntimeDigestType                = byte(6)
	RuntimeEnvironmentUpdatedDigestType = byte(8)
)

// DigestItem can be one of Other, Consensus, Seal, PreRuntime or RuntimeEnvironmentUpdated.
// see https://github.com/paritytech/substrate/blob/master/primitives/runtime/src/generic/digest.rs
type DigestItem interface {
	String() string
	Type() byte
	Encode() ([]byte, error)
	Decode(io.Reader) error // Decode assumes the type byte (first byte) has been removed from the encoding.
}

// Digest represents the block digest. It consists of digest items.
type Digest []DigestItem

// NewDigest returns a new Digest from the given DigestItems
func NewDigest(items ...DigestItem) Digest {
	return items
}

// Encode returns the SCALE encoded digest
func (d Digest) Encode() ([]byte, error) {
	buffer := bytes.NewBuffer(nil)
	if err := encodeCompact(scale.NewEncoder(buffer), uint64(len(d))); err != nil {
		return nil, err
	}

	for i, item := range d {
		enc, err := item.Encode()
		if err != nil {
			return nil, fmt.Errorf("cannot encode digest item %d: %w", i, err)
		}
		buffer.Write(enc)
	}

	return buffer.Bytes(), nil
}

// Decode decodes a SCALE encoded digest into the Digest
func (d *Digest) Decode(r io.Reader) error {
	dec := scale.NewDecoder(r)
	// every item takes at least one byte
	num, err := decodeLength(r, dec)
	if err != nil {
		return fmt.Errorf("could not decode length of digest items: %w", err)
	}

	digest := make(Digest, num)
	for i := range digest {
		digest[i], err = DecodeDigestItem(r)
		if err != nil {
			return fmt.Errorf("could not decode digest item %d: %w", i, err)
		}
	}

	*d = digest
	return nil
}

// DeepCopy returns a copy of the digest sharing no memory with d.
func (d Digest) DeepCopy() Digest {
	if d == nil {
		return nil
	}
	cp := make(Digest, len(d))
	for i, item := range d {
		switch item := item.(type) {
		case *PreRuntimeDigest:
			cp[i] = &PreRuntimeDigest{ConsensusEngineID: item.ConsensusEngineID, Data: copyBytes(item.Data)}
		case *ConsensusDigest:
			cp[i] = &ConsensusDigest{ConsensusEngineID: item.ConsensusEngineID, Data: copyBytes(item.Data)}
		case *SealDigest:
			cp[i] = &SealDigest{ConsensusEngineID: item.ConsensusEngineID, Data: copyBytes(item.Data)}
		case *OtherDigest:
			cp[i] = &OtherDigest{Data: copyBytes(item.Data)}
		default:
			cp[i] = item
		}
	}
	return cp
}

func copyBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	return append([]byte{}, b...)
}

// DecodeDigestItem will decode byte array to DigestItem
func DecodeDigestItem(r io.Reader) (DigestItem, error) {
	typ, err := scale.NewDecoder(r).ReadOneByte()
	if err != nil {
		return nil, err
	}

	var d DigestItem
	switch typ {
	case OtherDigestType:
		d = new(OtherDigest)
	case ConsensusDigestType:
		d = new(ConsensusDigest)
	case SealDigestType:
		d = new(SealDigest)
	case PreRuntimeDigestType:
		d = new(PreRuntimeDigest)
	case RuntimeEnvironmentUpdatedDigestType:
		d = new(RuntimeEnvironmentUpdatedDigest)
	default:
		return nil, fmt.Errorf("%w: %d", ErrInvalidDigestItemType, typ)
	}

	return d, d.Decode(r)
}

// engineDigest is the shared layout of digest items carrying an engine id and opaque data.
type engineDigest struct {
	ConsensusEngineID ConsensusEngineID
	Data              []byte
}

func (d *engineDigest) encode(typ byte) ([]byte, error) {
	buffer := bytes.NewBuffer(nil)
	enc := scale.NewEncoder(buffer)
	if err := enc.PushByte(typ); err != nil {
		return nil, err
	}
	if err := enc.Write(d.ConsensusEngineID[:]); err != nil {
		return nil, err
	}
	if err := encodeBytes(enc, d.Data); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}

func (d *engineDigest) decode(r io.Reader) (err error) {
	dec := scale.NewDecoder(r)
	if err = dec.Read(d.ConsensusEngineID[:]); err != nil {
		return fmt.Errorf("cannot decode consensus engine id: %w", err)
	}
	d.Data, err = decodeBytes(r, dec)
	return err
}

// PreRuntimeDigest contains messages from the consensus engine to the runtime.
type PreRuntimeDigest engineDigest

// NewAuraPreRuntimeDigest returns a PreRuntimeDigest with the aura consensus ID
// carrying the slot.
func NewAuraPreRuntimeDigest(slot uint64) *PreRuntimeDigest {
	return &PreRuntimeDigest{
		ConsensusEngineID: AuraEngineID,
		Data:              AuraPreDigest{Slot: slot}.Encode(),
	}
}

// String returns the digest as a string
func (d *PreRuntimeDigest) String() string {
	return fmt.Sprintf("PreRuntimeDigest ConsensusEngineID=%s Data=0x%x", d.ConsensusEngineID.ToBytes(), d.Data)
}

// Type will return PreRuntimeDigestType
func (*PreRuntimeDigest) Type() byte {
	return PreRuntimeDigestType
}

// Encode will encode PreRuntimeDigest ConsensusEngineID and Data
func (d *PreRuntimeDigest) Encode() ([]byte, error) {
	return (*engineDigest)(d).encode(PreRuntimeDigestType)
}

// Decode will decode PreRuntimeDigest ConsensusEngineID and Data
func (d *PreRuntimeDigest) Decode(r io.Reader) error {
	return (*engineDigest)(d).decode(r)
}

// ConsensusDigest contains messages from the runtime to the consensus engine.
type ConsensusDigest engineDigest

// String returns the digest as a string
func (d *ConsensusDigest) String() string {
	return fmt.Sprintf("ConsensusDigest ConsensusEngineID=%s Data=0x%x", d.ConsensusEngineID.ToBytes(), d.Data)
}

// Type returns the ConsensusDigest type
func (*ConsensusDigest) Type() byte {
	return ConsensusDigestType
}

// Encode will encode ConsensusDigest ConsensusEngineID and Data
func (d *ConsensusDigest) Encode() ([]byte, error) {
	return (*engineDigest)(d).encode(ConsensusDigestType)
}

// Decode will decode into ConsensusEngineID and Data
func (d *ConsensusDigest) Decode(r io.Reader) error {
	return (*engineDigest)(d).decode(r)
}

// SealDigest contains the seal or signature. This is only used by native code.
type SealDigest engineDigest

// NewAuraSealDigest returns a SealDigest with the aura consensus ID carrying the signature.
func NewAuraSealDigest(signature []byte) *SealDigest {
	return &SealDigest{
		ConsensusEngineID: AuraEngineID,
		Data:              signature,
	}
}

// String returns the digest as a string
func (d *SealDigest) String() string {
	return fmt.Sprintf("SealDigest ConsensusEngineID=%s Data=0x%x", d.ConsensusEngineID.ToBytes(), d.Data)
}

// Type will return SealDigest type
func (*SealDigest) Type() byte {
	return SealDigestType
}

// Encode will encode SealDigest ConsensusEngineID and Data
func (d *SealDigest) Encode() ([]byte, error) {
	return (*engineDigest)(d).encode(SealDigestType)
}

// Decode will decode into SealDigest ConsensusEngineID and Data
func (d *SealDigest) Decode(r io.Reader) error {
	return (*engineDigest)(d).decode(r)
}

// OtherDigest is an opaque digest item.
type OtherDigest struct {
	Data []byte
}

// String returns the digest as a string
func (d *OtherDigest) String() string {
	return fmt.Sprintf("OtherDigest Data=0x%x", d.Data)
}

// Type will return OtherDigest type
func (*OtherDigest) Type() byte {
	return OtherDigestType
}

// Encode will encode the OtherDigest data
func (d *OtherDigest) Encode() ([]byte, error) {
	buffer := bytes.NewBuffer([]byte{OtherDigestType})
	if err := encodeBytes(scale.NewEncoder(buffer), d.Data); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}

// Decode will decode the OtherDigest data
func (d *OtherDigest) Decode(r io.Reader) (err error) {
	d.Data, err = decodeBytes(r, scale.NewDecoder(r))
	return err
}

// RuntimeEnvironmentUpdatedDigest signals the runtime code or heap pages changed.
type RuntimeEnvironmentUpdatedDigest struct{}

// String returns the digest as a string
func (*RuntimeEnvironmentUpdatedDigest) String() string {
	return "RuntimeEnvironmentUpdatedDigest"
}

// Type will return RuntimeEnvironmentUpdatedDigest type
func (*RuntimeEnvironmentUpdatedDigest) Type() byte {
	return RuntimeEnvironmentUpdatedDigestType
}

// Encode encodes the type byte only
func (*RuntimeEnvironmentUpdatedDigest) Encode() ([]byte, error) {
	return []byte{RuntimeEnvironmentUpdatedDigestType}, nil
}

// Decode is a no-op since the item has no payload
func (*RuntimeEnvironmentUpdatedDigest) Decode(io.Reader) error {
	return nil
}
