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

// Extrinsic is a generic transaction whose format is verified in the runtime
type Extrinsic []byte

// Body is the extrinsics inside a state block
type Body []Extrinsic

// NewBody returns a Body from an Extrinsic array
func NewBody(e []Extrinsic) *Body {
	body := Body(e)
	return &body
}

// Encode returns the SCALE encoding of the body, a vector of byte vectors
func (b Body) Encode() ([]byte, error) {
	buffer := bytes.NewBuffer(nil)
	enc := scale.NewEncoder(buffer)

	if err := encodeCompact(enc, uint64(len(b))); err != nil {
		return nil, err
	}
	for _, ext := range b {
		if err := encodeBytes(enc, ext); err != nil {
			return nil, err
		}
	}

	return buffer.Bytes(), nil
}

// Decode decodes the SCALE encoded body from the reader
func (b *Body) Decode(r io.Reader) error {
	dec := scale.NewDecoder(r)
	num, err := decodeLength(r, dec)
	if err != nil {
		return fmt.Errorf("cannot decode number of extrinsics: %w", err)
	}

	body := make(Body, num)
	for i := range body {
		ext, err := decodeBytes(r, dec)
		if err != nil {
			return fmt.Errorf("cannot decode extrinsic %d: %w", i, err)
		}
		body[i] = ext
	}

	*b = body
	return nil
}

// Root returns the blake2b hash of the encoded body, used as extrinsics root.
func (b Body) Root() (common.Hash, error) {
	enc, err := b.Encode()
	if err != nil {
		return common.Hash{}, err
	}
	return common.Blake2bHash(enc)
}

// DeepCopy returns a copy of the body sharing no memory with b.
func (b Body) DeepCopy() Body {
	if b == nil {
		return nil
	}
	cp := make(Body, len(b))
	for i, ext := range b {
		cp[i] = append(Extrinsic{}, ext...)
	}
	return cp
}
