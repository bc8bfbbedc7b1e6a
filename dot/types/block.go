// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package types

import (
	"io"
)

// Block defines a state block
type Block struct {
	Header Header
	Body   Body
}

// NewBlock returns a new Block
func NewBlock(header Header, body Body) Block {
	return Block{
		Header: header,
		Body:   body,
	}
}

// NewEmptyBlock returns a new Block with an initialised but empty Header and Body
func NewEmptyBlock() Block {
	return Block{
		Header: *NewEmptyHeader(),
		Body:   Body{},
	}
}

// Encode returns the SCALE encoding of a block
func (b *Block) Encode() ([]byte, error) {
	enc, err := b.Header.Encode()
	if err != nil {
		return nil, err
	}

	body, err := b.Body.Encode()
	if err != nil {
		return nil, err
	}

	return append(enc, body...), nil
}

// Decode decodes the SCALE encoded block from the reader
func (b *Block) Decode(r io.Reader) error {
	if err := b.Header.Decode(r); err != nil {
		return err
	}
	return b.Body.Decode(r)
}

// DecodeBlock decodes a SCALE encoded block, rejecting trailing bytes.
func DecodeBlock(in []byte) (*Block, error) {
	block := NewEmptyBlock()
	if err := decodeAll(in, block.Decode); err != nil {
		return nil, err
	}
	return &block, nil
}

// DeepCopy returns a copy of the block sharing no memory with b.
func (b *Block) DeepCopy() *Block {
	return &Block{
		Header: *b.Header.DeepCopy(),
		Body:   b.Body.DeepCopy(),
	}
}
