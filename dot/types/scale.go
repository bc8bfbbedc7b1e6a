// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package types

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math/big"

	"github.com/centrifuge/go-substrate-rpc-client/v4/scale"
)

var (
	// ErrLengthTooLarge is returned when a length prefix exceeds the remaining input.
	ErrLengthTooLarge = errors.New("length prefix exceeds remaining input")
	// ErrTrailingBytes is returned when input is left after decoding.
	ErrTrailingBytes = errors.New("trailing bytes after decoding")
)

// lener is implemented by readers knowing how many bytes remain, such as *bytes.Reader.
type lener interface {
	Len() int
}

func encodeCompact(enc *scale.Encoder, n uint64) error {
	return enc.EncodeUintCompact(*new(big.Int).SetUint64(n))
}

func decodeCompact(dec *scale.Decoder) (uint64, error) {
	n, err := dec.DecodeUintCompact()
	if err != nil {
		return 0, err
	}
	if !n.IsUint64() {
		return 0, fmt.Errorf("%w: compact integer %s overflows uint64", ErrLengthTooLarge, n)
	}
	return n.Uint64(), nil
}

// decodeLength reads a compact length prefix and bounds it by the remaining input.
func decodeLength(r io.Reader, dec *scale.Decoder) (int, error) {
	n, err := decodeCompact(dec)
	if err != nil {
		return 0, err
	}
	if l, ok := r.(lener); ok && n > uint64(l.Len()) {
		return 0, fmt.Errorf("%w: %d > %d", ErrLengthTooLarge, n, l.Len())
	}
	return int(n), nil
}

func encodeBytes(enc *scale.Encoder, b []byte) error {
	if err := encodeCompact(enc, uint64(len(b))); err != nil {
		return err
	}
	return enc.Write(b)
}

func decodeBytes(r io.Reader, dec *scale.Decoder) ([]byte, error) {
	n, err := decodeLength(r, dec)
	if err != nil {
		return nil, err
	}
	b := make([]byte, n)
	if n == 0 {
		return b, nil
	}
	if err = dec.Read(b); err != nil {
		return nil, err
	}
	return b, nil
}

func readHash(dec *scale.Decoder) (h [32]byte, err error) {
	err = dec.Read(h[:])
	return h, err
}

// decodeAll decodes the input using the decode function and rejects trailing bytes.
func decodeAll(in []byte, decode func(r io.Reader) error) error {
	r := bytes.NewReader(in)
	if err := decode(r); err != nil {
		return err
	}
	if r.Len() > 0 {
		return fmt.Errorf("%w: %d", ErrTrailingBytes, r.Len())
	}
	return nil
}
