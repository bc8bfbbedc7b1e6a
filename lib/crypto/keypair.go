// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package crypto

import (
	"errors"
	"fmt"

	"github.com/ChainSafe/gossamer-aura/lib/common"
)

// KeyType str
type KeyType = string

const (
	// Ed25519Type is ed25519
	Ed25519Type KeyType = "ed25519"
	// Sr25519Type is sr25519
	Sr25519Type KeyType = "sr25519"
)

// ErrUnknownKeyType is returned for a key type other than ed25519 or sr25519.
var ErrUnknownKeyType = errors.New("unknown key type")

// Keypair interface
type Keypair interface {
	Type() KeyType
	Sign(msg []byte) ([]byte, error)
	Public() PublicKey
	Private() PrivateKey
}

// PublicKey interface
type PublicKey interface {
	Verify(msg, sig []byte) (bool, error)
	Encode() []byte
	Decode([]byte) error
	Address() common.Address
	Hex() string
}

// PrivateKey interface
type PrivateKey interface {
	Sign(msg []byte) ([]byte, error)
	Public() (PublicKey, error)
	Encode() []byte
	Decode([]byte) error
	Hex() string
}

// ParseKeyType checks the key type string is supported.
func ParseKeyType(s string) (KeyType, error) {
	switch s {
	case Ed25519Type, Sr25519Type:
		return s, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownKeyType, s)
	}
}
