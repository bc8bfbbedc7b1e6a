// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package keystore

import (
	"errors"

	"github.com/ChainSafe/gossamer-aura/lib/common"
	"github.com/ChainSafe/gossamer-aura/lib/crypto"
)

var (
	// ErrInvalidKeystoreName is returned for an unknown keystore name.
	ErrInvalidKeystoreName = errors.New("invalid keystore name")
	// ErrKeyTypeNotSupported is returned when inserting a key of the wrong type.
	ErrKeyTypeNotSupported = errors.New("given key type is not supported by this keystore")
	// ErrKeyNotFound is returned when signing with a key not in the keystore.
	ErrKeyNotFound = errors.New("key not found in keystore")
)

// Name represents a defined keystore name
type Name string

// AuraName is the keystore holding authority keys.
var AuraName Name = "aura"

// Keystore provides key management functionality
type Keystore interface {
	Name() Name
	Type() crypto.KeyType
	Insert(kp crypto.Keypair) error
	GetKeypair(pub crypto.PublicKey) crypto.Keypair
	GetKeypairFromAddress(pub common.Address) crypto.Keypair
	HasKey(pub crypto.PublicKey) bool
	Sign(pub crypto.PublicKey, msg []byte) ([]byte, error)
	PublicKeys() []crypto.PublicKey
	Keypairs() []crypto.Keypair
	Size() int
}

// TyperInserter has the Type and Insert methods.
type TyperInserter interface {
	Type() crypto.KeyType
	Insert(kp crypto.Keypair) error
}

// GlobalKeystore defines the various keystores used by the node
type GlobalKeystore struct {
	Aura Keystore
}

// NewGlobalKeystore returns a new GlobalKeystore with an aura
// keystore of the given key type.
func NewGlobalKeystore(auraKeyType crypto.KeyType) *GlobalKeystore {
	return &GlobalKeystore{
		Aura: NewBasicKeystore(AuraName, auraKeyType),
	}
}

// GetKeystore returns a keystore given its name
func (k *GlobalKeystore) GetKeystore(name []byte) (Keystore, error) {
	switch Name(name) {
	case AuraName:
		return k.Aura, nil
	default:
		return nil, ErrInvalidKeystoreName
	}
}
