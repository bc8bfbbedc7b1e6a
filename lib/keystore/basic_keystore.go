// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package keystore

import (
	"fmt"
	"sync"

	"github.com/ChainSafe/gossamer-aura/lib/common"
	"github.com/ChainSafe/gossamer-aura/lib/crypto"
)

// BasicKeystore holds keys of a certain type
type BasicKeystore struct {
	name Name
	typ  crypto.KeyType
	keys map[common.Address]crypto.Keypair // map of public key encodings to keypairs
	lock sync.RWMutex
}

// NewBasicKeystore creates a new BasicKeystore with the given key type
func NewBasicKeystore(name Name, typ crypto.KeyType) *BasicKeystore {
	return &BasicKeystore{
		name: name,
		typ:  typ,
		keys: make(map[common.Address]crypto.Keypair),
	}
}

// Name returns the keystore's name
func (ks *BasicKeystore) Name() Name {
	return ks.name
}

// Type returns the keystore's key type
func (ks *BasicKeystore) Type() crypto.KeyType {
	return ks.typ
}

// Size returns the number of keys in the keystore
func (ks *BasicKeystore) Size() int {
	ks.lock.RLock()
	defer ks.lock.RUnlock()
	return len(ks.keys)
}

// Insert adds a keypair to the keystore
func (ks *BasicKeystore) Insert(kp crypto.Keypair) error {
	if kp.Type() != ks.typ {
		return fmt.Errorf("%w: %s", ErrKeyTypeNotSupported, kp.Type())
	}

	ks.lock.Lock()
	defer ks.lock.Unlock()
	ks.keys[kp.Public().Address()] = kp
	return nil
}

// GetKeypair returns a keypair corresponding to the given public key, or nil if it doesn't exist
func (ks *BasicKeystore) GetKeypair(pub crypto.PublicKey) crypto.Keypair {
	return ks.GetKeypairFromAddress(pub.Address())
}

// GetKeypairFromAddress returns a keypair corresponding to the given address, or nil if it doesn't exist
func (ks *BasicKeystore) GetKeypairFromAddress(pub common.Address) crypto.Keypair {
	ks.lock.RLock()
	defer ks.lock.RUnlock()
	return ks.keys[pub]
}

// HasKey returns true if the keystore holds the private key for the public key.
func (ks *BasicKeystore) HasKey(pub crypto.PublicKey) bool {
	return ks.GetKeypair(pub) != nil
}

// Sign signs the message with the keypair matching the public key.
func (ks *BasicKeystore) Sign(pub crypto.PublicKey, msg []byte) ([]byte, error) {
	kp := ks.GetKeypair(pub)
	if kp == nil {
		return nil, fmt.Errorf("%w: %s", ErrKeyNotFound, pub.Address())
	}
	return kp.Sign(msg)
}

// PublicKeys returns all public keys in the keystore
func (ks *BasicKeystore) PublicKeys() (srkeys []crypto.PublicKey) {
	ks.lock.RLock()
	defer ks.lock.RUnlock()
	srkeys = make([]crypto.PublicKey, 0, len(ks.keys))
	for _, key := range ks.keys {
		srkeys = append(srkeys, key.Public())
	}
	return srkeys
}

// Keypairs returns all keypairs in the keystore
func (ks *BasicKeystore) Keypairs() (srkeys []crypto.Keypair) {
	ks.lock.RLock()
	defer ks.lock.RUnlock()
	srkeys = make([]crypto.Keypair, 0, len(ks.keys))
	for _, key := range ks.keys {
		srkeys = append(srkeys, key)
	}
	return srkeys
}
