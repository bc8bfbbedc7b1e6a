// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package crypto

import (
	"errors"

	"github.com/ChainSafe/gossamer-aura/lib/common"

	"github.com/btcsuite/btcutil/base58"
)

const (
	// SubstrateNetworkPrefix is the SS58 prefix used for addresses.
	SubstrateNetworkPrefix = 42

	checksumLength = 2
)

var (
	ssPrefix = []byte("SS58PRE")

	// ErrInvalidAddress is returned when an address cannot be decoded.
	ErrInvalidAddress = errors.New("invalid address")
)

// PublicKeyToAddress returns an SS58 address given a PublicKey
func PublicKeyToAddress(pub PublicKey) common.Address {
	return PublicKeyBytesToAddress(pub.Encode())
}

// PublicKeyBytesToAddress returns an SS58 address given public key bytes
func PublicKeyBytesToAddress(pub []byte) common.Address {
	enc := append([]byte{SubstrateNetworkPrefix}, pub...)
	checksum := common.Blake2b512(append(append([]byte{}, ssPrefix...), enc...))
	return common.Address(base58.Encode(append(enc, checksum[:checksumLength]...)))
}

// PublicAddressToByteArray returns the public key bytes of an SS58 address.
func PublicAddressToByteArray(add common.Address) ([]byte, error) {
	decoded := base58.Decode(string(add))
	if len(decoded) <= 1+checksumLength {
		return nil, ErrInvalidAddress
	}

	enc := decoded[:len(decoded)-checksumLength]
	checksum := common.Blake2b512(append(append([]byte{}, ssPrefix...), enc...))
	for i := 0; i < checksumLength; i++ {
		if checksum[i] != decoded[len(enc)+i] {
			return nil, ErrInvalidAddress
		}
	}

	return enc[1:], nil
}
