// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package ed25519

import (
	"crypto/ed25519"
	"crypto/rand"
	"errors"
	"fmt"

	"github.com/ChainSafe/gossamer-aura/lib/common"
	"github.com/ChainSafe/gossamer-aura/lib/crypto"
)

const (
	// PublicKeyLength is the fixed Public Key Length
	PublicKeyLength int = 32
	// SeedLength is the length of a ed25519 seed
	SeedLength int = 32
	// PrivateKeyLength is the fixed Private Key Length
	PrivateKeyLength int = 64
	// SignatureLength is the fixed Signature Length
	SignatureLength int = 64
)

var (
	// ErrInvalidPublicKeyLength is returned when decoding a public key of the wrong length.
	ErrInvalidPublicKeyLength = errors.New("invalid public key length")
	// ErrInvalidPrivateKeyLength is returned when decoding a private key of the wrong length.
	ErrInvalidPrivateKeyLength = errors.New("invalid private key length")
	// ErrInvalidSignatureLength is returned when a signature is not SignatureLength long.
	ErrInvalidSignatureLength = errors.New("invalid signature length")
)

// Keypair is a ed25519 public-private keypair
type Keypair struct {
	public  *PublicKey
	private *PrivateKey
}

// PrivateKey is the ed25519 private key, seed followed by public key
type PrivateKey ed25519.PrivateKey

// PublicKey is the ed25519 public key
type PublicKey ed25519.PublicKey

// NewKeypair returns an Ed25519 keypair given a ed25519 private key
func NewKeypair(priv ed25519.PrivateKey) *Keypair {
	pubkey := PublicKey(priv.Public().(ed25519.PublicKey))
	privkey := PrivateKey(priv)
	return &Keypair{
		public:  &pubkey,
		private: &privkey,
	}
}

// NewKeypairFromSeed generates a new ed25519 keypair from a 32 bytes seed
func NewKeypairFromSeed(seed []byte) (*Keypair, error) {
	if len(seed) != SeedLength {
		return nil, fmt.Errorf("cannot generate key from seed: seed is not %d bytes long", SeedLength)
	}
	return NewKeypair(ed25519.NewKeyFromSeed(seed)), nil
}

// NewKeypairFromPrivateKeyString returns a Keypair given a 0x prefixed seed hex string
func NewKeypairFromPrivateKeyString(in string) (*Keypair, error) {
	seed, err := common.HexToBytes(in)
	if err != nil {
		return nil, err
	}
	return NewKeypairFromSeed(seed)
}

// GenerateKeypair returns a new ed25519 keypair
func GenerateKeypair() (*Keypair, error) {
	_, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, err
	}
	return NewKeypair(priv), nil
}

// NewPublicKey returns an ed25519 public key that consists of the input bytes
// Input length must be 32 bytes
func NewPublicKey(in []byte) (*PublicKey, error) {
	pub := new(PublicKey)
	return pub, pub.Decode(in)
}

// Verify returns true if the signature is valid for the given message and public key, false otherwise
func Verify(pub *PublicKey, msg, sig []byte) (bool, error) {
	if len(sig) != SignatureLength {
		return false, fmt.Errorf("%w: %d", ErrInvalidSignatureLength, len(sig))
	}
	return ed25519.Verify(ed25519.PublicKey(*pub), msg, sig), nil
}

// Type returns Ed25519Type
func (*Keypair) Type() crypto.KeyType {
	return crypto.Ed25519Type
}

// Sign uses the keypair to sign the message using the ed25519 signature algorithm
func (kp *Keypair) Sign(msg []byte) ([]byte, error) {
	return kp.private.Sign(msg)
}

// Public returns the keypair's public key
func (kp *Keypair) Public() crypto.PublicKey {
	return kp.public
}

// Private returns the keypair's private key
func (kp *Keypair) Private() crypto.PrivateKey {
	return kp.private
}

// Sign uses the ed25519 signature algorithm to sign the message
func (k *PrivateKey) Sign(msg []byte) ([]byte, error) {
	if len(*k) != PrivateKeyLength {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPrivateKeyLength, len(*k))
	}
	return ed25519.Sign(ed25519.PrivateKey(*k), msg), nil
}

// Public returns the public key corresponding to the private key
func (k *PrivateKey) Public() (crypto.PublicKey, error) {
	if len(*k) != PrivateKeyLength {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPrivateKeyLength, len(*k))
	}
	pub := PublicKey(ed25519.PrivateKey(*k).Public().(ed25519.PublicKey))
	return &pub, nil
}

// Encode returns the bytes underlying the ed25519 PrivateKey
func (k *PrivateKey) Encode() []byte {
	return []byte(*k)
}

// Decode turns input bytes into an ed25519 PrivateKey
// the input must be 64 bytes, or the function will return an error
func (k *PrivateKey) Decode(in []byte) error {
	if len(in) != PrivateKeyLength {
		return fmt.Errorf("%w: %d", ErrInvalidPrivateKeyLength, len(in))
	}
	*k = append(PrivateKey{}, in...)
	return nil
}

// Hex returns the private key as a '0x' prefixed hex string
func (k *PrivateKey) Hex() string {
	return common.BytesToHex(k.Encode())
}

// Verify checks that Ed25519PublicKey was used to create the signature for the message
func (k *PublicKey) Verify(msg, sig []byte) (bool, error) {
	return Verify(k, msg, sig)
}

// Encode returns the encoding of the ed25519 PublicKey
func (k *PublicKey) Encode() []byte {
	return []byte(*k)
}

// Decode turns input bytes into an ed25519 PublicKey
// the input must be 32 bytes, or the function will return and error
func (k *PublicKey) Decode(in []byte) error {
	if len(in) != PublicKeyLength {
		return fmt.Errorf("%w: %d", ErrInvalidPublicKeyLength, len(in))
	}
	*k = append(PublicKey{}, in...)
	return nil
}

// Address returns the ss58 address for this public key
func (k *PublicKey) Address() common.Address {
	return crypto.PublicKeyToAddress(k)
}

// Hex returns the public key as a '0x' prefixed hex string
func (k *PublicKey) Hex() string {
	return common.BytesToHex(k.Encode())
}
