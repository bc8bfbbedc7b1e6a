// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package keystore

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ChainSafe/gossamer-aura/lib/common"
	"github.com/ChainSafe/gossamer-aura/lib/crypto"
	"github.com/ChainSafe/gossamer-aura/lib/crypto/ed25519"
	"github.com/ChainSafe/gossamer-aura/lib/crypto/sr25519"
)

// ErrCiphertextTooShort is returned when decrypting data shorter than the nonce.
var ErrCiphertextTooShort = errors.New("ciphertext is too short")

// EncryptedKeystore represents a keystore file
type EncryptedKeystore struct {
	Type       string `json:"type"`
	PublicKey  string `json:"publicKey"`
	Ciphertext []byte `json:"ciphertext"`
}

func gcmFromPassphrase(password []byte) (cipher.AEAD, error) {
	hash, err := common.Blake2bHash(password)
	if err != nil {
		return nil, err
	}

	block, err := aes.NewCipher(hash[:])
	if err != nil {
		return nil, err
	}

	return cipher.NewGCM(block)
}

// Encrypt uses AES to encrypt `msg` with the symmetric key deterministically created from `password`
func Encrypt(msg, password []byte) ([]byte, error) {
	gcm, err := gcmFromPassphrase(password)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err = rand.Read(nonce); err != nil {
		return nil, err
	}

	return gcm.Seal(nonce, nonce, msg, nil), nil
}

// Decrypt uses AES to decrypt ciphertext with the symmetric key deterministically created from `password`
func Decrypt(data, password []byte) ([]byte, error) {
	gcm, err := gcmFromPassphrase(password)
	if err != nil {
		return nil, err
	}

	nonceSize := gcm.NonceSize()
	if len(data) < nonceSize {
		return nil, ErrCiphertextTooShort
	}
	nonce, ciphertext := data[:nonceSize], data[nonceSize:]
	return gcm.Open(nil, nonce, ciphertext, nil)
}

// EncryptPrivateKey uses AES to encrypt an encoded `crypto.PrivateKey`
func EncryptPrivateKey(pk crypto.PrivateKey, password []byte) ([]byte, error) {
	return Encrypt(pk.Encode(), password)
}

// DecryptPrivateKey uses AES to decrypt the ciphertext into a `crypto.PrivateKey`
func DecryptPrivateKey(data, password []byte, keytype crypto.KeyType) (crypto.PrivateKey, error) {
	pk, err := Decrypt(data, password)
	if err != nil {
		return nil, err
	}
	return DecodePrivateKey(pk, keytype)
}

// DecodePrivateKey turns a private key encoding into a `crypto.PrivateKey`
func DecodePrivateKey(in []byte, keytype crypto.KeyType) (priv crypto.PrivateKey, err error) {
	switch keytype {
	case crypto.Ed25519Type:
		priv = new(ed25519.PrivateKey)
	case crypto.Sr25519Type:
		priv = new(sr25519.PrivateKey)
	default:
		return nil, fmt.Errorf("%w: %s", crypto.ErrUnknownKeyType, keytype)
	}
	return priv, priv.Decode(in)
}

// PrivateKeyToKeypair returns a public, private keypair given a private key
func PrivateKeyToKeypair(priv crypto.PrivateKey) (crypto.Keypair, error) {
	switch key := priv.(type) {
	case *sr25519.PrivateKey:
		return sr25519.NewKeypairFromPrivate(key)
	case *ed25519.PrivateKey:
		return ed25519.NewKeypairFromSeed(key.Encode()[:ed25519.SeedLength])
	default:
		return nil, fmt.Errorf("%w: %T", crypto.ErrUnknownKeyType, priv)
	}
}

// EncryptAndWriteToFile encrypts the `crypto.PrivateKey` using the password and saves it to the specified file
func EncryptAndWriteToFile(path string, pub crypto.PublicKey, priv crypto.PrivateKey, password []byte) error {
	ciphertext, err := EncryptPrivateKey(priv, password)
	if err != nil {
		return err
	}

	keytype, err := keyTypeOf(priv)
	if err != nil {
		return err
	}

	keydata := &EncryptedKeystore{
		Type:       keytype,
		PublicKey:  pub.Hex(),
		Ciphertext: ciphertext,
	}

	data, err := json.MarshalIndent(keydata, "", "\t")
	if err != nil {
		return err
	}

	if err = os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return err
	}
	return os.WriteFile(filepath.Clean(path), data, 0600)
}

// ReadFromFileAndDecrypt reads ciphertext from a file and decrypts it using the password into a `crypto.PrivateKey`
func ReadFromFileAndDecrypt(filename string, password []byte) (crypto.PrivateKey, error) {
	data, err := os.ReadFile(filepath.Clean(filename))
	if err != nil {
		return nil, err
	}

	keydata := new(EncryptedKeystore)
	if err = json.Unmarshal(data, keydata); err != nil {
		return nil, fmt.Errorf("cannot decode keystore file %s: %w", filename, err)
	}

	return DecryptPrivateKey(keydata.Ciphertext, password, keydata.Type)
}

func keyTypeOf(priv crypto.PrivateKey) (crypto.KeyType, error) {
	switch priv.(type) {
	case *sr25519.PrivateKey:
		return crypto.Sr25519Type, nil
	case *ed25519.PrivateKey:
		return crypto.Ed25519Type, nil
	default:
		return "", fmt.Errorf("%w: %T", crypto.ErrUnknownKeyType, priv)
	}
}

// ReadPublicKeyFromFile returns the public key stored in plain text in a keystore file.
func ReadPublicKeyFromFile(filename string) (crypto.PublicKey, error) {
	data, err := os.ReadFile(filepath.Clean(filename))
	if err != nil {
		return nil, err
	}

	keydata := new(EncryptedKeystore)
	if err = json.Unmarshal(data, keydata); err != nil {
		return nil, fmt.Errorf("cannot decode keystore file %s: %w", filename, err)
	}

	enc, err := common.HexToBytes(keydata.PublicKey)
	if err != nil {
		return nil, fmt.Errorf("cannot decode public key in %s: %w", filename, err)
	}

	switch keydata.Type {
	case crypto.Sr25519Type:
		return sr25519.NewPublicKey(enc)
	case crypto.Ed25519Type:
		return ed25519.NewPublicKey(enc)
	default:
		return nil, fmt.Errorf("%w: %s", crypto.ErrUnknownKeyType, keydata.Type)
	}
}
