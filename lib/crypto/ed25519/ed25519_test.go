// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package ed25519

import (
	"crypto/ed25519"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSignAndVerify(t *testing.T) {
	t.Parallel()

	kp, err := GenerateKeypair()
	require.NoError(t, err)

	msg := []byte("helloworld")
	sig, err := kp.Sign(msg)
	require.NoError(t, err)

	ok, err := Verify(kp.Public().(*PublicKey), msg, sig)
	require.NoError(t, err)
	require.True(t, ok)

	sig[0] ^= 1
	ok, err = kp.Public().Verify(msg, sig)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestPublicKeys(t *testing.T) {
	t.Parallel()

	kp, err := GenerateKeypair()
	require.NoError(t, err)

	kp2 := NewKeypair(ed25519.PrivateKey(*(kp.Private().(*PrivateKey))))
	require.Equal(t, kp.Public(), kp2.Public())
}

func TestEncodeAndDecodePrivateKey(t *testing.T) {
	t.Parallel()

	kp, err := GenerateKeypair()
	require.NoError(t, err)

	enc := kp.Private().Encode()
	res := new(PrivateKey)
	err = res.Decode(enc)
	require.NoError(t, err)
	require.Equal(t, kp.Private(), res)
}

func TestEncodeAndDecodePublicKey(t *testing.T) {
	t.Parallel()

	kp, err := GenerateKeypair()
	require.NoError(t, err)

	enc := kp.Public().Encode()
	res, err := NewPublicKey(enc)
	require.NoError(t, err)
	require.Equal(t, kp.Public(), res)

	_, err = NewPublicKey(enc[:10])
	require.ErrorIs(t, err, ErrInvalidPublicKeyLength)
}

func TestNewKeypairFromPrivateKeyString(t *testing.T) {
	t.Parallel()

	// //Alice
	kp, err := NewKeypairFromPrivateKeyString(
		"0xabf8e5bdbe30c65656c0a3cbd181ff8a56294a69dfedd27982aace4a76909115")
	require.NoError(t, err)
	require.Equal(t,
		"0x88dc3417d5058ec4b4503e0c12ea1a0a89be200fe98922423d4334014fa6b0ee",
		kp.Public().Hex())
}
