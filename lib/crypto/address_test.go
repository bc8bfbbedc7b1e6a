// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package crypto

import (
	"testing"

	"github.com/ChainSafe/gossamer-aura/lib/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_PublicKeyBytesToAddress(t *testing.T) {
	t.Parallel()

	alice := common.MustHexToBytes("0xd43593c715fdd31c61141abd04a99fd6822c8558854ccde39a5684e7a56da27d")

	address := PublicKeyBytesToAddress(alice)
	assert.Equal(t, common.Address("5GrwvaEF5zXb26Fz9rcQpDWS57CtERHpNehXCPcNoHGKutQY"), address)

	decoded, err := PublicAddressToByteArray(address)
	require.NoError(t, err)
	assert.Equal(t, alice, decoded)
}

func Test_PublicAddressToByteArray(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		address    common.Address
		errWrapped error
	}{
		"too short": {
			address:    "5G",
			errWrapped: ErrInvalidAddress,
		},
		"bad checksum": {
			address:    "5GrwvaEF5zXb26Fz9rcQpDWS57CtERHpNehXCPcNoHGKutQZ",
			errWrapped: ErrInvalidAddress,
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, err := PublicAddressToByteArray(testCase.address)
			assert.ErrorIs(t, err, testCase.errWrapped)
		})
	}
}

func Test_ParseKeyType(t *testing.T) {
	t.Parallel()

	keyType, err := ParseKeyType("sr25519")
	require.NoError(t, err)
	assert.Equal(t, Sr25519Type, keyType)

	_, err = ParseKeyType("secp256k1")
	assert.ErrorIs(t, err, ErrUnknownKeyType)
}
