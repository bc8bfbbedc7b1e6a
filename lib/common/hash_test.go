// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	randomHashString = "0x580d77a9136035a0bc3c3cd86286172f7f81291164c5914266073a30466fba21"
	emptyHashString  = "0x0000000000000000000000000000000000000000000000000000000000000000"
)

func Test_Hash_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		data       string
		expected   string
		errWrapped error
		errMessage string
	}{
		"empty": {
			errMessage: "invalid hash format",
		},
		"valid": {
			data:     `"` + randomHashString + `"`,
			expected: randomHashString,
		},
		"zero prefix only": {
			data:     "0x",
			expected: emptyHashString,
		},
		"no prefix": {
			data:       "zz",
			errWrapped: ErrNoPrefix,
			errMessage: "could not byteify non 0x prefixed string",
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var h Hash
			err := h.UnmarshalJSON([]byte(testCase.data))

			if testCase.errMessage != "" {
				if testCase.errWrapped != nil {
					assert.ErrorIs(t, err, testCase.errWrapped)
				}
				assert.EqualError(t, err, testCase.errMessage)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testCase.expected, h.String())
		})
	}
}

func Test_Hash_MarshalJSON(t *testing.T) {
	t.Parallel()

	h := MustHexToHash(randomHashString)
	data, err := h.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"`+randomHashString+`"`, string(data))
}

func Test_Hash_Short(t *testing.T) {
	t.Parallel()

	h := MustHexToHash(randomHashString)
	assert.Equal(t, "0x580d77a9...466fba21", h.Short())
	assert.False(t, h.IsEmpty())
	assert.True(t, EmptyHash.IsEmpty())
}

func Test_Blake2bHash(t *testing.T) {
	t.Parallel()

	h, err := Blake2bHash(nil)
	require.NoError(t, err)
	// blake2b-256 of the empty input
	assert.Equal(t,
		"0x0e5751c026e543b2e8ab2eb06099daa1d1e5df47778f7787faab45cdf12fe3a8",
		h.String())
	assert.Equal(t, h, MustBlake2bHash([]byte{}))
	assert.Len(t, Blake2b512([]byte("aura")), 64)
}

func Test_BytesToHex(t *testing.T) {
	t.Parallel()

	b := []byte{0xde, 0xad, 0xbe, 0xef}
	s := BytesToHex(b)
	assert.Equal(t, "0xdeadbeef", s)
	assert.Equal(t, b, MustHexToBytes(s))

	_, err := HexToBytes("deadbeef")
	assert.ErrorIs(t, err, ErrNoPrefix)
}
