// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package dot

import (
	"testing"
	"time"

	"github.com/ChainSafe/gossamer-aura/config"
	"github.com/ChainSafe/gossamer-aura/dot/types"
	"github.com/ChainSafe/gossamer-aura/lib/crypto"
	"github.com/ChainSafe/gossamer-aura/lib/keystore"

	"github.com/stretchr/testify/require"
)

func newTestConfig(t *testing.T, authorities int) *config.Config {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Base.BasePath = t.TempDir()
	cfg.Base.LogLevel = "crit"
	cfg.Base.InMemory = true
	cfg.Aura.SlotDuration = 200 * time.Millisecond
	cfg.Aura.ClockLeadTolerance = time.Second
	cfg.Dev.Authorities = authorities
	return cfg
}

func newTestAuthorities(t *testing.T, n int) []types.Authority {
	t.Helper()
	kr, err := keystore.NewKeyring(crypto.Sr25519Type)
	require.NoError(t, err)

	authorities := make([]types.Authority, n)
	for i := range authorities {
		authorities[i] = types.NewAuthority(kr.Keys[i].Public())
	}
	return authorities
}
