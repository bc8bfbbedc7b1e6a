// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package aura

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/ChainSafe/gossamer-aura/dot/types"
	"github.com/ChainSafe/gossamer-aura/lib/common"
	"github.com/ChainSafe/gossamer-aura/lib/crypto"
	"github.com/ChainSafe/gossamer-aura/lib/keystore"
	"github.com/ChainSafe/gossamer-aura/lib/slots"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/require"
)

const (
	testSlotDuration = 2 * time.Second
	testMaxLead      = 2 * time.Second
	testMaxLag       = time.Second
)

var errTestNotFound = errors.New("not found")

func newTestKeyring(t *testing.T) *keystore.Keyring {
	t.Helper()
	kr, err := keystore.NewKeyring(crypto.Sr25519Type)
	require.NoError(t, err)
	return kr
}

// newTestAuthoritySet returns the set Alice, Bob and Charlie.
func newTestAuthoritySet(t *testing.T, kr *keystore.Keyring) *AuthoritySet {
	t.Helper()
	set, err := NewAuthoritySet([]types.Authority{
		types.NewAuthority(kr.Alice().Public()),
		types.NewAuthority(kr.Bob().Public()),
		types.NewAuthority(kr.Charlie().Public()),
	}, testSlotDuration)
	require.NoError(t, err)
	return set
}

func newTestClock(t *testing.T, now time.Time) (*slots.Clock, *clock.Mock) {
	t.Helper()
	mock := clock.NewMock()
	mock.Set(now)
	c, err := slots.NewClock(mock, time.Unix(0, 0), testSlotDuration, testMaxLead, testMaxLag)
	require.NoError(t, err)
	return c, mock
}

// slotTime returns the start of the slot plus the offset.
func slotTime(slot uint64, offset time.Duration) time.Time {
	return time.Unix(0, 0).Add(time.Duration(slot) * testSlotDuration).Add(offset)
}

func newTestGenesis() *types.Header {
	return types.NewHeader(common.Hash{}, common.Hash{1}, common.Hash{}, 0, types.NewDigest())
}

// newUnsealedBlock returns a block on top of the parent claiming the slot.
// The nonce is put in the body to tell apart blocks with the same slot and parent.
func newUnsealedBlock(t *testing.T, parent *types.Header, slot uint64, nonce byte) *types.Block {
	t.Helper()

	body := types.Body{types.Extrinsic{nonce}}
	root, err := body.Root()
	require.NoError(t, err)

	header := types.NewHeader(parent.Hash(), common.Hash{2}, root, parent.Number+1,
		types.NewDigest(types.NewAuraPreRuntimeDigest(slot)))
	block := types.NewBlock(*header, body)
	return &block
}

func sealBlock(t *testing.T, block *types.Block, kp crypto.Keypair) {
	t.Helper()

	preSealHash := block.Header.Hash()
	signature, err := kp.Sign(preSealHash[:])
	require.NoError(t, err)
	block.Header.Digest = append(block.Header.Digest, types.NewAuraSealDigest(signature))
}

func newSealedBlock(t *testing.T, parent *types.Header, slot uint64, nonce byte,
	kp crypto.Keypair) *types.Block {
	t.Helper()
	block := newUnsealedBlock(t, parent, slot, nonce)
	sealBlock(t, block, kp)
	return block
}

type staticResolver struct {
	set *AuthoritySet
}

func (r staticResolver) Resolve(context.Context, common.Hash) (*AuthoritySet, error) {
	return r.set, nil
}

// switchingResolver resolves every position to the set last given to it.
type switchingResolver struct {
	mutex sync.Mutex
	set   *AuthoritySet
}

func (r *switchingResolver) Resolve(context.Context, common.Hash) (*AuthoritySet, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	return r.set, nil
}

func (r *switchingResolver) switchTo(set *AuthoritySet) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.set = set
}

// testChain is an in memory chain tracking the highest block as best.
type testChain struct {
	mutex   sync.Mutex
	headers map[common.Hash]*types.Header
	best    *types.Header
}

func newTestChain(genesis *types.Header) *testChain {
	return &testChain{
		headers: map[common.Hash]*types.Header{genesis.Hash(): genesis},
		best:    genesis,
	}
}

func (c *testChain) BestBlockHeader(context.Context) (*types.Header, error) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.best, nil
}

func (c *testChain) Header(_ context.Context, hash common.Hash) (*types.Header, error) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	header, has := c.headers[hash]
	if !has {
		return nil, errTestNotFound
	}
	return header, nil
}

func (c *testChain) ImportBlock(_ context.Context, block *VerifiedBlock) error {
	c.add(&block.Block.Header)
	return nil
}

func (c *testChain) add(header *types.Header) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.headers[header.Hash()] = header
	if header.Number > c.best.Number {
		c.best = header
	}
}

func (c *testChain) bestNumber() uint {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.best.Number
}

// testBuilder builds blocks with an empty body.
type testBuilder struct{}

func (testBuilder) Build(_ context.Context, parent *types.Header,
	preDigest *types.PreRuntimeDigest) (*types.Block, error) {
	body := types.Body{}
	root, err := body.Root()
	if err != nil {
		return nil, err
	}

	header := types.NewHeader(parent.Hash(), parent.StateRoot, root, parent.Number+1,
		types.NewDigest(preDigest))
	block := types.NewBlock(*header, body)
	return &block, nil
}

func newTestVerifier(t *testing.T, set *AuthoritySet, c *slots.Clock,
	reporter EquivocationReporter) *Verifier {
	t.Helper()
	v, err := NewVerifier(VerifierConfig{
		Resolver: staticResolver{set: set},
		Clock:    c,
		Registry: NewEquivocationRegistry(DefaultEquivocationWindow),
		Reporter: reporter,
	})
	require.NoError(t, err)
	return v
}
