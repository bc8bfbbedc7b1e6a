// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package dot

import (
	"context"
	"fmt"

	"github.com/ChainSafe/gossamer-aura/config"
	"github.com/ChainSafe/gossamer-aura/dot/network"
	"github.com/ChainSafe/gossamer-aura/dot/state"
	"github.com/ChainSafe/gossamer-aura/dot/types"
	"github.com/ChainSafe/gossamer-aura/internal/metrics"
	"github.com/ChainSafe/gossamer-aura/internal/pprof"
	"github.com/ChainSafe/gossamer-aura/lib/crypto"
	"github.com/ChainSafe/gossamer-aura/lib/keystore"
	"github.com/ChainSafe/gossamer-aura/lib/services"

	"github.com/benbjohnson/clock"
	"golang.org/x/sync/errgroup"
)

// Chain is a set of authority nodes sharing a genesis and a network hub.
type Chain struct {
	Genesis state.Genesis
	Nodes   []*Node

	hub      *network.Hub
	services *services.ServiceRegistry
}

type nodeKeys struct {
	name string
	ks   keystore.Keystore
}

// NewChain creates the nodes of the chain described by the configuration.
// With more than one development authority, one node is created per development key.
// Otherwise a single node authors with the configured key, read from the keystore
// directory with the password unless it names a development key.
func NewChain(cfg *config.Config, password []byte, c clock.Clock) (*Chain, error) {
	if cfg == nil {
		return nil, errNilConfig
	}
	if err := cfg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	keyType, err := crypto.ParseKeyType(cfg.Base.KeyType)
	if err != nil {
		return nil, err
	}

	keys, err := chainKeys(cfg, keyType, password)
	if err != nil {
		return nil, err
	}

	authorities := make([]types.Authority, len(keys))
	for i, k := range keys {
		pubs := k.ks.PublicKeys()
		if len(pubs) == 0 {
			return nil, fmt.Errorf("%w: node %s", errNoAuthorityKey, k.name)
		}
		authorities[i] = types.NewAuthority(pubs[0])
	}

	slotDuration := cfg.Aura.SlotDuration
	if slotDuration == 0 {
		slotDuration = config.DefaultSlotDuration
	}

	genesis, err := NewGenesis(authorities, slotDuration, keyType)
	if err != nil {
		return nil, err
	}

	chain := &Chain{
		Genesis:  genesis,
		hub:      network.NewHub(),
		services: services.NewServiceRegistry(logger),
	}
	for _, k := range keys {
		node, err := NewNode(cfg, k.name, genesis, k.ks, chain.hub, c)
		if err != nil {
			chain.close()
			return nil, fmt.Errorf("creating node %s: %w", k.name, err)
		}
		chain.Nodes = append(chain.Nodes, node)
	}

	if cfg.Metrics.Enabled {
		chain.services.RegisterService(metrics.NewServer(cfg.Metrics.Address))
	}
	if cfg.Pprof.Enabled {
		chain.services.RegisterService(pprof.NewService(pprof.Settings{
			ListeningAddress: cfg.Pprof.ListeningAddress,
			BlockProfileRate: cfg.Pprof.BlockProfileRate,
			MutexProfileRate: cfg.Pprof.MutexProfileRate,
		}, logger))
	}

	logger.Infof("created chain with genesis %s and %d authorities",
		genesis.Header.Hash(), len(authorities))
	return chain, nil
}

func chainKeys(cfg *config.Config, keyType crypto.KeyType, password []byte) ([]nodeKeys, error) {
	if cfg.Dev.Authorities == 1 {
		var (
			ks  keystore.Keystore
			err error
		)
		if isDevKeyName(cfg.Base.Key) {
			ks, err = newDevKeystore(cfg.Base.Key, keyType)
		} else {
			ks, err = loadKeystore(cfg.Base.BasePath, cfg.Base.Key, keyType, password)
		}
		if err != nil {
			return nil, err
		}
		return []nodeKeys{{name: cfg.Base.Name, ks: ks}}, nil
	}

	keys := make([]nodeKeys, cfg.Dev.Authorities)
	for i := range keys {
		devName := keystore.DevKeyNames[i]
		ks, err := newDevKeystore(devName, keyType)
		if err != nil {
			return nil, err
		}
		keys[i] = nodeKeys{
			name: fmt.Sprintf("%s-%s", cfg.Base.Name, devName),
			ks:   ks,
		}
	}
	return keys, nil
}

// close releases the state of nodes that were never run.
func (c *Chain) close() {
	for _, node := range c.Nodes {
		c.hub.Leave(node.Network.ID())
		if err := node.State.Stop(); err != nil {
			logger.Errorf("stopping state of node %s: %s", node.Name, err)
		}
	}
}

// Run runs all nodes and the auxiliary services until the context is cancelled
// or a node fails.
func (c *Chain) Run(ctx context.Context) (err error) {
	if err := c.services.StartAll(); err != nil {
		c.close()
		return err
	}
	defer func() {
		if stopErr := c.services.StopAll(); stopErr != nil && err == nil {
			err = stopErr
		}
	}()

	g, ctx := errgroup.WithContext(ctx)
	for _, node := range c.Nodes {
		node := node
		g.Go(func() error {
			if err := node.Run(ctx); err != nil {
				return fmt.Errorf("node %s: %w", node.Name, err)
			}
			return nil
		})
	}
	return g.Wait()
}
