// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package dot

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/ChainSafe/gossamer-aura/config"
	"github.com/ChainSafe/gossamer-aura/dot/core"
	"github.com/ChainSafe/gossamer-aura/dot/network"
	"github.com/ChainSafe/gossamer-aura/dot/state"
	"github.com/ChainSafe/gossamer-aura/lib/aura"
	"github.com/ChainSafe/gossamer-aura/lib/keystore"
	"github.com/ChainSafe/gossamer-aura/lib/slots"

	"github.com/benbjohnson/clock"
	"golang.org/x/sync/errgroup"
)

// Node is an Aura authority node: its chain state, import pipeline,
// network service and authoring worker.
type Node struct {
	Name    string
	State   *state.Service
	Gate    *aura.ImportGate
	Network *network.Service
	Worker  *aura.Worker

	hub *network.Hub

	mutex   sync.Mutex
	running bool
}

// NewNode creates the services of a node and opens its state under the base path.
// The clock defaults to the system clock.
func NewNode(cfg *config.Config, name string, genesis state.Genesis, ks keystore.Keystore,
	hub *network.Hub, c clock.Clock) (node *Node, err error) {
	switch {
	case cfg == nil:
		return nil, errNilConfig
	case ks == nil:
		return nil, errNilKeystore
	case hub == nil:
		return nil, errNilHub
	}
	if ks.Size() == 0 {
		return nil, fmt.Errorf("%w: node %s", errNoAuthorityKey, name)
	}
	if c == nil {
		c = clock.New()
	}

	stateSrvc := state.NewService(state.Config{
		Path:          filepath.Join(cfg.Base.BasePath, name),
		LogLevel:      cfg.LogLevel(cfg.Log.State),
		InMemory:      cfg.Base.InMemory,
		FinalityDepth: cfg.Aura.FinalityDepth,
		Clock:         c,
	})
	if err := stateSrvc.Start(genesis); err != nil {
		return nil, fmt.Errorf("starting state service: %w", err)
	}
	defer func() {
		if err != nil {
			if stopErr := stateSrvc.Stop(); stopErr != nil {
				logger.Errorf("stopping state service: %s", stopErr)
			}
		}
	}()

	slotClock, err := slots.NewClock(c, cfg.Aura.GenesisTimestamp(), genesis.SlotDuration,
		cfg.Aura.ClockLeadTolerance, cfg.Aura.ClockLagTolerance)
	if err != nil {
		return nil, fmt.Errorf("creating slot clock: %w", err)
	}

	resolver, err := aura.NewCachingResolver(stateSrvc.Authority, cfg.Aura.AuthorityCacheSize)
	if err != nil {
		return nil, fmt.Errorf("creating authority resolver: %w", err)
	}

	verifier, err := aura.NewVerifier(aura.VerifierConfig{
		Resolver: resolver,
		Clock:    slotClock,
		Registry: aura.NewEquivocationRegistry(cfg.Aura.EquivocationWindow),
		Reporter: stateSrvc.Offence,
	})
	if err != nil {
		return nil, fmt.Errorf("creating verifier: %w", err)
	}

	importer, err := core.NewBlockImportHandler(stateSrvc.Block)
	if err != nil {
		return nil, fmt.Errorf("creating block import handler: %w", err)
	}

	gate, err := aura.NewImportGate(aura.ImportGateConfig{
		Verifier:    verifier,
		Headers:     stateSrvc.Block,
		Importer:    importer,
		MaxDeferred: cfg.Aura.MaxDeferredBlocks,
	})
	if err != nil {
		return nil, fmt.Errorf("creating import gate: %w", err)
	}

	proposing, err := cfg.Aura.ProposingParams()
	if err != nil {
		return nil, fmt.Errorf("reading proposing parameters: %w", err)
	}

	net, err := hub.Join(network.PeerID(name), gate)
	if err != nil {
		return nil, fmt.Errorf("joining network: %w", err)
	}
	defer func() {
		if err != nil {
			hub.Leave(net.ID())
		}
	}()

	worker, err := aura.NewWorker(aura.WorkerConfig{
		LogLvl:         cfg.LogLevel(cfg.Log.Aura),
		Clock:          slotClock,
		ChainHead:      stateSrvc.Block,
		Resolver:       resolver,
		Keystore:       ks,
		Builder:        core.NewBlockBuilder(c),
		Gate:           gate,
		Announcer:      net,
		AuxStore:       stateSrvc.Aux,
		SyncOracle:     net,
		Finality:       stateSrvc.Block,
		Backoff:        cfg.Aura.BackoffStrategy(),
		ForceAuthoring: cfg.Aura.ForceAuthoring,
		Proposing:      proposing,
	})
	if err != nil {
		return nil, fmt.Errorf("creating authoring worker: %w", err)
	}

	logger.Infof("created node %s with %d authority keys", name, ks.Size())

	return &Node{
		Name:    name,
		State:   stateSrvc,
		Gate:    gate,
		Network: net,
		Worker:  worker,
		hub:     hub,
	}, nil
}

// Run runs the node services until the context is cancelled or one of them fails,
// then leaves the network and closes the state.
func (n *Node) Run(ctx context.Context) (err error) {
	n.mutex.Lock()
	if n.running {
		n.mutex.Unlock()
		return errNodeRunning
	}
	n.running = true
	n.mutex.Unlock()

	defer func() {
		n.hub.Leave(n.Network.ID())
		if stopErr := n.State.Stop(); stopErr != nil && err == nil {
			err = fmt.Errorf("stopping state service: %w", stopErr)
		}
		logger.Infof("node %s stopped", n.Name)
	}()

	logger.Infof("node %s running", n.Name)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := n.Network.Run(ctx); err != nil {
			return fmt.Errorf("network: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		if err := n.Gate.Run(ctx); err != nil {
			return fmt.Errorf("import gate: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		if err := n.Worker.Run(ctx); err != nil {
			return fmt.Errorf("authoring worker: %w", err)
		}
		return nil
	})
	return g.Wait()
}
