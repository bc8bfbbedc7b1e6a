// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package state

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/ChainSafe/gossamer-aura/dot/types"
	"github.com/ChainSafe/gossamer-aura/internal/log"
	"github.com/ChainSafe/gossamer-aura/lib/crypto"
	"github.com/ChainSafe/gossamer-aura/lib/utils"

	"github.com/ChainSafe/chaindb"
	"github.com/benbjohnson/clock"
)

// Genesis describes the first block of the chain and its authorities.
type Genesis struct {
	Header       *types.Header
	Authorities  []types.Authority
	SlotDuration time.Duration
	KeyType      crypto.KeyType
}

// Service is the struct that holds the block, authority, aux and offence states
type Service struct {
	dbPath        string
	isMemDB       bool
	finalityDepth uint
	clock         clock.Clock
	db            chaindb.Database

	Base      *BaseState
	Block     *BlockState
	Authority *AuthorityState
	Aux       *AuxState
	Offence   *OffenceState
}

// Config is the default configuration used by state service.
type Config struct {
	Path          string
	LogLevel      log.Level
	InMemory      bool
	FinalityDepth uint
	// Clock sets block arrival times, it defaults to the system clock.
	Clock clock.Clock
}

// NewService create a new instance of Service
func NewService(config Config) *Service {
	logger.Patch(log.SetLevel(config.LogLevel))

	c := config.Clock
	if c == nil {
		c = clock.New()
	}

	return &Service{
		dbPath:        config.Path,
		isMemDB:       config.InMemory,
		finalityDepth: config.FinalityDepth,
		clock:         c,
	}
}

// DB returns the Service's database
func (s *Service) DB() chaindb.Database {
	return s.db
}

// Start opens the database and creates the states for the genesis.
func (s *Service) Start(genesis Genesis) error {
	if s.db != nil {
		return nil
	}
	if genesis.Header == nil {
		return errNilGenesis
	}

	basepath, err := filepath.Abs(s.dbPath)
	if err != nil {
		return err
	}

	db, err := utils.SetupDatabase(basepath, s.isMemDB)
	if err != nil {
		return fmt.Errorf("setting up database: %w", err)
	}

	if err := s.start(db, genesis); err != nil {
		_ = db.Close()
		return err
	}

	logger.Infof("created state service with genesis hash %s and %d authorities",
		s.Block.GenesisHash(), len(genesis.Authorities))
	return nil
}

func (s *Service) start(db chaindb.Database, genesis Genesis) error {
	base := NewBaseState(db)
	if err := base.checkGenesis(genesis.Header.Hash()); err != nil {
		return err
	}

	block, err := NewBlockState(genesis.Header, s.finalityDepth, s.clock)
	if err != nil {
		return fmt.Errorf("failed to create block state: %w", err)
	}

	authority := NewAuthorityState(db, block, genesis.KeyType)
	if err := authority.StoreGenesisAuthorities(genesis.Authorities, genesis.SlotDuration); err != nil {
		return fmt.Errorf("failed to store genesis authorities: %w", err)
	}

	s.db = db
	s.Base = base
	s.Block = block
	s.Authority = authority
	s.Aux = NewAuxState(db)
	s.Offence = NewOffenceState(db)
	return nil
}

// Stop closes the database.
func (s *Service) Stop() error {
	if s.db == nil {
		return errNotInitialised
	}

	if err := s.db.Close(); err != nil {
		return fmt.Errorf("closing database: %w", err)
	}
	s.db = nil
	return nil
}
