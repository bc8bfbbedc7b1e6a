// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package state holds the development chain state of an Aura node: the block
// tree, the authority oracle and the auxiliary and offence stores.
package state

import (
	"errors"

	"github.com/ChainSafe/gossamer-aura/internal/log"
)

var logger = log.NewFromGlobal(
	log.AddContext("pkg", "state"),
)

var (
	// ErrBlockNotFound is returned when a block is not known to the block state.
	ErrBlockNotFound = errors.New("block not found")
	// ErrGenesisMismatch is returned when the database was created for another chain.
	ErrGenesisMismatch = errors.New("database genesis does not match chain genesis")

	errNilGenesis     = errors.New("genesis header is nil")
	errNotInitialised = errors.New("state service is not started")
)
