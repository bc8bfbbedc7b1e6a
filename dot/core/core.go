// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package core builds blocks for the local authority and imports verified
// blocks into the chain state.
package core

import (
	"errors"

	"github.com/ChainSafe/gossamer-aura/internal/log"
)

var logger = log.NewFromGlobal(
	log.AddContext("pkg", "core"),
)

var (
	// ErrNilBlockState is returned when the block state is not set.
	ErrNilBlockState = errors.New("cannot have nil BlockState")
	// ErrNilBlockHandlerParameter is returned when importing a nil block.
	ErrNilBlockHandlerParameter = errors.New("unable to handle block due to nil parameter")
	// ErrInvalidExtrinsicsRoot is returned when the header does not commit to the block body.
	ErrInvalidExtrinsicsRoot = errors.New("extrinsics root does not match block body")
	// ErrInvalidStateRoot is returned when the header state root does not follow from its parent.
	ErrInvalidStateRoot = errors.New("state root does not match state transition")
	// ErrMissingTimestamp is returned when the block body does not start with a timestamp inherent.
	ErrMissingTimestamp = errors.New("block has no timestamp inherent")

	errNilParent = errors.New("parent header is nil")
)
