// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package dot composes the services of an Aura node and runs them.
package dot

import (
	"errors"

	"github.com/ChainSafe/gossamer-aura/internal/log"
)

var logger = log.NewFromGlobal(
	log.AddContext("pkg", "dot"),
)

var (
	errNilConfig       = errors.New("config is nil")
	errNilKeystore     = errors.New("keystore is nil")
	errNilHub          = errors.New("network hub is nil")
	errNoAuthorityKey  = errors.New("no authority key found")
	errNodeRunning     = errors.New("node is already running")
	errNoKeyInKeystore = errors.New("key not found in keystore directory")
)
