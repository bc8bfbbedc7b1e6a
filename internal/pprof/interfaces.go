// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package pprof

import (
	"context"

	"github.com/ChainSafe/gossamer-aura/internal/httpserver"
)

// Runner runs a server until the context is cancelled.
type Runner interface {
	Run(ctx context.Context, ready chan<- struct{}, done chan<- error)
}

// Logger is the logger used by the pprof http server.
type Logger = httpserver.Logger
