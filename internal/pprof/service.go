// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package pprof serves the Go runtime profiles over HTTP.
package pprof

import (
	"context"
	"errors"
	"runtime"
)

// ErrServerDoneBeforeReady is returned when the server exits before listening.
var ErrServerDoneBeforeReady = errors.New("server terminated before being ready")

var errServiceStopped = errors.New("pprof service is not running")

// Service runs the pprof http server and sets the runtime profile rates.
type Service struct {
	settings Settings
	server   Runner
	cancel   context.CancelFunc
	done     chan error
}

// NewService creates a pprof server service.
func NewService(settings Settings, logger Logger) *Service {
	settings.setDefaults()

	return &Service{
		settings: settings,
		server:   NewServer(settings.ListeningAddress, logger),
		done:     make(chan error),
	}
}

// Start starts the pprof server service.
func (s *Service) Start() (err error) {
	runtime.SetBlockProfileRate(s.settings.BlockProfileRate)
	runtime.SetMutexProfileFraction(s.settings.MutexProfileRate)

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	ready := make(chan struct{})

	go s.server.Run(ctx, ready, s.done)

	select {
	case <-ready:
		return nil
	case err := <-s.done:
		cancel()
		s.cancel = nil
		if err != nil {
			return err
		}
		return ErrServerDoneBeforeReady
	}
}

// Stop stops the pprof server service.
func (s *Service) Stop() (err error) {
	if s.cancel == nil {
		return errServiceStopped
	}
	s.cancel()
	s.cancel = nil
	return <-s.done
}
