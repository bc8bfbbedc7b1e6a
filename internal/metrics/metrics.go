// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package metrics serves the Prometheus metrics of the node over HTTP.
package metrics

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/ChainSafe/gossamer-aura/internal/httpserver"
	"github.com/ChainSafe/gossamer-aura/internal/log"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// DefaultAddress is the default listening address of the metrics server.
const DefaultAddress = "localhost:9876"

var logger log.LeveledLogger = log.NewFromGlobal(log.AddContext("pkg", "metrics"))

var errServerStopped = errors.New("metrics server is not running")

// Server is a metrics http server
type Server struct {
	cancel context.CancelFunc
	server *httpserver.Server
	done   chan error
}

// NewServer is a constructor for metrics server
func NewServer(address string) (s *Server) {
	m := http.NewServeMux()
	m.Handle("/metrics", promhttp.Handler())
	return &Server{
		server: httpserver.New("metrics", address, m, logger),
	}
}

// Address returns the address the server listens on, once started.
func (s *Server) Address() string {
	return s.server.GetAddress()
}

// Start will start a dedicated metrics server.
func (s *Server) Start() (err error) {
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	ready := make(chan struct{})
	s.done = make(chan error)

	go s.server.Run(ctx, ready, s.done)

	select {
	case <-ready:
		logger.Infof("serving metrics at http://%s/metrics", s.server.GetAddress())
		return nil
	case err := <-s.done:
		close(s.done)
		s.cancel = nil
		if err != nil {
			return err
		}
		return fmt.Errorf("metrics server exited unexpectedly")
	}
}

// Stop will stop the metrics server
func (s *Server) Stop() (err error) {
	if s.cancel == nil {
		return errServerStopped
	}

	s.cancel()
	s.cancel = nil
	select {
	case err := <-s.done:
		close(s.done)
		return err
	case <-time.NewTimer(30 * time.Second).C:
		return fmt.Errorf("metrics server exit timeout")
	}
}
