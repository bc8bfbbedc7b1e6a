// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package services starts and stops a set of services together.
package services

import (
	"errors"
	"fmt"
	"reflect"
)

//go:generate mockgen -destination=mocks_test.go -package=$GOPACKAGE . Service,Logger

// Service must be implemented by all Services
type Service interface {
	Start() error
	Stop() error
}

// ServiceRegistry is a structure to manage auxiliary services
type ServiceRegistry struct {
	services     map[reflect.Type]Service
	serviceTypes []reflect.Type
	started      int
	logger       Logger
}

// NewServiceRegistry creates an empty registry
func NewServiceRegistry(logger Logger) *ServiceRegistry {
	return &ServiceRegistry{
		services: make(map[reflect.Type]Service),
		logger:   logger,
	}
}

// RegisterService stores a new service in the registry.
// A service of an already registered type is ignored.
func (s *ServiceRegistry) RegisterService(service Service) {
	kind := reflect.TypeOf(service)
	if _, exists := s.services[kind]; exists {
		s.logger.Warnf("Tried to add service type %s that has already been seen", kind)
		return
	}
	s.services[kind] = service
	s.serviceTypes = append(s.serviceTypes, kind)
}

// Len returns the number of registered services.
func (s *ServiceRegistry) Len() int {
	return len(s.serviceTypes)
}

// StartAll starts the services in registration order. If a service fails
// to start, the services already started are stopped in reverse order.
func (s *ServiceRegistry) StartAll() error {
	s.logger.Infof("Starting Services: %v", s.serviceTypes)
	for _, typ := range s.serviceTypes {
		s.logger.Debugf("Starting service %s", typ)
		if err := s.services[typ].Start(); err != nil {
			stopErr := s.StopAll()
			return errors.Join(fmt.Errorf("cannot start service %s: %w", typ, err), stopErr)
		}
		s.started++
	}
	s.logger.Debug("All Services started.")
	return nil
}

// StopAll stops the started services in reverse order and returns their errors.
func (s *ServiceRegistry) StopAll() error {
	var errs []error
	for ; s.started > 0; s.started-- {
		typ := s.serviceTypes[s.started-1]
		s.logger.Debugf("Stopping service %s", typ)
		if err := s.services[typ].Stop(); err != nil {
			s.logger.Errorf("Error stopping service %s: %s", typ, err)
			errs = append(errs, fmt.Errorf("stopping service %s: %w", typ, err))
		}
	}
	return errors.Join(errs...)
}

// Get retrieves the registered service of the same type as srvc.
func (s *ServiceRegistry) Get(srvc interface{}) Service {
	if reflect.TypeOf(srvc).Kind() != reflect.Ptr {
		s.logger.Warnf("expected a pointer but got %T", srvc)
		return nil
	}
	e := reflect.ValueOf(srvc)

	if s, ok := s.services[e.Type()]; ok {
		return s
	}
	s.logger.Warnf("unknown service type %T", srvc)
	return nil
}
