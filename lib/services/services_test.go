// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package services

import (
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type otherService struct{ *MockService }

func newQuietLogger(ctrl *gomock.Controller) *MockLogger {
	logger := NewMockLogger(ctrl)
	logger.EXPECT().Debug(gomock.Any()).AnyTimes()
	logger.EXPECT().Debugf(gomock.Any(), gomock.Any()).AnyTimes()
	logger.EXPECT().Infof(gomock.Any(), gomock.Any()).AnyTimes()
	return logger
}

func TestServiceRegistry_RegisterService(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	logger := NewMockLogger(ctrl)
	logger.EXPECT().Warnf("Tried to add service type %s that has already been seen", gomock.Any())

	r := NewServiceRegistry(logger)
	r.RegisterService(NewMockService(ctrl))
	r.RegisterService(NewMockService(ctrl))

	assert.Equal(t, 1, r.Len())
}

func TestServiceRegistry_StartStopAll(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	first := NewMockService(ctrl)
	second := otherService{NewMockService(ctrl)}
	gomock.InOrder(
		first.EXPECT().Start().Return(nil),
		second.EXPECT().Start().Return(nil),
		second.EXPECT().Stop().Return(nil),
		first.EXPECT().Stop().Return(nil),
	)

	r := NewServiceRegistry(newQuietLogger(ctrl))
	r.RegisterService(first)
	r.RegisterService(second)

	require.NoError(t, r.StartAll())
	require.NoError(t, r.StopAll())
	// stopped services are not stopped again
	require.NoError(t, r.StopAll())
}

func TestServiceRegistry_StartAll_failure(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	errStart := errors.New("start failed")
	errStop := errors.New("stop failed")

	first := NewMockService(ctrl)
	second := otherService{NewMockService(ctrl)}
	gomock.InOrder(
		first.EXPECT().Start().Return(nil),
		second.EXPECT().Start().Return(errStart),
		first.EXPECT().Stop().Return(errStop),
	)

	logger := newQuietLogger(ctrl)
	logger.EXPECT().Errorf("Error stopping service %s: %s", gomock.Any(), errStop)

	r := NewServiceRegistry(logger)
	r.RegisterService(first)
	r.RegisterService(second)

	err := r.StartAll()
	assert.ErrorIs(t, err, errStart)
	assert.ErrorIs(t, err, errStop)
}

func TestServiceRegistry_Get(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	logger := NewMockLogger(ctrl)
	logger.EXPECT().Warnf("expected a pointer but got %T", gomock.Any())

	r := NewServiceRegistry(logger)
	a := NewMockService(ctrl)
	r.RegisterService(a)

	assert.Equal(t, a, r.Get(a))
	assert.Nil(t, r.Get(struct{}{}))
}
