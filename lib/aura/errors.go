// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package aura

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrInvalidAuthoritySet is returned for an empty authority set or one with duplicate keys
	ErrInvalidAuthoritySet = errors.New("invalid authority set")

	// ErrResolution is returned when the authority set cannot be resolved at a chain position
	ErrResolution = errors.New("cannot resolve authority set")

	// ErrTooFarInFuture is returned when a block claims a slot starting too far ahead of the local clock
	ErrTooFarInFuture = errors.New("block slot is too far in the future")

	// ErrBadSeal is returned when the seal is missing, malformed or not signed by the slot author
	ErrBadSeal = errors.New("bad seal")

	// ErrSlotNotIncreasing is returned when a block slot is not greater than its parent slot
	ErrSlotNotIncreasing = errors.New("slot is not greater than parent slot")

	// ErrMissingPreDigest is returned when a block carries no well-formed aura pre-runtime digest
	ErrMissingPreDigest = errors.New("missing aura pre-runtime digest")

	// ErrNotOurSlot is returned when the local node is not the author of the slot
	ErrNotOurSlot = errors.New("not our slot")

	// ErrDeadlineExceeded is returned when proposing overruns the slot deadline
	ErrDeadlineExceeded = errors.New("proposal deadline exceeded")

	// ErrCannotSign is returned when the keystore fails to produce a seal signature
	ErrCannotSign = errors.New("cannot sign block")

	// ErrUnknownParent is returned when importing a block whose parent header is unknown
	ErrUnknownParent = errors.New("unknown parent block")

	// ErrParentDeferred is returned when importing a block whose parent is waiting in the deferred queue
	ErrParentDeferred = errors.New("parent block is deferred")

	// ErrDeferredQueueFull is returned when a soft failed block cannot be deferred
	ErrDeferredQueueFull = errors.New("deferred block queue is full")

	errNilBlock            = errors.New("block is nil")
	errNilParentHeader     = errors.New("parent header is nil")
	errLaggingSlot         = errors.New("current slot is smaller than slot of best block")
	errSlotLagging         = errors.New("slot started too long ago")
	errAlreadyAuthored     = errors.New("already authored a block in this slot")
	errSlotDurationChanged = errors.New("slot duration changed")
	errMajorSyncing        = errors.New("major syncing")
	errOffline             = errors.New("offline")
	errBackoff             = errors.New("backing off authoring")
	errWrongPreDigest      = errors.New("proposal does not carry the claimed pre-runtime digest")
	errServiceStopped      = errors.New("service stopped")
	errServiceStarted      = errors.New("service already started")
	errInvalidSignature    = errors.New("invalid signature length")
)

// FutureSlotError is returned for a block claiming a slot too far in the future.
// It carries the time to wait before the block may be retried.
type FutureSlotError struct {
	Slot uint64
	Wait time.Duration
}

func (e *FutureSlotError) Error() string {
	return fmt.Sprintf("%s: slot %d, retry in %s", ErrTooFarInFuture, e.Slot, e.Wait)
}

// Unwrap returns ErrTooFarInFuture.
func (*FutureSlotError) Unwrap() error {
	return ErrTooFarInFuture
}

// IsRetryable returns true if the error is a soft failure, for which the same
// block may be accepted later.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrTooFarInFuture) || errors.Is(err, ErrResolution) ||
		errors.Is(err, ErrParentDeferred)
}
