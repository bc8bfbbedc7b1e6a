// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package slots

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/benbjohnson/clock"
)

// ErrInvalidSlotDuration is returned when creating a clock with a non positive slot duration.
var ErrInvalidSlotDuration = errors.New("slot duration must be positive")

// SlotInfo describes a slot boundary.
type SlotInfo struct {
	Slot     uint64
	Start    time.Time
	End      time.Time
	Duration time.Duration
}

// Remaining returns the time left in the slot at the given time.
func (s SlotInfo) Remaining(now time.Time) time.Duration {
	if now.After(s.End) {
		return 0
	}
	return s.End.Sub(now)
}

// Clock maps wall clock time to slots of a fixed duration counted
// from the genesis time.
type Clock struct {
	clock    clock.Clock
	genesis  time.Time
	duration time.Duration
	maxLead  time.Duration
	maxLag   time.Duration
}

// NewClock creates a slot clock. The clock defaults to the system clock when nil.
// maxLead bounds how far in the future the start of a claimed slot may be,
// maxLag bounds how late after a slot start authoring may begin, zero disables it.
func NewClock(c clock.Clock, genesis time.Time, duration, maxLead, maxLag time.Duration) (*Clock, error) {
	if duration <= 0 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidSlotDuration, duration)
	}
	if c == nil {
		c = clock.New()
	}
	return &Clock{
		clock:    c,
		genesis:  genesis,
		duration: duration,
		maxLead:  maxLead,
		maxLag:   maxLag,
	}, nil
}

// WithDuration returns a copy of the clock using another slot duration.
func (c *Clock) WithDuration(duration time.Duration) (*Clock, error) {
	return NewClock(c.clock, c.genesis, duration, c.maxLead, c.maxLag)
}

// Now returns the current time of the underlying clock.
func (c *Clock) Now() time.Time {
	return c.clock.Now()
}

// Duration returns the slot duration.
func (c *Clock) Duration() time.Duration {
	return c.duration
}

// MaxLead returns the tolerated lead of a claimed slot over the local clock.
func (c *Clock) MaxLead() time.Duration {
	return c.maxLead
}

// SlotAt returns the slot containing the given time.
// Times before genesis map to slot 0.
func (c *Clock) SlotAt(t time.Time) uint64 {
	if t.Before(c.genesis) {
		return 0
	}
	return uint64(t.Sub(c.genesis) / c.duration)
}

// CurrentSlot returns the slot containing the current time.
func (c *Clock) CurrentSlot() uint64 {
	return c.SlotAt(c.Now())
}

// MaxSlot returns the last slot whose start is representable as a duration
// after genesis.
func (c *Clock) MaxSlot() uint64 {
	return uint64(math.MaxInt64 / c.duration)
}

// SlotStart returns the start time of the slot.
// Slots after MaxSlot start at the start of MaxSlot.
func (c *Clock) SlotStart(slot uint64) time.Time {
	if maxSlot := c.MaxSlot(); slot > maxSlot {
		slot = maxSlot
	}
	return c.genesis.Add(time.Duration(slot) * c.duration)
}

// SlotEnd returns the end time of the slot, which is the start of the next one.
func (c *Clock) SlotEnd(slot uint64) time.Time {
	return c.SlotStart(slot).Add(c.duration)
}

// SlotInfo returns the boundaries of the slot.
func (c *Clock) SlotInfo(slot uint64) SlotInfo {
	start := c.SlotStart(slot)
	return SlotInfo{
		Slot:     slot,
		Start:    start,
		End:      start.Add(c.duration),
		Duration: c.duration,
	}
}

// UntilSlot returns the time left until the slot starts, zero if it already started.
func (c *Clock) UntilSlot(slot uint64) time.Duration {
	until := c.SlotStart(slot).Sub(c.Now())
	if until < 0 {
		return 0
	}
	return until
}

// UntilNextSlot returns the time left until the next slot starts.
func (c *Clock) UntilNextSlot() time.Duration {
	return c.UntilSlot(c.CurrentSlot() + 1)
}

// IsTooFarInFuture reports whether the slot starts more than the maximum lead
// after now. If so, wait is the time after which the slot becomes acceptable.
// The comparison is made in slots so that any slot number is handled.
func (c *Clock) IsTooFarInFuture(slot uint64) (tooFar bool, wait time.Duration) {
	limit := c.Now().Add(c.maxLead)
	if !limit.Before(c.genesis) && slot <= c.SlotAt(limit) {
		return false, 0
	}
	return true, c.SlotStart(slot).Sub(limit)
}

// IsLagging reports whether the slot started more than the maximum lag ago.
// It is always false when no maximum lag is set.
func (c *Clock) IsLagging(slot uint64) bool {
	if c.maxLag == 0 {
		return false
	}
	return c.Now().Sub(c.SlotStart(slot)) > c.maxLag
}

// WithDeadline returns a context cancelled at the deadline according to the clock.
func (c *Clock) WithDeadline(parent context.Context, deadline time.Time) (context.Context, context.CancelFunc) {
	return c.clock.WithDeadline(parent, deadline)
}

// Timer creates a timer on the underlying clock.
func (c *Clock) Timer(d time.Duration) *clock.Timer {
	return c.clock.Timer(d)
}
