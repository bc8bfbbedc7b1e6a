// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package slots

import (
	"context"
	"sync"
	"time"

	"github.com/ChainSafe/gossamer-aura/internal/log"
)

var logger = log.NewFromGlobal(log.AddContext("pkg", "slots"))

// Slots is a lazy stream of slot boundaries.
// It never yields the same or an older slot twice.
type Slots struct {
	mutex    sync.Mutex
	clock    *Clock
	lastSlot uint64
}

// NewSlots returns a slot stream driven by the clock. The first
// slot yielded is the one following the current slot.
func NewSlots(clock *Clock) *Slots {
	return &Slots{
		clock:    clock,
		lastSlot: clock.CurrentSlot(),
	}
}

// Clock returns the clock currently driving the stream.
func (s *Slots) Clock() *Clock {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.clock
}

// SetClock switches the clock for the following boundaries, for example
// when the slot duration changes. The next slot yielded starts after the
// start of the last yielded one.
func (s *Slots) SetClock(clock *Clock) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.lastSlot = clock.SlotAt(s.clock.SlotStart(s.lastSlot))
	s.clock = clock
}

// SetDuration switches to a clock with the same genesis and tolerances
// but the given slot duration.
func (s *Slots) SetDuration(duration time.Duration) error {
	clock, err := s.Clock().WithDuration(duration)
	if err != nil {
		return err
	}
	s.SetClock(clock)
	return nil
}

// Reset restarts the stream: the next call waits for the next boundary.
func (s *Slots) Reset() {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.lastSlot = s.clock.CurrentSlot()
}

// Next waits until the start of a slot newer than the last yielded one and
// returns it. If the consumer fell behind, intermediate slots are skipped.
func (s *Slots) Next(ctx context.Context) (SlotInfo, error) {
	for {
		s.mutex.Lock()
		clock := s.clock
		current := clock.CurrentSlot()
		if current > s.lastSlot {
			if skipped := current - s.lastSlot - 1; skipped > 0 {
				logger.Debugf("skipped %d slots, now at slot %d", skipped, current)
			}
			s.lastSlot = current
			s.mutex.Unlock()
			return clock.SlotInfo(current), nil
		}
		wait := clock.UntilSlot(s.lastSlot + 1)
		s.mutex.Unlock()

		timer := clock.Timer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return SlotInfo{}, ctx.Err()
		case <-timer.C:
		}
	}
}
