// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package slots

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// DefaultBlockProposalSlotPortion is the default fraction of a slot given to proposing.
const DefaultBlockProposalSlotPortion = 2.0 / 3.0

const (
	exponentialBackoffStep = 2
	exponentialBackoffCap  = 7
	linearBackoffCap       = 20
)

// ErrUnknownLenience is returned by ParseLenience for an unknown lenience name.
var ErrUnknownLenience = errors.New("unknown slot lenience")

// Lenience is how the proposing time grows when slots were skipped since the parent.
type Lenience uint8

const (
	// LenienceNone never extends the proposing time.
	LenienceNone Lenience = iota
	// LenienceLinear extends by one slot duration per skipped slot, up to 20.
	LenienceLinear
	// LenienceExponential doubles the extension every two skipped slots, up to 2^7.
	LenienceExponential
)

func (l Lenience) String() string {
	switch l {
	case LenienceNone:
		return "none"
	case LenienceLinear:
		return "linear"
	case LenienceExponential:
		return "exponential"
	default:
		return "unknown"
	}
}

// ParseLenience parses a lenience name.
func ParseLenience(s string) (Lenience, error) {
	switch strings.ToLower(s) {
	case "", LenienceNone.String():
		return LenienceNone, nil
	case LenienceLinear.String():
		return LenienceLinear, nil
	case LenienceExponential.String():
		return LenienceExponential, nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnknownLenience, s)
	}
}

// ProposingParams configures the time given to block proposal within a slot.
type ProposingParams struct {
	// SlotPortion is the fraction of the slot given to proposing, in (0, 1].
	SlotPortion float64
	// MaxSlotPortion caps the lenient proposing time, as a fraction of the slot.
	// Zero means no cap besides the slot end.
	MaxSlotPortion float64
	Lenience       Lenience
}

// ProposingRemainingDuration returns the time the proposer may use for the slot,
// given the slot of the best block. It is never past the end of the slot.
func ProposingRemainingDuration(params ProposingParams, parentSlot uint64,
	parentIsGenesis bool, info SlotInfo, now time.Time) time.Duration {
	slotRemaining := info.Remaining(now)
	proposing := scale(info.Duration, params.SlotPortion)
	if slotRemaining < proposing {
		proposing = slotRemaining
	}

	if parentIsGenesis {
		return proposing
	}

	lenience, ok := slotLenience(params.Lenience, parentSlot, info)
	if !ok {
		return proposing
	}

	lenient := proposing + scale(lenience, params.SlotPortion)
	if params.MaxSlotPortion > 0 {
		if maxLenient := scale(info.Duration, params.MaxSlotPortion); lenient > maxLenient {
			lenient = maxLenient
		}
	}
	if lenient > slotRemaining {
		lenient = slotRemaining
	}
	if lenient < proposing {
		return proposing
	}
	return lenient
}

func slotLenience(lenience Lenience, parentSlot uint64, info SlotInfo) (time.Duration, bool) {
	var skipped uint64
	if info.Slot > parentSlot+1 {
		skipped = info.Slot - parentSlot - 1
	}
	if skipped == 0 {
		return 0, false
	}

	switch lenience {
	case LenienceExponential:
		exponent := skipped / exponentialBackoffStep
		if exponent > exponentialBackoffCap {
			exponent = exponentialBackoffCap
		}
		return info.Duration * time.Duration(uint64(1)<<exponent), true
	case LenienceLinear:
		if skipped > linearBackoffCap {
			skipped = linearBackoffCap
		}
		return info.Duration * time.Duration(skipped), true
	default:
		return 0, false
	}
}

func scale(d time.Duration, portion float64) time.Duration {
	return time.Duration(float64(d) * portion)
}
