// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package slots

// BackoffAuthoringBlocksStrategy decides whether to skip authoring in a slot.
type BackoffAuthoringBlocksStrategy interface {
	ShouldBackoff(chainHeadNumber uint, chainHeadSlot uint64,
		finalizedNumber uint, slotNow uint64) bool
}

// BackoffAuthoringOnFinalizedHeadLagging backs off authoring when finality
// lags behind the best block. The number of slots skipped grows with the
// unfinalized chain length, divided by the authoring bias and capped by
// the maximum interval.
type BackoffAuthoringOnFinalizedHeadLagging struct {
	// MaxInterval is the maximum number of slots to back off.
	MaxInterval uint
	// UnfinalizedSlack is the number of unfinalized blocks tolerated before backing off.
	UnfinalizedSlack uint
	// AuthoringBias divides the unfinalized length to give the back off interval.
	AuthoringBias uint
}

// DefaultBackoffAuthoringOnFinalizedHeadLagging returns the strategy with
// a maximum interval of 100 slots, a slack of 50 blocks and a bias of 2.
func DefaultBackoffAuthoringOnFinalizedHeadLagging() BackoffAuthoringOnFinalizedHeadLagging {
	return BackoffAuthoringOnFinalizedHeadLagging{
		MaxInterval:      100,
		UnfinalizedSlack: 50,
		AuthoringBias:    2,
	}
}

// ShouldBackoff returns true if authoring should be skipped for slotNow.
func (b BackoffAuthoringOnFinalizedHeadLagging) ShouldBackoff(chainHeadNumber uint,
	chainHeadSlot uint64, finalizedNumber uint, slotNow uint64) bool {
	if slotNow <= chainHeadSlot {
		return false
	}

	unfinalized := saturatingSub(chainHeadNumber, finalizedNumber)
	bias := b.AuthoringBias
	if bias == 0 {
		bias = 1
	}
	interval := saturatingSub(unfinalized, b.UnfinalizedSlack) / bias
	if interval > b.MaxInterval {
		interval = b.MaxInterval
	}

	// block numbers and slots are compared directly
	return slotNow <= chainHeadSlot+uint64(interval)
}

func saturatingSub(a, b uint) uint {
	if a < b {
		return 0
	}
	return a - b
}
