// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package aura

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ChainSafe/gossamer-aura/dot/types"
	"github.com/ChainSafe/gossamer-aura/internal/log"
	"github.com/ChainSafe/gossamer-aura/lib/slots"
)

// State is the authoring state of the worker.
type State uint32

const (
	// Idle means the worker is not running or between slot cycles.
	Idle State = iota
	// AwaitingSlot means the worker waits for the next slot boundary.
	AwaitingSlot
	// Claiming means the worker checks whether it owns the slot.
	Claiming
	// Building means the block builder is assembling a proposal.
	Building
	// Sealing means the proposal is being signed.
	Sealing
	// Announcing means the sealed block is being imported and announced.
	Announcing
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case AwaitingSlot:
		return "awaiting slot"
	case Claiming:
		return "claiming"
	case Building:
		return "building"
	case Sealing:
		return "sealing"
	case Announcing:
		return "announcing"
	default:
		return fmt.Sprintf("unknown state %d", uint32(s))
	}
}

// WorkerConfig is the configuration of the authoring worker.
type WorkerConfig struct {
	LogLvl    log.Level
	Clock     *slots.Clock
	ChainHead ChainHead
	Resolver  AuthorityResolver
	Keystore  Keystore
	Builder   BlockBuilder
	Gate      *ImportGate

	// Optional collaborators.
	Announcer  Announcer
	AuxStore   AuxStore
	SyncOracle SyncOracle
	Finality   FinalityOracle
	Backoff    slots.BackoffAuthoringBlocksStrategy

	ForceAuthoring bool
	Proposing      slots.ProposingParams
}

// Worker authors a block in every slot owned by a local authority key.
type Worker struct {
	clock     *slots.Clock
	slots     *slots.Slots
	chainHead ChainHead
	resolver  AuthorityResolver
	keystore  Keystore
	builder   BlockBuilder
	gate      *ImportGate
	registry  *EquivocationRegistry

	announcer  Announcer
	auxStore   AuxStore
	syncOracle SyncOracle
	finality   FinalityOracle
	backoff    slots.BackoffAuthoringBlocksStrategy

	forceAuthoring bool
	proposing      slots.ProposingParams

	state uint32

	startStop sync.Mutex
	cancel    context.CancelFunc
	done      chan struct{}
}

// NewWorker returns an authoring worker.
func NewWorker(cfg WorkerConfig) (*Worker, error) {
	switch {
	case cfg.Clock == nil:
		return nil, errors.New("slot clock is nil")
	case cfg.ChainHead == nil:
		return nil, errors.New("chain head is nil")
	case cfg.Resolver == nil:
		return nil, errors.New("authority resolver is nil")
	case cfg.Keystore == nil:
		return nil, errors.New("keystore is nil")
	case cfg.Builder == nil:
		return nil, errors.New("block builder is nil")
	case cfg.Gate == nil:
		return nil, errors.New("import gate is nil")
	}

	logger.Patch(log.SetLevel(cfg.LogLvl))

	proposing := cfg.Proposing
	if proposing.SlotPortion <= 0 {
		proposing.SlotPortion = slots.DefaultBlockProposalSlotPortion
	}

	return &Worker{
		clock:          cfg.Clock,
		slots:          slots.NewSlots(cfg.Clock),
		chainHead:      cfg.ChainHead,
		resolver:       cfg.Resolver,
		keystore:       cfg.Keystore,
		builder:        cfg.Builder,
		gate:           cfg.Gate,
		registry:       cfg.Gate.verifier.registry,
		announcer:      cfg.Announcer,
		auxStore:       cfg.AuxStore,
		syncOracle:     cfg.SyncOracle,
		finality:       cfg.Finality,
		backoff:        cfg.Backoff,
		forceAuthoring: cfg.ForceAuthoring,
		proposing:      proposing,
	}, nil
}

// State returns the current authoring state.
func (w *Worker) State() State {
	return State(atomic.LoadUint32(&w.state))
}

func (w *Worker) setState(state State) {
	atomic.StoreUint32(&w.state, uint32(state))
}

// Start runs the authoring loop in a goroutine.
func (w *Worker) Start() error {
	w.startStop.Lock()
	defer w.startStop.Unlock()

	if w.cancel != nil {
		return errServiceStarted
	}

	ctx, cancel := context.WithCancel(context.Background())
	w.cancel = cancel
	w.done = make(chan struct{})

	go func() {
		defer close(w.done)
		if err := w.Run(ctx); err != nil {
			logger.Errorf("authoring loop stopped: %s", err)
		}
	}()

	logger.Info("authoring started")
	return nil
}

// Stop cancels the authoring loop, aborting any block in progress, and waits for it to exit.
func (w *Worker) Stop() error {
	w.startStop.Lock()
	defer w.startStop.Unlock()

	if w.cancel == nil {
		return errServiceStopped
	}

	w.cancel()
	<-w.done
	w.cancel = nil
	logger.Info("authoring stopped")
	return nil
}

// Run handles slot boundaries one at a time until the context is cancelled.
func (w *Worker) Run(ctx context.Context) error {
	defer w.setState(Idle)
	w.slots.Reset()

	for {
		w.setState(AwaitingSlot)
		info, err := w.slots.Next(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}

		slotsCounter.Inc()
		currentSlotGauge.Set(float64(info.Slot))

		_, err = w.onSlot(ctx, info)
		w.setState(Idle)
		if err != nil {
			w.logSkip(info.Slot, err)
		}
	}
}

func (w *Worker) logSkip(slot uint64, err error) {
	reason := skipReason(err)
	skipsCounter.WithLabelValues(reason).Inc()

	switch reason {
	case "not_our_slot", "cancelled":
		logger.Tracef("not authoring in slot %d: %s", slot, err)
	case "major_syncing", "offline", "backoff", "lagging", "already_authored", "slot_duration_changed":
		logger.Debugf("skipping slot %d: %s", slot, err)
	default:
		logger.Warnf("failed to author block in slot %d: %s", slot, err)
	}
}

func skipReason(err error) string {
	switch {
	case errors.Is(err, ErrNotOurSlot):
		return "not_our_slot"
	case errors.Is(err, context.Canceled):
		return "cancelled"
	case errors.Is(err, errMajorSyncing):
		return "major_syncing"
	case errors.Is(err, errOffline):
		return "offline"
	case errors.Is(err, errBackoff):
		return "backoff"
	case errors.Is(err, errLaggingSlot), errors.Is(err, errSlotLagging):
		return "lagging"
	case errors.Is(err, errAlreadyAuthored):
		return "already_authored"
	case errors.Is(err, errSlotDurationChanged):
		return "slot_duration_changed"
	case errors.Is(err, ErrDeadlineExceeded):
		return "deadline"
	case errors.Is(err, ErrCannotSign):
		return "cannot_sign"
	case errors.Is(err, ErrResolution):
		return "resolution"
	default:
		return "error"
	}
}

// onSlot attempts to author a block in the slot. It returns the announced block.
func (w *Worker) onSlot(ctx context.Context, info slots.SlotInfo) (*types.Block, error) {
	slot := info.Slot

	if !w.forceAuthoring && w.syncOracle != nil && w.syncOracle.IsMajorSyncing() {
		return nil, errMajorSyncing
	}

	best, err := w.chainHead.BestBlockHeader(ctx)
	if err != nil {
		return nil, fmt.Errorf("getting best block header: %w", err)
	}
	if best == nil {
		return nil, errNilParentHeader
	}

	parentSlot, err := types.FindAuraPreDigest(best)
	if err != nil {
		return nil, fmt.Errorf("reading slot of best block %s: %w", best.Hash(), err)
	}

	if parentSlot >= slot {
		return nil, fmt.Errorf("%w: slot %d, best block slot %d", errLaggingSlot, slot, parentSlot)
	}

	if w.clock.IsLagging(slot) {
		return nil, fmt.Errorf("%w: slot %d", errSlotLagging, slot)
	}

	now := w.clock.Now()
	remaining := slots.ProposingRemainingDuration(w.proposing, parentSlot, best.Number == 0, info, now)
	slotCtx, cancel := w.clock.WithDeadline(ctx, now.Add(remaining))
	defer cancel()

	w.setState(Claiming)
	claim, err := w.claimSlot(slotCtx, slot, best, parentSlot)
	if err != nil {
		return nil, err
	}

	w.setState(Building)
	block, err := w.builder.Build(slotCtx, best, types.NewAuraPreRuntimeDigest(slot))
	if err != nil {
		return nil, deadlineError(slotCtx, fmt.Errorf("building block: %w", err))
	}

	if err := checkProposal(block, best, slot); err != nil {
		return nil, err
	}

	w.setState(Sealing)
	if err := w.seal(block, claim); err != nil {
		return nil, err
	}

	if err := slotCtx.Err(); err != nil {
		return nil, deadlineError(slotCtx, err)
	}

	w.setState(Announcing)
	verified, err := w.gate.Import(slotCtx, block)
	if err != nil {
		return nil, deadlineError(slotCtx, fmt.Errorf("importing authored block: %w", err))
	}

	if w.auxStore != nil {
		if err := w.auxStore.SetAuthoredSlot(claim.ID(), slot); err != nil {
			logger.Errorf("failed to record authored slot %d: %s", slot, err)
		}
	}

	authoredCounter.Inc()
	logger.Infof("🔨 authored block number %d with hash %s in slot %d, parent %s",
		block.Header.Number, verified.Hash, slot, best.Hash())

	if w.announcer != nil {
		if err := w.announcer.Announce(ctx, block); err != nil {
			logger.Warnf("failed to announce block %s: %s", verified.Hash, err)
		}
	}

	return block, nil
}

// claimSlot returns the local authority owning the slot.
func (w *Worker) claimSlot(ctx context.Context, slot uint64, best *types.Header,
	parentSlot uint64) (types.Authority, error) {
	set, err := resolve(ctx, w.resolver, best.Hash())
	if err != nil {
		return types.Authority{}, err
	}

	if err := w.followSlotDuration(set.SlotDuration); err != nil {
		return types.Authority{}, err
	}

	author, index, err := SlotAuthor(slot, set)
	if err != nil {
		return types.Authority{}, err
	}

	if !w.keystore.HasKey(author.Key) {
		return types.Authority{}, fmt.Errorf("%w: slot %d belongs to authority %d", ErrNotOurSlot, slot, index)
	}
	claimsCounter.Inc()

	if !w.forceAuthoring {
		if err := w.checkBackoff(slot, best, parentSlot); err != nil {
			return types.Authority{}, err
		}

		if w.syncOracle != nil && set.Len() > 1 && w.syncOracle.IsOffline() {
			return types.Authority{}, errOffline
		}
	}

	if err := w.checkAlreadyAuthored(slot, author.ID()); err != nil {
		return types.Authority{}, err
	}

	logger.Debugf("claimed slot %d as authority %d", slot, index)
	return author, nil
}

// followSlotDuration switches the slot clock to the duration resolved from the chain.
// The slot is skipped on a switch since its boundaries belong to the previous duration.
func (w *Worker) followSlotDuration(duration time.Duration) error {
	previous := w.clock.Duration()
	if duration <= 0 || duration == previous {
		return nil
	}

	if err := w.slots.SetDuration(duration); err != nil {
		return fmt.Errorf("switching slot duration: %w", err)
	}
	w.clock = w.slots.Clock()

	logger.Infof("slot duration changed from %s to %s", previous, duration)
	return fmt.Errorf("%w: from %s to %s", errSlotDurationChanged, previous, duration)
}

func (w *Worker) checkBackoff(slot uint64, best *types.Header, parentSlot uint64) error {
	if w.backoff == nil || w.finality == nil {
		return nil
	}

	finalized, err := w.finality.FinalizedNumber()
	if err != nil {
		return fmt.Errorf("getting finalised number: %w", err)
	}

	if w.backoff.ShouldBackoff(best.Number, parentSlot, finalized, slot) {
		return fmt.Errorf("%w: best block %d, finalised block %d", errBackoff, best.Number, finalized)
	}
	return nil
}

func (w *Worker) checkAlreadyAuthored(slot uint64, id types.AuthorityID) error {
	if w.registry.Seen(slot, id) {
		return fmt.Errorf("%w: slot %d", errAlreadyAuthored, slot)
	}

	if w.auxStore == nil {
		return nil
	}

	authored, ok, err := w.auxStore.AuthoredSlot(id)
	if err != nil {
		return fmt.Errorf("reading authored slot: %w", err)
	}
	if ok && authored >= slot {
		return fmt.Errorf("%w: slot %d, last authored slot %d", errAlreadyAuthored, slot, authored)
	}
	return nil
}

func (w *Worker) seal(block *types.Block, author types.Authority) error {
	preSealHash := block.Header.Hash()
	signature, err := w.keystore.Sign(author.Key, preSealHash[:])
	if err != nil {
		return fmt.Errorf("%w: %v", ErrCannotSign, err)
	}
	if len(signature) != types.AuraSealLength {
		return fmt.Errorf("%w: %v: %d bytes", ErrCannotSign, errInvalidSignature, len(signature))
	}

	block.Header.Digest = append(block.Header.Digest, types.NewAuraSealDigest(signature))
	return nil
}

// checkProposal checks the built block extends the parent and claims the slot exactly once.
func checkProposal(block *types.Block, parent *types.Header, slot uint64) error {
	if block == nil {
		return fmt.Errorf("%w: nil block", errWrongPreDigest)
	}

	header := &block.Header
	if header.ParentHash != parent.Hash() || header.Number != parent.Number+1 {
		return fmt.Errorf("proposal number %d with parent %s does not extend best block %d %s",
			header.Number, header.ParentHash, parent.Number, parent.Hash())
	}

	claimed, err := types.FindAuraPreDigest(header)
	if err != nil {
		return fmt.Errorf("%w: %v", errWrongPreDigest, err)
	}
	if claimed != slot {
		return fmt.Errorf("%w: claims slot %d instead of %d", errWrongPreDigest, claimed, slot)
	}

	if _, seal := header.WithoutSeal(); seal != nil {
		return fmt.Errorf("%w: proposal is already sealed", errWrongPreDigest)
	}
	return nil
}

// deadlineError maps an error caused by the slot deadline to ErrDeadlineExceeded.
func deadlineError(slotCtx context.Context, err error) error {
	if errors.Is(slotCtx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", ErrDeadlineExceeded, err)
	}
	return err
}
