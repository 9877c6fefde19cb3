// Package engine implements the prediction state machine: the
// immediate path that forecasts the next round's suit from the current
// round's announcement, and the verification path that confirms or
// refutes that forecast once the next round's result is finalized.
package engine

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/tdiallo/suitoracle/internal/logging"
	"github.com/tdiallo/suitoracle/internal/parse"
	"github.com/tdiallo/suitoracle/internal/suit"
)

// Status is the lifecycle state of a prediction. The values double as
// the status glyphs used in outbound message text.
type Status string

const (
	StatusPending   Status = "⏳"
	StatusConfirmed Status = "✅"
	StatusRefuted   Status = "❌"
)

// Prediction is an open forecast for a specific future round.
type Prediction struct {
	TargetRound int
	Suit        suit.Suit
	BaseRound   int
	BaseSuit    suit.Suit
	MessageRef  int // outbound message ID, 0 when publish failed or was skipped
	Status      Status
	CreatedAt   time.Time
}

// Publisher sends and edits messages in the prediction channel. Both
// operations are best effort: the engine logs failures and proceeds
// with a degraded local-only record.
type Publisher interface {
	// SendPrediction publishes text and returns a reference to the
	// created message for later editing.
	SendPrediction(ctx context.Context, text string) (int, error)

	// EditPrediction replaces the text of a previously sent message.
	EditPrediction(ctx context.Context, ref int, text string) error
}

// Engine owns all mutable prediction state. One mutex serializes every
// mutation; outbound network calls happen outside the lock.
type Engine struct {
	mu           sync.Mutex
	pending      map[int]*Prediction // keyed by target round
	predicted    *roundLedger
	verified     *fingerprintLedger
	currentRound int

	pub Publisher
	now func() time.Time // injectable for tests
}

// New creates an Engine publishing through pub.
func New(pub Publisher) *Engine {
	return &Engine{
		pending:   make(map[int]*Prediction),
		predicted: newRoundLedger(),
		verified:  newFingerprintLedger(),
		pub:       pub,
		now:       time.Now,
	}
}

// HandleNew processes a new source-channel message: the immediate
// prediction path first, then the verification path. A fault in one
// path aborts that path only; the other still runs.
func (e *Engine) HandleNew(ctx context.Context, text string) {
	e.runPrediction(ctx, text)
	e.runVerification(ctx, text)
}

// HandleEdited processes an edited source-channel message. Edits only
// feed the verification path: the immediate path runs at most once per
// round number and an edit cannot change an already-made prediction.
func (e *Engine) HandleEdited(ctx context.Context, text string) {
	e.runVerification(ctx, text)
}

// runPrediction is the immediate path. It fires on the first sighting
// of a round number, reads the first suit of the second group, and
// opens a forecast for the following round.
func (e *Engine) runPrediction(ctx context.Context, text string) {
	defer func() {
		if r := recover(); r != nil {
			logging.Error("prediction path panicked", "panic", r)
		}
	}()

	round, ok := parse.RoundNumber(text)
	if !ok {
		return
	}

	e.mu.Lock()
	e.currentRound = round
	if e.predicted.Seen(round) {
		e.mu.Unlock()
		return
	}
	e.predicted.Record(round)
	e.mu.Unlock()

	groups := parse.Groups(text)
	if len(groups) < 2 {
		logging.Info("not enough groups for a prediction", "round", round, "groups", len(groups))
		return
	}

	base, ok := parse.FirstSuit(groups[1])
	if !ok {
		logging.Info("no suit in second group", "round", round)
		return
	}

	predicted := suit.Predict(base, round)
	target := round + 1

	e.mu.Lock()
	if _, exists := e.pending[target]; exists {
		e.mu.Unlock()
		logging.Info("prediction already active", "target", target)
		return
	}
	e.mu.Unlock()

	logging.Info("prediction made",
		"round", round, "parity", parityLabel(round),
		"base", string(base), "target", target, "suit", string(predicted))

	// Publish outside the lock; the send may block on the network.
	ref := 0
	if sent, err := e.pub.SendPrediction(ctx, PendingText(target, predicted)); err != nil {
		logging.Error("failed to publish prediction", "target", target, "err", err)
	} else {
		ref = sent
		logging.Info("prediction published", "target", target, "ref", ref)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	// Re-check: another event may have opened this target while the
	// send was in flight. First wins.
	if _, exists := e.pending[target]; exists {
		return
	}
	e.pending[target] = &Prediction{
		TargetRound: target,
		Suit:        predicted,
		BaseRound:   round,
		BaseSuit:    base,
		MessageRef:  ref,
		Status:      StatusPending,
		CreatedAt:   e.now(),
	}
}

// runVerification is the verification path. It only evaluates finalized
// results, consumes the pending forecast for the announced round, and
// edits the outbound message with the outcome.
func (e *Engine) runVerification(ctx context.Context, text string) {
	defer func() {
		if r := recover(); r != nil {
			logging.Error("verification path panicked", "panic", r)
		}
	}()

	if !parse.IsFinalized(text) {
		return
	}

	round, ok := parse.RoundNumber(text)
	if !ok {
		return
	}

	fp := fingerprint(round, text)

	e.mu.Lock()
	if e.verified.Seen(fp) {
		e.mu.Unlock()
		return
	}
	e.verified.Record(fp)
	e.mu.Unlock()

	groups := parse.Groups(text)
	if len(groups) < 1 {
		return
	}
	firstGroup := groups[0]

	e.mu.Lock()
	pred, exists := e.pending[round]
	if !exists {
		e.mu.Unlock()
		return
	}

	if parse.ContainsSuit(firstGroup, pred.Suit) {
		pred.Status = StatusConfirmed
	} else {
		pred.Status = StatusRefuted
	}
	delete(e.pending, round)
	resolved := *pred
	e.mu.Unlock()

	logging.Info("prediction resolved",
		"round", round, "suit", string(resolved.Suit), "status", string(resolved.Status))

	if resolved.MessageRef > 0 {
		if err := e.pub.EditPrediction(ctx, resolved.MessageRef, ResolvedText(resolved)); err != nil {
			logging.Error("failed to update prediction message", "round", round, "err", err)
		}
	}
}

// Reset clears all state: the pending set, both ledgers, and the round
// counter. It returns the number of pending predictions cleared. Safe
// to invoke concurrently; it is a total overwrite, not a delta.
func (e *Engine) Reset() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	cleared := len(e.pending)
	e.pending = make(map[int]*Prediction)
	e.predicted.Clear()
	e.verified.Clear()
	e.currentRound = 0

	logging.Info("state reset", "cleared", cleared)
	return cleared
}

// Snapshot is a point-in-time copy of the engine state for display.
type Snapshot struct {
	CurrentRound int
	Pending      []Prediction // sorted by target round
}

// Snapshot returns a copy of the current round counter and all pending
// predictions, sorted by target round.
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	pending := make([]Prediction, 0, len(e.pending))
	for _, p := range e.pending {
		pending = append(pending, *p)
	}
	sort.Slice(pending, func(i, j int) bool {
		return pending[i].TargetRound < pending[j].TargetRound
	})

	return Snapshot{
		CurrentRound: e.currentRound,
		Pending:      pending,
	}
}
