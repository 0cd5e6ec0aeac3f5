package usecase

import (
	"context"
	"errors"
	"log"
	"sync"

	"chromaprint/internal/domain/entities"
	"chromaprint/internal/usecase/interfaces"
)

var (
	// ErrNoEstimate signals a quote attempt without a ready estimate.
	ErrNoEstimate = errors.New("no estimate to submit")
	// ErrQuoteInFlight signals a quote attempt while one is already submitting.
	ErrQuoteInFlight = errors.New("quote submission already in flight")
)

// Short, non-technical reasons surfaced to the UI on failure.
const (
	reasonEstimateFailed = "Failed to estimate"
	reasonSubmitFailed   = "Failed to submit"
)

// WorkflowSnapshot is a point-in-time view of the workflow for rendering.
type WorkflowSnapshot struct {
	Phase      entities.EstimatePhase
	Result     *entities.EstimateResult
	FailReason string
	Submission entities.SubmissionPhase
}

// EstimateWorkflow orchestrates the estimate-and-quote journey: it owns the
// job input, issues pricing requests, tracks request lifecycle, and drives
// quote submission behind the auth gate.
//
// Every outstanding request carries a sequence number taken under the lock;
// a completion commits only while its number is still the highest issued, so
// a response to a superseded request can never overwrite newer state. No
// cancellation of in-flight calls is attempted, only suppression on arrival.
type EstimateWorkflow struct {
	estimates interfaces.IEstimateGateway
	quotes    interfaces.IQuoteGateway
	session   *AuthSession
	gate      *AuthGate

	mu    sync.Mutex
	input entities.EstimateInput
	notes string

	phase       entities.EstimatePhase
	result      *entities.EstimateResult
	failReason  string
	estimateSeq uint64

	submission entities.SubmissionPhase
	submitSeq  uint64
}

func NewEstimateWorkflow(estimates interfaces.IEstimateGateway, quotes interfaces.IQuoteGateway, session *AuthSession, gate *AuthGate) *EstimateWorkflow {
	return &EstimateWorkflow{
		estimates:  estimates,
		quotes:     quotes,
		session:    session,
		gate:       gate,
		input:      entities.DefaultEstimateInput(),
		phase:      entities.PhaseIdle,
		submission: entities.SubmissionNone,
	}
}

// Input setters are pure local mutations, allowed in any phase. They never
// invalidate a previously computed result and never trigger a re-estimate;
// the UI may show a stale estimate until the user re-runs it.

func (w *EstimateWorkflow) SetDimensions(lengthMM, widthMM, heightMM float64) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.input.LengthMM = lengthMM
	w.input.WidthMM = widthMM
	w.input.HeightMM = heightMM
}

func (w *EstimateWorkflow) SetMaterial(m entities.Material) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.input.Material = m
}

func (w *EstimateWorkflow) SetFinish(f entities.Finish) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.input.Finish = f
}

// SetComplexity clamps into the declared range, mirroring the slider control.
func (w *EstimateWorkflow) SetComplexity(v float64) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.input.Complexity = clamp(v, entities.ComplexityMin, entities.ComplexityMax)
}

// SetInfill clamps into the declared range, mirroring the slider control.
func (w *EstimateWorkflow) SetInfill(v float64) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.input.Infill = clamp(v, entities.InfillMin, entities.InfillMax)
}

func (w *EstimateWorkflow) SetNotes(notes string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.notes = notes
}

func (w *EstimateWorkflow) Input() entities.EstimateInput {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.input
}

// Snapshot returns the current state for rendering. The result pointer is a
// copy; mutating it does not touch workflow state.
func (w *EstimateWorkflow) Snapshot() WorkflowSnapshot {
	w.mu.Lock()
	defer w.mu.Unlock()
	snap := WorkflowSnapshot{
		Phase:      w.phase,
		FailReason: w.failReason,
		Submission: w.submission,
	}
	if w.result != nil {
		r := *w.result
		snap.Result = &r
	}
	return snap
}

// RequestEstimate issues one pricing request carrying the current input
// snapshot. The only error it returns is input validation; transport and
// decoding failures are absorbed into the EstimateFailed phase so the
// workflow stays interactive for a retry.
func (w *EstimateWorkflow) RequestEstimate(ctx context.Context) error {
	w.mu.Lock()
	snapshot := w.input
	if err := snapshot.Validate(); err != nil {
		w.mu.Unlock()
		return err
	}
	w.estimateSeq++
	seq := w.estimateSeq
	w.phase = entities.PhaseEstimating
	w.mu.Unlock()

	log.Printf("[estimate][workflow] request issued seq=%d material=%s finish=%s", seq, snapshot.Material, snapshot.Finish)
	result, err := w.estimates.RequestEstimate(ctx, snapshot)

	w.mu.Lock()
	defer w.mu.Unlock()
	if seq != w.estimateSeq {
		// A newer request was issued while this one was in flight.
		log.Printf("[estimate][workflow] stale response discarded seq=%d latest=%d", seq, w.estimateSeq)
		return nil
	}
	if err != nil {
		log.Printf("[estimate][workflow] request failed seq=%d err=%v", seq, err)
		w.phase = entities.PhaseEstimateFailed
		w.failReason = reasonEstimateFailed
		return nil
	}

	w.phase = entities.PhaseReady
	w.result = &result
	w.failReason = ""
	w.submission = entities.SubmissionNone
	log.Printf("[estimate][workflow] result ready seq=%d estimated_cost=%v", seq, result.EstimatedCost)
	return nil
}

// RequestQuote submits the held estimate with the current notes. Without a
// session it performs no network call, raises the login prompt through the
// gate, and leaves all workflow state untouched; the caller sees
// ErrAuthRequired but nothing else happened. The blocked submission is not
// replayed after a later login.
//
// A second call while one is submitting is ignored with ErrQuoteInFlight.
// Transport failures are absorbed into the SubmitFailed sub-state; the ready
// estimate stays ready either way, with the outcome attached beside it.
func (w *EstimateWorkflow) RequestQuote(ctx context.Context) error {
	w.mu.Lock()
	if w.phase != entities.PhaseReady || w.result == nil {
		w.mu.Unlock()
		return ErrNoEstimate
	}
	if w.submission == entities.SubmissionSubmitting {
		w.mu.Unlock()
		return ErrQuoteInFlight
	}
	w.mu.Unlock()

	// Gate check happens outside the lock: the prompt is UI-facing and the
	// session is read at the moment of use.
	if !w.gate.Allow() {
		return ErrAuthRequired
	}
	token, user, ok := w.session.Credentials()
	if !ok {
		return ErrAuthRequired
	}

	w.mu.Lock()
	if w.phase != entities.PhaseReady || w.result == nil {
		w.mu.Unlock()
		return ErrNoEstimate
	}
	if w.submission == entities.SubmissionSubmitting {
		w.mu.Unlock()
		return ErrQuoteInFlight
	}
	w.submitSeq++
	seq := w.submitSeq
	w.submission = entities.SubmissionSubmitting
	submission := entities.QuoteSubmission{
		Email:    user.Email,
		Name:     user.Name,
		Estimate: *w.result,
		Notes:    w.notes,
	}
	w.mu.Unlock()

	log.Printf("[quote][workflow] submission issued seq=%d email=%s", seq, user.Email)
	outcome, err := w.quotes.SubmitQuote(ctx, token, submission)

	w.mu.Lock()
	defer w.mu.Unlock()
	if seq != w.submitSeq {
		log.Printf("[quote][workflow] stale outcome discarded seq=%d latest=%d", seq, w.submitSeq)
		return nil
	}
	if w.result == nil {
		return nil
	}
	if err != nil {
		log.Printf("[quote][workflow] submission failed seq=%d err=%v", seq, err)
		w.submission = entities.SubmissionFailed
		outcome = entities.QuoteOutcome{OK: false, Message: reasonSubmitFailed}
	} else {
		w.submission = entities.SubmissionSubmitted
		log.Printf("[quote][workflow] submission acknowledged seq=%d ok=%v", seq, outcome.OK)
	}

	// Attach the outcome beside the estimate by superseding the held result
	// with a copy; the received result itself is never mutated.
	r := *w.result
	r.Submission = &outcome
	w.result = &r
	return nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
