package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"salamatlab/internal/domain/entities"
	"salamatlab/internal/usecase/interfaces"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
)

var (
	ErrInvalidTransition    = errors.New("invalid wizard transition")
	ErrSubmissionInFlight   = errors.New("a submission is already in progress")
	ErrUnknownCategory      = errors.New("unknown package category")
	ErrUnknownPackage       = errors.New("unknown package")
	ErrCategoryNotSupported = errors.New("flow has no package categories")
	ErrFieldsLocked         = errors.New("fields can only be edited on the detail entry step")
)

// transitions is the wizard's state x event -> state table. Guards (package
// lookup, detail validation, single-flight) are applied by the callers.
var transitions = map[entities.WizardStep]map[entities.WizardEvent]entities.WizardStep{
	entities.StepPackageSelection: {
		entities.EventSelectPackage: entities.StepDetailEntry,
	},
	entities.StepDetailEntry: {
		entities.EventNext: entities.StepConfirmation,
		entities.EventBack: entities.StepPackageSelection,
	},
	entities.StepConfirmation: {
		entities.EventBack:      entities.StepDetailEntry,
		entities.EventSubmitted: entities.StepSuccess,
	},
	entities.StepSuccess: {
		entities.EventReset: entities.StepPackageSelection,
	},
}

// NextStep looks up the transition table.
func NextStep(from entities.WizardStep, ev entities.WizardEvent) (entities.WizardStep, error) {
	if to, ok := transitions[from][ev]; ok {
		return to, nil
	}
	return from, fmt.Errorf("%w: %s from %s", ErrInvalidTransition, ev, from)
}

// IRequestSubmitter turns a confirmed wizard into a stored request.
type IRequestSubmitter interface {
	Submit(ctx context.Context, flow entities.RequestType, state entities.WizardState, pkg entities.Package, userID string) (entities.RequestRecord, error)
}

// Wizard is the intake stepper for one flow of one session.
//
// Submission is single-flight: a token is taken atomically before the
// backend call and released when it finishes, and every other mutation is
// rejected while the token is held.
type Wizard struct {
	flow      entities.RequestType
	userID    string
	catalog   interfaces.IPackageCatalog
	submitter IRequestSubmitter
	seed      entities.Fields

	mu       sync.Mutex
	state    entities.WizardState
	inFlight atomic.Bool
}

func NewWizard(flow entities.RequestType, userID string, catalog interfaces.IPackageCatalog, submitter IRequestSubmitter, seed entities.Fields) *Wizard {
	w := &Wizard{
		flow:      flow,
		userID:    userID,
		catalog:   catalog,
		submitter: submitter,
		seed:      seed.Clone(),
	}
	w.state = w.initialState()
	return w
}

func (w *Wizard) Flow() entities.RequestType {
	return w.flow
}

// Snapshot returns a copy of the current state.
func (w *Wizard) Snapshot() entities.WizardState {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.snapshotLocked()
}

// SelectCategory switches the checkup category on the package step and
// clears the selected package.
func (w *Wizard) SelectCategory(key entities.PackageCategoryKey) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.inFlight.Load() {
		return ErrSubmissionInFlight
	}
	if w.flow != entities.RequestTypeCheckup {
		return ErrCategoryNotSupported
	}
	if !key.Valid() {
		return ErrUnknownCategory
	}
	if w.state.Step != entities.StepPackageSelection {
		return fmt.Errorf("%w: select category from %s", ErrInvalidTransition, w.state.Step)
	}
	w.state.Category = key
	w.state.Package = nil
	return nil
}

// SelectPackage picks a package and moves to detail entry. ref is the package
// id for checkups and the positional index for sampling.
func (w *Wizard) SelectPackage(ref string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.inFlight.Load() {
		return ErrSubmissionInFlight
	}
	to, err := NextStep(w.state.Step, entities.EventSelectPackage)
	if err != nil {
		return err
	}
	pkg, err := w.resolvePackage(strings.TrimSpace(ref))
	if err != nil {
		return err
	}
	w.state.Package = &pkg
	w.state.Step = to
	return nil
}

// SetFields merges field updates while on the detail step.
func (w *Wizard) SetFields(updates map[string]string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.inFlight.Load() {
		return ErrSubmissionInFlight
	}
	if w.state.Step != entities.StepDetailEntry {
		return ErrFieldsLocked
	}
	normalized, err := normalizeFields(w.flow, w.catalog.TimeSlots(), updates)
	if err != nil {
		return err
	}
	for k, v := range normalized {
		w.state.Fields[k] = v
	}
	return nil
}

// Next moves from detail entry to confirmation when the flow's validator passes.
func (w *Wizard) Next() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.inFlight.Load() {
		return ErrSubmissionInFlight
	}
	to, err := NextStep(w.state.Step, entities.EventNext)
	if err != nil {
		return err
	}
	if err := ValidateDetails(w.flow, w.state.Fields); err != nil {
		return err
	}
	w.state.Step = to
	return nil
}

// Back steps one state back. Leaving detail entry for the package step drops
// the entered fields back to the prefill seed.
func (w *Wizard) Back() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.inFlight.Load() {
		return ErrSubmissionInFlight
	}
	from := w.state.Step
	to, err := NextStep(from, entities.EventBack)
	if err != nil {
		return err
	}
	if from == entities.StepDetailEntry {
		w.state.Fields = w.seed.Clone()
	}
	w.state.Step = to
	return nil
}

// Submit records the confirmed request. A second call while one is running
// fails with ErrSubmissionInFlight; on failure the wizard stays on confirmation.
// Once started, a submission runs to completion even if ctx is cancelled.
func (w *Wizard) Submit(ctx context.Context) (entities.RequestRecord, error) {
	if !w.inFlight.CompareAndSwap(false, true) {
		log.Printf("[intake][wizard] submit rejected (in flight) flow=%s user_id=%s", w.flow, w.userID)
		return entities.RequestRecord{}, ErrSubmissionInFlight
	}
	defer w.inFlight.Store(false)
	ctx = context.WithoutCancel(ctx)

	w.mu.Lock()
	if _, err := NextStep(w.state.Step, entities.EventSubmitted); err != nil {
		w.mu.Unlock()
		return entities.RequestRecord{}, err
	}
	state := w.snapshotLocked()
	w.mu.Unlock()

	if state.Package == nil {
		return entities.RequestRecord{}, fmt.Errorf("%w: no package selected", ErrInvalidTransition)
	}

	log.Printf("[intake][wizard] submit start flow=%s user_id=%s package_id=%s", w.flow, w.userID, state.Package.ID)
	record, err := w.submitter.Submit(ctx, w.flow, state, *state.Package, w.userID)
	if err != nil {
		log.Printf("[intake][wizard] submit failed flow=%s user_id=%s err=%v", w.flow, w.userID, err)
		return entities.RequestRecord{}, err
	}

	w.mu.Lock()
	w.state.Step = entities.StepSuccess
	w.state.LastSubmittedID = record.ID
	w.mu.Unlock()

	log.Printf("[intake][wizard] submit success flow=%s user_id=%s request_id=%s", w.flow, w.userID, record.ID)
	return record, nil
}

// Reset starts a new request after a successful submission.
func (w *Wizard) Reset() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.inFlight.Load() {
		return ErrSubmissionInFlight
	}
	if _, err := NextStep(w.state.Step, entities.EventReset); err != nil {
		return err
	}
	w.state = w.initialState()
	return nil
}

func (w *Wizard) resolvePackage(ref string) (entities.Package, error) {
	if w.flow == entities.RequestTypeSampling {
		idx, err := strconv.Atoi(ref)
		if err != nil {
			return entities.Package{}, ErrUnknownPackage
		}
		pkg, ok := w.catalog.SamplingPackage(idx)
		if !ok {
			return entities.Package{}, ErrUnknownPackage
		}
		return pkg, nil
	}

	pkg, ok := w.catalog.FindPackage(ref)
	if !ok || pkg.Category != w.state.Category {
		return entities.Package{}, ErrUnknownPackage
	}
	return pkg, nil
}

func (w *Wizard) initialState() entities.WizardState {
	st := entities.WizardState{
		Flow:   w.flow,
		Step:   entities.StepPackageSelection,
		Fields: w.seed.Clone(),
	}
	if w.flow == entities.RequestTypeCheckup {
		st.Category = entities.CategoryGeneral
	}
	return st
}

func (w *Wizard) snapshotLocked() entities.WizardState {
	st := w.state
	st.Fields = w.state.Fields.Clone()
	if w.state.Package != nil {
		pkg := *w.state.Package
		pkg.Features = append([]string(nil), pkg.Features...)
		st.Package = &pkg
	}
	st.Submitting = w.inFlight.Load()
	return st
}
