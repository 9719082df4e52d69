package wizard

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"tourquote/internal/dto"
	"tourquote/internal/session"
)

// Wizard steps, in order. Navigation is strictly linear.
const (
	StepDates = iota + 1
	StepTourVehicle
	StepParticipants
	StepAccommodation
	StepSpecialServices
	StepSummary

	StepCount = StepSummary
)

var (
	ErrStepInvalid        = errors.New("wizard: current step is not valid")
	ErrAtFirstStep        = errors.New("wizard: already at first step")
	ErrAtLastStep         = errors.New("wizard: already at last step")
	ErrNotAtSummary       = errors.New("wizard: submission is only allowed from the summary step")
	ErrSubmissionInFlight = errors.New("wizard: a submission is already in flight")
)

// CalculateFunc submits the accumulated configuration to the pricing engine.
type CalculateFunc func(ctx context.Context, form dto.CalculationRequest) (*dto.CalculationResponse, error)

// Wizard tracks one booking form instance: the active step, the in-progress
// configuration and the last calculation. Form data accumulates across steps;
// the validity predicate gates forward navigation but never blocks edits.
//
// A generation counter guards against stale calculation responses: a reset or
// identity change bumps it, and a submission only applies its result if its
// generation is still current.
type Wizard struct {
	mu          sync.Mutex
	step        int
	form        dto.CalculationRequest
	calculation *dto.CalculationResponse
	identity    *session.Identity
	loading     bool
	generation  uint64
	logger      *zap.Logger
}

func New(logger *zap.Logger) *Wizard {
	return &Wizard{
		step:   StepDates,
		logger: logger,
	}
}

// BindTo subscribes the wizard to identity change notifications.
func (w *Wizard) BindTo(notifier *session.Notifier) {
	notifier.Subscribe(w.ApplyIdentity)
}

func (w *Wizard) Step() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.step
}

func (w *Wizard) Form() dto.CalculationRequest {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.form
}

func (w *Wizard) Calculation() *dto.CalculationResponse {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.calculation
}

func (w *Wizard) Loading() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.loading
}

// UpdateForm applies a mutation to the in-progress configuration. Edits are
// always allowed regardless of step validity.
func (w *Wizard) UpdateForm(mutate func(*dto.CalculationRequest)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	mutate(&w.form)
}

// StepValid reports whether the current step's completion predicate holds.
func (w *Wizard) StepValid() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return stepValid(w.step, w.form)
}

func stepValid(step int, form dto.CalculationRequest) bool {
	switch step {
	case StepDates:
		return form.StartDate != "" && form.EndDate != ""
	case StepTourVehicle:
		return form.TourID > 0 && form.VehicleID > 0
	case StepParticipants:
		return form.Participants > 0
	case StepAccommodation:
		if form.HotelID == nil {
			return true
		}
		hasRooms := form.SingleRoomCount > 0 || form.DoubleRoomCount > 0 || form.TripleRoomCount > 0
		return form.RoomType != "" || hasRooms
	case StepSpecialServices, StepSummary:
		return true
	}
	return false
}

// Next advances one step; the current step must be valid.
func (w *Wizard) Next() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.step >= StepSummary {
		return ErrAtLastStep
	}
	if !stepValid(w.step, w.form) {
		return ErrStepInvalid
	}

	w.step++
	return nil
}

// Prev goes back one step. Backward navigation is never gated.
func (w *Wizard) Prev() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.step <= StepDates {
		return ErrAtFirstStep
	}

	w.step--
	return nil
}

// Reset discards the form, the calculation and any in-flight submission's
// claim on the wizard, returning to the first step.
func (w *Wizard) Reset() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.reset()
}

func (w *Wizard) reset() {
	w.step = StepDates
	w.form = dto.CalculationRequest{}
	w.calculation = nil
	w.loading = false
	w.generation++
}

// ApplyIdentity implements the reset policy: when the authenticated identity
// changes and the new identity does not hold the elevated role, all wizard
// state is discarded so nothing leaks between customer sessions on a shared
// device. An elevated identity keeps its in-progress configuration.
func (w *Wizard) ApplyIdentity(id *session.Identity) {
	w.mu.Lock()
	defer w.mu.Unlock()

	previous := w.identity
	w.identity = id

	if !identityChanged(previous, id) {
		return
	}

	if id != nil && id.Elevated() {
		return
	}

	if w.logger != nil {
		w.logger.Info("identity changed, resetting wizard state")
	}
	w.reset()
}

func identityChanged(previous, next *session.Identity) bool {
	if previous == nil && next == nil {
		return false
	}
	if previous == nil || next == nil {
		return true
	}
	return previous.ID != next.ID || previous.Role != next.Role
}

// Submit runs the calculation for the accumulated configuration. Only one
// submission may be in flight per wizard instance; the loading flag is set
// before dispatch and cleared on every outcome. The result is kept only when
// the wizard has not been reset underneath the request.
func (w *Wizard) Submit(ctx context.Context, calculate CalculateFunc) (*dto.CalculationResponse, error) {
	w.mu.Lock()
	if w.step != StepSummary {
		w.mu.Unlock()
		return nil, ErrNotAtSummary
	}
	if w.loading {
		w.mu.Unlock()
		return nil, ErrSubmissionInFlight
	}
	w.loading = true
	w.generation++
	generation := w.generation
	form := w.form
	w.mu.Unlock()

	resp, err := calculate(ctx, form)

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.generation != generation {
		// The wizard was reset while the request was in flight; the
		// response is stale and must not resurface discarded state.
		return resp, err
	}

	w.loading = false
	if err == nil {
		w.calculation = resp
	}
	return resp, err
}
