package draft

import "errors"

var ErrInvalidTransition = errors.New("invalid submission state transition")

// Phase enumerates the submission/redirect lifecycle. The flags the form
// toggles (submitting, confirmation dialog, payment loading) are projections
// of this single state.
type Phase string

const (
	PhaseIdle                  Phase = "idle"
	PhaseValidating            Phase = "validating"
	PhaseAwaitingConfirmation  Phase = "awaiting_confirmation"
	PhaseSubmitting            Phase = "submitting"
	PhasePersistingForRedirect Phase = "persisting_for_redirect"
	PhaseRedirected            Phase = "redirected"
	PhaseCompleted             Phase = "completed"
	PhaseFailed                Phase = "failed"
)

type Event string

const (
	EventSubmit          Event = "submit"
	EventValid           Event = "valid"
	EventInvalid         Event = "invalid"
	EventConfirm         Event = "confirm"
	EventCreatedTerminal Event = "created_terminal"
	EventCreatedPayable  Event = "created_payable"
	EventRedirectIssued  Event = "redirect_issued"
	EventFail            Event = "fail"
)

// State pairs the phase with a failure reason. Reason is only meaningful in
// PhaseFailed.
type State struct {
	Phase  Phase
	Reason string
}

func Initial() State {
	return State{Phase: PhaseIdle}
}

func (s State) Terminal() bool {
	return s.Phase == PhaseCompleted || s.Phase == PhaseRedirected
}

func (s State) Failed() bool {
	return s.Phase == PhaseFailed
}

func (s State) WithReason(reason string) State {
	s.Reason = reason
	return s
}

var transitions = map[Phase]map[Event]Phase{
	PhaseIdle: {
		EventSubmit: PhaseValidating,
	},
	PhaseValidating: {
		EventValid:   PhaseAwaitingConfirmation,
		EventInvalid: PhaseFailed,
	},
	PhaseAwaitingConfirmation: {
		EventConfirm: PhaseSubmitting,
	},
	PhaseSubmitting: {
		EventCreatedTerminal: PhaseCompleted,
		EventCreatedPayable:  PhasePersistingForRedirect,
		EventFail:            PhaseFailed,
	},
	PhasePersistingForRedirect: {
		EventRedirectIssued: PhaseRedirected,
		EventFail:           PhaseFailed,
	},
	// A failed submission leaves the form editable and resubmittable.
	PhaseFailed: {
		EventSubmit: PhaseValidating,
	},
}

// Transition is the pure step function of the submission state machine.
func Transition(s State, ev Event) (State, error) {
	next, ok := transitions[s.Phase][ev]
	if !ok {
		return s, ErrInvalidTransition
	}
	out := State{Phase: next}
	if next == PhaseFailed {
		out.Reason = s.Reason
	}
	return out, nil
}
