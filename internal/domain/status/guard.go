// Package status holds the quote lifecycle decision logic: the transition
// adjacency table, the capture requirements attached to certain transitions,
// and the validation of capture payloads. Everything in this package is pure;
// it never touches persistence or the network.
package status

import (
	"errors"
	"fmt"

	"fieldserve/internal/domain/entities"
)

var ErrInvalidTransition = errors.New("invalid status transition")

// InvalidTransitionError reports a (current, requested) pair absent from the
// adjacency table. It unwraps to ErrInvalidTransition.
type InvalidTransitionError struct {
	Current   entities.Status
	Requested entities.Status
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot change status from %q to %q", e.Current, e.Requested)
}

func (e *InvalidTransitionError) Unwrap() error { return ErrInvalidTransition }

// Decision is the guard verdict for one requested transition.
type Decision struct {
	Allowed         bool
	NoOp            bool
	RequiresCapture bool
	CaptureKind     CaptureKind
}

// transitions is the explicit adjacency table of legal current → requested
// moves. Pairs not present here are rejected; the table is the single source
// of truth and is never inferred from status ordering.
//
// Quote-stage rows allow moving back to draft so a tenant can rework a quote
// after sending or presenting it. Renewal of an expired quote loops back to
// sent. Rejected, cancelled and completed are terminal (invoicing is a
// separate pipeline, out of scope here).
var transitions = map[entities.Status][]entities.Status{
	entities.StatusDraft: {
		entities.StatusSent,
		entities.StatusPresented,
		entities.StatusCancelled,
	},
	entities.StatusSent: {
		entities.StatusDraft,
		entities.StatusPresented,
		entities.StatusChangesRequested,
		entities.StatusFollowUp,
		entities.StatusApproved,
		entities.StatusRejected,
		entities.StatusExpired,
		entities.StatusCancelled,
	},
	entities.StatusPresented: {
		entities.StatusDraft,
		entities.StatusChangesRequested,
		entities.StatusFollowUp,
		entities.StatusApproved,
		entities.StatusRejected,
		entities.StatusCancelled,
	},
	entities.StatusChangesRequested: {
		entities.StatusDraft,
		entities.StatusSent,
		entities.StatusPresented,
		entities.StatusApproved,
		entities.StatusRejected,
		entities.StatusCancelled,
	},
	entities.StatusFollowUp: {
		entities.StatusDraft,
		entities.StatusSent,
		entities.StatusPresented,
		entities.StatusApproved,
		entities.StatusRejected,
		entities.StatusExpired,
		entities.StatusCancelled,
	},
	entities.StatusApproved: {
		entities.StatusScheduled,
		entities.StatusCancelled,
	},
	entities.StatusScheduled: {
		entities.StatusInProgress,
		entities.StatusCancelled,
	},
	entities.StatusInProgress: {
		entities.StatusCompleted,
		entities.StatusCancelled,
	},
	entities.StatusExpired: {
		entities.StatusSent,
		entities.StatusFollowUp,
		entities.StatusCancelled,
	},
	entities.StatusRejected:  {},
	entities.StatusCancelled: {},
	entities.StatusCompleted: {},
}

// captureByTarget maps a requested status to the structured payload that must
// be collected before the transition may commit. Legal transitions whose
// target is absent here commit directly.
var captureByTarget = map[entities.Status]CaptureKind{
	entities.StatusSent:             CaptureSend,
	entities.StatusPresented:        CapturePresented,
	entities.StatusApproved:         CaptureApproval,
	entities.StatusRejected:         CaptureRejection,
	entities.StatusChangesRequested: CaptureChanges,
	entities.StatusFollowUp:         CaptureFollowUp,
	entities.StatusExpired:          CaptureExpiredAction,
}

// Check decides whether current → requested is legal and whether it needs a
// capture payload first. Re-requesting the current status is a no-op, not an
// error.
func Check(current, requested entities.Status) (Decision, error) {
	if !requested.Valid() {
		return Decision{}, &InvalidTransitionError{Current: current, Requested: requested}
	}
	if current == requested {
		return Decision{Allowed: true, NoOp: true}, nil
	}

	allowed := false
	for _, next := range transitions[current] {
		if next == requested {
			allowed = true
			break
		}
	}
	if !allowed {
		return Decision{}, &InvalidTransitionError{Current: current, Requested: requested}
	}

	d := Decision{Allowed: true}
	if kind, ok := captureByTarget[requested]; ok {
		d.RequiresCapture = true
		d.CaptureKind = kind
	}
	return d, nil
}

// AllowedNext returns the legal targets for a status, for the UI to render
// action menus. The returned slice is a copy.
func AllowedNext(current entities.Status) []entities.Status {
	next := transitions[current]
	out := make([]entities.Status, len(next))
	copy(out, next)
	return out
}
