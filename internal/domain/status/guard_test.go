package status

import (
	"errors"
	"testing"

	"fieldserve/internal/domain/entities"
)

// legalPairs mirrors the adjacency table row by row; the sweep below checks
// both directions so a table edit cannot silently widen the graph.
var legalPairs = map[entities.Status][]entities.Status{
	entities.StatusDraft:            {entities.StatusSent, entities.StatusPresented, entities.StatusCancelled},
	entities.StatusSent:             {entities.StatusDraft, entities.StatusPresented, entities.StatusChangesRequested, entities.StatusFollowUp, entities.StatusApproved, entities.StatusRejected, entities.StatusExpired, entities.StatusCancelled},
	entities.StatusPresented:        {entities.StatusDraft, entities.StatusChangesRequested, entities.StatusFollowUp, entities.StatusApproved, entities.StatusRejected, entities.StatusCancelled},
	entities.StatusChangesRequested: {entities.StatusDraft, entities.StatusSent, entities.StatusPresented, entities.StatusApproved, entities.StatusRejected, entities.StatusCancelled},
	entities.StatusFollowUp:         {entities.StatusDraft, entities.StatusSent, entities.StatusPresented, entities.StatusApproved, entities.StatusRejected, entities.StatusExpired, entities.StatusCancelled},
	entities.StatusApproved:         {entities.StatusScheduled, entities.StatusCancelled},
	entities.StatusScheduled:        {entities.StatusInProgress, entities.StatusCancelled},
	entities.StatusInProgress:       {entities.StatusCompleted, entities.StatusCancelled},
	entities.StatusExpired:          {entities.StatusSent, entities.StatusFollowUp, entities.StatusCancelled},
	entities.StatusRejected:         {},
	entities.StatusCancelled:        {},
	entities.StatusCompleted:        {},
}

func contains(list []entities.Status, s entities.Status) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func TestCheck_FullSweep(t *testing.T) {
	for _, from := range entities.AllStatuses() {
		for _, to := range entities.AllStatuses() {
			d, err := Check(from, to)

			if from == to {
				if err != nil {
					t.Fatalf("%s -> %s: same-status request must be a no-op, got %v", from, to, err)
				}
				if !d.NoOp || !d.Allowed {
					t.Fatalf("%s -> %s: expected allowed no-op, got %+v", from, to, d)
				}
				continue
			}

			if contains(legalPairs[from], to) {
				if err != nil {
					t.Fatalf("%s -> %s: expected legal, got %v", from, to, err)
				}
				if !d.Allowed || d.NoOp {
					t.Fatalf("%s -> %s: expected allowed, got %+v", from, to, d)
				}
			} else {
				if err == nil {
					t.Fatalf("%s -> %s: expected rejection, got %+v", from, to, d)
				}
				if !errors.Is(err, ErrInvalidTransition) {
					t.Fatalf("%s -> %s: expected ErrInvalidTransition, got %v", from, to, err)
				}
			}
		}
	}
}

func TestCheck_UnknownStatusRejected(t *testing.T) {
	_, err := Check(entities.StatusDraft, entities.Status("archived"))
	if !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition for unknown status, got %v", err)
	}

	var ite *InvalidTransitionError
	if !errors.As(err, &ite) {
		t.Fatalf("expected InvalidTransitionError, got %T", err)
	}
	if ite.Requested != entities.Status("archived") {
		t.Fatalf("unexpected requested status in error: %q", ite.Requested)
	}
}

func TestCheck_CaptureKinds(t *testing.T) {
	cases := []struct {
		from, to entities.Status
		kind     CaptureKind
	}{
		{entities.StatusDraft, entities.StatusSent, CaptureSend},
		{entities.StatusSent, entities.StatusPresented, CapturePresented},
		{entities.StatusPresented, entities.StatusApproved, CaptureApproval},
		{entities.StatusSent, entities.StatusRejected, CaptureRejection},
		{entities.StatusPresented, entities.StatusChangesRequested, CaptureChanges},
		{entities.StatusSent, entities.StatusFollowUp, CaptureFollowUp},
		{entities.StatusSent, entities.StatusExpired, CaptureExpiredAction},
	}
	for _, tc := range cases {
		d, err := Check(tc.from, tc.to)
		if err != nil {
			t.Fatalf("%s -> %s: unexpected error %v", tc.from, tc.to, err)
		}
		if !d.RequiresCapture || d.CaptureKind != tc.kind {
			t.Fatalf("%s -> %s: expected capture %s, got %+v", tc.from, tc.to, tc.kind, d)
		}
	}
}

func TestCheck_DirectTransitionsCarryNoCapture(t *testing.T) {
	direct := []struct{ from, to entities.Status }{
		{entities.StatusSent, entities.StatusDraft},
		{entities.StatusApproved, entities.StatusScheduled},
		{entities.StatusScheduled, entities.StatusInProgress},
		{entities.StatusInProgress, entities.StatusCompleted},
		{entities.StatusDraft, entities.StatusCancelled},
	}
	for _, tc := range direct {
		d, err := Check(tc.from, tc.to)
		if err != nil {
			t.Fatalf("%s -> %s: unexpected error %v", tc.from, tc.to, err)
		}
		if d.RequiresCapture {
			t.Fatalf("%s -> %s: expected direct commit, got capture %s", tc.from, tc.to, d.CaptureKind)
		}
	}
}

func TestAllowedNext_ReturnsCopy(t *testing.T) {
	first := AllowedNext(entities.StatusDraft)
	if len(first) != 3 {
		t.Fatalf("expected 3 targets from draft, got %d", len(first))
	}
	first[0] = entities.StatusCompleted

	second := AllowedNext(entities.StatusDraft)
	if second[0] == entities.StatusCompleted {
		t.Fatalf("AllowedNext must not expose the internal table")
	}
}

func TestAllowedNext_TerminalStatuses(t *testing.T) {
	for _, s := range []entities.Status{entities.StatusRejected, entities.StatusCancelled, entities.StatusCompleted} {
		if next := AllowedNext(s); len(next) != 0 {
			t.Fatalf("%s must be terminal, got %v", s, next)
		}
	}
}
