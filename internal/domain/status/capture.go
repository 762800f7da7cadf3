package status

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"fieldserve/internal/domain/entities"
)

// CaptureKind names the structured payload a transition must collect before
// it may commit. The kinds map 1:1 to the capture forms the UI renders.

type CaptureKind string

const (
	CaptureSend          CaptureKind = "SEND"
	CapturePresented     CaptureKind = "PRESENTED"
	CaptureApproval      CaptureKind = "APPROVAL"
	CaptureRejection     CaptureKind = "REJECTION"
	CaptureChanges       CaptureKind = "CHANGES"
	CaptureFollowUp      CaptureKind = "FOLLOW_UP"
	CaptureExpiredAction CaptureKind = "EXPIRED_ACTION"
)

var (
	ErrIncompleteCapture      = errors.New("incomplete capture payload")
	ErrRenewalDateNotFuture   = errors.New("renewal expiration date must be in the future")
	ErrUnknownRejectionReason = errors.New("unknown rejection reason")
	ErrUnknownExpiredAction   = errors.New("unknown expired action")
)

// IncompleteCaptureError lists the required fields missing from a capture
// payload. It unwraps to ErrIncompleteCapture.
type IncompleteCaptureError struct {
	Kind    CaptureKind
	Missing []string
}

func (e *IncompleteCaptureError) Error() string {
	return fmt.Sprintf("capture %s missing required fields: %s", e.Kind, strings.Join(e.Missing, ", "))
}

func (e *IncompleteCaptureError) Unwrap() error { return ErrIncompleteCapture }

// RejectionReason is the closed set of reasons a customer declines a quote.
// Tracking the reason (and competitor, when one is implied) feeds win/loss
// reporting.

type RejectionReason string

const (
	ReasonPriceTooHigh              RejectionReason = "price_too_high"
	ReasonWentWithCheaperCompetitor RejectionReason = "went_with_cheaper_competitor"
	ReasonBudgetConstraints         RejectionReason = "budget_constraints"
	ReasonTimelineTooLong           RejectionReason = "timeline_too_long"
	ReasonNotReadyToProceed         RejectionReason = "not_ready_to_proceed"
	ReasonDecidedToWait             RejectionReason = "decided_to_wait"
	ReasonScopeNotRight             RejectionReason = "scope_not_right"
	ReasonDifferentSolution         RejectionReason = "looking_for_different_solution"
	ReasonDecidedNotToDoWork        RejectionReason = "decided_not_to_do_work"
	ReasonWentWithCompetitor        RejectionReason = "went_with_competitor"
	ReasonUsingExistingVendor       RejectionReason = "using_existing_vendor"
	ReasonLackOfReviews             RejectionReason = "lack_of_reviews"
	ReasonCommunicationIssues       RejectionReason = "communication_issues"
	ReasonDoingItThemselves         RejectionReason = "doing_it_themselves"
	ReasonNoResponse                RejectionReason = "no_response"
	ReasonOther                     RejectionReason = "other"
)

func (r RejectionReason) Valid() bool {
	switch r {
	case ReasonPriceTooHigh, ReasonWentWithCheaperCompetitor, ReasonBudgetConstraints,
		ReasonTimelineTooLong, ReasonNotReadyToProceed, ReasonDecidedToWait,
		ReasonScopeNotRight, ReasonDifferentSolution, ReasonDecidedNotToDoWork,
		ReasonWentWithCompetitor, ReasonUsingExistingVendor, ReasonLackOfReviews,
		ReasonCommunicationIssues, ReasonDoingItThemselves, ReasonNoResponse, ReasonOther:
		return true
	}
	return false
}

// ImpliesCompetitor reports whether the reason requires a competitor name.
func (r RejectionReason) ImpliesCompetitor() bool {
	return r == ReasonWentWithCompetitor || r == ReasonWentWithCheaperCompetitor
}

// ExpiredAction is what the tenant chose to do with an expired quote.

type ExpiredAction string

const (
	ExpiredActionRenew    ExpiredAction = "renew"
	ExpiredActionFollowUp ExpiredAction = "follow_up"
	ExpiredActionArchive  ExpiredAction = "archive"
)

func (a ExpiredAction) Valid() bool {
	return a == ExpiredActionRenew || a == ExpiredActionFollowUp || a == ExpiredActionArchive
}

// Payload is the union of all capture form fields. Which fields are required
// depends on the CaptureKind; Validate enforces that, the rest are ignored.
type Payload struct {
	// SEND
	DeliveryMethod string `json:"delivery_method,omitempty"`
	CustomMessage  string `json:"custom_message,omitempty"`

	// PRESENTED
	PresentedBy       string `json:"presented_by,omitempty"`
	CustomerReaction  string `json:"customer_reaction,omitempty"`
	NextSteps         string `json:"next_steps,omitempty"`
	PresentationNotes string `json:"presentation_notes,omitempty"`

	// APPROVAL
	DepositAmount *decimal.Decimal `json:"deposit_amount,omitempty"`
	DepositMethod string           `json:"deposit_method,omitempty"`
	ScheduleNow   bool             `json:"schedule_now,omitempty"`
	ApprovalNotes string           `json:"approval_notes,omitempty"`

	// REJECTION
	Reason         RejectionReason `json:"reason,omitempty"`
	CompetitorName string          `json:"competitor_name,omitempty"`
	RejectionNotes string          `json:"rejection_notes,omitempty"`

	// CHANGES
	ChangeTypes   []string `json:"change_types,omitempty"`
	ChangeDetails string   `json:"change_details,omitempty"`
	ChangeUrgency string   `json:"change_urgency,omitempty"`

	// FOLLOW_UP (FollowUpDate also serves as the optional CHANGES follow-up)
	FollowUpDate         *time.Time `json:"follow_up_date,omitempty"`
	FollowUpMethod       string     `json:"follow_up_method,omitempty"`
	FollowUpReminderMins int        `json:"follow_up_reminder_mins,omitempty"`
	FollowUpReason       string     `json:"follow_up_reason,omitempty"`
	FollowUpNotes        string     `json:"follow_up_notes,omitempty"`

	// EXPIRED_ACTION
	Action            ExpiredAction `json:"action,omitempty"`
	NewExpirationDate *time.Time    `json:"new_expiration_date,omitempty"`
	ExpiredNotes      string        `json:"expired_notes,omitempty"`
}

// RequiredFields is the declarative capture contract surfaced to callers so
// they can render the right form before resuming a suspended transition.
func RequiredFields(kind CaptureKind) []string {
	switch kind {
	case CaptureSend:
		return []string{"delivery_method"}
	case CapturePresented:
		return []string{"presented_by", "customer_reaction", "next_steps"}
	case CaptureApproval:
		return []string{"deposit_amount", "deposit_method"}
	case CaptureRejection:
		return []string{"reason"}
	case CaptureChanges:
		return []string{"change_types", "change_details", "change_urgency"}
	case CaptureFollowUp:
		return []string{"follow_up_date", "follow_up_method", "follow_up_reminder_mins", "follow_up_reason"}
	case CaptureExpiredAction:
		return []string{"action"}
	}
	return nil
}

// Validate checks the payload against the required-field table for its kind.
// now anchors the "renewal date must be in the future" rule so callers (and
// tests) control the clock.
func Validate(kind CaptureKind, p Payload, now time.Time) error {
	var missing []string
	blank := func(field, v string) {
		if strings.TrimSpace(v) == "" {
			missing = append(missing, field)
		}
	}

	switch kind {
	case CaptureSend:
		blank("delivery_method", p.DeliveryMethod)

	case CapturePresented:
		blank("presented_by", p.PresentedBy)
		blank("customer_reaction", p.CustomerReaction)
		blank("next_steps", p.NextSteps)

	case CaptureApproval:
		if p.DepositAmount == nil {
			missing = append(missing, "deposit_amount")
		}
		blank("deposit_method", p.DepositMethod)

	case CaptureRejection:
		if p.Reason == "" {
			missing = append(missing, "reason")
			break
		}
		if !p.Reason.Valid() {
			return fmt.Errorf("%w: %q", ErrUnknownRejectionReason, p.Reason)
		}
		if p.Reason.ImpliesCompetitor() {
			blank("competitor_name", p.CompetitorName)
		}

	case CaptureChanges:
		if len(p.ChangeTypes) == 0 {
			missing = append(missing, "change_types")
		}
		blank("change_details", p.ChangeDetails)
		blank("change_urgency", p.ChangeUrgency)

	case CaptureFollowUp:
		if p.FollowUpDate == nil {
			missing = append(missing, "follow_up_date")
		}
		blank("follow_up_method", p.FollowUpMethod)
		if p.FollowUpReminderMins <= 0 {
			missing = append(missing, "follow_up_reminder_mins")
		}
		blank("follow_up_reason", p.FollowUpReason)

	case CaptureExpiredAction:
		if p.Action == "" {
			missing = append(missing, "action")
			break
		}
		if !p.Action.Valid() {
			return fmt.Errorf("%w: %q", ErrUnknownExpiredAction, p.Action)
		}
		if p.Action == ExpiredActionRenew {
			if p.NewExpirationDate == nil {
				missing = append(missing, "new_expiration_date")
			} else if !p.NewExpirationDate.After(now) {
				return ErrRenewalDateNotFuture
			}
		}
	}

	if len(missing) > 0 {
		return &IncompleteCaptureError{Kind: kind, Missing: missing}
	}
	return nil
}

// FinalTarget resolves the status a transition actually lands on. Only the
// EXPIRED_ACTION capture redirects: renewal loops the quote back to sent,
// a follow-up choice parks it in follow_up, archive leaves it expired.
func FinalTarget(requested entities.Status, kind CaptureKind, p Payload) entities.Status {
	if kind != CaptureExpiredAction {
		return requested
	}
	switch p.Action {
	case ExpiredActionRenew:
		return entities.StatusSent
	case ExpiredActionFollowUp:
		return entities.StatusFollowUp
	default:
		return entities.StatusExpired
	}
}
