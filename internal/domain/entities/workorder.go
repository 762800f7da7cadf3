package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status is the lifecycle status of a WorkOrder.
//
// A WorkOrder serves as both "quote" and "job" depending on where it sits in
// the pipeline: draft..expired are quote-stage statuses, scheduled..completed
// are job-stage statuses. The legal moves between statuses live in the
// internal/domain/status adjacency table, never here.

type Status string

const (
	StatusDraft            Status = "draft"
	StatusSent             Status = "sent"
	StatusPresented        Status = "presented"
	StatusApproved         Status = "approved"
	StatusRejected         Status = "rejected"
	StatusChangesRequested Status = "changes_requested"
	StatusFollowUp         Status = "follow_up"
	StatusExpired          Status = "expired"
	StatusCancelled        Status = "cancelled"
	StatusScheduled        Status = "scheduled"
	StatusInProgress       Status = "in_progress"
	StatusCompleted        Status = "completed"
)

// AllStatuses enumerates the closed status set, in pipeline order.
func AllStatuses() []Status {
	return []Status{
		StatusDraft, StatusSent, StatusPresented, StatusApproved,
		StatusRejected, StatusChangesRequested, StatusFollowUp,
		StatusExpired, StatusCancelled, StatusScheduled,
		StatusInProgress, StatusCompleted,
	}
}

func (s Status) Valid() bool {
	for _, known := range AllStatuses() {
		if s == known {
			return true
		}
	}
	return false
}

// PricingModel selects the strategy used to derive a WorkOrder subtotal.
// Models are mutually exclusive per work order.

type PricingModel string

const (
	PricingTimeMaterials PricingModel = "TIME_MATERIALS"
	PricingFlatRate      PricingModel = "FLAT_RATE"
	PricingUnit          PricingModel = "UNIT"
	PricingPercentage    PricingModel = "PERCENTAGE"
	PricingRecurring     PricingModel = "RECURRING"
	PricingMilestone     PricingModel = "MILESTONE"
)

func (m PricingModel) Valid() bool {
	switch m {
	case PricingTimeMaterials, PricingFlatRate, PricingUnit,
		PricingPercentage, PricingRecurring, PricingMilestone:
		return true
	}
	return false
}

// WorkOrder is the unified quote/job aggregate.
//
// Monetary invariant (enforced by the calculator and re-checked before every
// write): TotalAmount == Subtotal + TaxAmount, all held to 2 decimal places.
//
// Transition timestamps are set exactly once, by the orchestrator, never by
// the client. A nil pointer means the work order has never entered that
// status.

type WorkOrder struct {
	ID          string `json:"id"`
	CompanyID   string `json:"company_id"`
	QuoteNumber string `json:"quote_number"`
	CustomerID  string `json:"customer_id"`
	Title       string `json:"title"`
	Description string `json:"description"`

	Status       Status       `json:"status"`
	PricingModel PricingModel `json:"pricing_model"`

	Subtotal    decimal.Decimal `json:"subtotal"`
	TaxRate     decimal.Decimal `json:"tax_rate"`
	TaxAmount   decimal.Decimal `json:"tax_amount"`
	TotalAmount decimal.Decimal `json:"total_amount"`

	// Model parameters for the non-line-item pricing models.
	FlatRateAmount       decimal.Decimal `json:"flat_rate_amount"`
	UnitCount            decimal.Decimal `json:"unit_count"`
	UnitPrice            decimal.Decimal `json:"unit_price"`
	Percentage           decimal.Decimal `json:"percentage"`
	PercentageBaseAmount decimal.Decimal `json:"percentage_base_amount"`
	RecurringRate        decimal.Decimal `json:"recurring_rate"`
	RecurringInterval    string          `json:"recurring_interval"`
	MilestoneBaseAmount  decimal.Decimal `json:"milestone_base_amount"`

	Items      []LineItem  `json:"items"`
	Milestones []Milestone `json:"milestones"`

	// Capture-derived fields, populated by the transition that required them.
	DeliveryMethod        string           `json:"delivery_method,omitempty"`
	CustomMessage         string           `json:"custom_message,omitempty"`
	PresentedBy           string           `json:"presented_by,omitempty"`
	CustomerReaction      string           `json:"customer_reaction,omitempty"`
	PresentationNextSteps string           `json:"presentation_next_steps,omitempty"`
	PresentationNotes     string           `json:"presentation_notes,omitempty"`
	DepositAmount         *decimal.Decimal `json:"deposit_amount,omitempty"`
	DepositMethod         string           `json:"deposit_method,omitempty"`
	ApprovalNotes         string           `json:"approval_notes,omitempty"`
	RejectionReason       string           `json:"rejection_reason,omitempty"`
	CompetitorName        string           `json:"competitor_name,omitempty"`
	RejectionNotes        string           `json:"rejection_notes,omitempty"`
	ChangeTypes           []string         `json:"change_types,omitempty"`
	ChangeDetails         string           `json:"change_details,omitempty"`
	ChangeUrgency         string           `json:"change_urgency,omitempty"`
	FollowUpDate          *time.Time       `json:"follow_up_date,omitempty"`
	FollowUpMethod        string           `json:"follow_up_method,omitempty"`
	FollowUpReminderMins  int              `json:"follow_up_reminder_mins,omitempty"`
	FollowUpReason        string           `json:"follow_up_reason,omitempty"`
	FollowUpNotes         string           `json:"follow_up_notes,omitempty"`
	ExpirationDate        *time.Time       `json:"expiration_date,omitempty"`
	ExpiredNotes          string           `json:"expired_notes,omitempty"`
	Archived              bool             `json:"archived"`

	SentAt              *time.Time `json:"sent_at,omitempty"`
	PresentedAt         *time.Time `json:"presented_at,omitempty"`
	CustomerApprovedAt  *time.Time `json:"customer_approved_at,omitempty"`
	RejectedAt          *time.Time `json:"rejected_at,omitempty"`
	ChangesRequestedAt  *time.Time `json:"changes_requested_at,omitempty"`
	FollowUpScheduledAt *time.Time `json:"follow_up_scheduled_at,omitempty"`
	ExpiredAt           *time.Time `json:"expired_at,omitempty"`
	CancelledAt         *time.Time `json:"cancelled_at,omitempty"`
	ScheduledAt         *time.Time `json:"scheduled_at,omitempty"`
	StartedAt           *time.Time `json:"started_at,omitempty"`
	CompletedAt         *time.Time `json:"completed_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TransitionTimestamp returns a pointer to the set-once timestamp owned by the
// given status, or nil when the status has no dedicated timestamp (draft).
func (w *WorkOrder) TransitionTimestamp(s Status) **time.Time {
	switch s {
	case StatusSent:
		return &w.SentAt
	case StatusPresented:
		return &w.PresentedAt
	case StatusApproved:
		return &w.CustomerApprovedAt
	case StatusRejected:
		return &w.RejectedAt
	case StatusChangesRequested:
		return &w.ChangesRequestedAt
	case StatusFollowUp:
		return &w.FollowUpScheduledAt
	case StatusExpired:
		return &w.ExpiredAt
	case StatusCancelled:
		return &w.CancelledAt
	case StatusScheduled:
		return &w.ScheduledAt
	case StatusInProgress:
		return &w.StartedAt
	case StatusCompleted:
		return &w.CompletedAt
	}
	return nil
}
