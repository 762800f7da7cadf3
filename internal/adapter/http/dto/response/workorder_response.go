package response

import (
	"time"

	"github.com/shopspring/decimal"

	"fieldserve/internal/domain/entities"
	"fieldserve/internal/domain/status"
)

type LineItemResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	LineType    string          `json:"line_type"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	SortOrder   int             `json:"sort_order"`
}

type MilestoneResponse struct {
	ID         string           `json:"id"`
	Name       string           `json:"name"`
	Amount     *decimal.Decimal `json:"amount,omitempty"`
	Percentage *decimal.Decimal `json:"percentage,omitempty"`
	SortOrder  int              `json:"sort_order"`
	DueDate    string           `json:"due_date,omitempty"`
}

type WorkOrderResponse struct {
	ID          string `json:"id"`
	CompanyID   string `json:"company_id"`
	QuoteNumber string `json:"quote_number"`
	CustomerID  string `json:"customer_id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`

	Status       string   `json:"status"`
	AllowedNext  []string `json:"allowed_next"`
	PricingModel string   `json:"pricing_model"`

	Subtotal    decimal.Decimal `json:"subtotal"`
	TaxRate     decimal.Decimal `json:"tax_rate"`
	TaxAmount   decimal.Decimal `json:"tax_amount"`
	TotalAmount decimal.Decimal `json:"total_amount"`

	Items      []LineItemResponse  `json:"items"`
	Milestones []MilestoneResponse `json:"milestones,omitempty"`

	DeliveryMethod   string           `json:"delivery_method,omitempty"`
	PresentedBy      string           `json:"presented_by,omitempty"`
	CustomerReaction string           `json:"customer_reaction,omitempty"`
	DepositAmount    *decimal.Decimal `json:"deposit_amount,omitempty"`
	DepositMethod    string           `json:"deposit_method,omitempty"`
	RejectionReason  string           `json:"rejection_reason,omitempty"`
	CompetitorName   string           `json:"competitor_name,omitempty"`
	ChangeTypes      []string         `json:"change_types,omitempty"`
	ChangeUrgency    string           `json:"change_urgency,omitempty"`
	FollowUpDate     *time.Time       `json:"follow_up_date,omitempty"`
	FollowUpMethod   string           `json:"follow_up_method,omitempty"`
	ExpirationDate   *time.Time       `json:"expiration_date,omitempty"`
	Archived         bool             `json:"archived"`

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

func FromWorkOrder(w entities.WorkOrder) WorkOrderResponse {
	allowed := status.AllowedNext(w.Status)
	allowedNext := make([]string, 0, len(allowed))
	for _, s := range allowed {
		allowedNext = append(allowedNext, string(s))
	}

	items := make([]LineItemResponse, 0, len(w.Items))
	for _, item := range w.Items {
		items = append(items, LineItemResponse{
			ID:          item.ID,
			Name:        item.Name,
			Description: item.Description,
			LineType:    string(item.LineType),
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			SortOrder:   item.SortOrder,
		})
	}

	var milestones []MilestoneResponse
	for _, m := range w.Milestones {
		milestones = append(milestones, MilestoneResponse{
			ID:         m.ID,
			Name:       m.Name,
			Amount:     m.Amount,
			Percentage: m.Percentage,
			SortOrder:  m.SortOrder,
			DueDate:    m.DueDate,
		})
	}

	return WorkOrderResponse{
		ID:          w.ID,
		CompanyID:   w.CompanyID,
		QuoteNumber: w.QuoteNumber,
		CustomerID:  w.CustomerID,
		Title:       w.Title,
		Description: w.Description,

		Status:       string(w.Status),
		AllowedNext:  allowedNext,
		PricingModel: string(w.PricingModel),

		Subtotal:    w.Subtotal,
		TaxRate:     w.TaxRate,
		TaxAmount:   w.TaxAmount,
		TotalAmount: w.TotalAmount,

		Items:      items,
		Milestones: milestones,

		DeliveryMethod:   w.DeliveryMethod,
		PresentedBy:      w.PresentedBy,
		CustomerReaction: w.CustomerReaction,
		DepositAmount:    w.DepositAmount,
		DepositMethod:    w.DepositMethod,
		RejectionReason:  w.RejectionReason,
		CompetitorName:   w.CompetitorName,
		ChangeTypes:      w.ChangeTypes,
		ChangeUrgency:    w.ChangeUrgency,
		FollowUpDate:     w.FollowUpDate,
		FollowUpMethod:   w.FollowUpMethod,
		ExpirationDate:   w.ExpirationDate,
		Archived:         w.Archived,

		SentAt:              w.SentAt,
		PresentedAt:         w.PresentedAt,
		CustomerApprovedAt:  w.CustomerApprovedAt,
		RejectedAt:          w.RejectedAt,
		ChangesRequestedAt:  w.ChangesRequestedAt,
		FollowUpScheduledAt: w.FollowUpScheduledAt,
		ExpiredAt:           w.ExpiredAt,
		CancelledAt:         w.CancelledAt,
		ScheduledAt:         w.ScheduledAt,
		StartedAt:           w.StartedAt,
		CompletedAt:         w.CompletedAt,

		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
	}
}

// TransitionResponse wraps the committed work order with the advisory
// scheduling fork chosen during approval.
type TransitionResponse struct {
	WorkOrder   WorkOrderResponse `json:"work_order"`
	ScheduleNow bool              `json:"schedule_now,omitempty"`
}
