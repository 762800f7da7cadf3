package request

import (
	"github.com/shopspring/decimal"

	"fieldserve/internal/domain/entities"
)

type LineItemRequest struct {
	ID          string          `json:"id"`
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	LineType    string          `json:"line_type" binding:"required"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	SortOrder   int             `json:"sort_order"`
}

type MilestoneRequest struct {
	ID         string           `json:"id"`
	Name       string           `json:"name" binding:"required"`
	Amount     *decimal.Decimal `json:"amount"`
	Percentage *decimal.Decimal `json:"percentage"`
	SortOrder  int              `json:"sort_order"`
	DueDate    string           `json:"due_date"`
}

// WorkOrderRequest is the create/update payload for a quote. Status, totals
// and timestamps are intentionally absent: status only moves through the
// transitions endpoint and totals are always derived server-side.
type WorkOrderRequest struct {
	CustomerID  string `json:"customer_id" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`

	PricingModel string `json:"pricing_model"`

	FlatRateAmount       decimal.Decimal `json:"flat_rate_amount"`
	UnitCount            decimal.Decimal `json:"unit_count"`
	UnitPrice            decimal.Decimal `json:"unit_price"`
	Percentage           decimal.Decimal `json:"percentage"`
	PercentageBaseAmount decimal.Decimal `json:"percentage_base_amount"`
	RecurringRate        decimal.Decimal `json:"recurring_rate"`
	RecurringInterval    string          `json:"recurring_interval"`
	MilestoneBaseAmount  decimal.Decimal `json:"milestone_base_amount"`

	Items      []LineItemRequest  `json:"items"`
	Milestones []MilestoneRequest `json:"milestones"`
}

// ToEntity maps the payload onto a WorkOrder draft. The caller owns identity,
// status and totals.
func (r WorkOrderRequest) ToEntity() entities.WorkOrder {
	return entities.WorkOrder{
		CustomerID:  r.CustomerID,
		Title:       r.Title,
		Description: r.Description,

		PricingModel: entities.PricingModel(r.PricingModel),

		FlatRateAmount:       r.FlatRateAmount,
		UnitCount:            r.UnitCount,
		UnitPrice:            r.UnitPrice,
		Percentage:           r.Percentage,
		PercentageBaseAmount: r.PercentageBaseAmount,
		RecurringRate:        r.RecurringRate,
		RecurringInterval:    r.RecurringInterval,
		MilestoneBaseAmount:  r.MilestoneBaseAmount,

		Items:      LineItemsToEntities(r.Items),
		Milestones: MilestonesToEntities(r.Milestones),
	}
}

func LineItemsToEntities(items []LineItemRequest) []entities.LineItem {
	if items == nil {
		return nil
	}
	out := make([]entities.LineItem, 0, len(items))
	for _, item := range items {
		out = append(out, entities.LineItem{
			ID:          item.ID,
			Name:        item.Name,
			Description: item.Description,
			LineType:    entities.LineType(item.LineType),
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			SortOrder:   item.SortOrder,
		})
	}
	return out
}

func MilestonesToEntities(milestones []MilestoneRequest) []entities.Milestone {
	if milestones == nil {
		return nil
	}
	out := make([]entities.Milestone, 0, len(milestones))
	for _, m := range milestones {
		out = append(out, entities.Milestone{
			ID:         m.ID,
			Name:       m.Name,
			Amount:     m.Amount,
			Percentage: m.Percentage,
			SortOrder:  m.SortOrder,
			DueDate:    m.DueDate,
		})
	}
	return out
}
