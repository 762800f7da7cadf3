package entities

import "github.com/shopspring/decimal"

// LineType classifies a work order line item. Materials and parts are the only
// types subject to the tenant markup; labor is never marked up.

type LineType string

const (
	LineTypeLabor     LineType = "labor"
	LineTypeMaterial  LineType = "material"
	LineTypePart      LineType = "part"
	LineTypeEquipment LineType = "equipment"
	LineTypeService   LineType = "service"
	LineTypeFee       LineType = "fee"
	LineTypeDiscount  LineType = "discount"
	LineTypeTax       LineType = "tax"
)

func (t LineType) Valid() bool {
	switch t {
	case LineTypeLabor, LineTypeMaterial, LineTypePart, LineTypeEquipment,
		LineTypeService, LineTypeFee, LineTypeDiscount, LineTypeTax:
		return true
	}
	return false
}

// Markupable reports whether the tenant parts markup applies to this type.
func (t LineType) Markupable() bool {
	return t == LineTypeMaterial || t == LineTypePart
}

// LineItem belongs to exactly one WorkOrder. The set of line items is always
// replaced wholesale on save; there are no partial line-item patches.
type LineItem struct {
	ID          string          `json:"id"`
	WorkOrderID string          `json:"work_order_id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	LineType    LineType        `json:"line_type"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	SortOrder   int             `json:"sort_order"`
}

// Milestone belongs to one WorkOrder with pricing model MILESTONE. Amount and
// Percentage are mutually informative; at least one must be populated.
// Milestones follow the same wholesale-replace discipline as line items.
type Milestone struct {
	ID          string           `json:"id"`
	WorkOrderID string           `json:"work_order_id"`
	Name        string           `json:"name"`
	Amount      *decimal.Decimal `json:"amount,omitempty"`
	Percentage  *decimal.Decimal `json:"percentage,omitempty"`
	SortOrder   int              `json:"sort_order"`
	DueDate     string           `json:"due_date,omitempty"`
}
