package entities

import (
	"fmt"
	"time"
)

// NotificationCategory is the closed set of event categories the dispatcher
// understands. Unknown categories are dropped, not invented.

type NotificationCategory string

const (
	CategoryQuote          NotificationCategory = "QUOTE"
	CategoryJob            NotificationCategory = "JOB"
	CategoryPayment        NotificationCategory = "PAYMENT"
	CategoryInventory      NotificationCategory = "INVENTORY"
	CategoryInvoiceOverdue NotificationCategory = "INVOICE_OVERDUE"
	CategorySystem         NotificationCategory = "SYSTEM"
)

func (c NotificationCategory) Valid() bool {
	switch c {
	case CategoryQuote, CategoryJob, CategoryPayment, CategoryInventory,
		CategoryInvoiceOverdue, CategorySystem:
		return true
	}
	return false
}

type NotificationSeverity string

const (
	SeverityInfo     NotificationSeverity = "INFO"
	SeverityWarning  NotificationSeverity = "WARNING"
	SeverityCritical NotificationSeverity = "CRITICAL"
)

// NotificationEvent is the write-once in-app record derived from a committed
// domain event. Events carry a TTL so the store can expire them after the
// retention window without a cleanup job.
type NotificationEvent struct {
	ID        string               `json:"id"`
	CompanyID string               `json:"company_id"`
	Category  NotificationCategory `json:"category"`
	Severity  NotificationSeverity `json:"severity"`
	RelatedID string               `json:"related_id"`
	Title     string               `json:"title"`
	Message   string               `json:"message"`
	CreatedAt time.Time            `json:"created_at"`
	ExpiresAt time.Time            `json:"expires_at"`
}

// DedupKey identifies "the same alert about the same record" for the 24h
// suppression window.
func (n NotificationEvent) DedupKey() string {
	return NotificationDedupKey(n.CompanyID, n.Category, n.RelatedID)
}

func NotificationDedupKey(companyID string, category NotificationCategory, relatedID string) string {
	return fmt.Sprintf("%s:%s:%s", companyID, category, relatedID)
}
