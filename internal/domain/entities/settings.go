package entities

import "github.com/shopspring/decimal"

// DepositType selects how the tenant deposit policy is expressed.

type DepositType string

const (
	DepositTypePercent DepositType = "percent"
	DepositTypeFixed   DepositType = "fixed"
)

// Settings is the per-tenant numeric configuration consumed read-only by the
// calculator and the dispatcher. It is fetched through the settings source
// port and cached with a short TTL; the core never mutates it.
type Settings struct {
	CompanyID string `json:"company_id"`

	DefaultTaxRate        decimal.Decimal `json:"default_tax_rate"`
	PartsMarkupPercent    decimal.Decimal `json:"parts_markup_percent"`
	MaterialMarkupPercent decimal.Decimal `json:"material_markup_percent"`

	DepositEnabled     bool            `json:"deposit_enabled"`
	DepositType        DepositType     `json:"deposit_type"`
	DepositPercent     decimal.Decimal `json:"deposit_percent"`
	DepositFixedAmount decimal.Decimal `json:"deposit_fixed_amount"`

	// Notification gates. In-app is the master switch for the bell feed;
	// email and SMS channels are enabled independently.
	InAppNotificationsEnabled bool `json:"in_app_notifications_enabled"`
	InAppQuoteEvents          bool `json:"in_app_quote_events"`
	InAppJobEvents            bool `json:"in_app_job_events"`
	InAppPaymentEvents        bool `json:"in_app_payment_events"`
	InAppInventoryAlerts      bool `json:"in_app_inventory_alerts"`
	InAppInvoiceOverdue       bool `json:"in_app_invoice_overdue"`
	EmailNotificationsEnabled bool `json:"email_notifications_enabled"`
	SMSNotificationsEnabled   bool `json:"sms_notifications_enabled"`

	NotificationEmail string `json:"notification_email"`
	NotificationPhone string `json:"notification_phone"`
}

// DefaultSettings returns the safe fallback used when a tenant has not
// configured anything yet: no tax, no markup, in-app alerts on, outbound
// channels off.
func DefaultSettings(companyID string) Settings {
	return Settings{
		CompanyID:                 companyID,
		DefaultTaxRate:            decimal.Zero,
		PartsMarkupPercent:        decimal.Zero,
		MaterialMarkupPercent:     decimal.Zero,
		InAppNotificationsEnabled: true,
		InAppQuoteEvents:          true,
		InAppJobEvents:            true,
		InAppPaymentEvents:        true,
		InAppInventoryAlerts:      true,
		InAppInvoiceOverdue:       true,
	}
}
