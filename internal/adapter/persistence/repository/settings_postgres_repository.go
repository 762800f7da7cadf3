package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"fieldserve/internal/domain/entities"
	"fieldserve/internal/usecase/interfaces"
)

// SettingsPostgresRepository reads the per-tenant configuration row. Settings
// are written by the tenant admin surface, which lives outside this service;
// here they are read-only input for pricing and notification gating.

type SettingsPostgresRepository struct {
	pool *pgxpool.Pool
}

var _ interfaces.ISettingsSource = (*SettingsPostgresRepository)(nil)

func NewSettingsPostgresRepository(pool *pgxpool.Pool) *SettingsPostgresRepository {
	return &SettingsPostgresRepository{pool: pool}
}

// Get returns the tenant settings, falling back to DefaultSettings when the
// tenant has no row yet. Only infrastructure errors surface to the caller.
func (r *SettingsPostgresRepository) Get(ctx context.Context, companyID string) (entities.Settings, error) {
	var s entities.Settings
	err := r.pool.QueryRow(ctx, `
		SELECT company_id,
		       default_tax_rate, parts_markup_percent, material_markup_percent,
		       deposit_enabled, deposit_type, deposit_percent, deposit_fixed_amount,
		       in_app_notifications_enabled, in_app_quote_events, in_app_job_events,
		       in_app_payment_events, in_app_inventory_alerts, in_app_invoice_overdue,
		       email_notifications_enabled, sms_notifications_enabled,
		       notification_email, notification_phone
		FROM company_settings
		WHERE company_id = $1`, companyID).Scan(
		&s.CompanyID,
		&s.DefaultTaxRate, &s.PartsMarkupPercent, &s.MaterialMarkupPercent,
		&s.DepositEnabled, &s.DepositType, &s.DepositPercent, &s.DepositFixedAmount,
		&s.InAppNotificationsEnabled, &s.InAppQuoteEvents, &s.InAppJobEvents,
		&s.InAppPaymentEvents, &s.InAppInventoryAlerts, &s.InAppInvoiceOverdue,
		&s.EmailNotificationsEnabled, &s.SMSNotificationsEnabled,
		&s.NotificationEmail, &s.NotificationPhone,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return entities.DefaultSettings(companyID), nil
	}
	if err != nil {
		return entities.Settings{}, err
	}
	return s, nil
}
