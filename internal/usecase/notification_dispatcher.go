package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"fieldserve/internal/domain/entities"
	"fieldserve/internal/usecase/interfaces"
	"fieldserve/pkg/metrics"
)

const (
	// DedupWindow is the span within which a repeat notification of the same
	// category/related record is suppressed.
	DedupWindow = 24 * time.Hour

	// eventRetention drives the store-side TTL after which in-app events are
	// eligible for expiry.
	eventRetention = 30 * 24 * time.Hour
)

// DomainEvent is the dispatcher's input: something that already happened and
// may deserve a tenant-facing alert.
type DomainEvent struct {
	CompanyID string
	Category  entities.NotificationCategory
	Severity  entities.NotificationSeverity
	RelatedID string
	Title     string
	Message   string
}

// NotificationDispatcher fans committed domain events out to the in-app feed
// and the email/SMS transports, applying per-tenant gating and the 24h
// de-duplication window. Every path in here is best effort: a failure is
// logged and counted, never propagated back to the state machine.
type NotificationDispatcher struct {
	events   interfaces.INotificationEventRepository
	deduper  interfaces.IDeduper
	settings interfaces.ISettingsSource
	email    interfaces.ITransport
	sms      interfaces.ITransport
	logger   *zap.Logger
	now      func() time.Time
}

// INotificationFeed serves the tenant's in-app bell feed.

type INotificationFeed interface {
	ListByCompany(ctx context.Context, companyID string, limit int) ([]entities.NotificationEvent, error)
}

var (
	_ interfaces.IEventDispatcher = (*NotificationDispatcher)(nil)
	_ INotificationFeed           = (*NotificationDispatcher)(nil)
)

func NewNotificationDispatcher(
	events interfaces.INotificationEventRepository,
	deduper interfaces.IDeduper,
	settings interfaces.ISettingsSource,
	email interfaces.ITransport,
	sms interfaces.ITransport,
	logger *zap.Logger,
) *NotificationDispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NotificationDispatcher{
		events:   events,
		deduper:  deduper,
		settings: settings,
		email:    email,
		sms:      sms,
		logger:   logger,
		now:      time.Now,
	}
}

// StatusChanged translates a committed work order transition into a domain
// event and dispatches it.
func (d *NotificationDispatcher) StatusChanged(ctx context.Context, w entities.WorkOrder, from, to entities.Status) {
	title, message, severity := statusChangeCopy(w, from, to)
	d.Dispatch(ctx, DomainEvent{
		CompanyID: w.CompanyID,
		Category:  statusCategory(to),
		Severity:  severity,
		RelatedID: w.ID,
		Title:     title,
		Message:   message,
	})
}

// InventoryLow raises an inventory alert for a stock item at or under its
// reorder point.
func (d *NotificationDispatcher) InventoryLow(ctx context.Context, companyID, itemID, itemName string, available, reorderPoint int) {
	severity := entities.SeverityInfo
	title := "Inventory Update"
	if available <= 0 {
		severity = entities.SeverityWarning
		title = "Out of Stock"
	} else if available <= reorderPoint {
		severity = entities.SeverityWarning
		title = "Low Inventory"
	}
	d.Dispatch(ctx, DomainEvent{
		CompanyID: companyID,
		Category:  entities.CategoryInventory,
		Severity:  severity,
		RelatedID: itemID,
		Title:     title,
		Message:   inventoryLowMessage(itemName, available, reorderPoint),
	})
}

// InvoiceOverdue raises a critical alert for an invoice past its due date.
func (d *NotificationDispatcher) InvoiceOverdue(ctx context.Context, companyID, invoiceID, invoiceNumber string, daysOverdue int) {
	d.Dispatch(ctx, DomainEvent{
		CompanyID: companyID,
		Category:  entities.CategoryInvoiceOverdue,
		Severity:  entities.SeverityCritical,
		RelatedID: invoiceID,
		Title:     "Invoice Overdue",
		Message:   invoiceOverdueMessage(invoiceNumber, daysOverdue),
	})
}

// Dispatch applies gating and de-duplication, creates the in-app event and
// hands rendered email/SMS copies to the transports.
func (d *NotificationDispatcher) Dispatch(ctx context.Context, ev DomainEvent) {
	if !ev.Category.Valid() {
		d.logger.Warn("dropping event with unknown category",
			zap.String("category", string(ev.Category)),
			zap.String("related_id", ev.RelatedID))
		return
	}
	if ev.Severity == "" {
		ev.Severity = entities.SeverityInfo
	}

	settings, err := d.settings.Get(ctx, ev.CompanyID)
	if err != nil {
		d.logger.Warn("notification settings lookup failed, using defaults",
			zap.String("company_id", ev.CompanyID), zap.Error(err))
		settings = entities.DefaultSettings(ev.CompanyID)
	}

	// One acquisition covers every channel: a suppressed event produces
	// neither an in-app entry nor outbound mail, so repeat transitions cannot
	// storm any channel.
	first, err := d.deduper.AcquireOnce(ctx, entities.NotificationDedupKey(ev.CompanyID, ev.Category, ev.RelatedID), DedupWindow)
	if err != nil {
		// Deduper outage must not silence alerts; treat as first occurrence.
		d.logger.Warn("dedup check failed, allowing notification",
			zap.String("related_id", ev.RelatedID), zap.Error(err))
		first = true
	}
	if !first {
		metrics.RecordNotification(string(ev.Category), "suppressed")
		return
	}

	if d.inAppEnabled(settings, ev.Category) {
		d.createInApp(ctx, ev)
	} else {
		metrics.RecordNotification(string(ev.Category), "gated")
	}

	if settings.EmailNotificationsEnabled && d.email != nil {
		subject, body := renderEmail(ev)
		d.deliver(ctx, d.email, interfaces.OutboundMessage{
			Channel:   interfaces.ChannelEmail,
			CompanyID: ev.CompanyID,
			Recipient: settings.NotificationEmail,
			Subject:   subject,
			Body:      body,
		})
	}
	if settings.SMSNotificationsEnabled && d.sms != nil {
		d.deliver(ctx, d.sms, interfaces.OutboundMessage{
			Channel:   interfaces.ChannelSMS,
			CompanyID: ev.CompanyID,
			Recipient: settings.NotificationPhone,
			Body:      renderSMS(ev),
		})
	}
}

func (d *NotificationDispatcher) inAppEnabled(s entities.Settings, category entities.NotificationCategory) bool {
	if !s.InAppNotificationsEnabled {
		return false
	}
	switch category {
	case entities.CategoryQuote:
		return s.InAppQuoteEvents
	case entities.CategoryJob:
		return s.InAppJobEvents
	case entities.CategoryPayment:
		return s.InAppPaymentEvents
	case entities.CategoryInventory:
		return s.InAppInventoryAlerts
	case entities.CategoryInvoiceOverdue:
		return s.InAppInvoiceOverdue
	}
	return true
}

func (d *NotificationDispatcher) createInApp(ctx context.Context, ev DomainEvent) {
	now := d.now().UTC()
	_, err := d.events.Create(ctx, entities.NotificationEvent{
		ID:        uuid.NewString(),
		CompanyID: ev.CompanyID,
		Category:  ev.Category,
		Severity:  ev.Severity,
		RelatedID: ev.RelatedID,
		Title:     ev.Title,
		Message:   ev.Message,
		CreatedAt: now,
		ExpiresAt: now.Add(eventRetention),
	})
	if err != nil {
		metrics.RecordNotification(string(ev.Category), "failed")
		d.logger.Error("failed to store in-app notification",
			zap.String("company_id", ev.CompanyID),
			zap.String("category", string(ev.Category)),
			zap.Error(err))
		return
	}
	metrics.RecordNotification(string(ev.Category), "created")
}

func (d *NotificationDispatcher) deliver(ctx context.Context, transport interfaces.ITransport, msg interfaces.OutboundMessage) {
	if err := transport.Send(ctx, msg); err != nil {
		metrics.RecordDelivery(string(msg.Channel), "failed")
		d.logger.Error("notification delivery failed",
			zap.String("channel", string(msg.Channel)),
			zap.String("company_id", msg.CompanyID),
			zap.Error(err))
		return
	}
	metrics.RecordDelivery(string(msg.Channel), "sent")
}

// ListByCompany returns the tenant's most recent in-app events, newest first.
func (d *NotificationDispatcher) ListByCompany(ctx context.Context, companyID string, limit int) ([]entities.NotificationEvent, error) {
	if companyID == "" {
		return nil, ErrInvalidCompanyID
	}
	return d.events.ListByCompany(ctx, companyID, limit)
}

// statusCategory maps a target status to the notification category: job-stage
// statuses alert the jobs feed, everything else the quotes feed.
func statusCategory(to entities.Status) entities.NotificationCategory {
	switch to {
	case entities.StatusScheduled, entities.StatusInProgress, entities.StatusCompleted:
		return entities.CategoryJob
	}
	return entities.CategoryQuote
}
