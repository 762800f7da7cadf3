package interfaces

import (
	"context"
	"time"

	"fieldserve/internal/domain/entities"
)

// INotificationEventRepository stores write-once in-app notification events.

type INotificationEventRepository interface {
	Create(ctx context.Context, e entities.NotificationEvent) (entities.NotificationEvent, error)
	ListByCompany(ctx context.Context, companyID string, limit int) ([]entities.NotificationEvent, error)
}

// IDeduper is the de-duplication window check. AcquireOnce atomically marks a
// key for ttl and reports whether this was the first occurrence; false means
// a matching notification already exists inside the window and the new one
// must be suppressed.

type IDeduper interface {
	AcquireOnce(ctx context.Context, key string, ttl time.Duration) (bool, error)
}

// OutboundChannel is the delivery channel of a rendered notification.

type OutboundChannel string

const (
	ChannelEmail OutboundChannel = "EMAIL"
	ChannelSMS   OutboundChannel = "SMS"
)

// OutboundMessage is a rendered notification handed to a transport. Literal
// delivery (SMTP, carrier API) happens outside this service.
type OutboundMessage struct {
	Channel   OutboundChannel `json:"channel"`
	CompanyID string          `json:"company_id"`
	Recipient string          `json:"recipient"`
	Subject   string          `json:"subject"`
	Body      string          `json:"body"`
}

// ITransport hands a rendered message to the delivery collaborator. Errors
// are logged by the dispatcher and never unwind a committed transition.

type ITransport interface {
	Send(ctx context.Context, msg OutboundMessage) error
}
