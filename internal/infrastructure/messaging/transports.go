package messaging

import (
	"context"

	"fieldserve/internal/usecase/interfaces"
)

// QueueTransport is an ITransport that enqueues the rendered message on a
// fixed queue. One instance per channel keeps routing declarative.

type QueueTransport struct {
	publisher *AMQPPublisher
	queue     string
}

var _ interfaces.ITransport = (*QueueTransport)(nil)

func NewEmailTransport(publisher *AMQPPublisher, queue string) *QueueTransport {
	return &QueueTransport{publisher: publisher, queue: queue}
}

func NewSMSTransport(publisher *AMQPPublisher, queue string) *QueueTransport {
	return &QueueTransport{publisher: publisher, queue: queue}
}

func (t *QueueTransport) Send(ctx context.Context, msg interfaces.OutboundMessage) error {
	return t.publisher.Publish(ctx, t.queue, msg)
}
