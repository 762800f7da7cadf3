package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	TransitionCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "workorder_transitions_total",
			Help: "Total number of work order status transitions",
		},
		[]string{"from", "to", "outcome"}, // outcome: committed, rejected, incomplete, aborted, noop
	)

	NotificationCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notifications_total",
			Help: "Total number of notification events handled",
		},
		[]string{"category", "outcome"}, // outcome: created, suppressed, gated, failed
	)

	OutboundDeliveryCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notification_deliveries_total",
			Help: "Total number of email/SMS hand-offs to transports",
		},
		[]string{"channel", "status"}, // status: sent, failed
	)
)

func RecordTransition(from, to, outcome string) {
	TransitionCount.WithLabelValues(from, to, outcome).Inc()
}

func RecordNotification(category, outcome string) {
	NotificationCount.WithLabelValues(category, outcome).Inc()
}

func RecordDelivery(channel, status string) {
	OutboundDeliveryCount.WithLabelValues(channel, status).Inc()
}
