// Package notify implements the outbound messaging channels used for booking
// confirmations. Sends are best-effort: a Notifier reports delivery as a
// boolean and must never fail the booking flow.
package notify

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Notifier is the capability to push one text message to one recipient.
// Implementations bound their own timeouts; Send returns whether the channel
// reported the message as delivered.
type Notifier interface {
	Send(ctx context.Context, to, text string) bool
}

var sentTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "notifications_sent_total",
	Help: "Outbound notification attempts by channel and delivery outcome.",
}, []string{"channel", "delivered"})

func observe(channel string, delivered bool) {
	outcome := "false"
	if delivered {
		outcome = "true"
	}
	sentTotal.WithLabelValues(channel, outcome).Inc()
}
