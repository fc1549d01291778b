package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "telehealth_http_requests_total",
			Help: "Total HTTP requests handled, by method, route and status",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "telehealth_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	ConnectionRequestsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "telehealth_connection_requests_created_total",
			Help: "Connection requests created by patients",
		},
	)

	ConnectionStatusUpdates = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "telehealth_connection_status_updates_total",
			Help: "Connection request status transitions, by new status",
		},
		[]string{"status"},
	)

	ChatMessagesSent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "telehealth_chat_messages_sent_total",
			Help: "Chat messages appended to channels",
		},
	)

	NotificationsSent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "telehealth_notifications_sent_total",
			Help: "Slack notifications attempted, by outcome",
		},
		[]string{"outcome"},
	)
)
