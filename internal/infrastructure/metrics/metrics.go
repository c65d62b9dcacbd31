package metrics

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestsTotal counts handled HTTP requests by method, route and status.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mentry_http_requests_total",
			Help: "Total number of HTTP requests handled.",
		},
		[]string{"method", "route", "status"},
	)

	// EngagementTogglesTotal counts like/favorite toggle attempts by action and
	// whether they changed state.
	EngagementTogglesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mentry_engagement_toggles_total",
			Help: "Total number of engagement toggle operations.",
		},
		[]string{"action", "changed"},
	)

	// WebhookEventsTotal counts payment provider webhook deliveries by outcome.
	WebhookEventsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mentry_webhook_events_total",
			Help: "Total number of payment webhook deliveries.",
		},
		[]string{"outcome"},
	)
)

// RequestCounter is a Gin middleware recording per-route request counts.
func RequestCounter() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		HTTPRequestsTotal.WithLabelValues(
			c.Request.Method, route, strconv.Itoa(c.Writer.Status()),
		).Inc()
	}
}

// ObserveToggle records one engagement toggle.
func ObserveToggle(action string, changed bool) {
	EngagementTogglesTotal.WithLabelValues(action, strconv.FormatBool(changed)).Inc()
}
