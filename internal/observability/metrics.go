package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis errors by operation type.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "aiboard_redis_errors_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// PostViews counts persisted view-count increments.
	PostViews = promauto.NewCounter(prometheus.CounterOpts{
		Name: "aiboard_post_views_total",
		Help: "Total number of post detail reads that incremented a view count",
	})

	// PasswordChecks counts password verifications by outcome ("ok" or "mismatch").
	PasswordChecks = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "aiboard_password_checks_total",
		Help: "Total number of password verifications by outcome",
	}, []string{"outcome"})
)
