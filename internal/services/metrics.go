package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	chatReplies = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "portfolio",
		Subsystem: "chat",
		Name:      "replies_total",
		Help:      "Chat replies broken down by the source that produced them.",
	}, []string{"source"})

	chatAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "portfolio",
		Subsystem: "chat",
		Name:      "attempts_total",
		Help:      "Upstream model attempts broken down by model and outcome.",
	}, []string{"model", "result"})

	chatAttemptLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "portfolio",
		Subsystem: "chat",
		Name:      "attempt_duration_seconds",
		Help:      "Latency of single upstream model attempts.",
		Buckets:   []float64{0.25, 0.5, 1, 2, 4, 8, 15},
	}, []string{"model"})

	contactSubmissions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "portfolio",
		Subsystem: "contact",
		Name:      "submissions_total",
		Help:      "Contact form submissions broken down by outcome.",
	}, []string{"result"})
)

func recordAttempt(model, result string, latency time.Duration) {
	chatAttempts.WithLabelValues(model, result).Inc()
	chatAttemptLatency.WithLabelValues(model).Observe(latency.Seconds())
}
