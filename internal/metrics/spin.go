package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	VariantLocal   = "local"
	VariantBackend = "backend"
)

var (
	spinTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "slot_game",
			Name:      "spins_total",
			Help:      "Total spins by variant and outcome",
		},
		[]string{"variant", "outcome"},
	)

	spinDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "slot_game",
			Name:      "spin_duration_ms",
			Help:      "Spin processing duration in milliseconds",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
		},
		[]string{"variant"},
	)

	codeVerifyTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "slot_game",
			Name:      "code_verifications_total",
			Help:      "Redemption code verifications by variant and verdict",
		},
		[]string{"variant", "valid"},
	)
)

// RecordSpin - outcome пустой, если спин завершился ошибкой
func RecordSpin(variant, outcome string, started time.Time) {
	if outcome == "" {
		outcome = "failed"
	}
	spinTotal.WithLabelValues(variant, outcome).Inc()
	spinDuration.WithLabelValues(variant).Observe(float64(time.Since(started).Milliseconds()))
}

func RecordCodeVerification(variant string, valid bool) {
	v := "false"
	if valid {
		v = "true"
	}
	codeVerifyTotal.WithLabelValues(variant, v).Inc()
}
