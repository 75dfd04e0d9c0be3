package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpReqTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "slot_game",
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"route", "method", "status"},
	)

	httpReqDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "slot_game",
			Name:      "http_request_duration_ms",
			Help:      "HTTP request duration in ms",
			Buckets:   prometheus.ExponentialBuckets(5, 2, 10),
		},
		[]string{"route", "method"},
	)
)

// RecordHTTP - route должен быть шаблоном маршрута, а не сырым путём
func RecordHTTP(route, method string, status int, started time.Time) {
	httpReqDuration.WithLabelValues(route, method).Observe(float64(time.Since(started).Milliseconds()))
	httpReqTotal.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
}

func Handler() http.Handler {
	return promhttp.Handler()
}
