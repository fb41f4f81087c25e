// Package metrics exposes prometheus collectors for pipeline and client operations.
package metrics

import (
	"time"

	"github.com/goodnatureofminers/txforge7000-backend/internal/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	constructionStagesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "txforge7000",
		Subsystem: "construction",
		Name:      "operations_total",
		Help:      "Count of construction stage invocations.",
	}, []string{"operation", "coin", "network", "status"})
	constructionStageDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "txforge7000",
		Subsystem: "construction",
		Name:      "operation_duration_seconds",
		Help:      "Duration of construction stage invocations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "coin", "network", "status"})
)

// ConstructionStages tracks metrics for pipeline stage invocations.
type ConstructionStages struct {
	coin    model.Coin
	network model.Network
}

// NewConstructionStages constructs a metrics collector for pipeline stages.
func NewConstructionStages(coin model.Coin, network model.Network) *ConstructionStages {
	if coin == "" {
		coin = "unknown"
	}
	if network == "" {
		network = "unknown"
	}
	return &ConstructionStages{coin: coin, network: network}
}

// Observe records a single stage invocation outcome and duration.
func (m ConstructionStages) Observe(operation string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	constructionStagesTotal.WithLabelValues(operation, string(m.coin), string(m.network), status).Inc()
	constructionStageDuration.WithLabelValues(operation, string(m.coin), string(m.network), status).Observe(time.Since(started).Seconds())
}
