package metrics

import (
	"time"

	"github.com/goodnatureofminers/txforge7000-backend/internal/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	utxoIndexRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "txforge7000",
		Subsystem: "utxo_index",
		Name:      "operations_total",
		Help:      "Count of UTXO index operations.",
	}, []string{"operation", "coin", "network", "status"})
	utxoIndexRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "txforge7000",
		Subsystem: "utxo_index",
		Name:      "operation_duration_seconds",
		Help:      "Duration of UTXO index operations.",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 15, 20, 30},
	}, []string{"operation", "coin", "network", "status"})
)

// UtxoIndex tracks metrics for UTXO index operations.
type UtxoIndex struct{}

// NewUtxoIndex creates a UtxoIndex metrics collector.
func NewUtxoIndex() *UtxoIndex {
	return &UtxoIndex{}
}

// Observe records duration and status of an index operation.
func (m UtxoIndex) Observe(operation string, coin model.Coin, network model.Network, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	if coin == "" {
		coin = "unknown"
	}
	if network == "" {
		network = "unknown"
	}

	utxoIndexRequestsTotal.WithLabelValues(operation, string(coin), string(network), status).Inc()
	utxoIndexRequestDuration.WithLabelValues(operation, string(coin), string(network), status).Observe(time.Since(started).Seconds())
}
