package metrics

import (
	"time"

	"github.com/piratescan/arrr-activity-backend/internal/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	scannerProcessBlockTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "piratescan",
		Subsystem: "scanner",
		Name:      "process_block_total",
		Help:      "Count of processed blocks.",
	}, []string{"status"})

	scannerProcessBlockDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "piratescan",
		Subsystem: "scanner",
		Name:      "process_block_duration_seconds",
		Help:      "Duration of processing a single block.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"status"})

	scannerFlushTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "piratescan",
		Subsystem: "scanner",
		Name:      "flush_total",
		Help:      "Count of classification batch flushes.",
	}, []string{"status"})

	scannerFlushDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "piratescan",
		Subsystem: "scanner",
		Name:      "flush_duration_seconds",
		Help:      "Duration of flushing a classification batch.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"status"})

	scannerFlushSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "piratescan",
		Subsystem: "scanner",
		Name:      "flush_size",
		Help:      "Number of classified transactions per flush.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 14), // 1..8192
	}, []string{})

	scannerClassifiedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "piratescan",
		Subsystem: "scanner",
		Name:      "classified_total",
		Help:      "Count of classified transactions by bucket.",
	}, []string{"tx_type"})
)

// Scanner tracks metrics for the block scan pipeline.
type Scanner struct{}

// NewScanner constructs a Scanner metrics collector.
func NewScanner() *Scanner {
	return &Scanner{}
}

// ObserveProcessBlock records processing of a single block.
func (m Scanner) ObserveProcessBlock(err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	scannerProcessBlockTotal.WithLabelValues(status).Inc()
	scannerProcessBlockDuration.WithLabelValues(status).Observe(time.Since(started).Seconds())
}

// ObserveFlush records persisting a batch of classified transactions.
func (m Scanner) ObserveFlush(err error, txs int, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	scannerFlushTotal.WithLabelValues(status).Inc()
	scannerFlushDuration.WithLabelValues(status).Observe(time.Since(started).Seconds())
	scannerFlushSize.WithLabelValues().Observe(float64(txs))
}

// ObserveClassified counts a classified transaction by bucket.
func (m Scanner) ObserveClassified(txType model.TxType) {
	scannerClassifiedTotal.WithLabelValues(string(txType)).Inc()
}
