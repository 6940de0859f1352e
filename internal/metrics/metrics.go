// Package metrics exposes the codec counters. They are registered with the default Prometheus
// registry and can be scraped by whatever process embeds the codec.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	OpDecode = "decode"
	OpEncode = "encode"
)

var records = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "litetable_scheme_records_total",
	Help: "Records converted by the scheme codec",
}, []string{"op"})

var cells = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "litetable_scheme_cells_total",
	Help: "Cells read or written by the scheme codec",
}, []string{"op"})

var failures = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "litetable_scheme_failures_total",
	Help: "Records the scheme codec failed to convert",
}, []string{"op", "reason"})

// RecordDecoded counts one decoded row of n cells.
func RecordDecoded(n int) {
	records.WithLabelValues(OpDecode).Inc()
	cells.WithLabelValues(OpDecode).Add(float64(n))
}

// RecordEncoded counts one encoded mutation of n cells.
func RecordEncoded(n int) {
	records.WithLabelValues(OpEncode).Inc()
	cells.WithLabelValues(OpEncode).Add(float64(n))
}

// RecordFailure counts a record that failed during op.
func RecordFailure(op, reason string) {
	failures.WithLabelValues(op, reason).Inc()
}

// Records returns the counter for op, for tests and diagnostics.
func Records(op string) prometheus.Counter {
	return records.WithLabelValues(op)
}

// Cells returns the cell counter for op.
func Cells(op string) prometheus.Counter {
	return cells.WithLabelValues(op)
}

// Failures returns the failure counter for op and reason.
func Failures(op, reason string) prometheus.Counter {
	return failures.WithLabelValues(op, reason)
}
