// Package metrics provides optional, nil-safe instrumentation for CDR
// encode/decode activity.
//
// # Dependencies
//
//   - github.com/prometheus/client_golang/prometheus
//
// Metrics are disabled until InitRegistry is called; every exported
// constructor returns nil in that state, and every recording method on a
// nil *Codec is a no-op, so instrumentation costs nothing for callers who
// never opt in.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	mu       sync.Mutex
	enabled  bool
	registry *prometheus.Registry
)

// InitRegistry turns on metrics collection and returns the Prometheus
// registry components register against. Safe to call more than once; the
// first call wins.
func InitRegistry() *prometheus.Registry {
	mu.Lock()
	defer mu.Unlock()
	if registry == nil {
		registry = prometheus.NewRegistry()
		enabled = true
	}
	return registry
}

// IsEnabled reports whether InitRegistry has been called.
func IsEnabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return enabled
}

// Codec counts encode/decode calls and bytes moved for one Codec
// instance's lifetime. A nil *Codec is always safe to call methods on.
type Codec struct {
	calls *prometheus.CounterVec
	bytes *prometheus.CounterVec
}

// NewCodecMetrics returns a Codec metrics recorder, or nil if metrics are
// not enabled — callers should pass the nil value through unconditionally,
// exactly as marmos91-dittofs/pkg/metrics does for its cache and NFS
// counters.
func NewCodecMetrics() *Codec {
	if !IsEnabled() {
		return nil
	}
	c := &Codec{
		calls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "cdr",
			Name:      "codec_calls_total",
			Help:      "Number of CDR serialize/deserialize calls by operation and outcome.",
		}, []string{"op", "outcome"}),
		bytes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "cdr",
			Name:      "codec_bytes_total",
			Help:      "Bytes moved by CDR serialize/deserialize calls, by operation.",
		}, []string{"op"}),
	}
	registry.MustRegister(c.calls, c.bytes)
	return c
}

// Observe records one call to op, its outcome ("ok" or "error"), and how
// many bytes it moved. Safe to call on a nil receiver.
func (c *Codec) Observe(op string, n int, err error) {
	if c == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	c.calls.WithLabelValues(op, outcome).Inc()
	if n > 0 {
		c.bytes.WithLabelValues(op).Add(float64(n))
	}
}
