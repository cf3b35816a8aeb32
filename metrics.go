package mustache

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	renderTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mustache_render_total",
			Help: "Number of Execute/Unexecute calls, by operation and outcome.",
		},
		[]string{"op", "outcome"},
	)
	renderSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "mustache_render_seconds",
			Help: "Latency of Execute/Unexecute calls, by operation.",
		},
		[]string{"op"},
	)
)

var registerOnce sync.Once

// registerMetrics is called lazily, on first use, so importing this
// package without ever exercising the metered paths never touches the
// default registry. sync.Once makes two goroutines racing to render
// for the first time safe: only one calls MustRegister.
func registerMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(renderTotal, renderSeconds)
	})
}

// observeRender records one Execute/Unexecute call's outcome and
// duration under op ("execute" or "unexecute").
func observeRender(op string, start time.Time, err error) {
	registerMetrics()
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	renderTotal.WithLabelValues(op, outcome).Inc()
	renderSeconds.WithLabelValues(op).Observe(time.Since(start).Seconds())
}
