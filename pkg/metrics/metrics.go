// Package metrics defines the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RunsStarted counts engine runs created, by workflow name.
	RunsStarted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "recapd_runs_started_total",
		Help: "Engine runs created, by workflow.",
	}, []string{"workflow"})

	// RunsFinished counts runs reaching a terminal state.
	RunsFinished = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "recapd_runs_finished_total",
		Help: "Engine runs reaching a terminal state, by workflow and state.",
	}, []string{"workflow", "state"})

	// RunDuration observes wall-clock execution time of runs.
	RunDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "recapd_run_duration_seconds",
		Help:    "Wall-clock duration of run executions.",
		Buckets: prometheus.ExponentialBuckets(0.1, 2, 14),
	}, []string{"workflow"})

	// StepsExecuted counts step bodies that ran to an outcome.
	StepsExecuted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "recapd_steps_executed_total",
		Help: "Step executions, by outcome.",
	}, []string{"outcome"})

	// StepsMemoized counts steps satisfied from the trace without running.
	StepsMemoized = promauto.NewCounter(prometheus.CounterOpts{
		Name: "recapd_steps_memoized_total",
		Help: "Step invocations answered from the replay trace.",
	})

	// StepRetries counts transient retry attempts.
	StepRetries = promauto.NewCounter(prometheus.CounterOpts{
		Name: "recapd_step_retries_total",
		Help: "Transient step retry attempts.",
	})

	// OrphansRecovered counts runs re-queued after a lost worker.
	OrphansRecovered = promauto.NewCounter(prometheus.CounterOpts{
		Name: "recapd_orphans_recovered_total",
		Help: "Runs re-queued after their worker stopped heartbeating.",
	})

	// ActiveStreams gauges currently open SSE connections.
	ActiveStreams = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "recapd_sse_active_streams",
		Help: "Open SSE connections.",
	})
)
