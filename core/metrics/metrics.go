// Package metrics exposes Prometheus collectors for injection runs.
package metrics

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "whitecore"

// Outcome labels.
const (
	LabelKind   = "kind"
	LabelStatus = "status"
	LabelIssue  = "issue"
)

var (
	// RunsTotal counts injection passes by final status.
	RunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Injection passes by result.",
		},
		[]string{LabelStatus},
	)

	// OutcomesTotal counts per item and per trader outcomes.
	OutcomesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "outcomes_total",
			Help:      "Item and trader outcomes by status.",
		},
		[]string{LabelKind, LabelStatus},
	)

	// MergeIssuesTotal counts attribute merge issues by kind.
	MergeIssuesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "merge_issues_total",
			Help:      "Attribute merge issues by kind.",
		},
		[]string{LabelIssue},
	)

	// RunDuration observes the duration of a full pass.
	RunDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "run_duration_seconds",
			Help:      "Duration of an injection pass, loading included.",
			Buckets:   prometheus.DefBuckets,
		},
	)
)

// Handler serves the default registry on a Fiber route.
func Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}
