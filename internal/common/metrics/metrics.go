// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	WorkerJobsCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "worker_jobs_completed_total",
			Help: "Total number of jobs completed by worker",
		},
		[]string{"task_type"},
	)

	WorkerJobsFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "worker_jobs_failed_total",
			Help: "Total number of jobs failed by worker",
		},
		[]string{"task_type", "error_code"},
	)

	WorkerJobDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "worker_job_duration_seconds",
			Help: "Duration of job processing in seconds",
		},
		[]string{"task_type"},
	)

	WorkerJobsActive = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "worker_jobs_active",
			Help: "Number of active jobs per worker",
		},
		[]string{"task_type"},
	)

	ExtractionsMatched = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "extraction_matches_total",
			Help: "Total number of utterances matched, by concept",
		},
		[]string{"concept"},
	)

	ExtractionsUnmatched = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "extraction_unmatched_total",
			Help: "Total number of utterances with no concept match and no field hint",
		},
	)

	IntentsClassified = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "intents_classified_total",
			Help: "Total number of intents classified, by intent key",
		},
		[]string{"intent"},
	)

	CatalogSearches = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "catalog_searches_total",
			Help: "Total number of catalog search queries",
		},
	)

	EligibilityFilters = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "eligibility_filters_total",
			Help: "Total number of eligibility filter evaluations",
		},
	)
)
