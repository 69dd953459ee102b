// Package metrics exposes Prometheus collectors for the assessment pipeline.
package metrics

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	AssessmentsStarted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "assessment_started_total",
		Help: "Total assessments submitted",
	})

	AssessmentsCompleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "assessment_completed_total",
		Help: "Total assessments scored successfully",
	})

	AssessmentsFailed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "assessment_failed_total",
		Help: "Total assessments rejected, by error code",
	}, []string{"code"})

	ScoringDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "assessment_scoring_duration_seconds",
		Help:    "Duration of the scoring and report pipeline",
		Buckets: prometheus.DefBuckets,
	})

	ExportsGenerated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "assessment_exports_total",
		Help: "Total export downloads served, by format",
	}, []string{"format"})
)

// Handler serves the Prometheus scrape endpoint through gin.
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
