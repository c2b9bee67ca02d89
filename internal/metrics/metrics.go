// Package metrics exposes Prometheus collectors for quotes and HTTP traffic.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/davidbz/estimator/internal/domain"
)

const (
	namespace = "estimator"

	quotesTotal          = "quotes_total"
	quoteRejectionsTotal = "quote_rejections_total"
	quoteDevelopmentCost = "quote_development_cost_usd"
	quoteDeadlineWeeks   = "quote_deadline_weeks"

	// Labels
	projectTypeLabel = "project_type"
	complexityLabel  = "complexity"
	cachedLabel      = "cached"
	fieldLabel       = "field"
)

//nolint:gochecknoglobals // Bucket layout is static configuration
var (
	developmentCostBuckets = []float64{2500, 5000, 10000, 20000, 40000, 80000}
	deadlineWeeksBuckets   = []float64{1, 2, 4, 8, 12, 16, 26}
)

// QuoteMetrics implements domain.QuoteRecorder with Prometheus collectors.
type QuoteMetrics struct {
	quotes          *prometheus.CounterVec
	rejections      *prometheus.CounterVec
	developmentCost *prometheus.HistogramVec
	deadlineWeeks   *prometheus.HistogramVec
}

// NewQuoteMetrics creates and registers the quote collectors.
func NewQuoteMetrics(reg prometheus.Registerer) (*QuoteMetrics, error) {
	m := &QuoteMetrics{
		quotes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      quotesTotal,
				Help:      "number of quotes returned, partitioned by project type, complexity and cache outcome",
			},
			[]string{projectTypeLabel, complexityLabel, cachedLabel},
		),
		rejections: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      quoteRejectionsTotal,
				Help:      "number of estimate inputs rejected by validation, by first failing field",
			},
			[]string{fieldLabel},
		),
		developmentCost: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      quoteDevelopmentCost,
				Help:      "distribution of quoted development cost in USD",
				Buckets:   developmentCostBuckets,
			},
			[]string{projectTypeLabel},
		),
		deadlineWeeks: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      quoteDeadlineWeeks,
				Help:      "distribution of quoted delivery time in weeks",
				Buckets:   deadlineWeeksBuckets,
			},
			[]string{projectTypeLabel},
		),
	}

	for _, c := range []prometheus.Collector{m.quotes, m.rejections, m.developmentCost, m.deadlineWeeks} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// RecordQuote observes a produced quote.
func (m *QuoteMetrics) RecordQuote(quote *domain.Quote) {
	if quote == nil {
		return
	}

	projectType := string(quote.Input.ProjectType)

	m.quotes.With(prometheus.Labels{
		projectTypeLabel: projectType,
		complexityLabel:  string(quote.Input.Complexity),
		cachedLabel:      strconv.FormatBool(quote.Cached),
	}).Inc()

	// Cache hits repeat an earlier observation.
	if quote.Cached {
		return
	}

	m.developmentCost.With(prometheus.Labels{projectTypeLabel: projectType}).
		Observe(float64(quote.Result.DevelopmentCost))
	m.deadlineWeeks.With(prometheus.Labels{projectTypeLabel: projectType}).
		Observe(float64(quote.Result.DeadlineWeeks))
}

// RecordRejection counts an input rejected by validation.
func (m *QuoteMetrics) RecordRejection(field string) {
	m.rejections.With(prometheus.Labels{fieldLabel: field}).Inc()
}
