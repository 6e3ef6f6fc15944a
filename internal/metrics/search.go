package metrics

import "github.com/prometheus/client_golang/prometheus"

// Search outcome label values.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

var (
	// SearchesTotal counts search executions by outcome.
	SearchesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "casamatch",
			Name:      "searches_total",
			Help:      "Total number of listing searches by outcome",
		},
		[]string{"outcome"},
	)

	// SearchCandidates tracks the candidate set size fetched per search.
	SearchCandidates = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "casamatch",
			Name:      "search_candidates",
			Help:      "Candidate documents fetched from the store per search",
			Buckets:   []float64{0, 10, 25, 50, 100, 250, 500},
		},
	)

	// LeadScores tracks computed lead quality scores.
	LeadScores = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "casamatch",
			Name:      "lead_scores",
			Help:      "Lead quality scores computed by the agent assistant",
			Buckets:   []float64{20, 30, 40, 50, 60, 70, 80, 90, 95},
		},
	)
)

func init() {
	prometheus.MustRegister(SearchesTotal)
	prometheus.MustRegister(SearchCandidates)
	prometheus.MustRegister(LeadScores)
}
