package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kisanconnect_http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "kisanconnect_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	ChatTurnsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kisanconnect_chat_turns_total",
			Help: "Total number of processed chat turns by intent and language.",
		},
		[]string{"intent", "language"},
	)

	GuardrailHitsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "kisanconnect_guardrail_hits_total",
			Help: "Total number of chemical dosage requests blocked for missing farm size.",
		},
	)

	DiseaseResultsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kisanconnect_disease_results_total",
			Help: "Total number of interpreted disease model results by canonical label.",
		},
		[]string{"label"},
	)

	CollaboratorFailuresTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kisanconnect_collaborator_failures_total",
			Help: "Total number of degraded external collaborator calls.",
		},
		[]string{"collaborator"},
	)
)

func init() {
	prometheus.MustRegister(
		HTTPRequestsTotal,
		HTTPRequestDuration,
		ChatTurnsTotal,
		GuardrailHitsTotal,
		DiseaseResultsTotal,
		CollaboratorFailuresTotal,
	)
}
