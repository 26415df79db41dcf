package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "scholarhub_http_requests_total", Help: "Total HTTP requests by method, route and status"},
		[]string{"method", "route", "status"},
	)
	ApplicationsSubmitted = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "scholarhub_applications_submitted_total", Help: "Total student applications submitted"},
	)
	SignupsCompleted = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "scholarhub_signups_total", Help: "Total completed signups"},
	)
)

func Register() {
	prometheus.MustRegister(HTTPRequests, ApplicationsSubmitted, SignupsCompleted)
}
