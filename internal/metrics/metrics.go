package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	jobsByStatus = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "notifier_jobs",
			Help: "Number of notification jobs per status.",
		},
		[]string{"status"},
	)
	dispatchTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notifier_dispatch_total",
			Help: "Total number of settled dispatch attempts per outcome.",
		},
		[]string{"outcome"},
	)
	lastDispatch = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "notifier_last_dispatch_timestamp_seconds",
			Help: "Unix time of the most recent settled dispatch.",
		},
	)
	claimedBatch = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "notifier_claimed_batch_size",
			Help:    "Number of due jobs claimed per scheduler tick.",
			Buckets: []float64{0, 1, 2, 5, 10, 20, 50, 100},
		},
	)
	leaseReclaims = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "notifier_lease_reclaims_total",
			Help: "Total number of firing jobs swept back to pending.",
		},
	)
)

// Register registers all collectors; call once at startup.
func Register() {
	prometheus.MustRegister(
		jobsByStatus,
		dispatchTotal,
		lastDispatch,
		claimedBatch,
		leaseReclaims,
	)
}

func SetJobs(status string, n float64) {
	jobsByStatus.WithLabelValues(status).Set(n)
}

func IncDispatch(outcome string) {
	dispatchTotal.WithLabelValues(outcome).Inc()
	lastDispatch.SetToCurrentTime()
}

func ObserveClaimedBatch(n int) {
	claimedBatch.Observe(float64(n))
}

func AddLeaseReclaims(n int64) {
	leaseReclaims.Add(float64(n))
}

// Handler exposes the Prometheus scrape endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
