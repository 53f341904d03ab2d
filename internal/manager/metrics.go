package manager

import "github.com/prometheus/client_golang/prometheus"

var (
	loadsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "genhost",
			Subsystem: "manager",
			Name:      "loads_total",
			Help:      "Model loads by result (ok, failed).",
		},
		[]string{"result"},
	)
	releasesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "genhost",
			Subsystem: "manager",
			Name:      "releases_total",
			Help:      "Handle releases by result (ok, error).",
		},
		[]string{"result"},
	)
	fallbacksTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "genhost",
			Subsystem: "manager",
			Name:      "fallbacks_total",
			Help:      "Loads retried with the default attention implementation.",
		},
	)
	loadDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "genhost",
			Subsystem: "manager",
			Name:      "load_duration_seconds",
			Help:      "Wall time of a load including the fallback attempt.",
			Buckets:   []float64{0.5, 1, 2.5, 5, 10, 30, 60, 120, 300, 600},
		},
	)
	residentModels = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "genhost",
			Subsystem: "manager",
			Name:      "resident_models",
			Help:      "Number of resident models (0 or 1).",
		},
	)
)

func init() {
	prometheus.MustRegister(loadsTotal, releasesTotal, fallbacksTotal, loadDuration, residentModels)
}
