package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"log"
	"net/http"
)

var (
	NotesCreatedCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "notes_created_total",
			Help: "Total number of notes created",
		},
	)

	NotesDeletedCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "notes_deleted_total",
			Help: "Total number of notes deleted",
		},
	)

	ResponseTimeHistogram = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "response_time_seconds",
			Help:    "Response time in seconds",
			Buckets: prometheus.LinearBuckets(0.1, 0.1, 10),
		},
	)
)

func Init() {
	prometheus.MustRegister(NotesCreatedCounter)
	prometheus.MustRegister(NotesDeletedCounter)
	prometheus.MustRegister(ResponseTimeHistogram)
}

func StartMetricsServer(port string) {
	http.Handle("/metrics", promhttp.Handler())
	go func() {
		log.Printf("metrics server running on %s", port)
		if err := http.ListenAndServe(port, nil); err != nil {
			log.Fatalf("failed to start metrics server: %v", err)
		}
	}()
}
