package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"log"
	"net/http"
	"time"
)

var (
	SentRemindersGauge = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "sent_reminders_total",
			Help: "Total number of reminder events published",
		},
	)

	RemindersSentCounterVec = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reminders_sent_for_time",
			Help: "Number of reminder events published, with timestamp as a label",
		},
		[]string{"timestamp"},
	)
)

func Init() {
	prometheus.MustRegister(SentRemindersGauge)
	prometheus.MustRegister(RemindersSentCounterVec)
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

func SendReminders(count int) {
	SentRemindersGauge.Add(float64(count))
	RemindersSentCounterVec.WithLabelValues(time.Now().Format("2006-01-02 15:04:05")).Add(float64(count))
}
