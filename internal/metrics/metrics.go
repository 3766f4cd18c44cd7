package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	BotUpdates = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "clubbot", Name: "updates_total", Help: "Processed telegram updates",
	})
	HandlerErrors = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "clubbot", Name: "handler_errors_total", Help: "Handler errors",
	})
	BroadcastSent = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "clubbot", Name: "broadcast_sent_total", Help: "Broadcast messages delivered",
	})
	PendingActivities = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "clubbot", Name: "pending_activities", Help: "Activities waiting for review",
	})
	sheetsCalls = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "clubbot", Name: "sheets_call_seconds", Help: "Sheets API call latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"op"})
	sheetsErrors = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "clubbot", Name: "sheets_errors_total", Help: "Sheets API call errors",
	}, []string{"op"})
)

func init() {
	prometheus.MustRegister(BotUpdates, HandlerErrors, BroadcastSent, PendingActivities, sheetsCalls, sheetsErrors)
}

func Handler() http.Handler { return promhttp.Handler() }

func ObserveSheetsCall(op string, d time.Duration, err error) {
	sheetsCalls.WithLabelValues(op).Observe(d.Seconds())
	if err != nil {
		sheetsErrors.WithLabelValues(op).Inc()
	}
}
