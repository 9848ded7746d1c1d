package notifier

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	NotifierMessagesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notifier_messages_total",
			Help: "Total number of status-changed messages by publish result",
		},
		[]string{"result"},
	)

	NotifierPublishDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "notifier_publish_duration_seconds",
			Help:    "Duration of kafka publish calls",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		},
	)
)
