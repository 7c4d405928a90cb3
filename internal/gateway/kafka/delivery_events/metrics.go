package delivery_events

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var EventsPublishedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "delivery_events_published_total",
		Help: "Total number of delivery events sent to Kafka",
	},
	[]string{"event", "status"},
)
