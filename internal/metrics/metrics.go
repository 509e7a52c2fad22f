package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	HTTPRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "hiver_http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})
	HTTPRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "hiver_http_request_duration_seconds",
		Help:    "HTTP request duration in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})
	MessagesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "hiver_messages_total",
		Help: "Total number of chat messages stored",
	})
	MediaUploadsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "hiver_media_uploads_total",
		Help: "Total number of media files uploaded",
	})
)

func init() {
	prometheus.MustRegister(HTTPRequestsTotal, HTTPRequestDuration, MessagesTotal, MediaUploadsTotal)
}
