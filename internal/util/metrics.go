package util

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SignUpsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "seller_signups_total",
		Help: "Total number of seller accounts created",
	})

	SignInsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "signins_total",
		Help: "Total number of sign-in attempts",
	}, []string{"result"})

	ForcedSignOutsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "forced_signouts_total",
		Help: "Total number of sessions torn down by the seller gate",
	})

	ListingsPublishedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "listings_published_total",
		Help: "Total number of sneaker listings published",
	})

	OrdersCompletedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "orders_completed_total",
		Help: "Total number of orders completed by sellers",
	})

	OrdersCancelledTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "orders_cancelled_total",
		Help: "Total number of orders cancelled by sellers",
	})

	OrderTransitionsRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "order_transitions_rejected_total",
		Help: "Total number of rejected order transitions",
	}, []string{"reason"})

	MessagesSentTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "messages_sent_total",
		Help: "Total number of chat messages sent",
	})

	RealtimeDeliveriesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "realtime_deliveries_total",
		Help: "Total number of events delivered over websocket",
	})

	PostEngagementsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "post_engagements_total",
		Help: "Total number of feed engagements",
	}, []string{"kind"})

	ImageUploadLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "image_upload_latency_seconds",
		Help:    "Latency of object storage image uploads",
		Buckets: prometheus.DefBuckets,
	})

	ImageUploadsFailed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "image_uploads_failed_total",
		Help: "Total number of failed image uploads",
	})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})
)
