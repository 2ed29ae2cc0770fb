// Package metrics holds the Prometheus instruments for the storefront.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "aurora_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "aurora_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	CartOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "aurora_cart_operations_total",
			Help: "Cart mutations by operation (add, update, remove, clear)",
		},
		[]string{"operation"},
	)

	ProductViewsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "aurora_product_views_total",
			Help: "Product detail page views by slug",
		},
		[]string{"slug"},
	)

	OrdersPlacedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "aurora_orders_placed_total",
			Help: "Checkout submissions that reached confirmation",
		},
	)
)

// RecordCartOperation increments the cart mutation counter.
func RecordCartOperation(operation string) {
	CartOperationsTotal.WithLabelValues(operation).Inc()
}

// RecordProductView increments the detail-page counter for a slug.
func RecordProductView(slug string) {
	ProductViewsTotal.WithLabelValues(slug).Inc()
}
