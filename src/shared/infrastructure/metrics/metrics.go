package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// ServerMetrics agrupa los contadores e histogramas del servicio
type ServerMetrics struct {
	Requests      *prometheus.CounterVec
	LatencyMS     *prometheus.HistogramVec
	OrdersCreated prometheus.Counter
}

// NewServerMetrics registra y retorna las métricas del servicio
func NewServerMetrics(service string) *ServerMetrics {
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "panaderia",
		Subsystem: service,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"handler", "status"})
	latency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "panaderia",
		Subsystem: service,
		Name:      "http_request_duration_ms",
		Help:      "HTTP request latency in milliseconds.",
		Buckets:   []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
	}, []string{"handler"})
	ordersCreated := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "panaderia",
		Subsystem: service,
		Name:      "orders_created_total",
		Help:      "Total number of orders created successfully.",
	})

	prometheus.MustRegister(requests, latency, ordersCreated)
	return &ServerMetrics{Requests: requests, LatencyMS: latency, OrdersCreated: ordersCreated}
}

// Handler retorna el handler del endpoint /metrics
func Handler() http.Handler {
	return promhttp.Handler()
}
