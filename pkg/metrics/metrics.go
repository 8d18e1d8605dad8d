package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "orderbook"

// Metrics holds the service collectors on a dedicated registry.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	ordersAccepted   *prometheus.CounterVec
	ordersRejected   prometheus.Counter
	bookOrders       *prometheus.GaugeVec
	orderOffset      prometheus.Gauge
	snapshotsStored  prometheus.Counter
	snapshotFailures prometheus.Counter
}

// New creates the collectors for the given pair and registers them with the Go and process collectors.
func New(pair string) *Metrics {
	labels := prometheus.Labels{"pair": pair}

	m := &Metrics{
		registry: prometheus.NewRegistry(),
		ordersAccepted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "orders_accepted_total", Help: "Orders added to the book by side and kind",
			ConstLabels: labels,
		}, []string{"side", "kind"}),
		ordersRejected: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "orders_rejected_total", Help: "Orders that could not be decoded or added",
			ConstLabels: labels,
		}),
		bookOrders: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace, Name: "book_orders", Help: "Resting orders per sequence",
			ConstLabels: labels,
		}, []string{"side", "kind"}),
		orderOffset: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Name: "order_offset", Help: "Stream offset of the last applied order",
			ConstLabels: labels,
		}),
		snapshotsStored: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "snapshots_stored_total", Help: "Snapshots written to the store",
			ConstLabels: labels,
		}),
		snapshotFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "snapshot_failures_total", Help: "Snapshots that failed to store",
			ConstLabels: labels,
		}),
	}

	m.registry.MustRegister(
		m.ordersAccepted, m.ordersRejected, m.bookOrders, m.orderOffset,
		m.snapshotsStored, m.snapshotFailures,
		collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func side(bid bool) string {
	if bid {
		return "bid"
	}
	return "ask"
}

// OrderAccepted counts an order added to the book.
func (m *Metrics) OrderAccepted(bid bool, kind string) {
	if m == nil {
		return
	}
	m.ordersAccepted.WithLabelValues(side(bid), kind).Inc()
	m.bookOrders.WithLabelValues(side(bid), kind).Inc()
}

// OrderRejected counts an order that never reached the book.
func (m *Metrics) OrderRejected() {
	if m == nil {
		return
	}
	m.ordersRejected.Inc()
}

// SetBookOrders sets the number of resting orders in one sequence.
func (m *Metrics) SetBookOrders(bid bool, kind string, count int) {
	if m == nil {
		return
	}
	m.bookOrders.WithLabelValues(side(bid), kind).Set(float64(count))
}

// SetOrderOffset records the offset of the last applied order.
func (m *Metrics) SetOrderOffset(offset int64) {
	if m == nil {
		return
	}
	m.orderOffset.Set(float64(offset))
}

// SnapshotStored counts a successful snapshot.
func (m *Metrics) SnapshotStored() {
	if m == nil {
		return
	}
	m.snapshotsStored.Inc()
}

// SnapshotFailed counts a snapshot that could not be stored.
func (m *Metrics) SnapshotFailed() {
	if m == nil {
		return
	}
	m.snapshotFailures.Inc()
}
