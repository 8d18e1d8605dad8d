package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Orders(t *testing.T) {
	m := New("BTC-USD")

	m.OrderAccepted(true, "limit")
	m.OrderAccepted(true, "limit")
	m.OrderAccepted(false, "market")
	m.OrderRejected()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.ordersAccepted.WithLabelValues("bid", "limit")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ordersAccepted.WithLabelValues("ask", "market")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.bookOrders.WithLabelValues("bid", "limit")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ordersRejected))

	m.SetBookOrders(true, "limit", 10)
	assert.Equal(t, 10.0, testutil.ToFloat64(m.bookOrders.WithLabelValues("bid", "limit")))
}

func TestMetrics_Snapshots(t *testing.T) {
	m := New("BTC-USD")

	m.SetOrderOffset(42)
	m.SnapshotStored()
	m.SnapshotFailed()
	m.SnapshotFailed()

	assert.Equal(t, 42.0, testutil.ToFloat64(m.orderOffset))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.snapshotsStored))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.snapshotFailures))
}

func TestMetrics_Nil(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.OrderAccepted(true, "market")
		m.OrderRejected()
		m.SetBookOrders(false, "limit", 1)
		m.SetOrderOffset(1)
		m.SnapshotStored()
		m.SnapshotFailed()
	})
}

func TestMetrics_Handler(t *testing.T) {
	m := New("ETH-USD")
	m.OrderAccepted(false, "limit")

	srv := httptest.NewServer(m.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `orderbook_orders_accepted_total{kind="limit",pair="ETH-USD",side="ask"} 1`)
}
