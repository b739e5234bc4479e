package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Counters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewWithRegisterer("offer-service", reg)

	m.ObserveHTTPRequest("GET", "/api/v1/offers/{offerId}", 200, 15*time.Millisecond)
	m.ObserveHTTPRequest("GET", "/api/v1/offers/{offerId}", 200, 5*time.Millisecond)
	m.ObserveUpstreamCall("get_location", "ok")
	m.ObserveOfferSent("sent")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.httpRequestsTotal.WithLabelValues("GET", "/api/v1/offers/{offerId}", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.upstreamCallsTotal.WithLabelValues("get_location", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.offersSentTotal.WithLabelValues("sent")))
}

func TestMetrics_DBQueries(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewWithRegisterer("offer-service", reg)

	m.ObserveDBQuery("query_row", 2*time.Millisecond, nil)
	m.ObserveDBQuery("query_row", 3*time.Millisecond, assert.AnError)
	m.SetDBPoolStats(4, 1)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.dbQueryErrors.WithLabelValues("query_row")))
	assert.Equal(t, 4.0, testutil.ToFloat64(m.dbOpenConnections))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.dbInUseConnections))
}
