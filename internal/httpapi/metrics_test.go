package httpapi

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetricsMiddleware_UsesRoutePattern(t *testing.T) {
	mux := NewMux(&mockService{})
	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("/models/*", http.MethodPost, "200"))
	serve(mux, httptest.NewRequest(http.MethodPost, "/models/org/a/load", nil))
	serve(mux, httptest.NewRequest(http.MethodPost, "/models/org/b/load", nil))
	after := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("/models/*", http.MethodPost, "200"))
	if after-before != 2 {
		t.Fatalf("requests_total delta=%v want 2", after-before)
	}
}

func TestMetricsEndpointExposesCollectors(t *testing.T) {
	mux := NewMux(&mockService{})
	serve(mux, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	w := serve(mux, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("/metrics status=%d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "genhost_http_requests_total") {
		t.Fatal("genhost_http_requests_total not exposed")
	}
}

func TestBackpressureCountedOn429(t *testing.T) {
	before := testutil.ToFloat64(backpressureTotal.WithLabelValues("queue_wait_timeout"))
	w := httptest.NewRecorder()
	writeError(w, mockHTTPError{msg: "busy", code: http.StatusTooManyRequests})
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("status=%d", w.Code)
	}
	if got := testutil.ToFloat64(backpressureTotal.WithLabelValues("queue_wait_timeout")); got-before != 1 {
		t.Fatalf("backpressure delta=%v", got-before)
	}
	IncrementBackpressure("")
	if testutil.ToFloat64(backpressureTotal.WithLabelValues("unspecified")) < 1 {
		t.Fatal("empty reason not mapped to unspecified")
	}
}
