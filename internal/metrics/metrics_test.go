package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestCanonicalPath(t *testing.T) {
	t.Parallel()

	testCases := map[string]string{
		"":                   "/",
		"/":                  "/",
		"//":                 "/",
		"/pharmacies":        "/pharmacies",
		"/pharmacies/":       "/pharmacies",
		"/pharmacies/kigali": "/pharmacies",
		"logo1.png":          "/logo1.png",
	}

	for in, want := range testCases {
		require.Equal(t, want, canonicalPath(in), in)
	}
}

func TestInstrumentHandler(t *testing.T) {
	t.Parallel()

	handler := InstrumentHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	counter := httpRequests.WithLabelValues(http.MethodGet, "/instrumented", "418")
	before := testutil.ToFloat64(counter)

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/instrumented/a", nil))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/instrumented/b", nil))

	require.Equal(t, before+2, testutil.ToFloat64(counter))
	require.Zero(t, testutil.ToFloat64(httpInFlight))
}

func TestInstrumentHandlerSkipsScrapes(t *testing.T) {
	t.Parallel()

	handler := InstrumentHandler(Handler())
	counter := httpRequests.WithLabelValues(http.MethodGet, Path, "200")
	before := testutil.ToFloat64(counter)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, Path, nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "irembo_http_inflight_requests")
	require.Equal(t, before, testutil.ToFloat64(counter))
}
