package server

import (
	"compress/gzip"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Kostaaa1/irembo/internal/config"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type pageRegistrar struct{}

func (pageRegistrar) Register(r *gin.RouterGroup) {
	r.GET("/page", func(c *gin.Context) {
		c.HTML(http.StatusOK, "", Component(h.P(g.Text(strings.Repeat("pharmacy ", 200)))))
	})
	r.GET("/not-a-component", func(c *gin.Context) {
		c.HTML(http.StatusOK, "", "plain string")
	})
}

func testConfig(t *testing.T) config.Server {
	t.Helper()
	return config.Server{
		Addr:            "127.0.0.1:0",
		ReadTimeout:     time.Second,
		WriteTimeout:    time.Second,
		ShutdownTimeout: time.Second,
		PublicDir:       t.TempDir(),
	}
}

func serve(t *testing.T, handler http.Handler, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestTemplRender(t *testing.T) {
	t.Parallel()

	srv := New(testConfig(t), zap.NewNop(), pageRegistrar{})

	rec := serve(t, srv.Handler(), httptest.NewRequest(http.MethodGet, "/page", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	require.True(t, strings.HasPrefix(rec.Body.String(), "<p>pharmacy "))

	rec = serve(t, srv.Handler(), httptest.NewRequest(http.MethodGet, "/not-a-component", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Empty(t, rec.Body.String())
}

func TestWithBase(t *testing.T) {
	t.Parallel()

	var b strings.Builder
	require.NoError(t, WithBase(h.P(g.Text("body"))).Render(context.Background(), &b))

	out := b.String()
	require.Contains(t, out, "<title>Blessed Irembo</title>")
	require.Contains(t, out, "<p>body</p>")
	require.Equal(t, 1, strings.Count(out, "<title>"))
}

func TestNotFound(t *testing.T) {
	t.Parallel()

	srv := New(testConfig(t), zap.NewNop())

	for _, path := range []string{"/pharmacies", "/login", "/register-pharmacy", "/privacy"} {
		rec := serve(t, srv.Handler(), httptest.NewRequest(http.MethodGet, path, nil))
		require.Equal(t, http.StatusNotFound, rec.Code, path)
		require.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
		require.Contains(t, rec.Body.String(), "Page not found")
		require.Contains(t, rec.Body.String(), `data-section="header"`)
	}
}

func TestStaticAssets(t *testing.T) {
	t.Parallel()

	conf := testConfig(t)
	require.NoError(t, os.WriteFile(filepath.Join(conf.PublicDir, "logo1.png"), []byte("png bytes"), 0o644))

	srv := New(conf, zap.NewNop())

	rec := serve(t, srv.Handler(), httptest.NewRequest(http.MethodGet, "/logo1.png", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "png bytes", rec.Body.String())

	rec = serve(t, srv.Handler(), httptest.NewRequest(http.MethodGet, "/pharmacist1.jpg", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGzip(t *testing.T) {
	t.Parallel()

	conf := testConfig(t)
	conf.Gzip = true
	srv := New(conf, zap.NewNop(), pageRegistrar{})

	req := httptest.NewRequest(http.MethodGet, "/page", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := serve(t, srv.Handler(), req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))

	zr, err := gzip.NewReader(rec.Body)
	require.NoError(t, err)
	body, err := io.ReadAll(zr)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(body), "<p>pharmacy "))
}

func TestMetricsEndpoint(t *testing.T) {
	t.Parallel()

	srv := New(testConfig(t), zap.NewNop(), pageRegistrar{})
	serve(t, srv.Handler(), httptest.NewRequest(http.MethodGet, "/page", nil))

	rec := serve(t, srv.Handler(), httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `irembo_http_requests_total{method="GET",path="/page",status="200"}`)
}

func TestRunStopsOnCancel(t *testing.T) {
	t.Parallel()

	srv := New(testConfig(t), zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- srv.Run(ctx)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestRunReportsListenError(t *testing.T) {
	t.Parallel()

	conf := testConfig(t)
	conf.Addr = "invalid-address"
	srv := New(conf, zap.NewNop())

	err := srv.Run(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "listen on invalid-address")
}
