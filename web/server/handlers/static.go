package handlers

import (
	"bytes"
	"context"
	"crypto/sha256"
	"fmt"
	"net/http"
	"strings"

	"github.com/Kostaaa1/irembo/web/server"
	"github.com/Kostaaa1/irembo/web/views/components"
	"github.com/Kostaaa1/irembo/web/views/home"
	"github.com/dustin/go-humanize"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const HealthPath = "/healthz"

type Static struct {
	log  *zap.Logger
	etag string
}

// NewStatic renders the home page once to derive its ETag. The page has no
// inputs, so every later render produces the same bytes.
func NewStatic(log *zap.Logger) (*Static, error) {
	var buf bytes.Buffer
	if err := server.WithBase(home.Home()).Render(context.Background(), &buf); err != nil {
		return nil, fmt.Errorf("render home page: %w", err)
	}

	sum := sha256.Sum256(buf.Bytes())
	s := &Static{
		log:  log,
		etag: fmt.Sprintf(`"%x"`, sum[:12]),
	}

	log.Info("home page rendered",
		zap.String("size", humanize.Bytes(uint64(buf.Len()))),
		zap.String("etag", s.etag),
	)
	return s, nil
}

func (s *Static) ETag() string {
	return s.etag
}

func (s *Static) Home(c *gin.Context) {
	c.Header("ETag", s.etag)
	c.Header("Cache-Control", "public, max-age=300")

	if etagMatches(c.GetHeader("If-None-Match"), s.etag) {
		c.Status(http.StatusNotModified)
		return
	}

	c.HTML(http.StatusOK, "", server.WithBase(home.Home()))
}

func (*Static) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Static) Register(r *gin.RouterGroup) {
	r.GET(components.RouteHome, s.Home)
	r.HEAD(components.RouteHome, s.Home)
	r.GET(HealthPath, s.Health)
}

// etagMatches reports whether an If-None-Match header value matches etag.
// The header may list several tags or be "*".
func etagMatches(header, etag string) bool {
	if header == "" {
		return false
	}
	for _, candidate := range strings.Split(header, ",") {
		candidate = strings.TrimSpace(candidate)
		candidate = strings.TrimPrefix(candidate, "W/")
		if candidate == "*" || candidate == etag {
			return true
		}
	}
	return false
}
