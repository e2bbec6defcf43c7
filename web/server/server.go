package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"time"

	"github.com/Kostaaa1/irembo/internal/config"
	"github.com/Kostaaa1/irembo/internal/metrics"
	"github.com/Kostaaa1/irembo/web/views/components"
	"github.com/Kostaaa1/irembo/web/views/home"
	"github.com/dustin/go-humanize"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type Registrar interface {
	Register(r *gin.RouterGroup)
}

type Server struct {
	conf   config.Server
	log    *zap.Logger
	engine *gin.Engine
}

func New(conf config.Server, log *zap.Logger, handlers ...Registrar) *Server {
	engine := gin.New()
	engine.HTMLRender = &TemplRender{}

	engine.Use(requestLogger(log), recovery(log))
	if conf.Gzip {
		engine.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{metrics.Path})))
	}

	for _, asset := range components.Assets {
		engine.StaticFile(asset, filepath.Join(conf.PublicDir, filepath.FromSlash(asset)))
	}

	engine.GET(metrics.Path, gin.WrapH(metrics.Handler()))
	engine.NoRoute(notFound)

	root := engine.Group("/")
	for _, h := range handlers {
		h.Register(root)
	}

	return &Server{
		conf:   conf,
		log:    log,
		engine: engine,
	}
}

func (s *Server) Handler() http.Handler {
	return metrics.InstrumentHandler(s.engine)
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.conf.Addr,
		Handler:      s.Handler(),
		ReadTimeout:  s.conf.ReadTimeout,
		WriteTimeout: s.conf.WriteTimeout,
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.log.Info("listening", zap.String("addr", s.conf.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen on %s: %w", s.conf.Addr, err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.conf.ShutdownTimeout)
		defer cancel()

		s.log.Info("shutting down")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}

func notFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "", WithBase(home.Shell(components.NotFound())))
}

func requestLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		size := c.Writer.Size()
		if size < 0 {
			size = 0
		}

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("size", humanize.Bytes(uint64(size))),
			zap.String("ip", c.ClientIP()),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}

		switch {
		case c.Writer.Status() >= http.StatusInternalServerError:
			log.Error("request", fields...)
		default:
			log.Info("request", fields...)
		}
	}
}

func recovery(log *zap.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, err any) {
		log.Error("panic while serving request",
			zap.String("path", c.Request.URL.Path),
			zap.Any("error", err),
		)
		c.AbortWithStatus(http.StatusInternalServerError)
	})
}
