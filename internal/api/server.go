package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rgehrsitz/taxcmp/internal/breakeven"
	"github.com/rgehrsitz/taxcmp/internal/compare"
	"github.com/rgehrsitz/taxcmp/internal/domain"
	"go.uber.org/zap"
)

// Options configures the HTTP server
type Options struct {
	CORSOrigins []string

	// Defaults applied when a request omits currency or entity type
	DefaultCurrency domain.CurrencyCode
	DefaultEntity   domain.EntityType
}

// Server exposes the comparison engine over HTTP
type Server struct {
	engine *compare.Engine
	solver *breakeven.Solver
	log    *zap.Logger
	opts   Options
	router *gin.Engine
}

// NewServer builds the router. A nil logger disables request logging.
func NewServer(engine *compare.Engine, log *zap.Logger, opts Options) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	if opts.DefaultCurrency == "" {
		opts.DefaultCurrency = domain.BaseCurrency
	}

	s := &Server{
		engine: engine,
		solver: breakeven.NewDefaultSolver(engine),
		log:    log,
		opts:   opts,
		router: gin.New(),
	}
	s.initializeRoutes()
	return s
}

func (s *Server) initializeRoutes() {
	router := s.router
	router.Use(gin.Recovery())
	router.Use(configureCORS(s.opts.CORSOrigins))
	router.Use(CorrelationIDMiddleware())
	router.Use(RequestLoggingMiddleware(s.log))

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")
	{
		jurisdictions := v1.Group("/jurisdictions")
		{
			jurisdictions.GET("", s.ListJurisdictions)
			jurisdictions.GET("/:id", s.GetJurisdiction)
		}
		v1.POST("/compare", s.Compare)
		v1.POST("/evaluate", s.Evaluate)
		v1.POST("/break-even", s.BreakEven)
		v1.GET("/convert", s.Convert)
	}
}

// Handler returns the HTTP handler
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves on addr until ctx is cancelled, then drains in-flight requests
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("API server listening", zap.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.log.Info("API server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
