package api

import (
	"context"
	"embed"
	"html/template"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/status-im/market-dashboard/config"
	"github.com/status-im/market-dashboard/dashboard"
)

//go:embed templates/*.html
var templateFS embed.FS

var dashboardTemplate = template.Must(template.ParseFS(templateFS, "templates/dashboard.html"))

type Server struct {
	config    config.ServerConfig
	dashboard *dashboard.Service
	logger    *zap.Logger
	server    *http.Server
}

func New(cfg config.ServerConfig, dashboardService *dashboard.Service, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		config:    cfg,
		dashboard: dashboardService,
		logger:    logger.Named("api"),
	}
}

// Handler builds the router with every endpoint and middleware attached
func (s *Server) Handler() http.Handler {
	router := mux.NewRouter()
	router.Use(s.loggingMiddleware)

	router.HandleFunc("/", s.handleDashboard).Methods(http.MethodGet)

	router.HandleFunc("/api/v1/markets", s.handleMarkets).Methods(http.MethodGet)
	router.HandleFunc("/api/v1/coins/{id}/chart", s.handleCoinChart).Methods(http.MethodGet)
	router.HandleFunc("/api/v1/cache/clear", s.handleCacheClear).Methods(http.MethodPost)

	router.HandleFunc("/health", s.handleHealth)
	router.Handle("/metrics", promhttp.Handler())

	return router
}

func (s *Server) Start(ctx context.Context) error {
	s.server = &http.Server{
		Addr:         ":" + s.config.Port,
		Handler:      s.Handler(),
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	s.logger.Info("server starting", zap.String("addr", "http://localhost:"+s.config.Port))
	s.logger.Info("prometheus metrics available at /metrics endpoint")

	go func() {
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.Error("server error", zap.Error(err))
		}
	}()

	return nil
}

// Stop gracefully shuts down the server
func (s *Server) Stop() {
	if s.server == nil {
		return
	}
	timeout := s.config.ShutdownTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := s.server.Shutdown(ctx); err != nil {
		s.logger.Error("error shutting down server", zap.Error(err))
	}
}
