package metrics

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Server exposes a gatherer on /metrics for long-running commands.
type Server struct {
	addr   string
	srv    *http.Server
	logger *zap.Logger
}

func NewServer(logger *zap.Logger, addr string, g prometheus.Gatherer) *Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(g, promhttp.HandlerOpts{}))

	return &Server{
		addr: addr,
		srv: &http.Server{
			Addr:         addr,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
			Handler:      mux,
		},
		logger: logger,
	}
}

func (m *Server) Start() {
	go func() {
		m.logger.Info("Metrics server started", zap.String("addr", m.addr))
		if err := m.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			m.logger.Error("Metrics server error", zap.Error(err))
		}
	}()
}

func (m *Server) Close(ctx context.Context) error {
	m.logger.Info("Shutting down metrics server...")
	return m.srv.Shutdown(ctx)
}

// WriteTextfile dumps g in the node_exporter textfile collector format.
// One-shot commands use it instead of Server since nothing would scrape them in time.
func WriteTextfile(logger *zap.Logger, g prometheus.Gatherer, path string) error {
	if err := prometheus.WriteToTextfile(path, g); err != nil {
		return fmt.Errorf("write metrics textfile %q: %w", path, err)
	}
	logger.Info("metrics written", zap.String("path", path))
	return nil
}
