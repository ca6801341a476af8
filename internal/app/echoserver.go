package app

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/zhukov-alex/echoprobe/internal/config"
	"github.com/zhukov-alex/echoprobe/internal/echoserver"
	"github.com/zhukov-alex/echoprobe/internal/logger"
	"github.com/zhukov-alex/echoprobe/internal/metrics"
)

func EchoServerCmd(_ *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.New(viper.GetViper())
	if err != nil {
		return fmt.Errorf("create config: %w", err)
	}
	l, err := logger.New(cfg.Logger, logger.DevMode())
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer l.Sync()

	collectMetrics := cfg.EchoServer.MetricsAddr != ""
	var metricsSrv *metrics.Server
	if collectMetrics {
		metricsSrv = metrics.NewServer(l, cfg.EchoServer.MetricsAddr, prometheus.DefaultGatherer)
		metricsSrv.Start()
	}

	srv := echoserver.New(l, &cfg.EchoServer, collectMetrics)

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- srv.Serve(ctx)
	}()

	select {
	case <-ctx.Done():
		l.Info("Shutdown signal received")
	case err := <-serveErr:
		if err != nil {
			l.Error("server error", zap.Error(err))
		}
	}

	clCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	g, gctx := errgroup.WithContext(clCtx)
	g.Go(func() error { return srv.Close(gctx) })
	if collectMetrics {
		g.Go(func() error { return metricsSrv.Close(gctx) })
	}

	if err := g.Wait(); err != nil {
		l.Error("shutdown errors", zap.Error(err))
	} else {
		l.Info("Shutdown complete")
	}
	return nil
}
