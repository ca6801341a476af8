package app

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/zhukov-alex/echoprobe/internal/config"
	"github.com/zhukov-alex/echoprobe/internal/logger"
	"github.com/zhukov-alex/echoprobe/internal/metrics"
	"github.com/zhukov-alex/echoprobe/internal/probe"
)

// ProbeCmd runs the probe once. A failed or errored probe is still a
// successful command: the verdict is the output.
func ProbeCmd(cmd *cobra.Command, _ []string) error {
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

	reporter := probe.NewConsoleReporter(cmd.OutOrStdout(), cfg.Console)
	p := probe.New(l, cfg.Probe, reporter, true)

	res := p.Run(ctx)
	if res.Err != nil {
		l.Debug("probe ended with error", zap.Error(res.Err))
	}

	if cfg.MetricsTextfile != "" {
		if err := metrics.WriteTextfile(l, prometheus.DefaultGatherer, cfg.MetricsTextfile); err != nil {
			l.Error("metrics export failed", zap.Error(err))
		}
	}
	return nil
}
