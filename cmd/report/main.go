package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-report/infrastructure/chart"
	"github.com/vfg2006/sales-report/infrastructure/document"
	"github.com/vfg2006/sales-report/internal/cli"
	"github.com/vfg2006/sales-report/internal/config"
	"github.com/vfg2006/sales-report/internal/usecases/aggregating"
	"github.com/vfg2006/sales-report/internal/usecases/parsing"
	"github.com/vfg2006/sales-report/internal/usecases/reporting"
	"github.com/vfg2006/sales-report/pkg/log"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	logger := log.L

	reportService := reporting.NewService(
		cfg,
		parsing.NewService(logger),
		aggregating.NewService(),
		chart.NewRenderer(cfg.Chart),
		document.NewBuilder(cfg.Chart, logger),
		logger,
	)

	driver := cli.NewDriver(reportService, os.Stdin, os.Stdout, logger)
	if err := driver.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato dos logs; a saída vai para stderr
// para não se misturar com o menu interativo
func configureLogger() {
	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
