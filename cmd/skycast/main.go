package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jonboulle/clockwork"

	"github.com/skycast/skycast/internal/adapter/meteostat"
	"github.com/skycast/skycast/internal/adapter/openweather"
	"github.com/skycast/skycast/internal/adapter/zenquotes"
	"github.com/skycast/skycast/internal/cli"
	"github.com/skycast/skycast/internal/config"
	"github.com/skycast/skycast/internal/export"
	"github.com/skycast/skycast/internal/observability"
	"github.com/skycast/skycast/internal/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	clock := clockwork.NewRealClock()

	exporter := export.New(cfg.OutputDir)

	weather := openweather.NewClient(cfg.WeatherAPIKey, cfg.HTTPTimeout, logger)
	// Every raw weather response is dumped alongside the reports. A failed
	// dump never fails the report.
	weather.SetResponseHook(func(body []byte) {
		if err := exporter.SaveRawJSON(body); err != nil {
			logger.Warn("raw response dump failed", "error", err)
		}
	})

	stations := meteostat.NewClient(cfg.StationAPIKey, cfg.HTTPTimeout, logger)

	app := cli.New(cfg, logger, os.Stdout, weather, weather, stations, exporter, clock)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if cfg.QuotesEnabled {
		quotes := zenquotes.NewClient(cfg.OutputDir, cfg.HTTPTimeout, clock, logger)
		q, err := quotes.Random(ctx)
		if err != nil {
			logger.Warn("quote fetch failed", "error", err)
			return
		}
		report.Quote(os.Stdout, q.Text, q.Author)
	}
}
