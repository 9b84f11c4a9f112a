package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"slices"
	"syscall"

	"github.com/angeloszaimis/libtranslate/config"
	"github.com/angeloszaimis/libtranslate/internal/handler"
	"github.com/angeloszaimis/libtranslate/internal/healthcheck"
	"github.com/angeloszaimis/libtranslate/internal/httpserver"
	"github.com/angeloszaimis/libtranslate/internal/metrics"
	"github.com/angeloszaimis/libtranslate/pkg/logger"
	"github.com/angeloszaimis/libtranslate/pkg/translate"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("err", err))
		os.Exit(1)
	}

	level := new(slog.LevelVar)
	log := logger.NewWithOptions(logger.Options{
		Level:       cfg.Logging.Level,
		LevelVar:    level,
		AddSource:   true,
		Environment: cfg.Server.Environment,
	})

	if cfg.Watch(func(next *config.Config) {
		level.Set(logger.ParseLevel(next.Logging.Level))
		log.Info("Config reloaded", slog.String("level", next.Logging.Level))
	}) {
		log.Debug("Watching config file for log level changes")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	collector := metrics.NewCollector(cfg.Metrics.BufferSize, log)
	collector.Start(ctx)

	detector, translator, err := initializeServices(cfg, log, collector)
	if err != nil {
		log.Error("Failed to initialize services", slog.Any("err", err))
		os.Exit(1)
	}

	go healthcheck.Monitor(ctx, cfg.MonitorInterval(), collector, log, detector, translator)

	translateHandler := handler.NewTranslateHandler(log, detector, translator)

	srv, err := httpserver.New(cfg.Server.Address, setupRouter(translateHandler, collector), httpserver.WithLogger(log))
	if err != nil {
		log.Error("Failed to create server", slog.Any("err", err))
		os.Exit(1)
	}

	srvErrCh := make(chan error, 1)

	go func() {
		log.Info("Listening", slog.String("address", cfg.Server.Address))
		srvErrCh <- srv.Start()
	}()

	select {
	case <-ctx.Done():
		log.Info("Shutting down gracefully...")
		if err := srv.Shutdown(context.Background()); err != nil {
			log.Error("Error during shutdown", slog.Any("err", err))
		}
	case err := <-srvErrCh:
		if err != nil {
			log.Error("Error starting server", slog.Any("err", err))
			os.Exit(1)
		}
	}
}

func initializeServices(cfg *config.Config, log *slog.Logger, collector *metrics.Collector, extra ...translate.Option) (*translate.Detector, *translate.Translator, error) {
	common := slices.Concat([]translate.Option{
		translate.WithTimeout(cfg.ClientTimeout()),
		translate.WithLogger(log),
		translate.WithCollector(collector),
	}, extra)

	detectorOpts := slices.Concat(common, []translate.Option{translate.WithStrategy(strategyFor(cfg.Detector))})
	translatorOpts := slices.Concat(common, []translate.Option{translate.WithStrategy(strategyFor(cfg.Translator))})

	detector, err := translate.NewDetector(detectorOpts...)
	if err != nil {
		log.Error("Invalid detector backends",
			slog.String("strategy", cfg.Detector.Strategy),
			slog.Any("backends", cfg.Detector.Backends))
		return nil, nil, err
	}

	translator, err := translate.NewTranslator(translatorOpts...)
	if err != nil {
		log.Error("Invalid translator backends",
			slog.String("strategy", cfg.Translator.Strategy),
			slog.Any("backends", cfg.Translator.Backends))
		return nil, nil, err
	}

	return detector, translator, nil
}

func strategyFor(rc config.RegistryConfig) translate.Strategy {
	switch rc.Strategy {
	case config.StrategySingle:
		if len(rc.Backends) == 1 {
			return translate.Single(rc.Backends[0])
		}
		return translate.Mix(rc.Backends...)
	case config.StrategyMix:
		return translate.Mix(rc.Backends...)
	default:
		return translate.Default()
	}
}
