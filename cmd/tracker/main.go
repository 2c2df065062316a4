// Package main provides the entry point for the live challenge tracker.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/challenge-tracker/internal/config"
	"github.com/yourusername/challenge-tracker/internal/datasource"
	"github.com/yourusername/challenge-tracker/internal/health"
	"github.com/yourusername/challenge-tracker/internal/logger"
	"github.com/yourusername/challenge-tracker/internal/metrics"
	"github.com/yourusername/challenge-tracker/internal/models"
	"github.com/yourusername/challenge-tracker/internal/pricing"
	"github.com/yourusername/challenge-tracker/internal/scheduler"
	"github.com/yourusername/challenge-tracker/internal/service"
	"github.com/yourusername/challenge-tracker/internal/venue"
)

// Build information - set via ldflags
var Version = "dev"

func main() {
	configPath := flag.String("config", "config/config.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.LoadWithDefaults(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Validate configuration
	if err := config.Validate(cfg); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Set up logging
	appLog := logger.NewLogger(cfg.App.LogLevel, cfg.App.Environment)
	appLog.WithFields(logrus.Fields{
		"environment": cfg.App.Environment,
		"log_level":   cfg.App.LogLevel,
		"spool_dir":   cfg.Ingestion.SpoolDir,
	}).Info("Challenge tracker starting")

	// Start metrics endpoint
	if cfg.Metrics.Enabled {
		metrics.InitRegistry()
		mux := http.NewServeMux()
		mux.Handle(cfg.Metrics.Path, metrics.Handler())
		metricsSrv := &http.Server{
			Addr:    fmt.Sprintf(":%d", cfg.Metrics.Port),
			Handler: mux,
		}
		go func() {
			if err := metricsSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				appLog.WithError(err).Error("Metrics server stopped")
			}
		}()
		appLog.WithField("port", cfg.Metrics.Port).Info("Metrics endpoint started")
	}

	// Build the engine from configured venues and pricing knobs
	venues := make([]models.Venue, 0, len(cfg.Venues))
	for _, vc := range cfg.Venues {
		venues = append(venues, models.Venue{
			Name:           vc.Name,
			State:          vc.State,
			NormalizedForm: venue.NormalizeVenue(vc.Name),
			URL:            vc.URL,
		})
	}

	engine := service.NewEngine(service.Options{
		Pricing: pricing.Config{
			OpportunityWeight: cfg.Pricing.OpportunityWeight,
			WinRatePrior:      cfg.Pricing.WinRatePrior,
			MarginFactor:      cfg.Pricing.MarginFactor,
			SentinelPrice:     cfg.Pricing.SentinelPrice,
		},
		MinEdgePercent: cfg.Value.MinEdgePercent,
		Venues:         venues,
		VenueCacheTTL:  cfg.VenueCacheTTL(),
	}, appLog)

	// Wire ingestion
	if err := os.MkdirAll(cfg.Ingestion.SpoolDir, 0o755); err != nil {
		appLog.WithError(err).Fatal("Failed to create spool directory")
	}
	source := datasource.NewFileSource(cfg.Ingestion.SpoolDir, appLog)

	sched := scheduler.NewScheduler(source, engine, appLog)
	if err := sched.ScheduleSweeps(cfg.Ingestion.PollSchedule); err != nil {
		appLog.WithError(err).Fatal("Failed to schedule spool sweeps")
	}
	if err := sched.Start(); err != nil {
		appLog.WithError(err).Fatal("Failed to start scheduler")
	}

	// Health endpoints for container probes
	healthCtx, healthCancel := context.WithCancel(context.Background())
	defer healthCancel()
	healthSrv := health.NewServer(health.Config{
		ServiceName: cfg.App.Name,
		Version:     Version,
		Logger:      appLog,
		Checks: map[string]health.Check{
			"scheduler": func(context.Context) error {
				if !sched.IsRunning() {
					return fmt.Errorf("scheduler not running")
				}
				return nil
			},
			"spool": func(context.Context) error {
				_, err := os.Stat(cfg.Ingestion.SpoolDir)
				return err
			},
		},
	})
	if err := healthSrv.Start(healthCtx); err != nil {
		appLog.WithError(err).Fatal("Failed to start health server")
	}
	healthSrv.SetReady(true)

	// Pick up anything already spooled before the first tick
	sched.Sweep()

	appLog.WithFields(logrus.Fields{
		"schedule": cfg.Ingestion.PollSchedule,
		"next_run": sched.GetNextRun().Format(time.RFC3339),
	}).Info("Challenge tracker running")

	// Wait for shutdown signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	sig := <-sigChan
	appLog.WithField("signal", sig).Info("Shutdown signal received")

	healthSrv.SetReady(false)
	if err := sched.Stop(); err != nil {
		appLog.WithError(err).Error("Error during scheduler shutdown")
	}
	healthCancel()

	appLog.Info("Challenge tracker shut down successfully")
}
