package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"stockdock/internal/config"
	"stockdock/internal/history"
	"stockdock/internal/ingest"
	"stockdock/internal/provider"
	"stockdock/internal/quotes"
	"stockdock/internal/scheduler"
	"stockdock/internal/store"
	"stockdock/internal/web"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] stockdock starting...")

	// Load config (.env first so file-based secrets reach the overrides)
	_ = godotenv.Load()
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Init store
	var st store.Store
	if cfg.Database.SQLitePath != "" {
		ss, err := store.NewSQLiteStore(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite store failed, using in-memory: %v", err)
			st = store.NewMemoryStore()
		} else {
			st = ss
			defer ss.Close()
		}
	} else {
		st = store.NewMemoryStore()
	}

	// Init provider clients, with a stub fallback when no credentials
	// are configured.
	var quoteProvider provider.QuoteProvider
	if cfg.AlphaVantage.APIKey != "" {
		quoteProvider = provider.NewAlphaVantageClient(cfg.AlphaVantage.APIKey)
		log.Println("[INFO] quote provider: alphavantage")
	} else {
		quoteProvider = &provider.Stub{}
		log.Println("[WARN] alpha_vantage.api_key not set, using stub quote provider")
	}

	var snapshotProvider provider.SnapshotProvider
	var barProvider provider.BarProvider
	if cfg.Alpaca.APIKey != "" {
		alpaca := provider.NewAlpacaClient(cfg.Alpaca.BaseURL, cfg.Alpaca.APIKey, cfg.Alpaca.APISecret)
		snapshotProvider = alpaca
		barProvider = alpaca
		log.Println("[INFO] snapshot/bar provider: alpaca")
	} else {
		stub := &provider.Stub{}
		snapshotProvider = stub
		barProvider = stub
		log.Println("[WARN] alpaca.api_key not set, using stub snapshot/bar provider")
	}

	// Init services
	symbols := cfg.Symbols.Predefined
	ingestSvc := ingest.NewService(quoteProvider, st, symbols)
	quotesSvc := quotes.NewService(snapshotProvider, st, symbols)
	historySvc := history.NewService(barProvider, st, symbols)

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Init scheduler
	sched := scheduler.NewScheduler(ctx, historySvc)
	if err := sched.Register(cfg.Schedule.DailyCron); err != nil {
		log.Fatalf("[FATAL] register cron task: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	// Optional: run the backfill immediately on start
	if os.Getenv("RUN_ON_START") == "true" {
		log.Println("[INFO] RUN_ON_START enabled, executing daily backfill now")
		go sched.RunNow()
	}

	// Start HTTP server
	srv := web.NewServer(cfg.Server.Port, ingestSvc, quotesSvc, historySvc)
	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()

	log.Println("[INFO] stockdock is running. Press Ctrl+C to stop.")

	// Wait for shutdown signal or server failure
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-sigCh:
		log.Println("[INFO] shutdown signal received, stopping...")
	case err := <-errCh:
		if err != nil {
			log.Printf("[ERROR] http server: %v", err)
		}
	}

	if err := srv.Shutdown(context.Background()); err != nil {
		log.Printf("[ERROR] shutdown http server: %v", err)
	}
	cancel()
	log.Println("[INFO] stockdock stopped")
}
