package main

import (
	"context"
	"flag"
	"gpumon-backend/lib/configutil"
	"gpumon-backend/lib/scrapers/microcenter"
	"gpumon-backend/lib/serviceutil"
	"gpumon-backend/lib/telemetry"
	"gpumon-backend/services/gpumon"
	"log/slog"
	"net/http"
	"os"
)

func main() {
	verbose := flag.Bool("v", false, "Enable verbose logging/instrumentation.")
	initialScrape := flag.Bool("scrape", false, "Trigger a scrape cycle immediately on run.")
	flag.Parse()

	if *verbose {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	ctx := serviceutil.SignalContext()

	tel, err := telemetry.SetupFromEnv(ctx, "gpumond")
	if err != nil {
		serviceutil.Fatal("setup telemetry", err)
	}
	defer tel.Shutdown(context.Background())
	telemetry.InstrumentPerfStats(ctx)

	cfg, err := configutil.ReadConfig[gpumon.Config]("config.json5")
	if err != nil && !os.IsNotExist(err) {
		serviceutil.Fatal("read config", err)
	}
	cfg = cfg.WithDefaults()

	store := gpumon.NewStore()
	client := microcenter.NewClient(microcenter.ClientOptions{
		UserAgent: cfg.UserAgent,
	})
	svc := gpumon.NewService(store, client, cfg)

	if *initialScrape {
		go func() {
			err := svc.RunCycle(ctx)
			if err != nil {
				slog.ErrorContext(ctx, "initial scrape cycle failed", "err", err)
			}
		}()
	}
	go svc.Daemon(ctx)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /metrics", svc.HandleMetrics)

	go serviceutil.StartHttpServer(cfg.Port, mux)
	<-ctx.Done()
}
