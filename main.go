package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/cdaprod/hydrate/internal/app"
	"github.com/cdaprod/hydrate/internal/config"
	"github.com/cdaprod/hydrate/internal/ingest"
	"github.com/cdaprod/hydrate/internal/logger"
)

func main() {
	// Initialize structured logger
	log := slog.New(logger.NewRunHandler(slog.NewJSONHandler(os.Stdout, nil)))
	slog.SetDefault(log)

	// 1. Load Config
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// 2. URL list
	urls, err := ingest.ReadURLList(cfg.URLFile)
	if err != nil {
		slog.Error("failed to read url list", "path", cfg.URLFile, "error", err)
		os.Exit(1)
	}
	if len(urls) == 0 {
		slog.Info("url list is empty, nothing to do", "path", cfg.URLFile)
		return
	}

	// 3. External clients
	deps, err := app.Bootstrap(cfg)
	if err != nil {
		slog.Error("failed to bootstrap dependencies", "error", err)
		os.Exit(1)
	}

	// 4. Run the pipeline
	pipeline := ingest.NewPipeline(deps.Store, deps.Index, deps.Fetcher, deps.RunLog, cfg.BucketName)
	results, err := pipeline.Run(context.Background(), urls)
	if err != nil {
		slog.Error("ingestion run aborted", "error", err)
		os.Exit(1)
	}

	counts := make(map[ingest.Status]int)
	for _, r := range results {
		counts[r.Status]++
	}
	slog.Info("run summary",
		"stored", counts[ingest.StatusStored],
		"indexed", counts[ingest.StatusIndexed],
		"skipped", counts[ingest.StatusSkippedDuplicate],
		"fetch_failed", counts[ingest.StatusFetchFailed],
		"extract_failed", counts[ingest.StatusExtractFailed],
		"store_failed", counts[ingest.StatusStoreFailed],
		"index_failed", counts[ingest.StatusIndexFailed],
	)
}
