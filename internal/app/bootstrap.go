// Package app wires the external clients the pipeline depends on. All
// configuration is injected; nothing here reads the environment directly.
package app

import (
	"fmt"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/weaviate/weaviate-go-client/v5/weaviate"

	miniostore "github.com/cdaprod/hydrate/internal/adapter/minio"
	windex "github.com/cdaprod/hydrate/internal/adapter/weaviate"
	"github.com/cdaprod/hydrate/internal/config"
	"github.com/cdaprod/hydrate/internal/ingest"
	"github.com/cdaprod/hydrate/internal/runlog"
)

type Dependencies struct {
	Store   *miniostore.Store
	Index   *windex.Index
	Fetcher *ingest.Fetcher
	RunLog  *runlog.Logger
}

func Bootstrap(cfg *config.Config) (*Dependencies, error) {
	mc, err := minio.New(cfg.MinioEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinioAccessKey, cfg.MinioSecretKey, ""),
		Secure: cfg.MinioUseTLS,
	})
	if err != nil {
		return nil, fmt.Errorf("minio client error: %w", err)
	}

	wc, err := weaviate.NewClient(weaviate.Config{Host: cfg.WeaviateHost, Scheme: cfg.WeaviateScheme})
	if err != nil {
		return nil, fmt.Errorf("weaviate client error: %w", err)
	}

	runLog, err := runlog.NewFileLogger(cfg.RunLogPath)
	if err != nil {
		return nil, fmt.Errorf("run log error: %w", err)
	}

	return &Dependencies{
		Store:   miniostore.NewStore(mc),
		Index:   windex.NewIndex(wc),
		Fetcher: ingest.NewFetcher(time.Duration(cfg.FetchTimeoutSeconds) * time.Second),
		RunLog:  runLog,
	}, nil
}
