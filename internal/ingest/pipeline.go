// Package ingest implements the two-phase URL ingestion pipeline: phase 1
// fetches each URL, extracts its text and stores it in the object bucket;
// phase 2 reads every newly stored key back and inserts it into the document
// index. All outcomes are appended to the run log as they happen.
package ingest

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/cdaprod/hydrate/internal/logger"
	"github.com/cdaprod/hydrate/internal/text"
)

// ObjectStore is the narrow surface the pipeline needs from the bucket.
type ObjectStore interface {
	BucketExists(ctx context.Context, bucket string) (bool, error)
	MakeBucket(ctx context.Context, bucket string) error
	Put(ctx context.Context, bucket, key string, data []byte) error
	Get(ctx context.Context, bucket, key string) ([]byte, error)
	ListKeys(ctx context.Context, bucket, prefix string) ([]string, error)
}

// DocumentIndex inserts documents into the searchable store.
type DocumentIndex interface {
	Insert(ctx context.Context, doc Document) error
}

// ContentFetcher retrieves raw bytes plus their media type for a URL.
type ContentFetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, string, error)
}

// Recorder is the append-only run log the pipeline reports into.
type Recorder interface {
	Record(r Result)
	Note(msg string)
}

type storedItem struct {
	url string
	key string
}

// Pipeline orchestrates one ingestion run. It owns the phase-1 worklist and
// is the only component that decides which keys enter phase 2.
type Pipeline struct {
	store   ObjectStore
	index   DocumentIndex
	fetcher ContentFetcher
	log     Recorder
	dedup   *DuplicateChecker
	bucket  string
}

func NewPipeline(store ObjectStore, index DocumentIndex, fetcher ContentFetcher, rec Recorder, bucket string) *Pipeline {
	return &Pipeline{
		store:   store,
		index:   index,
		fetcher: fetcher,
		log:     rec,
		dedup:   NewDuplicateChecker(store),
		bucket:  bucket,
	}
}

// Run processes the URLs strictly in order, one at a time, phase 1 fully
// before phase 2. Per-URL failures are recorded and skipped; only a bucket
// provisioning failure aborts the run.
func (p *Pipeline) Run(ctx context.Context, urls []string) ([]Result, error) {
	ctx = logger.WithRunID(ctx, uuid.New().String())

	if err := p.ensureBucket(ctx); err != nil {
		p.log.Note(fmt.Sprintf("fatal: %v", err))
		slog.ErrorContext(ctx, "bucket provisioning failed", "bucket", p.bucket, "error", err)
		return nil, err
	}

	slog.InfoContext(ctx, "starting ingestion run", "bucket", p.bucket, "urls", len(urls))

	results := make([]Result, 0, len(urls))
	var worklist []storedItem

	for _, u := range urls {
		r := p.storeOne(ctx, u)
		p.log.Record(r)
		results = append(results, r)
		if r.Status == StatusStored {
			worklist = append(worklist, storedItem{url: u, key: r.Key})
		}
	}

	for _, item := range worklist {
		r := p.indexOne(ctx, item)
		p.log.Record(r)
		results = append(results, r)
	}

	slog.InfoContext(ctx, "ingestion run complete", "results", len(results), "stored", len(worklist))
	return results, nil
}

func (p *Pipeline) ensureBucket(ctx context.Context) error {
	exists, err := p.store.BucketExists(ctx, p.bucket)
	if err != nil {
		return &BucketProvisionError{Bucket: p.bucket, Err: err}
	}
	if exists {
		return nil
	}
	if err := p.store.MakeBucket(ctx, p.bucket); err != nil {
		return &BucketProvisionError{Bucket: p.bucket, Err: err}
	}
	p.log.Note(fmt.Sprintf("bucket %q created", p.bucket))
	slog.InfoContext(ctx, "bucket created", "bucket", p.bucket)
	return nil
}

// storeOne is phase 1 for a single URL: normalize, dedup check, fetch,
// extract, put.
func (p *Pipeline) storeOne(ctx context.Context, url string) Result {
	key := NormalizeURL(url)

	exists, err := p.dedup.Exists(ctx, p.bucket, key)
	if err != nil {
		slog.ErrorContext(ctx, "dedup check failed", "url", url, "key", key, "error", err)
		return Result{URL: url, Key: key, Status: StatusStoreFailed, Err: err}
	}
	if exists {
		slog.InfoContext(ctx, "object already present, skipping", "url", url, "key", key)
		return Result{URL: url, Key: key, Status: StatusSkippedDuplicate}
	}

	data, mediaType, err := p.fetcher.Fetch(ctx, url)
	if err != nil {
		slog.ErrorContext(ctx, "fetch failed", "url", url, "error", err)
		return Result{URL: url, Key: key, Status: StatusFetchFailed, Err: err}
	}

	content, err := text.Extract(data, mediaType)
	if err != nil {
		slog.ErrorContext(ctx, "extraction failed", "url", url, "error", err)
		return Result{URL: url, Key: key, Status: StatusExtractFailed, Err: err}
	}

	if err := p.store.Put(ctx, p.bucket, key, []byte(content)); err != nil {
		slog.ErrorContext(ctx, "store failed", "url", url, "key", key, "error", err)
		return Result{URL: url, Key: key, Status: StatusStoreFailed, Err: err}
	}

	slog.InfoContext(ctx, "stored object", "url", url, "key", key, "bytes", len(content))
	return Result{URL: url, Key: key, Status: StatusStored}
}

// indexOne is phase 2 for a single stored key: read the object back,
// re-extract from the durably stored bytes, validate and insert.
func (p *Pipeline) indexOne(ctx context.Context, item storedItem) Result {
	data, err := p.store.Get(ctx, p.bucket, item.key)
	if err != nil {
		slog.ErrorContext(ctx, "read back failed", "key", item.key, "error", err)
		return Result{URL: item.url, Key: item.key, Status: StatusIndexFailed, Err: err}
	}

	content, err := text.Extract(data, "text/plain")
	if err != nil {
		slog.ErrorContext(ctx, "re-extraction failed", "key", item.key, "error", err)
		return Result{URL: item.url, Key: item.key, Status: StatusExtractFailed, Err: err}
	}

	doc, err := NewDocument(item.key, content)
	if err != nil {
		slog.ErrorContext(ctx, "document validation failed", "key", item.key, "error", err)
		return Result{URL: item.url, Key: item.key, Status: StatusIndexFailed, Err: err}
	}

	if err := p.index.Insert(ctx, doc); err != nil {
		slog.ErrorContext(ctx, "index insert failed", "key", item.key, "error", err)
		return Result{URL: item.url, Key: item.key, Status: StatusIndexFailed, Err: err}
	}

	slog.InfoContext(ctx, "indexed document", "key", item.key)
	return Result{URL: item.url, Key: item.key, Status: StatusIndexed}
}
