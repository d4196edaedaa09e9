package ingest_test

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/stretchr/testify/mock"

	"github.com/cdaprod/hydrate/internal/ingest"
)

// Mocks

type MockFetcher struct{ mock.Mock }

func (m *MockFetcher) Fetch(ctx context.Context, url string) ([]byte, string, error) {
	args := m.Called(ctx, url)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).([]byte), args.String(1), args.Error(2)
}

type MockIndex struct{ mock.Mock }

func (m *MockIndex) Insert(ctx context.Context, doc ingest.Document) error {
	args := m.Called(ctx, doc)
	return args.Error(0)
}

// In-memory fakes

// memStore is the in-memory ObjectStore used by pipeline tests. Error fields
// force specific failure paths.
type memStore struct {
	mu      sync.Mutex
	buckets map[string]map[string][]byte

	existsErr error
	makeErr   error
	putErr    error
	getErr    error
	listErr   error
}

func newMemStore() *memStore {
	return &memStore{buckets: make(map[string]map[string][]byte)}
}

func (s *memStore) BucketExists(ctx context.Context, bucket string) (bool, error) {
	if s.existsErr != nil {
		return false, s.existsErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.buckets[bucket]
	return ok, nil
}

func (s *memStore) MakeBucket(ctx context.Context, bucket string) error {
	if s.makeErr != nil {
		return s.makeErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.buckets[bucket] = make(map[string][]byte)
	return nil
}

func (s *memStore) Put(ctx context.Context, bucket, key string, data []byte) error {
	if s.putErr != nil {
		return s.putErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.buckets[bucket]
	if !ok {
		return fmt.Errorf("bucket %q does not exist", bucket)
	}
	b[key] = append([]byte(nil), data...)
	return nil
}

func (s *memStore) Get(ctx context.Context, bucket, key string) ([]byte, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.buckets[bucket]
	if !ok {
		return nil, fmt.Errorf("bucket %q does not exist", bucket)
	}
	data, ok := b[key]
	if !ok {
		return nil, fmt.Errorf("key %q does not exist", key)
	}
	return append([]byte(nil), data...), nil
}

func (s *memStore) ListKeys(ctx context.Context, bucket, prefix string) ([]string, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	var keys []string
	for k := range s.buckets[bucket] {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	return keys, nil
}

func (s *memStore) snapshot(bucket string) map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]string)
	for k, v := range s.buckets[bucket] {
		out[k] = string(v)
	}
	return out
}

// memIndex collects inserted documents and asserts the non-empty invariant on
// every insert.
type memIndex struct {
	docs      []ingest.Document
	insertErr error
}

func (i *memIndex) Insert(ctx context.Context, doc ingest.Document) error {
	if i.insertErr != nil {
		return i.insertErr
	}
	if strings.TrimSpace(doc.Content) == "" {
		return fmt.Errorf("insert reached with empty content for %q", doc.Source)
	}
	i.docs = append(i.docs, doc)
	return nil
}

// memRecorder captures run log events in order.
type memRecorder struct {
	results []ingest.Result
	notes   []string
}

func (r *memRecorder) Record(res ingest.Result) { r.results = append(r.results, res) }
func (r *memRecorder) Note(msg string)          { r.notes = append(r.notes, msg) }

// stubFetcher serves canned responses per URL.
type stubFetcher struct {
	pages map[string]stubPage
}

type stubPage struct {
	data      []byte
	mediaType string
	err       error
}

func (f *stubFetcher) Fetch(ctx context.Context, url string) ([]byte, string, error) {
	p, ok := f.pages[url]
	if !ok {
		return nil, "", &ingest.FetchError{URL: url, StatusCode: 404}
	}
	if p.err != nil {
		return nil, "", p.err
	}
	mt := p.mediaType
	if mt == "" {
		mt = "text/html"
	}
	return p.data, mt, nil
}
