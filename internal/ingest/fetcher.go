package ingest

import (
	"context"
	"io"
	"net/http"
	"time"
)

const defaultMediaType = "text/html"

// Fetcher retrieves raw bytes for a URL with a single bounded GET. No retries;
// a failed URL is skipped and may be resubmitted in a later run.
type Fetcher struct {
	client *http.Client
}

func NewFetcher(timeout time.Duration) *Fetcher {
	return &Fetcher{client: &http.Client{Timeout: timeout}}
}

// Fetch returns the response body and its media type. Any non-2xx status is
// an error; the body is still drained so the connection can be reused.
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, "", &FetchError{URL: url, Err: err}
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, "", &FetchError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, "", &FetchError{URL: url, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", &FetchError{URL: url, Err: err}
	}

	mediaType := resp.Header.Get("Content-Type")
	if mediaType == "" {
		mediaType = defaultMediaType
	}
	return body, mediaType, nil
}
