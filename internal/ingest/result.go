package ingest

import (
	"errors"
	"fmt"
	"strings"
)

// Status is the terminal outcome of one URL within one pipeline phase.
type Status string

const (
	StatusStored           Status = "stored"
	StatusSkippedDuplicate Status = "skipped_duplicate"
	StatusFetchFailed      Status = "fetch_failed"
	StatusExtractFailed    Status = "extract_failed"
	StatusStoreFailed      Status = "store_failed"
	StatusIndexFailed      Status = "index_failed"
	StatusIndexed          Status = "indexed"
)

// Result records what happened to a single URL in a single phase. Exactly one
// Result per URL is produced in phase 1; URLs that reach StatusStored produce
// a second Result in phase 2.
type Result struct {
	URL    string
	Key    string
	Status Status
	Err    error
}

// ErrEmptyDocument rejects documents whose content is blank after trimming.
var ErrEmptyDocument = errors.New("document content cannot be empty")

// Document is the payload inserted into the index: the extracted text plus
// the object key it was stored under.
type Document struct {
	Source  string
	Content string
}

// NewDocument validates the non-empty content invariant before a document can
// reach the index.
func NewDocument(source, content string) (Document, error) {
	if strings.TrimSpace(content) == "" {
		return Document{}, fmt.Errorf("%w: %s", ErrEmptyDocument, source)
	}
	return Document{Source: source, Content: content}, nil
}

// FetchError reports a failed HTTP retrieval, either a transport failure or a
// non-success status code.
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("fetch %s: unexpected status %d", e.URL, e.StatusCode)
}

func (e *FetchError) Unwrap() error { return e.Err }

// BucketProvisionError means the target bucket could not be verified or
// created. It is the only error that aborts a whole run.
type BucketProvisionError struct {
	Bucket string
	Err    error
}

func (e *BucketProvisionError) Error() string {
	return fmt.Sprintf("provision bucket %q: %v", e.Bucket, e.Err)
}

func (e *BucketProvisionError) Unwrap() error { return e.Err }
