package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDocument(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		doc, err := NewDocument("example.com.txt", "some content")
		require.NoError(t, err)
		assert.Equal(t, "example.com.txt", doc.Source)
		assert.Equal(t, "some content", doc.Content)
	})

	t.Run("Empty Content", func(t *testing.T) {
		_, err := NewDocument("example.com.txt", "")
		assert.ErrorIs(t, err, ErrEmptyDocument)
	})

	t.Run("Whitespace Only Content", func(t *testing.T) {
		_, err := NewDocument("example.com.txt", " \n\t ")
		assert.ErrorIs(t, err, ErrEmptyDocument)
	})
}

func TestFetchError(t *testing.T) {
	e := &FetchError{URL: "https://example.com", StatusCode: 503}
	assert.Contains(t, e.Error(), "https://example.com")
	assert.Contains(t, e.Error(), "503")
}

func TestBucketProvisionError(t *testing.T) {
	e := &BucketProvisionError{Bucket: "cda-datasets", Err: assert.AnError}
	assert.Contains(t, e.Error(), "cda-datasets")
	assert.ErrorIs(t, e, assert.AnError)
}
