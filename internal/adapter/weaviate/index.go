// Package weaviate provides the production DocumentIndex backed by a
// Weaviate instance. Documents land in the fixed "Document" class with their
// source key and extracted content.
package weaviate

import (
	"context"

	"github.com/weaviate/weaviate-go-client/v5/weaviate"

	"github.com/cdaprod/hydrate/internal/ingest"
)

const documentClass = "Document"

type Index struct {
	client *weaviate.Client
}

func NewIndex(client *weaviate.Client) *Index {
	return &Index{client: client}
}

// Insert creates one object in the Document class. The orchestrator already
// validated the content; the re-check here keeps the adapter safe on its own.
func (i *Index) Insert(ctx context.Context, doc ingest.Document) error {
	if _, err := ingest.NewDocument(doc.Source, doc.Content); err != nil {
		return err
	}

	_, err := i.client.Data().Creator().
		WithClassName(documentClass).
		WithProperties(map[string]interface{}{
			"source":  doc.Source,
			"content": doc.Content,
		}).
		Do(ctx)
	return err
}
