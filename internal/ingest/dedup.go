package ingest

import "context"

// DuplicateChecker decides whether a key already exists in the bucket, by
// listing under the key as a prefix and looking for an exact match. It is a
// plain read-then-act check: safe for the single-writer sequential runs this
// pipeline performs, not for concurrent invocations on the same bucket.
type DuplicateChecker struct {
	store ObjectStore
}

func NewDuplicateChecker(store ObjectStore) *DuplicateChecker {
	return &DuplicateChecker{store: store}
}

func (c *DuplicateChecker) Exists(ctx context.Context, bucket, key string) (bool, error) {
	keys, err := c.store.ListKeys(ctx, bucket, key)
	if err != nil {
		return false, err
	}
	for _, k := range keys {
		if k == key {
			return true, nil
		}
	}
	return false, nil
}
