package ingest

import "regexp"

// maxKeyLength bounds the sanitized portion of an object key, before the
// suffix is appended.
const maxKeyLength = 250

const keySuffix = ".txt"

var (
	schemeRe = regexp.MustCompile(`^https?://`)
	unsafeRe = regexp.MustCompile(`[^\w\-.]`)
)

// NormalizeURL maps a URL to its canonical object key: scheme stripped, every
// character outside [A-Za-z0-9_.-] replaced with '_', truncated, and given a
// fixed ".txt" suffix. Deterministic, so the same URL always lands on the
// same key across runs — this is what makes deduplication work.
func NormalizeURL(url string) string {
	clean := schemeRe.ReplaceAllString(url, "")
	clean = unsafeRe.ReplaceAllString(clean, "_")
	if len(clean) > maxKeyLength {
		clean = clean[:maxKeyLength]
	}
	return clean + keySuffix
}
