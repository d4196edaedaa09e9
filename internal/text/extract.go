// Package text turns fetched markup into the normalized plain text that is
// stored in the bucket and indexed. The same function runs in both pipeline
// phases so content survives a round trip through storage unchanged.
package text

import (
	"bytes"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// ErrEmptyContent reports that extraction produced no usable text.
var ErrEmptyContent = errors.New("extracted content is empty")

var whitespaceRe = regexp.MustCompile(`\s+`)

// skipTags are element subtrees that never contribute readable text.
var skipTags = map[string]bool{
	"script":   true,
	"style":    true,
	"noscript": true,
	"iframe":   true,
	"object":   true,
	"embed":    true,
}

// Extract converts raw content into normalized plain text: text nodes in
// document order, whitespace runs collapsed to single spaces, trimmed.
// Non-HTML media types pass through the whitespace normalization only.
func Extract(data []byte, mediaType string) (string, error) {
	var raw string
	if isHTML(mediaType) {
		text, err := extractHTML(data)
		if err != nil {
			return "", fmt.Errorf("parse html: %w", err)
		}
		raw = text
	} else {
		raw = string(data)
	}

	clean := Normalize(raw)
	if clean == "" {
		return "", ErrEmptyContent
	}
	return clean, nil
}

// Normalize collapses runs of whitespace to single spaces and trims the ends.
func Normalize(s string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
}

func isHTML(mediaType string) bool {
	mt := strings.ToLower(mediaType)
	return strings.Contains(mt, "html") || strings.Contains(mt, "xml")
}

func extractHTML(data []byte) (string, error) {
	doc, err := html.Parse(bytes.NewReader(data))
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && skipTags[n.Data] {
			return
		}
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
			sb.WriteString(" ")
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return sb.String(), nil
}
