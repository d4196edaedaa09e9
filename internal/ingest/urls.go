package ingest

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// ReadURLList loads a line-delimited URL file. Blank lines and '#' comments
// are skipped; order is preserved.
func ReadURLList(path string) ([]string, error) {
	f, err := os.Open(path) // #nosec G304 -- path comes from application config, not user input
	if err != nil {
		return nil, fmt.Errorf("open url list: %w", err)
	}
	defer f.Close()

	var urls []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		urls = append(urls, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read url list: %w", err)
	}
	return urls, nil
}
