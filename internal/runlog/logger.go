// Package runlog persists the ordered, append-only record of ingestion
// outcomes. One line per event, written unbuffered so external consumers can
// tail the file while a run is in progress.
package runlog

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/cdaprod/hydrate/internal/ingest"
)

type Logger struct {
	writer io.Writer
	mu     sync.Mutex
}

func New(w io.Writer) *Logger {
	return &Logger{writer: w}
}

// NewFileLogger appends to the log file at path, creating parent directories
// as needed, and mirrors every line to stdout.
func NewFileLogger(path string) (*Logger, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, err
	}

	cleanPath := filepath.Clean(path)
	f, err := os.OpenFile(cleanPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600) // #nosec G304 -- path is from application config, not user input
	if err != nil {
		return nil, err
	}
	mw := io.MultiWriter(os.Stdout, f)
	return New(mw), nil
}

// Record appends one line for a processing result. The line always carries
// the URL, the derived key and the terminal status for that phase.
func (l *Logger) Record(r ingest.Result) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %s url=%s key=%s", time.Now().UTC().Format(time.RFC3339), r.Status, r.URL, r.Key)
	if r.Err != nil {
		fmt.Fprintf(&sb, " error=%q", r.Err.Error())
	}
	sb.WriteString("\n")
	l.write(sb.String())
}

// Note appends a free-form line for run-level events such as bucket creation
// or a fatal provisioning failure.
func (l *Logger) Note(msg string) {
	l.write(fmt.Sprintf("%s %s\n", time.Now().UTC().Format(time.RFC3339), msg))
}

func (l *Logger) write(line string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, err := io.WriteString(l.writer, line); err != nil {
		slog.Error("failed to write run log entry", "error", err)
	}
}
