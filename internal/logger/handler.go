package logger

import (
	"context"
	"log/slog"
)

type ctxKey string

const runIDKey ctxKey = "run_id"

// WithRunID tags the context with the identifier of the current ingestion run.
func WithRunID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, runIDKey, id)
}

func RunID(ctx context.Context) string {
	if id, ok := ctx.Value(runIDKey).(string); ok {
		return id
	}
	return ""
}

// RunHandler decorates every record with the run ID carried by the context,
// so all log lines of one pipeline invocation can be correlated.
type RunHandler struct {
	slog.Handler
}

func NewRunHandler(h slog.Handler) *RunHandler {
	return &RunHandler{Handler: h}
}

func (h *RunHandler) Handle(ctx context.Context, r slog.Record) error {
	if id := RunID(ctx); id != "" {
		r.AddAttrs(slog.String("run_id", id))
	}
	return h.Handler.Handle(ctx, r)
}
