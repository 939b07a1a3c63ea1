package otel

import (
	"context"
	"errors"
	"log/slog"

	"go.opentelemetry.io/contrib/bridges/otelslog"
)

// LogHandler duplicates records to the global OpenTelemetry logger provider
// when telemetry is enabled.
func LogHandler(name string, h slog.Handler) slog.Handler {
	if !Enabled() {
		return h
	}

	return fanout{h, otelslog.NewHandler(name)}
}

type fanout []slog.Handler

func (f fanout) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range f {
		if h.Enabled(ctx, level) {
			return true
		}
	}

	return false
}

func (f fanout) Handle(ctx context.Context, r slog.Record) error {
	var errs []error

	for _, h := range f {
		if h.Enabled(ctx, r.Level) {
			errs = append(errs, h.Handle(ctx, r.Clone()))
		}
	}

	return errors.Join(errs...)
}

func (f fanout) WithAttrs(attrs []slog.Attr) slog.Handler {
	result := make(fanout, len(f))

	for i, h := range f {
		result[i] = h.WithAttrs(attrs)
	}

	return result
}

func (f fanout) WithGroup(name string) slog.Handler {
	result := make(fanout, len(f))

	for i, h := range f {
		result[i] = h.WithGroup(name)
	}

	return result
}
