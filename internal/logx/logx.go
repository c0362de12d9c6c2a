package logx

import (
	"context"

	"pkt.systems/pslog"
	"pkt.systems/tagwm/schema"
)

type contextKey int

const (
	sessionKey contextKey = iota
)

// Ctx returns the logger bound to the provided context.
func Ctx(ctx context.Context) pslog.Logger {
	return pslog.Ctx(ctx)
}

// FromContext returns the logger carried by ctx and whether one was attached.
func FromContext(ctx context.Context) (pslog.Logger, bool) {
	log := pslog.Ctx(ctx)
	if log == pslog.NoopLogger() {
		return log, false
	}
	return log, true
}

// WithTag annotates the logger with a tag id.
func WithTag(log pslog.Logger, id schema.TagID) pslog.Logger {
	if id != 0 {
		log = log.With("tag", uint32(id))
	}
	return log
}

// WithOutput annotates the logger with an output name when available.
func WithOutput(log pslog.Logger, name schema.OutputName) pslog.Logger {
	if name != "" {
		log = log.With("output", string(name))
	}
	return log
}

// WithWindow annotates the logger with a window id.
func WithWindow(log pslog.Logger, id schema.WindowID) pslog.Logger {
	if id != 0 {
		log = log.With("window", uint32(id))
	}
	return log
}

// WithSession annotates the logger with a signal session and its channel.
// The fields are skipped when the context already carries the same session.
func WithSession(ctx context.Context, id uint64, kind schema.SignalKind) pslog.Logger {
	log := pslog.Ctx(ctx)
	if current, ok := ctx.Value(sessionKey).(uint64); ok && current == id {
		return log
	}
	return log.With("session", id, "kind", kind.String())
}

// ContextWithSessionLogger attaches the logger and session marker to the context.
func ContextWithSessionLogger(ctx context.Context, log pslog.Logger, id uint64) context.Context {
	ctx = pslog.ContextWithLogger(ctx, log)
	return context.WithValue(ctx, sessionKey, id)
}
