package controlgrpc

import (
	"bytes"
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"pkt.systems/pslog"
	"pkt.systems/tagwm/schema"
)

func TestControlLoggingFlow(t *testing.T) {
	capture := newLogCapture(t)
	logger := pslog.NewWithOptions(capture, pslog.Options{
		Mode:          pslog.ModeStructured,
		NoColor:       true,
		VerboseFields: true,
		MinLevel:      pslog.TraceLevel,
	})
	ctx := pslog.ContextWithLogger(context.Background(), logger)
	t.Cleanup(func() {
		if testing.Verbose() {
			capture.Dump(t)
		}
	})

	env := startTestServerWithContext(ctx, t)
	if err := env.service.OutputAdded(ctx, "DP-1", schema.Geometry{}); err != nil {
		t.Fatalf("OutputAdded: %v", err)
	}
	ids, err := env.client.AddTags(ctx, "DP-1", "1")
	if err != nil {
		t.Fatalf("AddTags: %v", err)
	}
	sub, err := env.client.Subscribe(ctx, schema.SignalTagActive)
	if err != nil {
		t.Fatalf("Subscribe: %v", err)
	}
	defer sub.Close()
	waitFor(t, 2*time.Second, func() bool { return env.bus.Sessions(schema.SignalTagActive) == 1 })
	if err := sub.Ready(); err != nil {
		t.Fatalf("Ready: %v", err)
	}
	if err := env.client.SwitchTo(ctx, ids[0]); err != nil {
		t.Fatalf("SwitchTo: %v", err)
	}
	if _, err := sub.Recv(); err != nil {
		t.Fatalf("Recv: %v", err)
	}
	if err := sub.Disconnect(); err != nil {
		t.Fatalf("Disconnect: %v", err)
	}
	waitFor(t, 2*time.Second, func() bool { return env.bus.Sessions(schema.SignalTagActive) == 0 })

	waitFor(t, 2*time.Second, func() bool { return hasLog(capture.Entries(), "trace", "signal delivered") })

	entries := capture.Entries()
	requireLog(t, entries, "info", "control grpc listening")
	requireLog(t, entries, "debug", "control connection accepted")
	requireLog(t, entries, "trace", "control grpc request")
	requireLog(t, entries, "debug", "control tag switch to")
	requireLog(t, entries, "info", "signal session opened")
	requireLog(t, entries, "trace", "signal delivered")
	requireLog(t, entries, "debug", "signal stream disconnect requested")
	requireLog(t, entries, "info", "signal session closed")
}

type logEntry struct {
	Level   string
	Message string
	Fields  map[string]any
	Raw     string
}

type logCapture struct {
	t     *testing.T
	mu    sync.Mutex
	buf   bytes.Buffer
	lines []string
}

func newLogCapture(t *testing.T) *logCapture {
	t.Helper()
	return &logCapture{t: t}
}

func (c *logCapture) Write(p []byte) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, _ = c.buf.Write(p)
	for {
		data := c.buf.Bytes()
		idx := bytes.IndexByte(data, '\n')
		if idx == -1 {
			break
		}
		c.lines = append(c.lines, string(data[:idx]))
		c.buf.Next(idx + 1)
	}
	return len(p), nil
}

func (c *logCapture) Lines() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.buf.Len() > 0 {
		c.lines = append(c.lines, c.buf.String())
		c.buf.Reset()
	}
	out := make([]string, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *logCapture) Entries() []logEntry {
	lines := c.Lines()
	entries := make([]logEntry, 0, len(lines))
	for _, line := range lines {
		entries = append(entries, parseLogEntry(line))
	}
	return entries
}

func (c *logCapture) Dump(t *testing.T) {
	t.Helper()
	for _, line := range c.Lines() {
		t.Log(line)
	}
}

func parseLogEntry(line string) logEntry {
	payload := map[string]any{}
	if err := json.Unmarshal([]byte(line), &payload); err != nil {
		return logEntry{Raw: line}
	}
	level := ""
	if value, ok := payload["level"].(string); ok {
		level = value
	} else if value, ok := payload["lvl"].(string); ok {
		level = value
	}
	message := ""
	if value, ok := payload["message"].(string); ok {
		message = value
	} else if value, ok := payload["msg"].(string); ok {
		message = value
	}
	return logEntry{Level: level, Message: message, Fields: payload, Raw: line}
}

func hasLog(entries []logEntry, level, message string) bool {
	for _, entry := range entries {
		if entry.Level == level && entry.Message == message {
			return true
		}
	}
	return false
}

func requireLog(t *testing.T, entries []logEntry, level, message string) {
	t.Helper()
	if hasLog(entries, level, message) {
		return
	}
	t.Fatalf("expected log level=%q message=%q; got %d entries", level, message, len(entries))
}
