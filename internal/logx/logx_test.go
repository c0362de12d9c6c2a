package logx

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"pkt.systems/pslog"
	"pkt.systems/tagwm/schema"
)

func newCaptureLogger(capture *logCapture) pslog.Logger {
	return pslog.NewWithOptions(capture, pslog.Options{
		Mode:          pslog.ModeStructured,
		NoColor:       true,
		MinLevel:      pslog.InfoLevel,
		VerboseFields: true,
	})
}

func TestWithOutputAndTagAddFields(t *testing.T) {
	capture := &logCapture{}
	log := WithTag(WithOutput(newCaptureLogger(capture), "DP-1"), 7)
	log.Info("hello")

	entry := capture.firstEntry(t)
	if entry["output"] != "DP-1" {
		t.Fatalf("expected output field, got %+v", entry)
	}
	if fmt.Sprint(entry["tag"]) != "7" {
		t.Fatalf("expected tag field, got %+v", entry)
	}
}

func TestWithOutputSkipsEmpty(t *testing.T) {
	capture := &logCapture{}
	WithWindow(WithOutput(newCaptureLogger(capture), ""), 0).Info("hello")

	entry := capture.firstEntry(t)
	if _, ok := entry["output"]; ok {
		t.Fatalf("did not expect output field, got %+v", entry)
	}
	if _, ok := entry["window"]; ok {
		t.Fatalf("did not expect window field, got %+v", entry)
	}
}

func TestWithSessionDeduplicatesContext(t *testing.T) {
	capture := &logCapture{}
	ctx := pslog.ContextWithLogger(context.Background(), newCaptureLogger(capture))
	log := WithSession(ctx, 3, schema.SignalTagActive)
	ctx = ContextWithSessionLogger(ctx, log, 3)
	WithSession(ctx, 3, schema.SignalTagActive).Info("hello")

	entry := capture.firstEntry(t)
	if fmt.Sprint(entry["session"]) != "3" {
		t.Fatalf("expected session field, got %+v", entry)
	}
	if entry["kind"] != "tag-active" {
		t.Fatalf("expected kind field, got %+v", entry)
	}
	line := capture.buf.String()
	if bytes.Count([]byte(line), []byte(`"session"`)) != 1 {
		t.Fatalf("expected session field once, got %s", line)
	}
}

type logCapture struct {
	buf bytes.Buffer
}

func (c *logCapture) Write(p []byte) (int, error) {
	return c.buf.Write(p)
}

func (c *logCapture) firstEntry(t *testing.T) map[string]any {
	t.Helper()
	data := c.buf.Bytes()
	idx := bytes.IndexByte(data, '\n')
	if idx == -1 {
		idx = len(data)
	}
	line := bytes.TrimSpace(data[:idx])
	entry := map[string]any{}
	if err := json.Unmarshal(line, &entry); err != nil {
		t.Fatalf("parse log entry: %v", err)
	}
	return entry
}
