package core

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"

	"pkt.systems/pslog"
	"pkt.systems/tagwm/schema"
)

type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func newBufferLogger(w *lockedBuffer) pslog.Logger {
	return pslog.NewWithOptions(w, pslog.Options{
		Mode:          pslog.ModeStructured,
		NoColor:       true,
		VerboseFields: true,
		MinLevel:      pslog.DebugLevel,
	})
}

func TestServiceLogsThroughRequestLogger(t *testing.T) {
	base := &lockedBuffer{}
	request := &lockedBuffer{}
	svc, err := NewService(schema.ServiceConfig{}, ServiceDeps{Logger: newBufferLogger(base)})
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	defer svc.Close()
	mustAddOutput(t, svc, "DP-1")

	ctx := pslog.ContextWithLogger(context.Background(), newBufferLogger(request).With("method", "/tagwm.v1.TagService/Add"))
	if _, err := svc.AddTags(ctx, schema.AddTagsRequest{OutputName: "DP-1", Names: []string{"web"}}); err != nil {
		t.Fatalf("AddTags: %v", err)
	}

	var line string
	for _, candidate := range strings.Split(request.String(), "\n") {
		if strings.Contains(candidate, "service tags added") {
			line = candidate
		}
	}
	if line == "" {
		t.Fatalf("expected request logger to receive the core log line, got %q", request.String())
	}
	if !strings.Contains(line, "TagService/Add") || !strings.Contains(line, "DP-1") {
		t.Fatalf("expected request and output fields, got %s", line)
	}
	if strings.Contains(base.String(), "service tags added") {
		t.Fatalf("service logger should not receive request log lines: %s", base.String())
	}
}

func TestServiceFallsBackToOwnLogger(t *testing.T) {
	base := &lockedBuffer{}
	svc, err := NewService(schema.ServiceConfig{}, ServiceDeps{Logger: newBufferLogger(base)})
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	defer svc.Close()
	mustAddOutput(t, svc, "DP-1")
	mustAddTags(t, svc, "DP-1", "web")
	if !strings.Contains(base.String(), "service tags added") {
		t.Fatalf("expected service logger output, got %q", base.String())
	}
}
