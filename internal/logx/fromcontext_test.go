package logx

import (
	"context"
	"testing"

	"pkt.systems/pslog"
)

func TestFromContextReportsAttachedLogger(t *testing.T) {
	if _, ok := FromContext(context.Background()); ok {
		t.Fatalf("expected no logger on a bare context")
	}
	capture := &logCapture{}
	ctx := pslog.ContextWithLogger(context.Background(), newCaptureLogger(capture))
	log, ok := FromContext(ctx)
	if !ok {
		t.Fatalf("expected attached logger")
	}
	log.Info("hello")
	if entry := capture.firstEntry(t); len(entry) == 0 {
		t.Fatalf("expected log entry")
	}
}
