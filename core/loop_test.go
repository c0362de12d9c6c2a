package core

import (
	"context"
	"errors"
	"testing"

	"pkt.systems/pslog"
	"pkt.systems/tagwm/schema"
)

func newTestLoop(t *testing.T) *loop {
	t.Helper()
	l := newLoop(newState(schema.ServiceConfig{}), nil, 4, pslog.NoopLogger())
	go l.run()
	t.Cleanup(l.close)
	return l
}

func TestLoopReportsResultOfAppliedStepAfterCancel(t *testing.T) {
	l := newTestLoop(t)
	for i := 0; i < 100; i++ {
		ctx, cancel := context.WithCancel(context.Background())
		applied := false
		err := l.do(ctx, func(st *state) error {
			applied = true
			cancel()
			return nil
		})
		if err != nil {
			t.Fatalf("iteration %d: expected applied step to succeed, got %v", i, err)
		}
		if !applied {
			t.Fatalf("iteration %d: step did not run", i)
		}
	}
}

func TestLoopSkipsCanceledRequest(t *testing.T) {
	l := newTestLoop(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	ran := false
	err := l.do(ctx, func(st *state) error {
		ran = true
		return nil
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected canceled, got %v", err)
	}
	if ran {
		t.Fatalf("canceled request must not run")
	}
}

func TestLoopClosedReturnsServiceClosed(t *testing.T) {
	l := newLoop(newState(schema.ServiceConfig{}), nil, 4, pslog.NoopLogger())
	go l.run()
	l.close()
	if err := l.do(context.Background(), func(st *state) error { return nil }); !errors.Is(err, schema.ErrServiceClosed) {
		t.Fatalf("expected service closed, got %v", err)
	}
}
