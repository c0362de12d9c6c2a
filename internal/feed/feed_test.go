package feed

import (
	"context"
	"errors"
	"io"
	"slices"
	"strings"
	"testing"
	"time"

	"pkt.systems/tagwm/core"
	"pkt.systems/tagwm/schema"
)

type recordingSink struct {
	signals []schema.Signal
}

func (r *recordingSink) Publish(signals ...schema.Signal) {
	r.signals = append(r.signals, signals...)
}

func TestParseSkipsBlankAndCommentLines(t *testing.T) {
	for _, line := range []string{"", "   ", "// comment", "/* block */"} {
		_, ok, err := Parse([]byte(line))
		if err != nil || ok {
			t.Fatalf("%q: ok=%v err=%v", line, ok, err)
		}
	}
}

func TestParseRejectsBadLines(t *testing.T) {
	cases := []string{
		`{"event": "teleport"}`,
		`{"event": "output_added"}`,
		`{"event": "window_mapped", "window": 1, "colour": "red"}`,
		`not json`,
	}
	for _, line := range cases {
		if _, _, err := Parse([]byte(line)); err == nil {
			t.Fatalf("%q: expected error", line)
		}
	}
	if _, _, err := Parse([]byte(`{"event": "teleport"}`)); !errors.Is(err, ErrUnknownEvent) {
		t.Fatalf("expected unknown event, got %v", err)
	}
}

func TestRunDrivesService(t *testing.T) {
	sink := &recordingSink{}
	svc, err := core.NewService(schema.ServiceConfig{DefaultTags: []string{"1", "2"}}, core.ServiceDeps{Sink: sink})
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	defer svc.Close()

	input := strings.Join([]string{
		`// two monitors`,
		`{"event": "output_added", "output": "DP-1", "width": 1920, "height": 1080}`,
		`{"event": "output_geometry_changed", "output": "DP-1", "x": 10, "width": 1920, "height": 1080,}`,
		`{"event": "window_mapped", "window": 3}`,
		`{"event": "pointer_entered_window", "window": 3}`,
		`{"event": "output_removed", "output": "HDMI-A-1"}`,
		`{"event": "bogus"}`,
		``,
		`{"event": "pointer_left_window", "window": 3}`,
	}, "\n")

	stats, err := Run(context.Background(), strings.NewReader(input), svc)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if stats.Applied != 5 || stats.Failed != 1 || stats.Skipped != 1 {
		t.Fatalf("unexpected stats %+v", stats)
	}

	outputs, err := svc.ListOutputs(context.Background(), schema.ListOutputsRequest{})
	if err != nil {
		t.Fatalf("ListOutputs: %v", err)
	}
	if !slices.Equal(outputs.OutputNames, []schema.OutputName{"DP-1"}) {
		t.Fatalf("outputs %v", outputs.OutputNames)
	}
	var kinds []schema.SignalKind
	for _, sig := range sink.signals {
		kinds = append(kinds, sig.Kind())
	}
	want := []schema.SignalKind{
		schema.SignalOutputConnect,
		schema.SignalTagActive,
		schema.SignalOutputMove,
		schema.SignalWindowPointerEnter,
		schema.SignalWindowPointerLeave,
	}
	if !slices.Equal(kinds, want) {
		t.Fatalf("signal kinds %v, want %v", kinds, want)
	}
}

func TestRunStopsWhenServiceCloses(t *testing.T) {
	svc, err := core.NewService(schema.ServiceConfig{}, core.ServiceDeps{})
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	_ = svc.Close()
	_, err = Run(context.Background(), strings.NewReader(`{"event": "window_mapped", "window": 1}`), svc)
	if !errors.Is(err, schema.ErrServiceClosed) {
		t.Fatalf("expected service closed, got %v", err)
	}
}

func TestRunReturnsOnCancelWhileReadBlocks(t *testing.T) {
	svc, err := core.NewService(schema.ServiceConfig{}, core.ServiceDeps{})
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	defer svc.Close()

	pr, pw := io.Pipe()
	defer pw.Close()
	ctx, cancel := context.WithCancel(context.Background())
	result := make(chan error, 1)
	go func() {
		_, err := Run(ctx, pr, svc)
		result <- err
	}()

	if _, err := io.WriteString(pw, `{"event": "window_mapped", "window": 9}`+"\n"); err != nil {
		t.Fatalf("write: %v", err)
	}
	deadline := time.Now().Add(2 * time.Second)
	for {
		windows, err := svc.ListWindows(context.Background(), schema.ListWindowsRequest{})
		if err != nil {
			t.Fatalf("ListWindows: %v", err)
		}
		if len(windows.WindowIDs) == 1 {
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("feed line was not applied")
		}
		time.Sleep(10 * time.Millisecond)
	}

	cancel()
	select {
	case err := <-result:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("expected canceled, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("Run did not return after cancel")
	}
}
