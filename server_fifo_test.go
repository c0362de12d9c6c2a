//go:build linux

package tagwm

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"golang.org/x/sys/unix"

	"pkt.systems/tagwm/schema"
)

func TestServerStopsWithIdleFIFOFeed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.fifo")
	if err := unix.Mkfifo(path, 0o600); err != nil {
		t.Fatalf("mkfifo: %v", err)
	}
	// O_RDWR keeps a writer attached without blocking the open.
	writer, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		t.Fatalf("open fifo writer: %v", err)
	}
	defer writer.Close()

	srv, err := New(ServerConfig{
		Service:  schema.ServiceConfig{DefaultTags: []string{"1"}},
		FeedPath: path,
	}, ServerDeps{}, WithFeed())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := srv.Start(ctx); err != nil {
		t.Fatalf("Start: %v", err)
	}

	if _, err := writer.WriteString(`{"event": "output_added", "output": "DP-1", "width": 800, "height": 600}` + "\n"); err != nil {
		t.Fatalf("write fifo: %v", err)
	}
	deadline := time.Now().Add(2 * time.Second)
	for {
		outputs, err := srv.Service().ListOutputs(context.Background(), schema.ListOutputsRequest{})
		if err != nil {
			t.Fatalf("ListOutputs: %v", err)
		}
		if len(outputs.OutputNames) == 1 {
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("feed line was not applied")
		}
		time.Sleep(10 * time.Millisecond)
	}

	cancel()
	stopCtx, stopCancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer stopCancel()
	started := time.Now()
	if err := srv.Stop(stopCtx); err != nil {
		t.Fatalf("Stop: %v after %s", err, time.Since(started))
	}
	if elapsed := time.Since(started); elapsed > time.Second {
		t.Fatalf("Stop took %s", elapsed)
	}
}
