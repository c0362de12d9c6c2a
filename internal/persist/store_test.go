package persist

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"pkt.systems/tagwm/schema"
)

func TestStoreLoadMissing(t *testing.T) {
	store, err := NewStore(filepath.Join(t.TempDir(), "layout.json"))
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	_, ok, err := store.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if ok {
		t.Fatalf("expected missing layout")
	}
}

func TestStoreSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "layout.json")
	store, err := NewStore(path)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	layout := schema.Layout{
		Outputs: []schema.OutputLayout{
			{Output: "DP-1", Tags: []schema.LayoutTag{{Name: "web", Active: true}, {Name: "code"}}},
			{Output: "HDMI-A-1", Tags: []schema.LayoutTag{{Name: "chat"}}},
		},
	}
	if err := store.Save(layout); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, ok, err := store.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !ok {
		t.Fatalf("expected layout to exist")
	}
	if !reflect.DeepEqual(layout, got) {
		t.Fatalf("layout mismatch:\nwant: %+v\ngot:  %+v", layout, got)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Fatalf("expected 0600 permissions, got %v", info.Mode().Perm())
	}
}

func TestStoreLoadInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.json")
	store, err := NewStore(path)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	if err := os.WriteFile(path, []byte("{not-json"), 0o600); err != nil {
		t.Fatalf("write bad json: %v", err)
	}
	if _, _, err := store.Load(); err == nil {
		t.Fatalf("expected error for invalid json")
	}
}

func TestStoreRejectsUnknownVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.json")
	store, err := NewStore(path)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	if err := os.WriteFile(path, []byte(`{"version": 9, "layout": {"outputs": []}}`), 0o600); err != nil {
		t.Fatalf("write layout: %v", err)
	}
	if _, _, err := store.Load(); err == nil || !strings.Contains(err.Error(), "unsupported layout version") {
		t.Fatalf("expected version error, got %v", err)
	}
}

func TestNewStoreRequiresPath(t *testing.T) {
	if _, err := NewStore("  "); err == nil {
		t.Fatalf("expected error for empty path")
	}
}
