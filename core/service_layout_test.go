package core

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"pkt.systems/tagwm/schema"
)

func TestExportLayoutCoversLiveAndStashedOutputs(t *testing.T) {
	svc, _ := newTestService(t, schema.ServiceConfig{RestoreTags: true})
	ctx := context.Background()
	mustAddOutput(t, svc, "DP-2")
	mustAddOutput(t, svc, "DP-1")
	web := mustAddTags(t, svc, "DP-2", "web", "code")
	mustAddTags(t, svc, "DP-1", "chat")
	if _, err := svc.SetActive(ctx, schema.SetActiveRequest{TagID: web[0], Mode: schema.SetActiveSet}); err != nil {
		t.Fatalf("set active: %v", err)
	}
	mustAddOutput(t, svc, "eDP-1")
	mustAddTags(t, svc, "eDP-1", "laptop")
	if err := svc.OutputRemoved(ctx, "eDP-1"); err != nil {
		t.Fatalf("output removed: %v", err)
	}

	layout, err := svc.ExportLayout(ctx)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	want := schema.Layout{Outputs: []schema.OutputLayout{
		{Output: "DP-2", Tags: []schema.LayoutTag{{Name: "web", Active: true}, {Name: "code"}}},
		{Output: "DP-1", Tags: []schema.LayoutTag{{Name: "chat"}}},
		{Output: "eDP-1", Tags: []schema.LayoutTag{{Name: "laptop"}}},
	}}
	if !reflect.DeepEqual(layout, want) {
		t.Fatalf("layout mismatch:\nwant: %+v\ngot:  %+v", want, layout)
	}
}

func TestImportLayoutRestoresOnConnect(t *testing.T) {
	svc, sink := newTestService(t, schema.ServiceConfig{RestoreTags: true, DefaultTags: []string{"1", "2"}})
	ctx := context.Background()
	mustAddOutput(t, svc, "DP-1")
	live := mustAddTags(t, svc, "DP-1", "keep")

	n, err := svc.ImportLayout(ctx, schema.Layout{Outputs: []schema.OutputLayout{
		{Output: "DP-1", Tags: []schema.LayoutTag{{Name: "ignored"}}},
		{Output: "HDMI-A-1", Tags: []schema.LayoutTag{{Name: "a"}, {Name: "b", Active: true}}},
	}})
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected one stashed output, got %d", n)
	}
	if got := mustProps(t, svc, live[0]); got.Name != "keep" {
		t.Fatalf("live tag changed: %+v", got)
	}

	sink.reset()
	mustAddOutput(t, svc, "HDMI-A-1")
	resp, err := svc.GetOutputProperties(ctx, schema.GetOutputPropertiesRequest{OutputName: "HDMI-A-1"})
	if err != nil {
		t.Fatalf("output properties: %v", err)
	}
	ids := resp.Output.TagIDs
	if len(ids) != 2 {
		t.Fatalf("expected imported tags instead of defaults, got %v", ids)
	}
	for i, id := range ids {
		if id <= live[0] {
			t.Fatalf("imported tag %d reuses an old id", id)
		}
		props := mustProps(t, svc, id)
		if props.Name != []string{"a", "b"}[i] || props.Active != (i == 1) {
			t.Fatalf("unexpected restored tag %+v", props)
		}
	}
	signals := sink.all()
	if len(signals) != 1 || signals[0].Kind() != schema.SignalOutputConnect {
		t.Fatalf("expected only an output-connect signal, got %v", signals)
	}
	requireInvariants(t, svc)
}

func TestImportLayoutRejectsBadNames(t *testing.T) {
	svc, _ := newTestService(t, schema.ServiceConfig{RestoreTags: true})
	_, err := svc.ImportLayout(context.Background(), schema.Layout{Outputs: []schema.OutputLayout{
		{Output: "DP-1", Tags: []schema.LayoutTag{{Name: "ok"}, {Name: " "}}},
	}})
	if !errors.Is(err, schema.ErrInvalidRequest) {
		t.Fatalf("expected invalid request, got %v", err)
	}
	layout, err := svc.ExportLayout(context.Background())
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if len(layout.Outputs) != 0 {
		t.Fatalf("expected nothing imported, got %+v", layout)
	}
}

func TestImportLayoutSkippedWithoutRestore(t *testing.T) {
	svc, _ := newTestService(t, schema.ServiceConfig{DefaultTags: []string{"1"}})
	n, err := svc.ImportLayout(context.Background(), schema.Layout{Outputs: []schema.OutputLayout{
		{Output: "DP-1", Tags: []schema.LayoutTag{{Name: "x"}}},
	}})
	if err != nil || n != 0 {
		t.Fatalf("expected skipped import, got n=%d err=%v", n, err)
	}
	mustAddOutput(t, svc, "DP-1")
	resp, err := svc.ListTags(context.Background(), schema.ListTagsRequest{})
	if err != nil {
		t.Fatalf("list tags: %v", err)
	}
	if len(resp.TagIDs) != 1 || mustProps(t, svc, resp.TagIDs[0]).Name != "1" {
		t.Fatalf("expected default tag, got %v", resp.TagIDs)
	}
}
