package core

import (
	"context"
	"errors"
	"slices"
	"testing"

	"pkt.systems/tagwm/schema"
)

func TestOutputAddedCreatesDefaultTagsOnce(t *testing.T) {
	svc, sink := newTestService(t, schema.ServiceConfig{DefaultTags: []string{"1", "2", "3"}})
	mustAddOutput(t, svc, "DP-1")

	out, err := svc.GetOutputProperties(context.Background(), schema.GetOutputPropertiesRequest{OutputName: "DP-1"})
	if err != nil {
		t.Fatalf("output properties: %v", err)
	}
	if len(out.Output.TagIDs) != 3 {
		t.Fatalf("expected 3 default tags, got %v", out.Output.TagIDs)
	}
	if !mustProps(t, svc, out.Output.TagIDs[0]).Active {
		t.Fatalf("first default tag should be active")
	}
	for _, id := range out.Output.TagIDs[1:] {
		if mustProps(t, svc, id).Active {
			t.Fatalf("tag %d should be inactive", id)
		}
	}
	want := []schema.Signal{
		schema.OutputConnectSignal{OutputName: "DP-1"},
		schema.TagActiveSignal{TagID: out.Output.TagIDs[0], Active: true},
	}
	if got := sink.all(); !slices.Equal(got, want) {
		t.Fatalf("signals %v, want %v", got, want)
	}

	// Without restore the second connect starts empty.
	ctx := context.Background()
	if err := svc.OutputRemoved(ctx, "DP-1"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	mustAddOutput(t, svc, "DP-1")
	out, err = svc.GetOutputProperties(ctx, schema.GetOutputPropertiesRequest{OutputName: "DP-1"})
	if err != nil {
		t.Fatalf("output properties: %v", err)
	}
	if len(out.Output.TagIDs) != 0 {
		t.Fatalf("expected no tags after reconnect, got %v", out.Output.TagIDs)
	}
	requireInvariants(t, svc)
}

func TestOutputReconnectRestoresTags(t *testing.T) {
	svc, sink := newTestService(t, schema.ServiceConfig{RestoreTags: true})
	ctx := context.Background()
	mustAddOutput(t, svc, "DP-1")
	ids := mustAddTags(t, svc, "DP-1", "web", "code")
	if _, err := svc.SwitchTo(ctx, schema.SwitchToRequest{TagID: ids[1]}); err != nil {
		t.Fatalf("switch: %v", err)
	}
	if err := svc.WindowMapped(ctx, 4); err != nil {
		t.Fatalf("map: %v", err)
	}
	if _, err := svc.SetWindowTag(ctx, schema.SetWindowTagRequest{WindowID: 4, TagID: ids[1], Mode: schema.SetActiveSet}); err != nil {
		t.Fatalf("tag window: %v", err)
	}

	sink.reset()
	if err := svc.OutputRemoved(ctx, "DP-1"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if got := sink.all(); !slices.Equal(got, []schema.Signal{schema.OutputDisconnectSignal{OutputName: "DP-1"}}) {
		t.Fatalf("disconnect signals %v", got)
	}
	list, err := svc.ListTags(ctx, schema.ListTagsRequest{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list.TagIDs) != 0 {
		t.Fatalf("tags should leave the registry, got %v", list.TagIDs)
	}
	if _, err := svc.GetTagProperties(ctx, schema.GetTagPropertiesRequest{TagID: ids[0]}); !errors.Is(err, schema.ErrTagNotFound) {
		t.Fatalf("expected not found for stashed tag, got %v", err)
	}
	win, err := svc.GetWindowProperties(ctx, schema.GetWindowPropertiesRequest{WindowID: 4})
	if err != nil {
		t.Fatalf("window props: %v", err)
	}
	if len(win.Window.TagIDs) != 0 {
		t.Fatalf("window should drop stashed tag, got %v", win.Window.TagIDs)
	}
	requireInvariants(t, svc)

	sink.reset()
	mustAddOutput(t, svc, "DP-1")
	if got := sink.all(); !slices.Equal(got, []schema.Signal{schema.OutputConnectSignal{OutputName: "DP-1"}}) {
		t.Fatalf("reconnect signals %v", got)
	}
	restored := mustProps(t, svc, ids[1])
	if !restored.Active || restored.Name != "code" || restored.OutputName != "DP-1" {
		t.Fatalf("unexpected restored tag %+v", restored)
	}
	if !slices.Equal(restored.WindowIDs, []schema.WindowID{4}) {
		t.Fatalf("restored windows %v", restored.WindowIDs)
	}
	out, err := svc.GetOutputProperties(ctx, schema.GetOutputPropertiesRequest{OutputName: "DP-1"})
	if err != nil {
		t.Fatalf("output properties: %v", err)
	}
	if !slices.Equal(out.Output.TagIDs, ids) {
		t.Fatalf("restored order %v, want %v", out.Output.TagIDs, ids)
	}
	requireInvariants(t, svc)
}

func TestUnmappedWindowIsNotRestored(t *testing.T) {
	svc, _ := newTestService(t, schema.ServiceConfig{RestoreTags: true})
	ctx := context.Background()
	mustAddOutput(t, svc, "DP-1")
	id := mustAddTags(t, svc, "DP-1", "1")[0]
	if err := svc.WindowMapped(ctx, 9); err != nil {
		t.Fatalf("map: %v", err)
	}
	if _, err := svc.SetWindowTag(ctx, schema.SetWindowTagRequest{WindowID: 9, TagID: id, Mode: schema.SetActiveSet}); err != nil {
		t.Fatalf("tag: %v", err)
	}
	if err := svc.OutputRemoved(ctx, "DP-1"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if err := svc.WindowUnmapped(ctx, 9); err != nil {
		t.Fatalf("unmap: %v", err)
	}
	if err := svc.WindowMapped(ctx, 9); err != nil {
		t.Fatalf("remap: %v", err)
	}
	mustAddOutput(t, svc, "DP-1")
	if got := mustProps(t, svc, id).WindowIDs; len(got) != 0 {
		t.Fatalf("recycled window inherited tag: %v", got)
	}
}

func TestOutputAddedTwiceFails(t *testing.T) {
	svc, _ := newTestService(t, schema.ServiceConfig{})
	mustAddOutput(t, svc, "DP-1")
	err := svc.OutputAdded(context.Background(), "DP-1", schema.Geometry{})
	if !errors.Is(err, schema.ErrOutputExists) {
		t.Fatalf("expected output exists, got %v", err)
	}
	if err := svc.OutputRemoved(context.Background(), "DP-2"); !errors.Is(err, schema.ErrOutputNotFound) {
		t.Fatalf("expected output not found, got %v", err)
	}
}

func TestGeometryChangeEmitsResizeThenMove(t *testing.T) {
	svc, sink := newTestService(t, schema.ServiceConfig{})
	ctx := context.Background()
	mustAddOutput(t, svc, "DP-1")
	sink.reset()

	steps := []struct {
		geometry schema.Geometry
		want     []schema.Signal
	}{
		{
			geometry: schema.Geometry{Width: 1920, Height: 1080},
		},
		{
			geometry: schema.Geometry{X: 1920, Width: 1920, Height: 1080},
			want:     []schema.Signal{schema.OutputMoveSignal{OutputName: "DP-1", X: 1920}},
		},
		{
			geometry: schema.Geometry{X: 1920, Width: 2560, Height: 1440},
			want:     []schema.Signal{schema.OutputResizeSignal{OutputName: "DP-1", Width: 2560, Height: 1440}},
		},
		{
			geometry: schema.Geometry{X: 0, Y: 10, Width: 1280, Height: 720},
			want: []schema.Signal{
				schema.OutputResizeSignal{OutputName: "DP-1", Width: 1280, Height: 720},
				schema.OutputMoveSignal{OutputName: "DP-1", X: 0, Y: 10},
			},
		},
	}
	for i, step := range steps {
		sink.reset()
		if err := svc.OutputGeometryChanged(ctx, "DP-1", step.geometry); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
		if got := sink.all(); !slices.Equal(got, step.want) {
			t.Fatalf("step %d: signals %v, want %v", i, got, step.want)
		}
	}
	out, err := svc.GetOutputProperties(ctx, schema.GetOutputPropertiesRequest{OutputName: "DP-1"})
	if err != nil {
		t.Fatalf("output properties: %v", err)
	}
	if out.Output.Geometry != steps[len(steps)-1].geometry {
		t.Fatalf("geometry %v", out.Output.Geometry)
	}
}

func TestListOutputsInConnectOrder(t *testing.T) {
	svc, _ := newTestService(t, schema.ServiceConfig{})
	for _, name := range []schema.OutputName{"HDMI-A-1", "DP-2", "DP-1"} {
		mustAddOutput(t, svc, name)
	}
	if err := svc.OutputRemoved(context.Background(), "DP-2"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	resp, err := svc.ListOutputs(context.Background(), schema.ListOutputsRequest{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	want := []schema.OutputName{"HDMI-A-1", "DP-1"}
	if !slices.Equal(resp.OutputNames, want) {
		t.Fatalf("outputs %v, want %v", resp.OutputNames, want)
	}
}
