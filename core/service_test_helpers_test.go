package core

import (
	"context"
	"sync"
	"testing"

	"pkt.systems/tagwm/schema"
)

type recordingSink struct {
	mu      sync.Mutex
	batches [][]schema.Signal
}

func (r *recordingSink) Publish(signals ...schema.Signal) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.batches = append(r.batches, append([]schema.Signal(nil), signals...))
}

func (r *recordingSink) all() []schema.Signal {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []schema.Signal
	for _, batch := range r.batches {
		out = append(out, batch...)
	}
	return out
}

func (r *recordingSink) reset() {
	r.mu.Lock()
	r.batches = nil
	r.mu.Unlock()
}

func (r *recordingSink) batchCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.batches)
}

func newTestService(t *testing.T, cfg schema.ServiceConfig) (Service, *recordingSink) {
	t.Helper()
	sink := &recordingSink{}
	svc, err := NewService(cfg, ServiceDeps{Sink: sink})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	t.Cleanup(func() { _ = svc.Close() })
	return svc, sink
}

func mustAddOutput(t *testing.T, svc Service, name schema.OutputName) {
	t.Helper()
	if err := svc.OutputAdded(context.Background(), name, schema.Geometry{Width: 1920, Height: 1080}); err != nil {
		t.Fatalf("output added %s: %v", name, err)
	}
}

func mustAddTags(t *testing.T, svc Service, name schema.OutputName, names ...string) []schema.TagID {
	t.Helper()
	resp, err := svc.AddTags(context.Background(), schema.AddTagsRequest{OutputName: name, Names: names})
	if err != nil {
		t.Fatalf("add tags: %v", err)
	}
	return resp.TagIDs
}

func mustProps(t *testing.T, svc Service, id schema.TagID) schema.TagProperties {
	t.Helper()
	resp, err := svc.GetTagProperties(context.Background(), schema.GetTagPropertiesRequest{TagID: id})
	if err != nil {
		t.Fatalf("tag properties %d: %v", id, err)
	}
	return resp.Tag
}

func requireInvariants(t *testing.T, svc Service) {
	t.Helper()
	impl, ok := svc.(*service)
	if !ok {
		t.Fatalf("unexpected service type %T", svc)
	}
	if err := impl.loop.do(context.Background(), func(st *state) error {
		return st.checkInvariants()
	}); err != nil {
		t.Fatalf("invariants: %v", err)
	}
}
