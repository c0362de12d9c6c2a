package core

import (
	"fmt"
	"slices"

	"pkt.systems/tagwm/schema"
)

// state is the authoritative model of outputs, tags and windows. It is only
// touched from the main loop goroutine.
type state struct {
	cfg schema.ServiceConfig

	outputs     map[schema.OutputName]*output
	outputOrder []schema.OutputName
	tags        map[schema.TagID]*tag
	windows     map[schema.WindowID]*window

	// stash keeps the tags of disconnected outputs until the output returns.
	stash map[schema.OutputName][]stashedTag
	// seen records outputs that connected at least once.
	seen map[schema.OutputName]struct{}

	lastTagID schema.TagID
	pending   []schema.Signal
}

type output struct {
	name     schema.OutputName
	geometry schema.Geometry
	tags     []schema.TagID
}

type tag struct {
	id     schema.TagID
	name   string
	output schema.OutputName
	active bool
}

// window holds the window side of the tag relation; the window itself is owned
// by the windowing subsystem.
type window struct {
	id           schema.WindowID
	tags         map[schema.TagID]struct{}
	pointerFocus bool
}

type stashedTag struct {
	tag     tag
	windows []schema.WindowID
}

func newState(cfg schema.ServiceConfig) *state {
	return &state{
		cfg:     cfg,
		outputs: make(map[schema.OutputName]*output),
		tags:    make(map[schema.TagID]*tag),
		windows: make(map[schema.WindowID]*window),
		stash:   make(map[schema.OutputName][]stashedTag),
		seen:    make(map[schema.OutputName]struct{}),
	}
}

func (st *state) emit(sig schema.Signal) {
	st.pending = append(st.pending, sig)
}

func (st *state) takeSignals() []schema.Signal {
	if len(st.pending) == 0 {
		return nil
	}
	out := st.pending
	st.pending = nil
	return out
}

func (st *state) nextTagID() schema.TagID {
	st.lastTagID++
	return st.lastTagID
}

func (st *state) lookupTag(id schema.TagID) (*tag, error) {
	t := st.tags[id]
	if t == nil {
		return nil, fmt.Errorf("%w: %d", schema.ErrTagNotFound, id)
	}
	return t, nil
}

func (st *state) lookupOutput(name schema.OutputName) (*output, error) {
	o := st.outputs[name]
	if o == nil {
		return nil, fmt.Errorf("%w: %s", schema.ErrOutputNotFound, name)
	}
	return o, nil
}

func (st *state) lookupWindow(id schema.WindowID) (*window, error) {
	w := st.windows[id]
	if w == nil {
		return nil, fmt.Errorf("%w: %d", schema.ErrWindowNotFound, id)
	}
	return w, nil
}

// windowsCarrying scans the window relation for a tag.
func (st *state) windowsCarrying(id schema.TagID) []schema.WindowID {
	var out []schema.WindowID
	for wid, w := range st.windows {
		if _, ok := w.tags[id]; ok {
			out = append(out, wid)
		}
	}
	slices.Sort(out)
	return out
}

// checkInvariants verifies the model's structural rules.
func (st *state) checkInvariants() error {
	for id, t := range st.tags {
		o := st.outputs[t.output]
		if o == nil {
			return fmt.Errorf("tag %d references missing output %s", id, t.output)
		}
		if !slices.Contains(o.tags, id) {
			return fmt.Errorf("tag %d missing from output %s sequence", id, t.output)
		}
		if id > st.lastTagID {
			return fmt.Errorf("tag %d above id high-water mark %d", id, st.lastTagID)
		}
	}
	for name, o := range st.outputs {
		for _, id := range o.tags {
			t := st.tags[id]
			if t == nil {
				return fmt.Errorf("output %s lists missing tag %d", name, id)
			}
			if t.output != name {
				return fmt.Errorf("output %s lists tag %d owned by %s", name, id, t.output)
			}
		}
	}
	for wid, w := range st.windows {
		for id := range w.tags {
			if st.tags[id] == nil {
				return fmt.Errorf("window %d carries missing tag %d", wid, id)
			}
		}
	}
	return nil
}
