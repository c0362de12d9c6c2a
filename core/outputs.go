package core

import (
	"fmt"
	"slices"

	"pkt.systems/tagwm/schema"
)

// outputAdded registers an output, then restores its stashed tags or, on first
// connect, creates the configured default tags.
func (st *state) outputAdded(name schema.OutputName, geometry schema.Geometry) error {
	if st.outputs[name] != nil {
		return fmt.Errorf("%w: %s", schema.ErrOutputExists, name)
	}
	st.outputs[name] = &output{name: name, geometry: geometry}
	st.outputOrder = append(st.outputOrder, name)
	st.emit(schema.OutputConnectSignal{OutputName: name})

	_, seen := st.seen[name]
	st.seen[name] = struct{}{}
	if stashed := st.stash[name]; len(stashed) > 0 {
		delete(st.stash, name)
		st.restoreTags(name, stashed)
		return nil
	}
	if seen || len(st.cfg.DefaultTags) == 0 {
		return nil
	}
	ids, err := st.addTags(name, st.cfg.DefaultTags)
	if err != nil {
		return err
	}
	_, err = st.switchTo(ids[0])
	return err
}

func (st *state) restoreTags(name schema.OutputName, stashed []stashedTag) {
	o := st.outputs[name]
	for _, entry := range stashed {
		t := entry.tag
		t.output = name
		if t.id == 0 {
			t.id = st.nextTagID()
		}
		st.tags[t.id] = &t
		o.tags = append(o.tags, t.id)
		for _, wid := range entry.windows {
			if w := st.windows[wid]; w != nil {
				w.tags[t.id] = struct{}{}
			}
		}
	}
}

// outputRemoved drops an output. Its tags leave the live registry; with
// RestoreTags they are stashed under the output name along with their windows.
func (st *state) outputRemoved(name schema.OutputName) error {
	o, err := st.lookupOutput(name)
	if err != nil {
		return err
	}
	var stashed []stashedTag
	for _, id := range o.tags {
		t := st.tags[id]
		if t == nil {
			continue
		}
		entry := stashedTag{tag: *t, windows: st.windowsCarrying(id)}
		for _, wid := range entry.windows {
			delete(st.windows[wid].tags, id)
		}
		delete(st.tags, id)
		if st.cfg.RestoreTags {
			stashed = append(stashed, entry)
		}
	}
	if len(stashed) > 0 {
		st.stash[name] = stashed
	}
	delete(st.outputs, name)
	st.outputOrder = slices.DeleteFunc(st.outputOrder, func(v schema.OutputName) bool { return v == name })
	st.emit(schema.OutputDisconnectSignal{OutputName: name})
	return nil
}

// outputGeometryChanged emits a resize and/or a move, in that order, for the
// parts of the geometry that differ.
func (st *state) outputGeometryChanged(name schema.OutputName, geometry schema.Geometry) error {
	o, err := st.lookupOutput(name)
	if err != nil {
		return err
	}
	prev := o.geometry
	o.geometry = geometry
	if !prev.SameSize(geometry) {
		st.emit(schema.OutputResizeSignal{OutputName: name, Width: geometry.Width, Height: geometry.Height})
	}
	if !prev.SamePosition(geometry) {
		st.emit(schema.OutputMoveSignal{OutputName: name, X: geometry.X, Y: geometry.Y})
	}
	return nil
}

func (st *state) listOutputs() []schema.OutputName {
	return slices.Clone(st.outputOrder)
}

func (st *state) outputProperties(name schema.OutputName) (schema.OutputProperties, error) {
	o, err := st.lookupOutput(name)
	if err != nil {
		return schema.OutputProperties{}, err
	}
	return schema.OutputProperties{
		Name:     o.name,
		Geometry: o.geometry,
		TagIDs:   slices.Clone(o.tags),
	}, nil
}
