package core

import (
	"slices"

	"pkt.systems/tagwm/schema"
)

func (st *state) setActive(id schema.TagID, mode schema.SetActiveMode) (bool, bool, error) {
	t, err := st.lookupTag(id)
	if err != nil {
		return false, false, err
	}
	next := mode.Apply(t.active)
	if next == t.active {
		return t.active, false, nil
	}
	t.active = next
	st.emit(schema.TagActiveSignal{TagID: id, Active: next})
	return next, true, nil
}

// switchTo activates id and deactivates every other tag on the same output.
// Signals are emitted in the output's tag order.
func (st *state) switchTo(id schema.TagID) ([]schema.TagID, error) {
	target, err := st.lookupTag(id)
	if err != nil {
		return nil, err
	}
	o, err := st.lookupOutput(target.output)
	if err != nil {
		return nil, err
	}
	var changed []schema.TagID
	for _, sibling := range o.tags {
		t := st.tags[sibling]
		want := sibling == id
		if t.active == want {
			continue
		}
		t.active = want
		changed = append(changed, sibling)
		st.emit(schema.TagActiveSignal{TagID: sibling, Active: want})
	}
	return changed, nil
}

func (st *state) addTags(outputName schema.OutputName, names []string) ([]schema.TagID, error) {
	o, err := st.lookupOutput(outputName)
	if err != nil {
		return nil, err
	}
	ids := make([]schema.TagID, 0, len(names))
	for _, name := range names {
		t := &tag{id: st.nextTagID(), name: name, output: o.name}
		st.tags[t.id] = t
		o.tags = append(o.tags, t.id)
		ids = append(ids, t.id)
	}
	return ids, nil
}

// removeTags is best-effort: ids that do not resolve are skipped.
func (st *state) removeTags(ids []schema.TagID) []schema.TagID {
	var removed []schema.TagID
	for _, id := range ids {
		t := st.tags[id]
		if t == nil {
			continue
		}
		if o := st.outputs[t.output]; o != nil {
			o.tags = slices.DeleteFunc(o.tags, func(v schema.TagID) bool { return v == id })
		}
		for _, w := range st.windows {
			delete(w.tags, id)
		}
		delete(st.tags, id)
		removed = append(removed, id)
	}
	return removed
}

func (st *state) listTags() []schema.TagID {
	out := make([]schema.TagID, 0, len(st.tags))
	for id := range st.tags {
		out = append(out, id)
	}
	slices.Sort(out)
	return out
}

func (st *state) tagProperties(id schema.TagID) (schema.TagProperties, error) {
	t, err := st.lookupTag(id)
	if err != nil {
		return schema.TagProperties{}, err
	}
	return schema.TagProperties{
		ID:         t.id,
		Name:       t.name,
		OutputName: t.output,
		Active:     t.active,
		WindowIDs:  st.windowsCarrying(id),
	}, nil
}
