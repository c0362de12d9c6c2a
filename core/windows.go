package core

import (
	"slices"

	"pkt.systems/tagwm/schema"
)

func (st *state) windowMapped(id schema.WindowID) bool {
	if st.windows[id] != nil {
		return false
	}
	st.windows[id] = &window{id: id, tags: make(map[schema.TagID]struct{})}
	return true
}

// windowUnmapped drops the window and every relation row that mentions it,
// including stashed ones, so a recycled id never inherits old tags.
func (st *state) windowUnmapped(id schema.WindowID) error {
	if _, err := st.lookupWindow(id); err != nil {
		return err
	}
	delete(st.windows, id)
	for name, entries := range st.stash {
		for i := range entries {
			entries[i].windows = slices.DeleteFunc(entries[i].windows, func(v schema.WindowID) bool { return v == id })
		}
		st.stash[name] = entries
	}
	return nil
}

func (st *state) pointerEntered(id schema.WindowID) {
	if w := st.windows[id]; w != nil {
		w.pointerFocus = true
	}
	st.emit(schema.WindowPointerEnterSignal{WindowID: id})
}

func (st *state) pointerLeft(id schema.WindowID) {
	if w := st.windows[id]; w != nil {
		w.pointerFocus = false
	}
	st.emit(schema.WindowPointerLeaveSignal{WindowID: id})
}

func (st *state) setWindowTag(wid schema.WindowID, tid schema.TagID, mode schema.SetActiveMode) (bool, error) {
	w, err := st.lookupWindow(wid)
	if err != nil {
		return false, err
	}
	if _, err := st.lookupTag(tid); err != nil {
		return false, err
	}
	_, tagged := w.tags[tid]
	next := mode.Apply(tagged)
	if next {
		w.tags[tid] = struct{}{}
	} else {
		delete(w.tags, tid)
	}
	return next, nil
}

func (st *state) listWindows() []schema.WindowID {
	out := make([]schema.WindowID, 0, len(st.windows))
	for id := range st.windows {
		out = append(out, id)
	}
	slices.Sort(out)
	return out
}

func (st *state) windowProperties(id schema.WindowID) (schema.WindowProperties, error) {
	w, err := st.lookupWindow(id)
	if err != nil {
		return schema.WindowProperties{}, err
	}
	tags := make([]schema.TagID, 0, len(w.tags))
	for tid := range w.tags {
		tags = append(tags, tid)
	}
	slices.Sort(tags)
	return schema.WindowProperties{ID: id, TagIDs: tags, PointerFocus: w.pointerFocus}, nil
}
