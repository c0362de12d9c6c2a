package core

import (
	"context"
	"slices"

	"pkt.systems/tagwm/schema"
)

// LayoutStore is implemented by services that can save and preload tag layouts.
type LayoutStore interface {
	ExportLayout(ctx context.Context) (schema.Layout, error)
	ImportLayout(ctx context.Context, layout schema.Layout) (int, error)
}

// exportLayout lists connected outputs in connect order, then stashed outputs by name.
func (st *state) exportLayout() schema.Layout {
	var layout schema.Layout
	for _, name := range st.outputOrder {
		o := st.outputs[name]
		entry := schema.OutputLayout{Output: name}
		for _, id := range o.tags {
			if t := st.tags[id]; t != nil {
				entry.Tags = append(entry.Tags, schema.LayoutTag{Name: t.name, Active: t.active})
			}
		}
		layout.Outputs = append(layout.Outputs, entry)
	}
	stashed := make([]schema.OutputName, 0, len(st.stash))
	for name := range st.stash {
		stashed = append(stashed, name)
	}
	slices.Sort(stashed)
	for _, name := range stashed {
		entry := schema.OutputLayout{Output: name}
		for _, s := range st.stash[name] {
			entry.Tags = append(entry.Tags, schema.LayoutTag{Name: s.tag.name, Active: s.tag.active})
		}
		layout.Outputs = append(layout.Outputs, entry)
	}
	return layout
}

// importLayout stashes the layout of every output that is not connected. The
// tags get ids when their output connects. Connected outputs keep their live
// tags.
func (st *state) importLayout(layout schema.Layout) (int, error) {
	type pending struct {
		name schema.OutputName
		tags []stashedTag
	}
	var entries []pending
	for _, ol := range layout.Outputs {
		name, err := schema.NormalizeOutputName(string(ol.Output))
		if err != nil {
			return 0, err
		}
		if st.outputs[name] != nil {
			continue
		}
		var tags []stashedTag
		for _, lt := range ol.Tags {
			tagName, err := schema.NormalizeTagName(lt.Name)
			if err != nil {
				return 0, err
			}
			tags = append(tags, stashedTag{tag: tag{name: tagName, output: name, active: lt.Active}})
		}
		entries = append(entries, pending{name: name, tags: tags})
	}
	for _, e := range entries {
		st.seen[e.name] = struct{}{}
		if len(e.tags) > 0 {
			st.stash[e.name] = e.tags
		} else {
			delete(st.stash, e.name)
		}
	}
	return len(entries), nil
}
