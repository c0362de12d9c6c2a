package core

import (
	"context"
	"fmt"

	"pkt.systems/pslog"
	"pkt.systems/tagwm/internal/logx"
	"pkt.systems/tagwm/schema"
)

// service implements the core service behavior.
type service struct {
	cfg    schema.ServiceConfig
	loop   *loop
	logger pslog.Logger
}

// NewService constructs the core service and starts its main loop.
func NewService(cfg schema.ServiceConfig, deps ServiceDeps) (Service, error) {
	normalized, err := schema.NormalizeServiceConfig(cfg)
	if err != nil {
		return nil, err
	}
	cfg = normalized
	logger := deps.Logger
	if logger == nil {
		logger = pslog.Ctx(context.Background())
	}
	s := &service{
		cfg:    cfg,
		loop:   newLoop(newState(cfg), deps.Sink, cfg.LoopQueue, logger),
		logger: logger,
	}
	go s.loop.run()
	logger.Debug("service main loop started", "restore_tags", cfg.RestoreTags, "default_tags", len(cfg.DefaultTags))
	return s, nil
}

func (s *service) Close() error {
	s.loop.close()
	s.logger.Debug("service main loop stopped")
	return nil
}

// log prefers the request logger so transport fields such as the method and
// peer credentials reach core log lines.
func (s *service) log(ctx context.Context) pslog.Logger {
	if log, ok := logx.FromContext(ctx); ok {
		return log
	}
	return s.logger
}

func (s *service) SetActive(ctx context.Context, req schema.SetActiveRequest) (schema.SetActiveResponse, error) {
	log := logx.WithTag(s.log(ctx), req.TagID)
	if !req.Mode.Valid() {
		log.Warn("service set active rejected", "mode", req.Mode.String())
		return schema.SetActiveResponse{}, fmt.Errorf("%w: set active mode unspecified", schema.ErrInvalidRequest)
	}
	var resp schema.SetActiveResponse
	err := s.loop.do(ctx, func(st *state) error {
		active, changed, err := st.setActive(req.TagID, req.Mode)
		resp = schema.SetActiveResponse{Active: active, Changed: changed}
		return err
	})
	if err != nil {
		log.Warn("service set active failed", "mode", req.Mode.String(), "err", err)
		return schema.SetActiveResponse{}, err
	}
	log.Debug("service set active", "mode", req.Mode.String(), "active", resp.Active, "changed", resp.Changed)
	return resp, nil
}

func (s *service) SwitchTo(ctx context.Context, req schema.SwitchToRequest) (schema.SwitchToResponse, error) {
	log := logx.WithTag(s.log(ctx), req.TagID)
	var changed []schema.TagID
	err := s.loop.do(ctx, func(st *state) error {
		var err error
		changed, err = st.switchTo(req.TagID)
		return err
	})
	if err != nil {
		log.Warn("service switch to failed", "err", err)
		return schema.SwitchToResponse{}, err
	}
	log.Debug("service switch to", "changed", len(changed))
	return schema.SwitchToResponse{Changed: changed}, nil
}

func (s *service) AddTags(ctx context.Context, req schema.AddTagsRequest) (schema.AddTagsResponse, error) {
	log := logx.WithOutput(s.log(ctx), req.OutputName)
	names, err := schema.NormalizeTagNames(req.Names)
	if err != nil {
		log.Warn("service add tags rejected", "err", err)
		return schema.AddTagsResponse{}, err
	}
	var ids []schema.TagID
	err = s.loop.do(ctx, func(st *state) error {
		var err error
		ids, err = st.addTags(req.OutputName, names)
		return err
	})
	if err != nil {
		log.Warn("service add tags failed", "err", err)
		return schema.AddTagsResponse{}, err
	}
	log.Debug("service tags added", "tags", ids)
	return schema.AddTagsResponse{TagIDs: ids}, nil
}

func (s *service) RemoveTags(ctx context.Context, req schema.RemoveTagsRequest) (schema.RemoveTagsResponse, error) {
	var removed []schema.TagID
	err := s.loop.do(ctx, func(st *state) error {
		removed = st.removeTags(req.TagIDs)
		return nil
	})
	if err != nil {
		s.log(ctx).Warn("service remove tags failed", "err", err)
		return schema.RemoveTagsResponse{}, err
	}
	s.log(ctx).Debug("service tags removed", "requested", len(req.TagIDs), "removed", removed)
	return schema.RemoveTagsResponse{Removed: removed}, nil
}

func (s *service) ListTags(ctx context.Context, _ schema.ListTagsRequest) (schema.ListTagsResponse, error) {
	var ids []schema.TagID
	err := s.loop.do(ctx, func(st *state) error {
		ids = st.listTags()
		return nil
	})
	return schema.ListTagsResponse{TagIDs: ids}, err
}

func (s *service) GetTagProperties(ctx context.Context, req schema.GetTagPropertiesRequest) (schema.GetTagPropertiesResponse, error) {
	var props schema.TagProperties
	err := s.loop.do(ctx, func(st *state) error {
		var err error
		props, err = st.tagProperties(req.TagID)
		return err
	})
	if err != nil {
		return schema.GetTagPropertiesResponse{}, err
	}
	return schema.GetTagPropertiesResponse{Tag: props}, nil
}

func (s *service) ListOutputs(ctx context.Context, _ schema.ListOutputsRequest) (schema.ListOutputsResponse, error) {
	var names []schema.OutputName
	err := s.loop.do(ctx, func(st *state) error {
		names = st.listOutputs()
		return nil
	})
	return schema.ListOutputsResponse{OutputNames: names}, err
}

func (s *service) GetOutputProperties(ctx context.Context, req schema.GetOutputPropertiesRequest) (schema.GetOutputPropertiesResponse, error) {
	var props schema.OutputProperties
	err := s.loop.do(ctx, func(st *state) error {
		var err error
		props, err = st.outputProperties(req.OutputName)
		return err
	})
	if err != nil {
		return schema.GetOutputPropertiesResponse{}, err
	}
	return schema.GetOutputPropertiesResponse{Output: props}, nil
}

func (s *service) ListWindows(ctx context.Context, _ schema.ListWindowsRequest) (schema.ListWindowsResponse, error) {
	var ids []schema.WindowID
	err := s.loop.do(ctx, func(st *state) error {
		ids = st.listWindows()
		return nil
	})
	return schema.ListWindowsResponse{WindowIDs: ids}, err
}

func (s *service) GetWindowProperties(ctx context.Context, req schema.GetWindowPropertiesRequest) (schema.GetWindowPropertiesResponse, error) {
	var props schema.WindowProperties
	err := s.loop.do(ctx, func(st *state) error {
		var err error
		props, err = st.windowProperties(req.WindowID)
		return err
	})
	if err != nil {
		return schema.GetWindowPropertiesResponse{}, err
	}
	return schema.GetWindowPropertiesResponse{Window: props}, nil
}

func (s *service) SetWindowTag(ctx context.Context, req schema.SetWindowTagRequest) (schema.SetWindowTagResponse, error) {
	log := logx.WithTag(logx.WithWindow(s.log(ctx), req.WindowID), req.TagID)
	if !req.Mode.Valid() {
		log.Warn("service window tag rejected", "mode", req.Mode.String())
		return schema.SetWindowTagResponse{}, fmt.Errorf("%w: window tag mode unspecified", schema.ErrInvalidRequest)
	}
	var tagged bool
	err := s.loop.do(ctx, func(st *state) error {
		var err error
		tagged, err = st.setWindowTag(req.WindowID, req.TagID, req.Mode)
		return err
	})
	if err != nil {
		log.Warn("service window tag failed", "mode", req.Mode.String(), "err", err)
		return schema.SetWindowTagResponse{}, err
	}
	log.Debug("service window tag", "mode", req.Mode.String(), "tagged", tagged)
	return schema.SetWindowTagResponse{Tagged: tagged}, nil
}

func (s *service) OutputAdded(ctx context.Context, name schema.OutputName, geometry schema.Geometry) error {
	log := logx.WithOutput(s.log(ctx), name)
	err := s.loop.do(ctx, func(st *state) error {
		return st.outputAdded(name, geometry)
	})
	if err != nil {
		log.Warn("output connect failed", "err", err)
		return err
	}
	log.Info("output connected", "geometry", geometry.String())
	return nil
}

func (s *service) OutputRemoved(ctx context.Context, name schema.OutputName) error {
	log := logx.WithOutput(s.log(ctx), name)
	err := s.loop.do(ctx, func(st *state) error {
		return st.outputRemoved(name)
	})
	if err != nil {
		log.Warn("output disconnect failed", "err", err)
		return err
	}
	log.Info("output disconnected")
	return nil
}

func (s *service) OutputGeometryChanged(ctx context.Context, name schema.OutputName, geometry schema.Geometry) error {
	log := logx.WithOutput(s.log(ctx), name)
	err := s.loop.do(ctx, func(st *state) error {
		return st.outputGeometryChanged(name, geometry)
	})
	if err != nil {
		log.Warn("output geometry change failed", "err", err)
		return err
	}
	log.Debug("output geometry changed", "geometry", geometry.String())
	return nil
}

func (s *service) PointerEnteredWindow(ctx context.Context, id schema.WindowID) error {
	return s.loop.do(ctx, func(st *state) error {
		st.pointerEntered(id)
		return nil
	})
}

func (s *service) PointerLeftWindow(ctx context.Context, id schema.WindowID) error {
	return s.loop.do(ctx, func(st *state) error {
		st.pointerLeft(id)
		return nil
	})
}

func (s *service) WindowMapped(ctx context.Context, id schema.WindowID) error {
	var added bool
	err := s.loop.do(ctx, func(st *state) error {
		added = st.windowMapped(id)
		return nil
	})
	if err == nil && added {
		logx.WithWindow(s.log(ctx), id).Debug("window mapped")
	}
	return err
}

func (s *service) WindowUnmapped(ctx context.Context, id schema.WindowID) error {
	log := logx.WithWindow(s.log(ctx), id)
	err := s.loop.do(ctx, func(st *state) error {
		return st.windowUnmapped(id)
	})
	if err != nil {
		log.Warn("window unmap failed", "err", err)
		return err
	}
	log.Debug("window unmapped")
	return nil
}

func (s *service) ExportLayout(ctx context.Context) (schema.Layout, error) {
	var layout schema.Layout
	err := s.loop.do(ctx, func(st *state) error {
		layout = st.exportLayout()
		return nil
	})
	if err != nil {
		return schema.Layout{}, err
	}
	s.log(ctx).Debug("service layout exported", "outputs", len(layout.Outputs))
	return layout, nil
}

// ImportLayout preloads tags for outputs that have not connected yet. It is a
// no-op when tag restore is disabled.
func (s *service) ImportLayout(ctx context.Context, layout schema.Layout) (int, error) {
	if !s.cfg.RestoreTags {
		s.log(ctx).Debug("service layout import skipped", "reason", "restore_tags disabled")
		return 0, nil
	}
	var n int
	err := s.loop.do(ctx, func(st *state) error {
		var err error
		n, err = st.importLayout(layout)
		return err
	})
	if err != nil {
		s.log(ctx).Warn("service layout import failed", "err", err)
		return 0, err
	}
	s.log(ctx).Debug("service layout imported", "outputs", n)
	return n, nil
}
