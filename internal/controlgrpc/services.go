package controlgrpc

import (
	"context"

	"pkt.systems/tagwm/internal/controlpb"
	"pkt.systems/tagwm/internal/logx"
	"pkt.systems/tagwm/schema"
)

type tagServer struct {
	s *Server
}

func (t *tagServer) SetActive(ctx context.Context, req *controlpb.SetActiveRequest) (*controlpb.Empty, error) {
	resp, err := t.s.service.SetActive(ctx, schema.SetActiveRequest{
		TagID: schema.TagID(req.TagId),
		Mode:  fromPBMode(req.SetOrToggle),
	})
	if err != nil {
		return nil, toStatus(err)
	}
	logx.WithTag(t.s.log(ctx), schema.TagID(req.TagId)).Debug("control tag set active", "mode", req.SetOrToggle.String(), "active", resp.Active, "changed", resp.Changed)
	return &controlpb.Empty{}, nil
}

func (t *tagServer) SwitchTo(ctx context.Context, req *controlpb.SwitchToRequest) (*controlpb.Empty, error) {
	resp, err := t.s.service.SwitchTo(ctx, schema.SwitchToRequest{TagID: schema.TagID(req.TagId)})
	if err != nil {
		return nil, toStatus(err)
	}
	logx.WithTag(t.s.log(ctx), schema.TagID(req.TagId)).Debug("control tag switch to", "changed", len(resp.Changed))
	return &controlpb.Empty{}, nil
}

func (t *tagServer) Add(ctx context.Context, req *controlpb.AddRequest) (*controlpb.AddResponse, error) {
	resp, err := t.s.service.AddTags(ctx, schema.AddTagsRequest{
		OutputName: schema.OutputName(req.OutputName),
		Names:      req.TagNames,
	})
	if err != nil {
		return nil, toStatus(err)
	}
	return &controlpb.AddResponse{TagIds: toPBTagIDs(resp.TagIDs)}, nil
}

func (t *tagServer) Remove(ctx context.Context, req *controlpb.RemoveRequest) (*controlpb.Empty, error) {
	if _, err := t.s.service.RemoveTags(ctx, schema.RemoveTagsRequest{TagIDs: fromPBTagIDs(req.TagIds)}); err != nil {
		return nil, toStatus(err)
	}
	return &controlpb.Empty{}, nil
}

func (t *tagServer) Get(ctx context.Context, _ *controlpb.GetTagsRequest) (*controlpb.GetTagsResponse, error) {
	resp, err := t.s.service.ListTags(ctx, schema.ListTagsRequest{})
	if err != nil {
		return nil, toStatus(err)
	}
	return &controlpb.GetTagsResponse{TagIds: toPBTagIDs(resp.TagIDs)}, nil
}

func (t *tagServer) GetProperties(ctx context.Context, req *controlpb.GetTagPropertiesRequest) (*controlpb.GetTagPropertiesResponse, error) {
	resp, err := t.s.service.GetTagProperties(ctx, schema.GetTagPropertiesRequest{TagID: schema.TagID(req.TagId)})
	if err != nil {
		return nil, toStatus(err)
	}
	return &controlpb.GetTagPropertiesResponse{
		Active:     resp.Tag.Active,
		Name:       resp.Tag.Name,
		OutputName: string(resp.Tag.OutputName),
		WindowIds:  toPBWindowIDs(resp.Tag.WindowIDs),
	}, nil
}

type outputServer struct {
	s *Server
}

func (o *outputServer) Get(ctx context.Context, _ *controlpb.GetOutputsRequest) (*controlpb.GetOutputsResponse, error) {
	resp, err := o.s.service.ListOutputs(ctx, schema.ListOutputsRequest{})
	if err != nil {
		return nil, toStatus(err)
	}
	return &controlpb.GetOutputsResponse{OutputNames: toPBOutputNames(resp.OutputNames)}, nil
}

func (o *outputServer) GetProperties(ctx context.Context, req *controlpb.GetOutputPropertiesRequest) (*controlpb.GetOutputPropertiesResponse, error) {
	resp, err := o.s.service.GetOutputProperties(ctx, schema.GetOutputPropertiesRequest{OutputName: schema.OutputName(req.OutputName)})
	if err != nil {
		return nil, toStatus(err)
	}
	g := resp.Output.Geometry
	return &controlpb.GetOutputPropertiesResponse{
		X:             g.X,
		Y:             g.Y,
		LogicalWidth:  g.Width,
		LogicalHeight: g.Height,
		TagIds:        toPBTagIDs(resp.Output.TagIDs),
	}, nil
}

type windowServer struct {
	s *Server
}

func (w *windowServer) Get(ctx context.Context, _ *controlpb.GetWindowsRequest) (*controlpb.GetWindowsResponse, error) {
	resp, err := w.s.service.ListWindows(ctx, schema.ListWindowsRequest{})
	if err != nil {
		return nil, toStatus(err)
	}
	return &controlpb.GetWindowsResponse{WindowIds: toPBWindowIDs(resp.WindowIDs)}, nil
}

func (w *windowServer) GetProperties(ctx context.Context, req *controlpb.GetWindowPropertiesRequest) (*controlpb.GetWindowPropertiesResponse, error) {
	resp, err := w.s.service.GetWindowProperties(ctx, schema.GetWindowPropertiesRequest{WindowID: schema.WindowID(req.WindowId)})
	if err != nil {
		return nil, toStatus(err)
	}
	return &controlpb.GetWindowPropertiesResponse{
		TagIds:       toPBTagIDs(resp.Window.TagIDs),
		PointerFocus: resp.Window.PointerFocus,
	}, nil
}

func (w *windowServer) SetTag(ctx context.Context, req *controlpb.SetWindowTagRequest) (*controlpb.Empty, error) {
	_, err := w.s.service.SetWindowTag(ctx, schema.SetWindowTagRequest{
		WindowID: schema.WindowID(req.WindowId),
		TagID:    schema.TagID(req.TagId),
		Mode:     fromPBMode(req.SetOrToggle),
	})
	if err != nil {
		return nil, toStatus(err)
	}
	return &controlpb.Empty{}, nil
}
