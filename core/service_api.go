package core

import (
	"context"

	"pkt.systems/tagwm/schema"
)

// Service is the transport-agnostic control plane over tags, outputs and windows.
// Every call is executed on the main loop, serialized with all other mutations.
type Service interface {
	TagManager
	Compositor
	LayoutStore

	ListOutputs(ctx context.Context, req schema.ListOutputsRequest) (schema.ListOutputsResponse, error)
	GetOutputProperties(ctx context.Context, req schema.GetOutputPropertiesRequest) (schema.GetOutputPropertiesResponse, error)
	ListWindows(ctx context.Context, req schema.ListWindowsRequest) (schema.ListWindowsResponse, error)
	GetWindowProperties(ctx context.Context, req schema.GetWindowPropertiesRequest) (schema.GetWindowPropertiesResponse, error)
	SetWindowTag(ctx context.Context, req schema.SetWindowTagRequest) (schema.SetWindowTagResponse, error)

	// Close stops the main loop. Pending and later calls fail with schema.ErrServiceClosed.
	Close() error
}

// TagManager implements tag creation, removal and activation.
type TagManager interface {
	SetActive(ctx context.Context, req schema.SetActiveRequest) (schema.SetActiveResponse, error)
	SwitchTo(ctx context.Context, req schema.SwitchToRequest) (schema.SwitchToResponse, error)
	AddTags(ctx context.Context, req schema.AddTagsRequest) (schema.AddTagsResponse, error)
	RemoveTags(ctx context.Context, req schema.RemoveTagsRequest) (schema.RemoveTagsResponse, error)
	ListTags(ctx context.Context, req schema.ListTagsRequest) (schema.ListTagsResponse, error)
	GetTagProperties(ctx context.Context, req schema.GetTagPropertiesRequest) (schema.GetTagPropertiesResponse, error)
}

// Compositor receives raw state-change notifications from the compositor core.
type Compositor interface {
	OutputAdded(ctx context.Context, name schema.OutputName, geometry schema.Geometry) error
	OutputRemoved(ctx context.Context, name schema.OutputName) error
	OutputGeometryChanged(ctx context.Context, name schema.OutputName, geometry schema.Geometry) error
	PointerEnteredWindow(ctx context.Context, id schema.WindowID) error
	PointerLeftWindow(ctx context.Context, id schema.WindowID) error
	WindowMapped(ctx context.Context, id schema.WindowID) error
	WindowUnmapped(ctx context.Context, id schema.WindowID) error
}
