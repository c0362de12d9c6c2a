package schema

// Tag management.

// SetActiveRequest applies a boolean transition to one tag.
type SetActiveRequest struct {
	TagID TagID
	Mode  SetActiveMode
}

// SetActiveResponse reports the resulting flag.
type SetActiveResponse struct {
	Active  bool
	Changed bool
}

// SwitchToRequest activates one tag and deactivates its output siblings.
type SwitchToRequest struct {
	TagID TagID
}

// SwitchToResponse lists the tags whose flag changed.
type SwitchToResponse struct {
	Changed []TagID
}

// AddTagsRequest creates tags on an output, one per name.
type AddTagsRequest struct {
	OutputName OutputName
	Names      []string
}

// AddTagsResponse returns the created ids in request order.
type AddTagsResponse struct {
	TagIDs []TagID
}

// RemoveTagsRequest removes tags; unknown ids are skipped.
type RemoveTagsRequest struct {
	TagIDs []TagID
}

// RemoveTagsResponse lists the ids that were actually removed.
type RemoveTagsResponse struct {
	Removed []TagID
}

// ListTagsRequest requests every live tag id.
type ListTagsRequest struct{}

// ListTagsResponse reports live tag ids in ascending order.
type ListTagsResponse struct {
	TagIDs []TagID
}

// GetTagPropertiesRequest requests the properties of one tag.
type GetTagPropertiesRequest struct {
	TagID TagID
}

// GetTagPropertiesResponse wraps the tag snapshot.
type GetTagPropertiesResponse struct {
	Tag TagProperties
}

// Outputs.

// ListOutputsRequest requests every connected output name.
type ListOutputsRequest struct{}

// ListOutputsResponse reports output names in connect order.
type ListOutputsResponse struct {
	OutputNames []OutputName
}

// GetOutputPropertiesRequest requests the properties of one output.
type GetOutputPropertiesRequest struct {
	OutputName OutputName
}

// GetOutputPropertiesResponse wraps the output snapshot.
type GetOutputPropertiesResponse struct {
	Output OutputProperties
}

// Windows.

// ListWindowsRequest requests every mapped window id.
type ListWindowsRequest struct{}

// ListWindowsResponse reports window ids in ascending order.
type ListWindowsResponse struct {
	WindowIDs []WindowID
}

// GetWindowPropertiesRequest requests the properties of one window.
type GetWindowPropertiesRequest struct {
	WindowID WindowID
}

// GetWindowPropertiesResponse wraps the window snapshot.
type GetWindowPropertiesResponse struct {
	Window WindowProperties
}

// SetWindowTagRequest attaches, detaches or toggles a tag on a window.
type SetWindowTagRequest struct {
	WindowID WindowID
	TagID    TagID
	Mode     SetActiveMode
}

// SetWindowTagResponse reports whether the window carries the tag afterwards.
type SetWindowTagResponse struct {
	Tagged bool
}
