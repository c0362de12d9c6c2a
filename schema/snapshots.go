package schema

// TagProperties is a point-in-time view of a tag.
type TagProperties struct {
	ID         TagID
	Name       string
	OutputName OutputName
	Active     bool
	// WindowIDs is derived from the window relation, ascending.
	WindowIDs []WindowID
}

// OutputProperties is a point-in-time view of an output.
type OutputProperties struct {
	Name     OutputName
	Geometry Geometry
	// TagIDs keeps the output's tag order.
	TagIDs []TagID
}

// WindowProperties is a point-in-time view of a window.
type WindowProperties struct {
	ID           WindowID
	TagIDs       []TagID
	PointerFocus bool
}
