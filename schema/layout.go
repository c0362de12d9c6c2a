package schema

// Layout is the persisted tag arrangement of every known output. Tag ids and
// window relations are process-local and are not part of it.
type Layout struct {
	Outputs []OutputLayout `json:"outputs" yaml:"outputs"`
}

// OutputLayout lists an output's tags in order.
type OutputLayout struct {
	Output OutputName  `json:"output" yaml:"output"`
	Tags   []LayoutTag `json:"tags" yaml:"tags"`
}

// LayoutTag is one persisted tag.
type LayoutTag struct {
	Name   string `json:"name" yaml:"name"`
	Active bool   `json:"active" yaml:"active"`
}
