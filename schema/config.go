package schema

// ServiceConfig controls core service behavior.
type ServiceConfig struct {
	// RestoreTags re-attaches stashed tags when an output reconnects.
	RestoreTags bool
	// DefaultTags are created on the first connect of an output.
	DefaultTags []string
	// LoopQueue is the depth of the main loop's request queue.
	LoopQueue int
}

// DefaultLoopQueue is the default main loop request queue depth.
const DefaultLoopQueue = 64

// NormalizeServiceConfig applies defaults and validates the config.
func NormalizeServiceConfig(cfg ServiceConfig) (ServiceConfig, error) {
	if cfg.LoopQueue <= 0 {
		cfg.LoopQueue = DefaultLoopQueue
	}
	names, err := NormalizeTagNames(cfg.DefaultTags)
	if err != nil {
		return ServiceConfig{}, err
	}
	cfg.DefaultTags = names
	return cfg, nil
}
