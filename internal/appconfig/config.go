package appconfig

import (
	"path/filepath"

	"github.com/adrg/xdg"

	"pkt.systems/tagwm/internal/signalbus"
	"pkt.systems/tagwm/schema"
)

// Config is the top-level application configuration.
type Config struct {
	ConfigVersion int           `mapstructure:"config_version" yaml:"config_version"`
	SocketPath    string        `mapstructure:"socket_path" yaml:"socket_path"`
	StateFile     string        `mapstructure:"state_file" yaml:"state_file"`
	Signals       SignalsConfig `mapstructure:"signals" yaml:"signals"`
	Outputs       OutputsConfig `mapstructure:"outputs" yaml:"outputs"`
	Service       ServiceConfig `mapstructure:"service" yaml:"service"`
	Feed          FeedConfig    `mapstructure:"feed" yaml:"feed"`
}

// CurrentConfigVersion marks the supported config version.
const CurrentConfigVersion = 1

// SignalsConfig controls per-session signal queues.
type SignalsConfig struct {
	BacklogWarn int    `mapstructure:"backlog_warn" yaml:"backlog_warn"`
	MaxBacklog  int    `mapstructure:"max_backlog" yaml:"max_backlog"`
	Overflow    string `mapstructure:"overflow" yaml:"overflow"`
}

// OutputsConfig controls tag setup when outputs connect.
type OutputsConfig struct {
	RestoreTags bool     `mapstructure:"restore_tags" yaml:"restore_tags"`
	DefaultTags []string `mapstructure:"default_tags" yaml:"default_tags"`
}

// ServiceConfig controls core service behavior.
type ServiceConfig struct {
	LoopQueue int `mapstructure:"loop_queue" yaml:"loop_queue"`
}

// FeedConfig names an optional compositor event feed read at startup.
type FeedConfig struct {
	Path string `mapstructure:"path" yaml:"path"`
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() (Config, error) {
	return Config{
		ConfigVersion: CurrentConfigVersion,
		SocketPath:    DefaultSocketPath(),
		StateFile:     DefaultStateFile(),
		Signals: SignalsConfig{
			BacklogWarn: signalbus.DefaultBacklogWarn,
			MaxBacklog:  0,
			Overflow:    string(signalbus.OverflowDisconnect),
		},
		Outputs: OutputsConfig{
			RestoreTags: true,
			DefaultTags: []string{"1", "2", "3", "4", "5"},
		},
		Service: ServiceConfig{
			LoopQueue: schema.DefaultLoopQueue,
		},
	}, nil
}

// DefaultSocketPath returns the control socket under the XDG runtime dir.
func DefaultSocketPath() string {
	return filepath.Join(xdg.RuntimeDir, "tagwm", "control.sock")
}

// DefaultStateFile returns the layout file under the XDG state dir.
func DefaultStateFile() string {
	return filepath.Join(xdg.StateHome, "tagwm", "layout.json")
}

// DefaultConfigPath returns the default config path.
func DefaultConfigPath() (string, error) {
	return filepath.Join(xdg.ConfigHome, "tagwm", "config.yaml"), nil
}

// CoreConfig converts the loaded settings into the core service config.
func (c Config) CoreConfig() schema.ServiceConfig {
	return schema.ServiceConfig{
		RestoreTags: c.Outputs.RestoreTags,
		DefaultTags: append([]string(nil), c.Outputs.DefaultTags...),
		LoopQueue:   c.Service.LoopQueue,
	}
}

// BusConfig converts the loaded settings into the signal bus config.
func (c Config) BusConfig() (signalbus.Config, error) {
	policy, err := signalbus.ParseOverflowPolicy(c.Signals.Overflow)
	if err != nil {
		return signalbus.Config{}, err
	}
	return signalbus.Config{
		BacklogWarn: c.Signals.BacklogWarn,
		MaxBacklog:  c.Signals.MaxBacklog,
		Overflow:    policy,
	}, nil
}
