package appconfig

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"pkt.systems/tagwm/internal/signalbus"
	"pkt.systems/tagwm/schema"
)

// Load reads configuration from the provided path. If path is empty, uses DefaultConfigPath.
func Load(path string) (Config, error) {
	if path == "" {
		defaultPath, err := DefaultConfigPath()
		if err != nil {
			return Config{}, err
		}
		path = defaultPath
	}

	cfg, err := DefaultConfig()
	if err != nil {
		return Config{}, err
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix("TAGWM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.SetDefault("config_version", cfg.ConfigVersion)
	v.SetDefault("socket_path", cfg.SocketPath)
	v.SetDefault("state_file", cfg.StateFile)
	v.SetDefault("signals.backlog_warn", cfg.Signals.BacklogWarn)
	v.SetDefault("signals.max_backlog", cfg.Signals.MaxBacklog)
	v.SetDefault("signals.overflow", cfg.Signals.Overflow)
	v.SetDefault("outputs.restore_tags", cfg.Outputs.RestoreTags)
	v.SetDefault("outputs.default_tags", cfg.Outputs.DefaultTags)
	v.SetDefault("service.loop_queue", cfg.Service.LoopQueue)
	v.SetDefault("feed.path", cfg.Feed.Path)

	configLoaded := false
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !os.IsNotExist(err) {
			return Config{}, err
		}
	} else {
		configLoaded = true
	}

	if configLoaded {
		if !v.IsSet("config_version") {
			return Config{}, fmt.Errorf("config_version is required; expected %d", CurrentConfigVersion)
		}
		if v.GetInt("config_version") != CurrentConfigVersion {
			return Config{}, fmt.Errorf("unsupported config_version %d; expected %d", v.GetInt("config_version"), CurrentConfigVersion)
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	expandConfigEnv(&cfg)
	if err := validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func validate(cfg Config) error {
	if strings.TrimSpace(cfg.SocketPath) == "" {
		return fmt.Errorf("socket_path must not be empty")
	}
	if cfg.Signals.MaxBacklog < 0 {
		return fmt.Errorf("signals.max_backlog must not be negative")
	}
	if _, err := signalbus.ParseOverflowPolicy(cfg.Signals.Overflow); err != nil {
		return fmt.Errorf("signals.overflow: unsupported policy %q", cfg.Signals.Overflow)
	}
	if _, err := schema.NormalizeTagNames(cfg.Outputs.DefaultTags); err != nil {
		return fmt.Errorf("outputs.default_tags: %w", err)
	}
	if cfg.Service.LoopQueue < 0 {
		return fmt.Errorf("service.loop_queue must not be negative")
	}
	return nil
}

func expandConfigEnv(cfg *Config) {
	if cfg == nil {
		return
	}
	cfg.SocketPath = expandEnv(cfg.SocketPath)
	cfg.StateFile = expandEnv(cfg.StateFile)
	cfg.Feed.Path = expandEnv(cfg.Feed.Path)
}

func expandEnv(value string) string {
	if value == "" {
		return value
	}
	return os.Expand(value, func(key string) string {
		if key == "" {
			return ""
		}
		if val, ok := lookupEnv(key); ok {
			return val
		}
		return "$" + key
	})
}

func lookupEnv(key string) (string, bool) {
	if val, ok := os.LookupEnv(key); ok {
		return val, true
	}
	switch key {
	case "UID":
		return fmt.Sprintf("%d", os.Getuid()), true
	case "GID":
		return fmt.Sprintf("%d", os.Getgid()), true
	}
	return "", false
}

// WriteDefault writes the default config to the target path.
func WriteDefault(path string, overwrite bool) (string, error) {
	if path == "" {
		defaultPath, err := DefaultConfigPath()
		if err != nil {
			return "", err
		}
		path = defaultPath
	}

	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return "", fmt.Errorf("config already exists at %s", path)
		}
	}

	cfg, err := DefaultConfig()
	if err != nil {
		return "", err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return "", err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", err
	}
	return path, nil
}
