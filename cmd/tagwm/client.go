package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"pkt.systems/tagwm/internal/appconfig"
	"pkt.systems/tagwm/internal/controlgrpc"
	"pkt.systems/tagwm/schema"
)

// connFlags locate the control socket for client commands.
type connFlags struct {
	cfgPath string
	socket  string
}

func (f *connFlags) register(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&f.cfgPath, "config", "c", "", "path to config file")
	cmd.PersistentFlags().StringVar(&f.socket, "socket", "", "control socket path (overrides config)")
}

func (f *connFlags) socketPath() (string, error) {
	if strings.TrimSpace(f.socket) != "" {
		return f.socket, nil
	}
	cfg, err := appconfig.Load(f.cfgPath)
	if err != nil {
		return "", err
	}
	return cfg.SocketPath, nil
}

// withClient dials the control socket, runs fn and closes the connection.
func (f *connFlags) withClient(ctx context.Context, fn func(*controlgrpc.Client) error) error {
	socket, err := f.socketPath()
	if err != nil {
		return err
	}
	client, err := controlgrpc.Dial(ctx, socket)
	if err != nil {
		return fmt.Errorf("dial %s: %w", socket, err)
	}
	defer func() { _ = client.Close() }()
	return fn(client)
}

func parseTagID(value string) (schema.TagID, error) {
	id, err := strconv.ParseUint(strings.TrimSpace(value), 10, 32)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("%w: tag id %q", schema.ErrInvalidRequest, value)
	}
	return schema.TagID(id), nil
}

func parseTagIDs(values []string) ([]schema.TagID, error) {
	out := make([]schema.TagID, 0, len(values))
	for _, value := range values {
		id, err := parseTagID(value)
		if err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, nil
}

func parseWindowID(value string) (schema.WindowID, error) {
	id, err := strconv.ParseUint(strings.TrimSpace(value), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: window id %q", schema.ErrInvalidRequest, value)
	}
	return schema.WindowID(id), nil
}

func writeYAML(cmd *cobra.Command, value any) error {
	data, err := yaml.Marshal(value)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

type tagView struct {
	ID      schema.TagID      `yaml:"id"`
	Name    string            `yaml:"name"`
	Output  schema.OutputName `yaml:"output"`
	Active  bool              `yaml:"active"`
	Windows []schema.WindowID `yaml:"windows"`
}

type outputView struct {
	Name   schema.OutputName `yaml:"name"`
	X      int32             `yaml:"x"`
	Y      int32             `yaml:"y"`
	Width  uint32            `yaml:"width"`
	Height uint32            `yaml:"height"`
	Tags   []schema.TagID    `yaml:"tags"`
}

type windowView struct {
	ID           schema.WindowID `yaml:"id"`
	Tags         []schema.TagID  `yaml:"tags"`
	PointerFocus bool            `yaml:"pointer_focus"`
}
