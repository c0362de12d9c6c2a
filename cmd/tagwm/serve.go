package main

import (
	"context"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"pkt.systems/pslog"
	"pkt.systems/tagwm"
	"pkt.systems/tagwm/internal/appconfig"
	"pkt.systems/tagwm/internal/controlgrpc"
	"pkt.systems/tagwm/internal/version"
)

func newServeCmd() *cobra.Command {
	var cfgPath string
	var socket string
	var feedPath string
	var noControl bool
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the tag control plane",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := pslog.Ctx(cmd.Context())
			cfg, err := appconfig.Load(cfgPath)
			if err != nil {
				return err
			}
			if strings.TrimSpace(socket) != "" {
				cfg.SocketPath = socket
			}
			if strings.TrimSpace(feedPath) != "" {
				cfg.Feed.Path = feedPath
			}
			serverCfg, opts, err := toServerConfig(cfg, !noControl)
			if err != nil {
				return err
			}
			logger.Info("tagwm starting", "version", version.Current(), "socket", cfg.SocketPath, "feed", cfg.Feed.Path)

			server, err := tagwm.New(serverCfg, tagwm.ServerDeps{Logger: logger}, opts...)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			if err := server.Start(ctx); err != nil {
				return err
			}
			err = server.Wait()
			stopCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if stopErr := server.Stop(stopCtx); stopErr != nil {
				logger.Warn("server stop failed", "err", stopErr)
			}
			return err
		},
	}
	cmd.Flags().StringVarP(&cfgPath, "config", "c", "", "path to config file")
	cmd.Flags().StringVar(&socket, "socket", "", "control socket path (overrides config)")
	cmd.Flags().StringVar(&feedPath, "feed", "", "compositor event feed (JSON lines, - for stdin)")
	cmd.Flags().BoolVar(&noControl, "no-control", false, "do not open the control socket")
	return cmd
}

func toServerConfig(cfg appconfig.Config, control bool) (tagwm.ServerConfig, []tagwm.ServerOption, error) {
	busCfg, err := cfg.BusConfig()
	if err != nil {
		return tagwm.ServerConfig{}, nil, err
	}
	serverCfg := tagwm.ServerConfig{
		Service:   cfg.CoreConfig(),
		Signals:   busCfg,
		Control:   controlgrpc.Config{SocketPath: cfg.SocketPath},
		FeedPath:  cfg.Feed.Path,
		StateFile: cfg.StateFile,
	}
	var opts []tagwm.ServerOption
	if control {
		opts = append(opts, tagwm.WithControl())
	}
	if cfg.Feed.Path != "" {
		opts = append(opts, tagwm.WithFeed())
	}
	return serverCfg, opts, nil
}
