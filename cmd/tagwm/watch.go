package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"pkt.systems/pslog"
	"pkt.systems/tagwm/internal/controlgrpc"
	"pkt.systems/tagwm/schema"
)

func newWatchCmd() *cobra.Command {
	var conn connFlags
	var count int
	var window int
	cmd := &cobra.Command{
		Use:   "watch <kind>",
		Short: "Stream signals of one kind",
		Long:  "Stream signals of one kind. Kinds: " + strings.Join(signalKindNames(), ", "),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := schema.ParseSignalKind(args[0])
			if err != nil {
				return err
			}
			if window <= 0 {
				return fmt.Errorf("--window must be greater than zero")
			}
			return conn.withClient(cmd.Context(), func(client *controlgrpc.Client) error {
				return watchSignals(cmd, client, kind, count, window)
			})
		},
	}
	conn.register(cmd)
	cmd.Flags().IntVarP(&count, "count", "n", 0, "disconnect after this many signals (0 streams until interrupted)")
	cmd.Flags().IntVar(&window, "window", 1, "credits kept outstanding")
	return cmd
}

// watchSignals keeps window credits outstanding, granting one more per
// delivered signal.
func watchSignals(cmd *cobra.Command, client *controlgrpc.Client, kind schema.SignalKind, count, window int) error {
	ctx := cmd.Context()
	log := pslog.Ctx(ctx).With("kind", kind.String())
	sub, err := client.Subscribe(ctx, kind)
	if err != nil {
		return err
	}
	defer func() { _ = sub.Close() }()

	granted := window
	if count > 0 && count < granted {
		granted = count
	}
	if err := sub.Grant(granted); err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	received := 0
	for {
		sig, err := sub.Recv()
		if err != nil {
			if errors.Is(err, io.EOF) {
				log.Debug("watch stream ended", "received", received)
				return nil
			}
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
		received++
		if _, err := fmt.Fprintln(out, formatSignal(sig)); err != nil {
			return err
		}
		if count > 0 && received >= count {
			return sub.Disconnect()
		}
		if count > 0 && granted >= count {
			continue
		}
		if err := sub.Ready(); err != nil {
			return err
		}
		granted++
	}
}

func formatSignal(sig schema.Signal) string {
	switch s := sig.(type) {
	case schema.OutputConnectSignal:
		return fmt.Sprintf("%s output=%s", s.Kind(), s.OutputName)
	case schema.OutputDisconnectSignal:
		return fmt.Sprintf("%s output=%s", s.Kind(), s.OutputName)
	case schema.OutputResizeSignal:
		return fmt.Sprintf("%s output=%s width=%d height=%d", s.Kind(), s.OutputName, s.Width, s.Height)
	case schema.OutputMoveSignal:
		return fmt.Sprintf("%s output=%s x=%d y=%d", s.Kind(), s.OutputName, s.X, s.Y)
	case schema.WindowPointerEnterSignal:
		return fmt.Sprintf("%s window=%d", s.Kind(), s.WindowID)
	case schema.WindowPointerLeaveSignal:
		return fmt.Sprintf("%s window=%d", s.Kind(), s.WindowID)
	case schema.TagActiveSignal:
		return fmt.Sprintf("%s tag=%d active=%t", s.Kind(), s.TagID, s.Active)
	default:
		return sig.Kind().String()
	}
}

func signalKindNames() []string {
	out := make([]string, 0, len(schema.SignalKinds))
	for _, kind := range schema.SignalKinds {
		out = append(out, kind.String())
	}
	return out
}
