package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"pkt.systems/tagwm/internal/controlgrpc"
	"pkt.systems/tagwm/schema"
)

func newWindowCmd() *cobra.Command {
	var conn connFlags
	cmd := &cobra.Command{
		Use:   "window",
		Short: "Inspect windows and their tags",
	}
	conn.register(cmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List mapped windows",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return conn.withClient(cmd.Context(), func(client *controlgrpc.Client) error {
				ids, err := client.ListWindows(cmd.Context())
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				for _, id := range ids {
					_, _ = fmt.Fprintln(out, id)
				}
				return nil
			})
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "show <window-id>",
		Short: "Show window properties",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseWindowID(args[0])
			if err != nil {
				return err
			}
			return conn.withClient(cmd.Context(), func(client *controlgrpc.Client) error {
				props, err := client.WindowProperties(cmd.Context(), id)
				if err != nil {
					return err
				}
				return writeYAML(cmd, windowView{
					ID:           props.ID,
					Tags:         props.TagIDs,
					PointerFocus: props.PointerFocus,
				})
			})
		},
	})
	cmd.AddCommand(newWindowTagCmd(&conn))

	return cmd
}

func newWindowTagCmd(conn *connFlags) *cobra.Command {
	var mode string
	cmd := &cobra.Command{
		Use:   "tag <window-id> <tag-id>",
		Short: "Attach, detach or toggle a tag on a window",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			window, err := parseWindowID(args[0])
			if err != nil {
				return err
			}
			tag, err := parseTagID(args[1])
			if err != nil {
				return err
			}
			parsed, err := schema.ParseSetActiveMode(mode)
			if err != nil {
				return err
			}
			return conn.withClient(cmd.Context(), func(client *controlgrpc.Client) error {
				return client.SetWindowTag(cmd.Context(), window, tag, parsed)
			})
		},
	}
	cmd.Flags().StringVarP(&mode, "mode", "m", "set", "set, unset or toggle")
	return cmd
}
