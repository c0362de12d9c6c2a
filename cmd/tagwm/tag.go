package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"pkt.systems/tagwm/internal/controlgrpc"
	"pkt.systems/tagwm/schema"
)

func newTagCmd() *cobra.Command {
	var conn connFlags
	cmd := &cobra.Command{
		Use:   "tag",
		Short: "Inspect and change tags",
	}
	conn.register(cmd)

	cmd.AddCommand(newTagListCmd(&conn))
	cmd.AddCommand(newTagShowCmd(&conn))
	cmd.AddCommand(newTagAddCmd(&conn))
	cmd.AddCommand(newTagRemoveCmd(&conn))
	cmd.AddCommand(newTagSetCmd(&conn))
	cmd.AddCommand(newTagSwitchCmd(&conn))

	return cmd
}

func newTagListCmd(conn *connFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List tag ids",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return conn.withClient(cmd.Context(), func(client *controlgrpc.Client) error {
				ids, err := client.ListTags(cmd.Context())
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
	}
}

func newTagShowCmd(conn *connFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "show <tag-id>",
		Short: "Show tag properties",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTagID(args[0])
			if err != nil {
				return err
			}
			return conn.withClient(cmd.Context(), func(client *controlgrpc.Client) error {
				props, err := client.TagProperties(cmd.Context(), id)
				if err != nil {
					return err
				}
				return writeYAML(cmd, tagView{
					ID:      props.ID,
					Name:    props.Name,
					Output:  props.OutputName,
					Active:  props.Active,
					Windows: props.WindowIDs,
				})
			})
		},
	}
}

func newTagAddCmd(conn *connFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "add <output> <name>...",
		Short: "Create tags on an output",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return conn.withClient(cmd.Context(), func(client *controlgrpc.Client) error {
				ids, err := client.AddTags(cmd.Context(), schema.OutputName(args[0]), args[1:]...)
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
	}
}

func newTagRemoveCmd(conn *connFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <tag-id>...",
		Short: "Remove tags",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := parseTagIDs(args)
			if err != nil {
				return err
			}
			return conn.withClient(cmd.Context(), func(client *controlgrpc.Client) error {
				return client.RemoveTags(cmd.Context(), ids...)
			})
		},
	}
}

func newTagSetCmd(conn *connFlags) *cobra.Command {
	var mode string
	cmd := &cobra.Command{
		Use:   "set <tag-id>",
		Short: "Set, unset or toggle a tag's active flag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTagID(args[0])
			if err != nil {
				return err
			}
			parsed, err := schema.ParseSetActiveMode(mode)
			if err != nil {
				return err
			}
			return conn.withClient(cmd.Context(), func(client *controlgrpc.Client) error {
				return client.SetActive(cmd.Context(), id, parsed)
			})
		},
	}
	cmd.Flags().StringVarP(&mode, "mode", "m", "toggle", "set, unset or toggle")
	return cmd
}

func newTagSwitchCmd(conn *connFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "switch <tag-id>",
		Short: "Activate one tag and deactivate its siblings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTagID(args[0])
			if err != nil {
				return err
			}
			return conn.withClient(cmd.Context(), func(client *controlgrpc.Client) error {
				return client.SwitchTo(cmd.Context(), id)
			})
		},
	}
}
