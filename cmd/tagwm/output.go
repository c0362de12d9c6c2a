package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"pkt.systems/tagwm/internal/controlgrpc"
	"pkt.systems/tagwm/schema"
)

func newOutputCmd() *cobra.Command {
	var conn connFlags
	cmd := &cobra.Command{
		Use:   "output",
		Short: "Inspect outputs",
	}
	conn.register(cmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List connected outputs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return conn.withClient(cmd.Context(), func(client *controlgrpc.Client) error {
				names, err := client.ListOutputs(cmd.Context())
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				for _, name := range names {
					_, _ = fmt.Fprintln(out, name)
				}
				return nil
			})
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "show <output>",
		Short: "Show output properties",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return conn.withClient(cmd.Context(), func(client *controlgrpc.Client) error {
				props, err := client.OutputProperties(cmd.Context(), schema.OutputName(args[0]))
				if err != nil {
					return err
				}
				return writeYAML(cmd, outputView{
					Name:   props.Name,
					X:      props.Geometry.X,
					Y:      props.Geometry.Y,
					Width:  props.Geometry.Width,
					Height: props.Geometry.Height,
					Tags:   props.TagIDs,
				})
			})
		},
	})

	return cmd
}
