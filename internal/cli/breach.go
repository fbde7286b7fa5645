package cli

import (
	"github.com/spf13/cobra"
)

func breachCmd(opts *clientOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "breach <name>",
		Short: "Show a single breach by its system name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := opts.client()
			breaches, err := client.BreachByName(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printBreaches(cmd.OutOrStdout(), breaches, opts.format)
		},
	}

	return cmd
}
