package cli

import (
	"github.com/spf13/cobra"
)

func dataClassesCmd(opts *clientOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dataclasses",
		Short: "List every data class the system tracks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client := opts.client()
			classes, err := client.DataClasses(cmd.Context())
			if err != nil {
				return err
			}
			return printDataClasses(cmd.OutOrStdout(), classes, opts.format)
		},
	}

	return cmd
}
