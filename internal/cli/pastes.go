package cli

import (
	"github.com/spf13/cobra"
)

func pastesCmd(opts *clientOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pastes <account>",
		Short: "List pastes containing a single account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := opts.client()
			pastes, err := client.AccountPastes(cmd.Context(), args[0])
			if notFound(err) {
				pastes = nil
			} else if err != nil {
				return err
			}
			return printPastes(cmd.OutOrStdout(), pastes, opts.format)
		},
	}

	return cmd
}
