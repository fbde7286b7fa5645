package cli

import (
	"github.com/spf13/cobra"

	"github.com/pwnwatch-hq/pwnwatch/pkg/hibp"
)

func breachesCmd(opts *clientOptions) *cobra.Command {
	var domain string

	cmd := &cobra.Command{
		Use:   "breaches",
		Short: "List all breaches in the system",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client := opts.client()
			breaches, err := client.Breaches(cmd.Context(), hibp.BreachesParams{Domain: domain})
			if err != nil {
				return err
			}
			return printBreaches(cmd.OutOrStdout(), breaches, opts.format)
		},
	}

	cmd.Flags().StringVar(&domain, "domain", "", "Only report breaches against this domain")

	return cmd
}
