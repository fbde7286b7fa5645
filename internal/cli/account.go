package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/pwnwatch-hq/pwnwatch/pkg/hibp"
)

func accountCmd(opts *clientOptions) *cobra.Command {
	var (
		domain   string
		truncate bool
	)

	cmd := &cobra.Command{
		Use:   "account <account>",
		Short: "List breaches a single account appears in",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := opts.client()
			breaches, err := client.AccountBreaches(cmd.Context(), hibp.AccountBreachesParams{
				Account:  args[0],
				Domain:   domain,
				Truncate: truncate,
			})
			if notFound(err) {
				breaches = nil
			} else if err != nil {
				return err
			}
			return printBreaches(cmd.OutOrStdout(), breaches, opts.format)
		},
	}

	cmd.Flags().StringVar(&domain, "domain", "", "Only report breaches against this domain")
	cmd.Flags().BoolVar(&truncate, "truncate", false, "Return breach names only")

	return cmd
}

// notFound reports whether err is the service's 404, which for account
// lookups means the account is clean rather than that the call failed.
func notFound(err error) bool {
	var statusErr *hibp.StatusError
	return errors.As(err, &statusErr) && statusErr.StatusCode == 404
}
