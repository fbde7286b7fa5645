package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/pwnwatch-hq/pwnwatch/pkg/hibp"
)

// Execute runs the root command, wiring interrupt signals into the command
// context so a slow lookup can be aborted cleanly.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cmd := NewRootCmd()
	if err := cmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// clientOptions carries the persistent flags every subcommand builds its
// query client from.
type clientOptions struct {
	userAgent string
	baseURL   string
	timeout   time.Duration
	format    string
}

func (o *clientOptions) client() *hibp.Client {
	opts := []hibp.Option{hibp.WithTimeout(o.timeout)}
	if o.baseURL != "" {
		opts = append(opts, hibp.WithBaseURL(o.baseURL))
	}
	return hibp.New(o.userAgent, opts...)
}

func NewRootCmd() *cobra.Command {
	opts := &clientOptions{}

	cmd := &cobra.Command{
		Use:           "pwnwatch",
		Short:         "Query the haveibeenpwned.com breach database",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	cmd.PersistentFlags().StringVar(&opts.userAgent, "user-agent", "pwnwatch-cli", "User-Agent header sent to the service (required by the API)")
	cmd.PersistentFlags().StringVar(&opts.baseURL, "base-url", "", "Override the API root (defaults to the public v2 endpoint)")
	cmd.PersistentFlags().DurationVar(&opts.timeout, "timeout", 15*time.Second, "Per-request timeout")
	cmd.PersistentFlags().StringVar(&opts.format, "format", "pretty", "Output format: pretty|json")

	cmd.AddCommand(
		accountCmd(opts),
		breachesCmd(opts),
		breachCmd(opts),
		dataClassesCmd(opts),
		pastesCmd(opts),
	)

	return cmd
}
