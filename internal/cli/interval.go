package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/AnatoleLucet/frp"
	"github.com/AnatoleLucet/frp/timing"
)

// IntervalOptions holds flags for the interval command.
type IntervalOptions struct {
	Every time.Duration
	Count int
}

// NewIntervalCommand creates the interval command.
func NewIntervalCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &IntervalOptions{}

	cmd := &cobra.Command{
		Use:   "interval",
		Short: "Listen to an interval stream",
		Long: `Listen to an interval stream, print the elapsed time carried by each
tick and unsubscribe after --count ticks. Once unsubscribed the producer
notices nothing listens anymore and stops.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInterval(rootOpts, opts, cmd)
		},
	}

	cmd.Flags().DurationVar(&opts.Every, "every", 100*time.Millisecond, "tick period")
	cmd.Flags().IntVar(&opts.Count, "count", 5, "number of ticks to print")

	return cmd
}

func runInterval(rootOpts *RootOptions, opts *IntervalOptions, cmd *cobra.Command) error {
	if opts.Every <= 0 {
		return fmt.Errorf("invalid period %s: must be positive", opts.Every)
	}
	if opts.Count <= 0 {
		return fmt.Errorf("invalid count %d: must be positive", opts.Count)
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	ticks := make(chan time.Duration, opts.Count)
	stream := timing.Interval(ctx, opts.Every, timing.WithEngine(rootOpts.engine(cmd)))
	unsubscribe := frp.Listen(stream, func(elapsed time.Duration) {
		select {
		case ticks <- elapsed:
		default:
		}
	})
	defer unsubscribe()

	out := cmd.OutOrStdout()
	for i := 1; i <= opts.Count; i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case elapsed := <-ticks:
			fmt.Fprintf(out, "tick %d %s\n", i, elapsed.Round(time.Millisecond))
		}
	}

	return nil
}
