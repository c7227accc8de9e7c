package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/AnatoleLucet/frp"
)

// NewDoubleCommand creates the double command.
func NewDoubleCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "double <n>...",
		Short: "Drip integers through a doubling stream",
		Long: `Drip each argument into a source stream piped through n*2 and
print every value an observer of the doubled stream receives.`,
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDouble(rootOpts, args, cmd)
		},
	}

	return cmd
}

func runDouble(opts *RootOptions, args []string, cmd *cobra.Command) error {
	values := make([]int, 0, len(args))
	for _, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil {
			return fmt.Errorf("invalid integer %q: %w", arg, err)
		}
		values = append(values, n)
	}

	source := frp.Named(frp.NewIn[int](opts.engine(cmd)), "source")
	doubled := frp.Named(frp.Pipe(source, func(n int) int { return n * 2 }), "doubled")

	out := cmd.OutOrStdout()
	unsubscribe := frp.Listen(doubled, func(n int) {
		fmt.Fprintln(out, n)
	})
	defer unsubscribe()

	for _, n := range values {
		if _, err := frp.Drip(source, n); err != nil {
			return err
		}
	}

	return nil
}
