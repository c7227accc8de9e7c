package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/AnatoleLucet/frp"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
}

// NewRootCommand creates the root command for the frp CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "frp",
		Short: "frp - push-based reactive streams",
		Long:  "Build small stream graphs, drip values into them and inspect what they are made of.",
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "log engine activity to stderr")

	cmd.AddCommand(NewDoubleCommand(opts))
	cmd.AddCommand(NewIntervalCommand(opts))
	cmd.AddCommand(NewGraphCommand(opts))

	return cmd
}

// engine builds a fresh engine logging to the command's stderr. Only
// warnings go through unless --verbose is set.
func (o *RootOptions) engine(cmd *cobra.Command) *frp.Engine {
	level := slog.LevelWarn
	if o.Verbose {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})
	return frp.NewEngine(frp.WithLogger(slog.New(handler)))
}
