package cli

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/AnatoleLucet/frp"
)

// ValidFormats defines the allowed output formats of the graph command.
var ValidFormats = []string{"text", "yaml"}

// GraphOptions holds flags for the graph command.
type GraphOptions struct {
	Format string
}

// NewGraphCommand creates the graph command.
func NewGraphCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &GraphOptions{}

	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Print the description of a demo graph",
		Long: `Build a demo graph (a source, its doubles, its even values and a merge
summing both) and print what Describe sees below the source.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGraph(rootOpts, opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Format, "format", "text", "output format (text|yaml)")

	return cmd
}

func runGraph(rootOpts *RootOptions, opts *GraphOptions, cmd *cobra.Command) error {
	if !slices.Contains(ValidFormats, opts.Format) {
		return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
	}

	source := demoGraph(rootOpts.engine(cmd))
	out := cmd.OutOrStdout()

	if opts.Format == "yaml" {
		data, err := yaml.Marshal(frp.Describe(source))
		if err != nil {
			return fmt.Errorf("encode graph: %w", err)
		}
		_, err = out.Write(data)
		return err
	}

	_, err := fmt.Fprint(out, frp.Tree(source))
	return err
}

func demoGraph(e *frp.Engine) *frp.Stream[int, int] {
	source := frp.Named(frp.NewIn[int](e), "source")
	doubled := frp.Named(frp.Pipe(source, func(n int) int { return n * 2 }), "doubled")
	evens := frp.Named(frp.Filter(source, func(n int) bool { return n%2 == 0 }), "evens")
	sum := frp.Named(frp.Merge(func(a, b int) int { return a + b }, doubled, evens), "sum")

	frp.Hold(doubled, 0)
	frp.Listen(sum, func(int) {})

	return source
}
