package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/coursemd/coursemd/pkg/coursemap"
	"github.com/coursemd/coursemd/pkg/errors"
	"github.com/coursemd/coursemd/pkg/lms"
)

// graphOpts holds the command-line flags for the graph command.
type graphOpts struct {
	output   string // output file path (stdout if empty)
	format   string // dot or svg
	detailed bool   // include asset types in labels
}

// graphCommand creates the graph command, which renders the course
// structure as a Graphviz diagram.
func (c *CLI) graphCommand() *cobra.Command {
	opts := graphOpts{format: "svg"}

	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Render the course structure as a diagram",
		Long: `Render the course structure (sections, lectures, quizzes) as a
Graphviz diagram in DOT or SVG format.

Requires a prior "fetch curriculum".`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			items, err := lms.LoadItems(cfg.DataDir)
			if err != nil {
				return fmt.Errorf("load item snapshot (run %q first): %w", appName+" fetch curriculum", err)
			}

			dot := coursemap.ToDOT(cfg.Title, items, coursemap.Options{Detailed: opts.detailed})

			var data []byte
			switch opts.format {
			case "dot":
				data = []byte(dot)
			case "svg":
				data, err = coursemap.RenderSVG(dot)
				if err != nil {
					return err
				}
			default:
				return errors.New(errors.ErrCodeUnsupported, "unknown format %q (use dot or svg)", opts.format)
			}

			out, err := openOutput(opts.output)
			if err != nil {
				return err
			}
			defer out.Close()

			if _, err := out.Write(data); err != nil {
				return err
			}
			if opts.output != "" {
				printSuccess("Wrote course map")
				printFile(opts.output)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: dot or svg")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "include asset types in node labels")

	return cmd
}

// nopCloser wraps an io.Writer with a no-op Close method.
type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// openOutput returns a WriteCloser for the given path, or stdout when
// the path is empty.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}
