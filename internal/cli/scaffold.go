package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/coursemd/coursemd/pkg/lms"
	"github.com/coursemd/coursemd/pkg/pipeline"
)

// scaffoldCommand creates the scaffold command, which writes skeleton
// MDX files for every video lecture in the snapshot.
func (c *CLI) scaffoldCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "scaffold",
		Short: "Write skeleton MDX files for video lectures",
		Long: `Write skeleton MDX files for every video lecture in the curriculum
snapshot. Existing files are preserved unless --force is given.

Requires a prior "fetch curriculum".`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			videos, err := lms.LoadVideos(cfg.DataDir)
			if err != nil {
				return fmt.Errorf("load video snapshot (run %q first): %w", appName+" fetch curriculum", err)
			}

			logger := loggerFromContext(cmd.Context())
			runner := pipeline.NewRunner(nil, cfg, logger)

			prog := newProgress(logger)
			written, err := runner.Scaffold(cmd.Context(), videos, pipeline.Options{Overwrite: force})
			if err != nil {
				return err
			}
			prog.done(fmt.Sprintf("Scaffolded %d of %d lectures", written, len(videos)))

			if written == 0 {
				printInfo("Nothing to scaffold, all lectures have files")
			} else {
				printSuccess("Wrote %d skeleton files under %s", written, cfg.ContentDir)
			}
			printNextStep("Generate lecture content", fmt.Sprintf("%s generate", appName))
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing lecture files")

	return cmd
}
