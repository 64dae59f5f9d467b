package cli

import (
	"github.com/spf13/cobra"

	"github.com/coursemd/coursemd/pkg/pipeline"
)

// syncCommand creates the sync command, which runs the full maintenance
// pipeline: fetch curriculum, scaffold new lectures, repair diagrams.
func (c *CLI) syncCommand() *cobra.Command {
	opts := pipeline.Options{}
	var noCache bool

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Fetch, scaffold, and repair in one pass",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			client, err := c.newLMSClient(cfg, noCache)
			if err != nil {
				return err
			}

			logger := loggerFromContext(cmd.Context())
			runner := pipeline.NewRunner(client, cfg, logger)

			res, err := runner.Execute(cmd.Context(), opts)
			if err != nil {
				return err
			}

			printSuccess("Sync complete")
			printDetail("run: %s", res.RunID)
			printDetail("items: %d, videos: %d", len(res.Items), len(res.Videos))
			printDetail("scaffolded: %d", res.Scaffolded)
			printDetail("diagrams fixed in %d of %d files", len(res.Repaired.Fixed), res.Repaired.Total)
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "bypass the response cache")
	cmd.Flags().BoolVar(&opts.Overwrite, "force", false, "overwrite existing lecture files")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable response caching entirely")

	return cmd
}
