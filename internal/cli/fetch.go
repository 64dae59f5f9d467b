package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/coursemd/coursemd/pkg/course"
	"github.com/coursemd/coursemd/pkg/lms"
	"github.com/coursemd/coursemd/pkg/pipeline"
)

// captionDelay throttles per-lecture caption requests against the LMS.
const captionDelay = 300 * time.Millisecond

// fetchOpts holds the command-line flags shared by the fetch subcommands.
type fetchOpts struct {
	refresh bool
	noCache bool
}

// fetchCommand creates the fetch command with curriculum and captions
// subcommands.
func (c *CLI) fetchCommand() *cobra.Command {
	opts := fetchOpts{}

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Fetch course data from the LMS",
	}

	cmd.PersistentFlags().BoolVar(&opts.refresh, "refresh", false, "bypass the response cache")
	cmd.PersistentFlags().BoolVar(&opts.noCache, "no-cache", false, "disable response caching entirely")

	cmd.AddCommand(c.fetchCurriculumCommand(&opts))
	cmd.AddCommand(c.fetchCaptionsCommand(&opts))

	return cmd
}

// fetchCurriculumCommand creates the "fetch curriculum" subcommand.
func (c *CLI) fetchCurriculumCommand(opts *fetchOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "curriculum",
		Short: "Fetch the curriculum and write JSON snapshots",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			client, err := c.newLMSClient(cfg, opts.noCache)
			if err != nil {
				return err
			}

			logger := loggerFromContext(cmd.Context())
			logger.Infof("Fetching curriculum for course %d", cfg.CourseID)

			prog := newProgress(logger)
			runner := pipeline.NewRunner(client, cfg, logger)
			items, videos, err := runner.Fetch(cmd.Context(), pipeline.Options{Refresh: opts.refresh})
			if err != nil {
				return err
			}
			prog.done(fmt.Sprintf("Fetched %d items (%d video lectures)", len(items), len(videos)))

			printSuccess("Curriculum saved")
			printFile(filepath.Join(cfg.DataDir, lms.CurriculumFile))
			printFile(filepath.Join(cfg.DataDir, lms.ItemsFile))
			printFile(filepath.Join(cfg.DataDir, lms.VideosFile))
			printNextStep("Scaffold lecture files", fmt.Sprintf("%s scaffold", appName))
			return nil
		},
	}
}

// fetchCaptionsCommand creates the "fetch captions" subcommand, which
// resolves a caption track URL for every video lecture.
func (c *CLI) fetchCaptionsCommand(opts *fetchOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "captions",
		Short: "Fetch caption track URLs for every video lecture",
		Long: `Fetch caption track URLs for every video lecture.

English tracks are preferred; lectures with no captions are reported
but do not fail the run. Requires a prior "fetch curriculum".`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			client, err := c.newLMSClient(cfg, opts.noCache)
			if err != nil {
				return err
			}

			videos, err := lms.LoadVideos(cfg.DataDir)
			if err != nil {
				return fmt.Errorf("load video snapshot (run %q first): %w", appName+" fetch curriculum", err)
			}

			return fetchCaptions(cmd.Context(), client, cfg, videos, opts.refresh)
		},
	}
}

func fetchCaptions(ctx context.Context, client *lms.Client, cfg *course.Config, videos []lms.VideoLecture, refresh bool) error {
	logger := loggerFromContext(ctx)
	logger.Infof("Fetching caption URLs for %d lectures", len(videos))

	spinner := newSpinnerWithContext(ctx, "Fetching caption URLs...")
	spinner.Start()

	urls := make(map[string]string, len(videos))
	var missing []string

	for i, v := range videos {
		if err := ctx.Err(); err != nil {
			spinner.Stop()
			return err
		}

		url, err := client.CaptionURL(ctx, cfg.CourseID, v.ID, refresh)
		if err != nil {
			spinner.Stop()
			return err
		}
		if url == "" {
			missing = append(missing, fmt.Sprintf("S%d-L%d (%d)", v.Section, v.Lecture, v.ID))
		} else {
			urls[fmt.Sprintf("%d", v.ID)] = url
		}

		if (i+1)%5 == 0 {
			logger.Debugf("Progress: %d/%d", i+1, len(videos))
		}
		if i < len(videos)-1 {
			select {
			case <-ctx.Done():
				spinner.Stop()
				return ctx.Err()
			case <-time.After(captionDelay):
			}
		}
	}

	path := filepath.Join(cfg.DataDir, lms.CaptionsFile)
	if err := lms.SaveJSON(path, urls); err != nil {
		spinner.Stop()
		return err
	}
	spinner.StopWithSuccess(fmt.Sprintf("Saved %d caption URLs", len(urls)))
	printFile(path)

	if len(missing) > 0 {
		printWarning("%d lectures have no captions", len(missing))
		for _, m := range missing {
			printDetail("%s", m)
		}
	}
	return nil
}
