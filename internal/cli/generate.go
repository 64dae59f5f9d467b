package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/coursemd/coursemd/pkg/authoring"
	"github.com/coursemd/coursemd/pkg/course"
	"github.com/coursemd/coursemd/pkg/errors"
	"github.com/coursemd/coursemd/pkg/lms"
	"github.com/coursemd/coursemd/pkg/transcripts"
)

// generateOpts holds the command-line flags for the generate command.
type generateOpts struct {
	sections string // comma-separated section filter
	model    string // Gemini model override
}

// generateCommand creates the generate command, which turns transcripts
// into Japanese MDX lecture bodies.
func (c *CLI) generateCommand() *cobra.Command {
	opts := generateOpts{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate lecture content from transcripts",
		Long: fmt.Sprintf(`Generate Japanese MDX lecture content from English transcripts using
the Gemini API. Lectures without a transcript are skipped so the run
can be repeated as transcripts come in.

Requires the %s environment variable and a prior "fetch curriculum".

Examples:
  %s generate                   # all sections
  %s generate --sections 3,4    # only sections 3 and 4`, geminiKeyEnv, appName, appName),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			videos, err := lms.LoadVideos(cfg.DataDir)
			if err != nil {
				return fmt.Errorf("load video snapshot (run %q first): %w", appName+" fetch curriculum", err)
			}
			sections, err := parseSections(opts.sections)
			if err != nil {
				return err
			}

			apiKey := os.Getenv(geminiKeyEnv)
			if apiKey == "" {
				return errors.New(errors.ErrCodeUnauthorized, "%s not set", geminiKeyEnv)
			}
			gen, err := authoring.NewGeminiGenerator(cmd.Context(), apiKey, opts.model)
			if err != nil {
				return err
			}
			store, err := transcripts.NewStore(transcriptDir(cfg))
			if err != nil {
				return err
			}

			logger := loggerFromContext(cmd.Context())
			res, err := authoring.Run(cmd.Context(), videos, authoring.Options{
				Generator:  gen,
				Store:      store,
				ContentDir: cfg.ContentDir,
				CourseTags: cfg.Tags,
				Sections:   sections,
				Metadata:   sectionMetadata(cfg),
				Logger:     logger,
			})
			if err != nil {
				return err
			}

			printSuccess("Generated %d lectures", len(res.Generated))
			for _, path := range res.Generated {
				printFile(path)
			}
			if len(res.Skipped) > 0 {
				printWarning("Skipped %d lectures", len(res.Skipped))
				for _, s := range res.Skipped {
					printDetail("%s", s)
				}
			}
			if len(res.Failed) > 0 {
				printError("%d lectures failed", len(res.Failed))
				for _, f := range res.Failed {
					printDetail("%s", f)
				}
				return errors.New(errors.ErrCodeGeneration, "%d lectures failed", len(res.Failed))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.sections, "sections", "", "comma-separated section numbers to generate (default all)")
	cmd.Flags().StringVar(&opts.model, "model", "", "Gemini model (default "+authoring.DefaultModel+")")

	return cmd
}

// sectionMetadata adapts the course config to the generator's metadata
// lookup.
func sectionMetadata(cfg *course.Config) func(int) (authoring.SectionMeta, bool) {
	return func(n int) (authoring.SectionMeta, bool) {
		sec, ok := cfg.Section(n)
		if !ok {
			return authoring.SectionMeta{}, false
		}
		return authoring.SectionMeta{
			Title:      sec.Title,
			Category:   sec.Category,
			Difficulty: sec.Difficulty,
		}, true
	}
}

// parseSections parses a comma-separated list of section numbers.
func parseSections(s string) ([]int, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	sections := make([]int, 0, len(parts))
	for _, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || n <= 0 {
			return nil, errors.New(errors.ErrCodeInvalidInput, "invalid section number %q", part)
		}
		sections = append(sections, n)
	}
	return sections, nil
}
