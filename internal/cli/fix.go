package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/coursemd/coursemd/pkg/content"
	"github.com/coursemd/coursemd/pkg/mermaid"
)

// fixOpts holds the command-line flags for the fix command.
type fixOpts struct {
	check bool // report what would change without writing
}

// fixCommand creates the fix command, which repairs mermaid diagram
// syntax in MDX files. With explicit paths it fixes those files; with
// no arguments it walks the configured content tree.
func (c *CLI) fixCommand() *cobra.Command {
	opts := fixOpts{}

	cmd := &cobra.Command{
		Use:   "fix [file...]",
		Short: "Repair mermaid diagram syntax in MDX files",
		Long: `Repair mermaid diagram syntax in MDX files.

Node labels, decision labels, arrow labels, and subgraph names that
contain Japanese text or structural characters are quoted so mermaid
parses them. Everything outside mermaid code blocks is left untouched.

Examples:
  coursemd fix                                # fix the whole content tree
  coursemd fix src/data/sections/03/lecture-01.mdx
  coursemd fix --check                        # report without writing`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return c.fixFiles(args, opts)
			}
			return c.fixTree(opts)
		},
	}

	cmd.Flags().BoolVar(&opts.check, "check", false, "report files that need fixing without writing")

	return cmd
}

// fixFiles repairs an explicit list of files.
func (c *CLI) fixFiles(paths []string, opts fixOpts) error {
	fixed := 0
	for _, path := range paths {
		modified, err := fixOne(path, opts.check)
		if err != nil {
			return err
		}
		if modified {
			fixed++
			printFile(path)
		}
	}
	reportFixed(fixed, len(paths), opts.check)
	return nil
}

// fixTree repairs every MDX file under the configured content directory.
func (c *CLI) fixTree(opts fixOpts) error {
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}

	if opts.check {
		paths, err := content.Discover(cfg.ContentDir)
		if err != nil {
			return err
		}
		fixed := 0
		for _, path := range paths {
			modified, err := fixOne(path, true)
			if err != nil {
				return err
			}
			if modified {
				fixed++
				printFile(path)
			}
		}
		reportFixed(fixed, len(paths), true)
		return nil
	}

	res, err := content.RepairTree(cfg.ContentDir)
	if err != nil {
		return err
	}
	for _, path := range res.Fixed {
		printFile(path)
	}
	reportFixed(len(res.Fixed), res.Total, false)
	return nil
}

// fixOne repairs a single file, or just reports when check is set.
func fixOne(path string, check bool) (bool, error) {
	if !check {
		return content.RepairFile(path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return false, err
	}
	_, modified := mermaid.FixDocument(string(data))
	return modified, nil
}

func reportFixed(fixed, total int, check bool) {
	switch {
	case check && fixed > 0:
		printWarning("%d of %d files need fixing", fixed, total)
		printNextStep("Apply the fixes", fmt.Sprintf("%s fix", appName))
	case check:
		printSuccess("All %d files are clean", total)
	case fixed > 0:
		printSuccess("Fixed %d of %d files", fixed, total)
	default:
		printSuccess("All %d files already clean", total)
	}
}
