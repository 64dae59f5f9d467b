// Package cli implements the coursemd command-line interface.
//
// Commands cover the course maintenance workflow: fetching curriculum
// data from the LMS, scaffolding and generating MDX lecture files,
// repairing mermaid diagram syntax, receiving transcripts from a
// browser, and rendering a course structure map. Loggers are passed
// through context.Context and all commands support --verbose (-v).
package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/coursemd/coursemd/pkg/buildinfo"
	"github.com/coursemd/coursemd/pkg/course"
	"github.com/coursemd/coursemd/pkg/errors"
	"github.com/coursemd/coursemd/pkg/httputil"
	"github.com/coursemd/coursemd/pkg/lms"
)

const (
	// appName is the application name used for directories and display.
	appName = "coursemd"

	// tokenEnv is the environment variable holding the LMS bearer token.
	tokenEnv = "COURSEMD_LMS_TOKEN"

	// geminiKeyEnv is the environment variable holding the Gemini API key.
	geminiKeyEnv = "GEMINI_API_KEY"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "coursemd maintains MDX course content from LMS curricula",
		Long:         `coursemd is a CLI toolkit for maintaining MDX course content: it fetches curriculum data from the LMS, scaffolds and generates lecture files, and repairs mermaid diagram syntax so every diagram renders.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "course.toml", "course config file")

	root.AddCommand(c.fixCommand())
	root.AddCommand(c.syncCommand())
	root.AddCommand(c.fetchCommand())
	root.AddCommand(c.scaffoldCommand())
	root.AddCommand(c.generateCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.graphCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// loadConfig reads the course config named by --config.
func (c *CLI) loadConfig() (*course.Config, error) {
	cfg, err := course.Load(c.configPath)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", c.configPath, err)
	}
	return cfg, nil
}

// newLMSClient builds an LMS client from the config and environment.
// The bearer token always comes from the environment, never the config.
func (c *CLI) newLMSClient(cfg *course.Config, noCache bool) (*lms.Client, error) {
	token := os.Getenv(tokenEnv)
	if token == "" {
		return nil, errors.New(errors.ErrCodeUnauthorized, "%s not set", tokenEnv)
	}

	var cache *httputil.Cache
	if !noCache {
		dir, err := cacheDir()
		if err == nil {
			cache, _ = httputil.NewCache(dir, lms.DefaultCacheTTL)
		}
	}
	return lms.NewClient(cfg.BaseURL, token, cache), nil
}

// cacheDir returns the cache directory using XDG standard (~/.cache/coursemd/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// transcriptDir returns where transcripts live for a given config.
func transcriptDir(cfg *course.Config) string {
	return filepath.Join(cfg.DataDir, "transcripts")
}
