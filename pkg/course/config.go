// Package course loads the course.toml project file that describes a
// course: where its content lives, which LMS course backs it, and the
// per-section metadata (title, category, difficulty) stamped into lecture
// frontmatter.
//
// Example:
//
//	title = "CUDA Programming"
//	course_id = 4267614
//	base_url = "https://example.udemy.com/api-2.0"
//	content_dir = "src/data/sections"
//	data_dir = "data"
//	tags = ["cuda"]
//	default_category = "gpu-hardware"
//
//	[[section]]
//	number = 1
//	title = "Introduction to the Nvidia GPUs hardware"
//	category = "gpu-hardware"
//	difficulty = "beginner"
//
// Secrets (LMS bearer token, Gemini API key) are never part of the config;
// they come from environment variables.
package course

import (
	"github.com/BurntSushi/toml"

	"github.com/coursemd/coursemd/pkg/errors"
)

// Default directories relative to the project root.
const (
	DefaultContentDir = "src/data/sections"
	DefaultDataDir    = "data"
)

// Config describes one course project.
type Config struct {
	Title           string    `toml:"title"`
	CourseID        int64     `toml:"course_id"`
	BaseURL         string    `toml:"base_url"`
	ContentDir      string    `toml:"content_dir"`
	DataDir         string    `toml:"data_dir"`
	Tags            []string  `toml:"tags"`
	DefaultCategory string    `toml:"default_category"`
	Sections        []Section `toml:"section"`
}

// Section carries the metadata stamped into every lecture of one course
// section.
type Section struct {
	Number     int    `toml:"number"`
	Title      string `toml:"title"`
	Category   string `toml:"category"`
	Difficulty string `toml:"difficulty"`
}

// Load reads and validates a course config from path.
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.ContentDir == "" {
		c.ContentDir = DefaultContentDir
	}
	if c.DataDir == "" {
		c.DataDir = DefaultDataDir
	}
}

// Validate checks required fields and section metadata.
func (c *Config) Validate() error {
	if c.CourseID <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "course_id is required")
	}
	if err := errors.ValidateURL(c.BaseURL); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "base_url")
	}

	seen := make(map[int]bool, len(c.Sections))
	for _, s := range c.Sections {
		if s.Number <= 0 {
			return errors.New(errors.ErrCodeInvalidSection, "section number must be positive, got %d", s.Number)
		}
		if seen[s.Number] {
			return errors.New(errors.ErrCodeInvalidSection, "duplicate section number %d", s.Number)
		}
		seen[s.Number] = true
		if s.Difficulty != "" {
			if err := errors.ValidateDifficulty(s.Difficulty); err != nil {
				return err
			}
		}
	}
	return nil
}

// Section returns the metadata for section n.
func (c *Config) Section(n int) (Section, bool) {
	for _, s := range c.Sections {
		if s.Number == n {
			return s, true
		}
	}
	return Section{}, false
}

// CategoryFor returns the category for section n, falling back to the
// configured default when the section is unknown or has no category.
func (c *Config) CategoryFor(n int) string {
	if s, ok := c.Section(n); ok && s.Category != "" {
		return s.Category
	}
	return c.DefaultCategory
}
