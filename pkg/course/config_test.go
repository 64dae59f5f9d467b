package course

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/coursemd/coursemd/pkg/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "course.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
title = "CUDA Programming"
course_id = 4267614
base_url = "https://example.udemy.com/api-2.0"
tags = ["cuda"]
default_category = "gpu-hardware"

[[section]]
number = 1
title = "Introduction to the Nvidia GPUs hardware"
category = "gpu-hardware"
difficulty = "beginner"

[[section]]
number = 3
title = "Introduction to CUDA programming"
category = "cuda-basics"
difficulty = "beginner"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.CourseID != 4267614 {
		t.Errorf("CourseID = %d", cfg.CourseID)
	}
	if cfg.ContentDir != DefaultContentDir {
		t.Errorf("ContentDir default not applied: %q", cfg.ContentDir)
	}
	if cfg.DataDir != DefaultDataDir {
		t.Errorf("DataDir default not applied: %q", cfg.DataDir)
	}

	s, ok := cfg.Section(3)
	if !ok || s.Category != "cuda-basics" {
		t.Errorf("Section(3) = %+v, %v", s, ok)
	}
	if _, ok := cfg.Section(99); ok {
		t.Error("Section(99) should not exist")
	}

	if got := cfg.CategoryFor(1); got != "gpu-hardware" {
		t.Errorf("CategoryFor(1) = %q", got)
	}
	if got := cfg.CategoryFor(99); got != "gpu-hardware" {
		t.Errorf("CategoryFor(99) should fall back to default, got %q", got)
	}
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
		code    errors.Code
	}{
		{
			"missing course id",
			`base_url = "https://example.com"`,
			errors.ErrCodeInvalidConfig,
		},
		{
			"bad base url",
			"course_id = 1\nbase_url = \"ftp://example.com\"",
			errors.ErrCodeInvalidConfig,
		},
		{
			"duplicate section",
			"course_id = 1\nbase_url = \"https://example.com\"\n[[section]]\nnumber = 2\n[[section]]\nnumber = 2",
			errors.ErrCodeInvalidSection,
		},
		{
			"bad difficulty",
			"course_id = 1\nbase_url = \"https://example.com\"\n[[section]]\nnumber = 1\ndifficulty = \"expert\"",
			errors.ErrCodeInvalidSection,
		},
		{
			"non-positive section",
			"course_id = 1\nbase_url = \"https://example.com\"\n[[section]]\nnumber = 0",
			errors.ErrCodeInvalidSection,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("error code = %q, want %q (%v)", errors.GetCode(err), tt.code, err)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("error code = %q", errors.GetCode(err))
	}
}
