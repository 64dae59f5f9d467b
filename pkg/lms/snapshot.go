package lms

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Snapshot filenames under the project data directory.
const (
	CurriculumFile = "curriculum.json"
	ItemsFile      = "all_items.json"
	VideosFile     = "video_lectures.json"
	CaptionsFile   = "vtt_urls.json"
)

// SaveJSON writes v as indented JSON to path, creating parent directories
// as needed.
func SaveJSON(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create %s: %w", filepath.Dir(path), err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}

// LoadJSON reads a JSON file at path into v.
func LoadJSON(path string, v any) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := json.NewDecoder(f).Decode(v); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

// WriteSnapshots persists the raw curriculum plus its parsed forms under
// dataDir using the standard snapshot filenames.
func WriteSnapshots(dataDir string, cur *Curriculum, items []Item, videos []VideoLecture) error {
	if err := SaveJSON(filepath.Join(dataDir, CurriculumFile), cur); err != nil {
		return err
	}
	if err := SaveJSON(filepath.Join(dataDir, ItemsFile), items); err != nil {
		return err
	}
	return SaveJSON(filepath.Join(dataDir, VideosFile), videos)
}

// LoadVideos reads the video lecture snapshot from dataDir.
func LoadVideos(dataDir string) ([]VideoLecture, error) {
	var videos []VideoLecture
	if err := LoadJSON(filepath.Join(dataDir, VideosFile), &videos); err != nil {
		return nil, err
	}
	return videos, nil
}

// LoadItems reads the flattened item snapshot from dataDir.
func LoadItems(dataDir string) ([]Item, error) {
	var items []Item
	if err := LoadJSON(filepath.Join(dataDir, ItemsFile), &items); err != nil {
		return nil, err
	}
	return items, nil
}
