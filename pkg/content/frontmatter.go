package content

import (
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/coursemd/coursemd/pkg/errors"
	"github.com/coursemd/coursemd/pkg/lms"
)

// Frontmatter is the YAML metadata block at the top of each lecture MDX
// file. Field order here is the order written to disk.
type Frontmatter struct {
	Title         string   `yaml:"title"`
	Description   string   `yaml:"description"`
	SectionNumber int      `yaml:"sectionNumber"`
	SectionTitle  string   `yaml:"sectionTitle"`
	LectureNumber int      `yaml:"lectureNumber"`
	LectureTitle  string   `yaml:"lectureTitle"`
	Difficulty    string   `yaml:"difficulty"`
	Tags          []string `yaml:"tags,flow"`
	Category      string   `yaml:"category"`
	Order         int      `yaml:"order"`
}

// BuildFrontmatter derives the metadata block for one video lecture.
// The display title carries the section/lecture coordinates, and order
// sorts lectures globally (section*100 + lecture). The category leads
// the tag list, followed by the course-wide tags.
func BuildFrontmatter(v lms.VideoLecture, sectionTitle, category, difficulty string, courseTags []string) Frontmatter {
	return Frontmatter{
		Title:         fmt.Sprintf("S%d-L%d: %s", v.Section, v.Lecture, v.Title),
		Description:   fmt.Sprintf("%s - %sの解説", sectionTitle, v.Title),
		SectionNumber: v.Section,
		SectionTitle:  sectionTitle,
		LectureNumber: v.Lecture,
		LectureTitle:  v.Title,
		Difficulty:    difficulty,
		Tags:          append([]string{category}, courseTags...),
		Category:      category,
		Order:         v.Section*100 + v.Lecture,
	}
}

// Marshal renders the frontmatter as a fenced YAML block including the
// surrounding --- delimiters.
func (f Frontmatter) Marshal() (string, error) {
	data, err := yaml.Marshal(f)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInvalidFormat, err, "marshal frontmatter for %q", f.Title)
	}
	return "---\n" + string(data) + "---", nil
}

// LecturePath returns the canonical MDX path for a lecture, relative to
// the content directory: <dir>/<section>/lecture-<n>.mdx with zero-padded
// two-digit numbers.
func LecturePath(contentDir string, section, lecture int) string {
	return filepath.Join(contentDir,
		fmt.Sprintf("%02d", section),
		fmt.Sprintf("lecture-%02d.mdx", lecture))
}

// SplitFrontmatter separates the YAML frontmatter block from the body of
// an MDX document. Returns empty frontmatter when the document has none.
func SplitFrontmatter(doc string) (front, body string) {
	if !strings.HasPrefix(doc, "---\n") {
		return "", doc
	}
	rest := doc[len("---\n"):]
	end := strings.Index(rest, "\n---")
	if end < 0 {
		return "", doc
	}
	front = rest[:end]
	body = rest[end+len("\n---"):]
	body = strings.TrimPrefix(body, "\n")
	return front, body
}
