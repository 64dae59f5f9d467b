package transcripts

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/coursemd/coursemd/pkg/errors"
)

// Store persists transcripts as plain text files, one per lecture,
// named <lecture-id>.txt.
type Store struct {
	dir string
}

// NewStore creates a Store rooted at dir, creating the directory if
// needed.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "create transcript dir %s", dir)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the directory the store writes to.
func (s *Store) Dir() string { return s.dir }

// Save writes the transcript text for one lecture. The ID is validated
// so a hostile payload cannot write outside the store directory.
func (s *Store) Save(lectureID, text string) error {
	if err := errors.ValidateLectureID(lectureID); err != nil {
		return err
	}
	path := filepath.Join(s.dir, lectureID+".txt")
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write transcript %s", path)
	}
	return nil
}

// Load reads the transcript for a lecture, trimmed of surrounding
// whitespace. Missing or empty transcripts return ErrCodeTranscriptMissing.
func (s *Store) Load(lectureID int64) (string, error) {
	path := filepath.Join(s.dir, fmt.Sprintf("%d.txt", lectureID))
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", errors.New(errors.ErrCodeTranscriptMissing, "no transcript at %s", path)
		}
		return "", errors.Wrap(errors.ErrCodeInternal, err, "read transcript %s", path)
	}
	text := strings.TrimSpace(string(data))
	if text == "" {
		return "", errors.New(errors.ErrCodeTranscriptMissing, "empty transcript at %s", path)
	}
	return text, nil
}

// Has reports whether a non-empty transcript exists for the lecture.
func (s *Store) Has(lectureID int64) bool {
	_, err := s.Load(lectureID)
	return err == nil
}
