package errors

import (
	"strings"
	"unicode"
)

// lectureIDMaxLen bounds uploaded lecture identifiers. LMS lecture IDs are
// numeric and far shorter; the bound only guards against abuse.
const lectureIDMaxLen = 32

// ValidateLectureID validates a lecture identifier received from an
// untrusted source (e.g., the transcript upload endpoint). The identifier
// becomes a filename, so only digits are accepted — this rules out path
// traversal without any path cleaning.
func ValidateLectureID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidLecture, "lecture id cannot be empty")
	}
	if len(id) > lectureIDMaxLen {
		return New(ErrCodeInvalidLecture, "lecture id too long (max %d characters)", lectureIDMaxLen)
	}
	for _, r := range id {
		if r < '0' || r > '9' {
			return New(ErrCodeInvalidLecture, "lecture id must be numeric: %q", id)
		}
	}
	return nil
}

// ValidateContentPath validates a content file path for safety.
// It prevents path traversal and ensures reasonable path length.
func ValidateContentPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	if strings.Contains(path, "..") {
		return New(ErrCodeInvalidPath, "path cannot contain path traversal sequences (..)")
	}

	if strings.Contains(path, "\\") {
		return New(ErrCodeInvalidPath, "path cannot contain backslashes")
	}

	return nil
}

// ValidateURL validates a URL string for safety.
// It ensures the URL has a safe scheme (http or https).
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidInput, "URL cannot be empty")
	}

	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return New(ErrCodeInvalidInput, "URL must use http or https scheme")
	}

	return nil
}

// difficulties are the levels the content frontmatter schema accepts.
var difficulties = map[string]bool{
	"beginner":     true,
	"intermediate": true,
	"advanced":     true,
}

// ValidateDifficulty validates a section difficulty level.
func ValidateDifficulty(level string) error {
	if !difficulties[level] {
		return New(ErrCodeInvalidSection, "invalid difficulty %q (must be beginner, intermediate, or advanced)", level)
	}
	return nil
}
