package errors

import (
	"strings"
	"testing"
)

func TestValidateLectureID(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		wantErr bool
	}{
		{"numeric id", "44331906", false},
		{"single digit", "7", false},
		{"empty", "", true},
		{"letters", "lecture1", true},
		{"path traversal", "../etc/passwd", true},
		{"slash", "1/2", true},
		{"too long", strings.Repeat("9", 40), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateLectureID(tt.id)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateLectureID(%q) error = %v, wantErr %v", tt.id, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidLecture) {
				t.Errorf("error code = %q, want %q", GetCode(err), ErrCodeInvalidLecture)
			}
		})
	}
}

func TestValidateContentPath(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"relative mdx path", "src/data/sections/01/lecture-01.mdx", false},
		{"empty", "", true},
		{"traversal", "../../secrets", true},
		{"backslash", `src\data`, true},
		{"null byte", "a\x00b", true},
		{"too long", strings.Repeat("a/", 300), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateContentPath(tt.path)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateContentPath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
		})
	}
}

func TestValidateURL(t *testing.T) {
	if err := ValidateURL("https://example.com/api-2.0"); err != nil {
		t.Errorf("https URL should validate: %v", err)
	}
	if err := ValidateURL("http://localhost:8080"); err != nil {
		t.Errorf("http URL should validate: %v", err)
	}
	if err := ValidateURL(""); err == nil {
		t.Error("empty URL should fail")
	}
	if err := ValidateURL("ftp://example.com"); err == nil {
		t.Error("non-http scheme should fail")
	}
}

func TestValidateDifficulty(t *testing.T) {
	for _, level := range []string{"beginner", "intermediate", "advanced"} {
		if err := ValidateDifficulty(level); err != nil {
			t.Errorf("ValidateDifficulty(%q) = %v", level, err)
		}
	}
	if err := ValidateDifficulty("expert"); err == nil {
		t.Error("unknown difficulty should fail")
	}
}
