package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidSection, "unknown section %d", 42)
	if err.Code != ErrCodeInvalidSection {
		t.Errorf("Code = %q, want %q", err.Code, ErrCodeInvalidSection)
	}
	if err.Message != "unknown section 42" {
		t.Errorf("Message = %q", err.Message)
	}
	want := "INVALID_SECTION: unknown section 42"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestWrapAndUnwrap(t *testing.T) {
	cause := stderrors.New("connection refused")
	err := Wrap(ErrCodeNetwork, cause, "fetch curriculum %d", 7)

	if !stderrors.Is(err, cause) {
		t.Error("wrapped error should match its cause with errors.Is")
	}
	if got := err.Error(); got != "NETWORK_ERROR: fetch curriculum 7: connection refused" {
		t.Errorf("Error() = %q", got)
	}
}

func TestIsAndGetCode(t *testing.T) {
	err := New(ErrCodeTranscriptMissing, "no transcript for lecture %d", 9)

	if !Is(err, ErrCodeTranscriptMissing) {
		t.Error("Is should match the error's own code")
	}
	if Is(err, ErrCodeNetwork) {
		t.Error("Is should not match a different code")
	}
	if Is(stderrors.New("plain"), ErrCodeNetwork) {
		t.Error("Is should not match a non-structured error")
	}

	// Code survives wrapping with %w.
	wrapped := fmt.Errorf("outer: %w", err)
	if GetCode(wrapped) != ErrCodeTranscriptMissing {
		t.Errorf("GetCode(wrapped) = %q", GetCode(wrapped))
	}
	if GetCode(stderrors.New("plain")) != "" {
		t.Error("GetCode should be empty for non-structured errors")
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeInvalidConfig, "course_id is required")
	if got := UserMessage(err); got != "course_id is required" {
		t.Errorf("UserMessage = %q", got)
	}
	plain := stderrors.New("boom")
	if got := UserMessage(plain); got != "boom" {
		t.Errorf("UserMessage(plain) = %q", got)
	}
}
