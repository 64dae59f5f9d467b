package transcripts

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/coursemd/coursemd/pkg/errors"
)

func TestStoreSaveLoad(t *testing.T) {
	store, err := NewStore(filepath.Join(t.TempDir(), "transcripts"))
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	if err := store.Save("12345", "  hello transcript \n"); err != nil {
		t.Fatalf("Save: %v", err)
	}

	text, err := store.Load(12345)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if text != "hello transcript" {
		t.Errorf("text = %q", text)
	}
	if !store.Has(12345) {
		t.Error("Has should report true")
	}
}

func TestStoreRejectsBadIDs(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	for _, id := range []string{"", "../evil", "12a45", "12345678901234567890123456789012345"} {
		if err := store.Save(id, "x"); err == nil {
			t.Errorf("Save(%q) should fail", id)
		}
	}

	entries, _ := os.ReadDir(store.Dir())
	if len(entries) != 0 {
		t.Errorf("store dir should be empty, has %d entries", len(entries))
	}
}

func TestStoreMissingAndEmpty(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	if _, err := store.Load(99); !errors.Is(err, errors.ErrCodeTranscriptMissing) {
		t.Errorf("missing transcript code = %q", errors.GetCode(err))
	}

	if err := store.Save("100", "   \n\t"); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := store.Load(100); !errors.Is(err, errors.ErrCodeTranscriptMissing) {
		t.Errorf("empty transcript code = %q", errors.GetCode(err))
	}
	if store.Has(100) {
		t.Error("Has should report false for whitespace-only transcript")
	}
}
