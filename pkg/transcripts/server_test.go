package transcripts

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newTestServer(t *testing.T) (*Server, *Store) {
	t.Helper()
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	return NewServer(store, "", nil), store
}

func TestHandleUpload(t *testing.T) {
	srv, store := newTestServer(t)

	body := `{"101": "first transcript", "102": "second transcript"}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("CORS origin = %q", got)
	}

	var resp map[string]int
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["saved"] != 2 {
		t.Errorf("saved = %d, want 2", resp["saved"])
	}

	for id, want := range map[int64]string{101: "first transcript", 102: "second transcript"} {
		got, err := store.Load(id)
		if err != nil {
			t.Fatalf("Load(%d): %v", id, err)
		}
		if got != want {
			t.Errorf("transcript %d = %q, want %q", id, got, want)
		}
	}
}

func TestHandleUploadSkipsInvalidIDs(t *testing.T) {
	srv, store := newTestServer(t)

	body := `{"101": "ok", "../etc/passwd": "evil"}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	var resp map[string]int
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["saved"] != 1 {
		t.Errorf("saved = %d, want 1", resp["saved"])
	}
	if !store.Has(101) {
		t.Error("valid transcript should be saved")
	}
}

func TestHandleUploadBadJSON(t *testing.T) {
	srv, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("not json"))
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestPreflight(t *testing.T) {
	srv, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Methods"); got != "POST, OPTIONS" {
		t.Errorf("allow methods = %q", got)
	}
}

func TestDefaultAddrIsLoopback(t *testing.T) {
	srv, _ := newTestServer(t)
	if !strings.HasPrefix(srv.Addr(), "127.0.0.1:") {
		t.Errorf("default addr = %q, want loopback", srv.Addr())
	}
}
