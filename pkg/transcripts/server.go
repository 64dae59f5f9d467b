package transcripts

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// DefaultAddr binds to loopback only; the endpoint is meant for a
// userscript running in a local browser, never for the network.
const DefaultAddr = "127.0.0.1:18765"

const shutdownTimeout = 5 * time.Second

// Server receives transcript uploads over HTTP and writes them to a
// Store. The payload is a JSON object mapping lecture IDs to transcript
// text.
type Server struct {
	store  *Store
	logger *log.Logger
	http   *http.Server
}

// NewServer creates a Server bound to addr. Pass an empty addr to use
// DefaultAddr, and nil for logger to discard logs.
func NewServer(store *Store, addr string, logger *log.Logger) *Server {
	if addr == "" {
		addr = DefaultAddr
	}
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	s := &Server{store: store, logger: logger}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(corsLocal)
	r.Post("/", s.handleUpload)

	s.http = &http.Server{Addr: addr, Handler: r}
	return s
}

// Addr returns the address the server binds to.
func (s *Server) Addr() string { return s.http.Addr }

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.http.ListenAndServe()
	}()
	s.logger.Info("transcript server listening", "addr", s.http.Addr, "dir", s.store.Dir())

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return s.http.Shutdown(shutdownCtx)
	}
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler { return s.http.Handler }

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	var payload map[string]string
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, `{"error":"invalid JSON body"}`, http.StatusBadRequest)
		return
	}

	saved := 0
	for lectureID, text := range payload {
		if err := s.store.Save(lectureID, text); err != nil {
			s.logger.Warn("transcript rejected", "lecture", lectureID, "err", err)
			continue
		}
		saved++
	}
	s.logger.Info("transcripts received", "saved", saved, "total", len(payload))

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]int{"saved": saved})
}

// corsLocal answers preflight requests and allows any origin. Safe only
// because the server binds to loopback.
func corsLocal(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}
