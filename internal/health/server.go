// Package health serves the liveness endpoint and a small status page.
package health

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/tdiallo/suitoracle/internal/engine"
)

// shutdownTimeout bounds graceful shutdown on context cancellation.
const shutdownTimeout = 5 * time.Second

// StatusSource provides the state shown on the index page.
type StatusSource interface {
	Snapshot() engine.Snapshot
}

// Server is the HTTP health server.
type Server struct {
	addr string
	src  StatusSource
}

// New creates a Server listening on the given port.
func New(port int, src StatusSource) *Server {
	return &Server{
		addr: fmt.Sprintf(":%d", port),
		src:  src,
	}
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/", s.handleIndex)

	srv := &http.Server{
		Addr:    s.addr,
		Handler: mux,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("health server failed: %w", err)
	}
	return nil
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, "OK")
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	snap := s.src.Snapshot()
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprintf(w, `<!DOCTYPE html>
<html>
<head><title>Bot Prédiction Baccarat</title></head>
<body>
<h1>🎯 Bot de Prédiction Baccarat</h1>
<p>Le bot est en ligne et surveille les canaux.</p>
<p><strong>Jeu actuel:</strong> #%d</p>
<p><strong>Prédictions actives:</strong> %d</p>
</body>
</html>`, snap.CurrentRound, len(snap.Pending))
}
