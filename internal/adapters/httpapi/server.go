package httpapi

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cropguru/internal/ports/input"
	"cropguru/internal/ports/output"
)

// Server is the HTTP adapter.
type Server struct {
	httpServer *http.Server
}

// NewServer wires the use cases into a routed HTTP server.
func NewServer(addr string, nav input.NavigationUseCase, locales input.LocalizationUseCase, advisory input.AdvisoryUseCase, auth output.AuthProvider) *Server {
	mux := http.NewServeMux()
	NewHandler(nav, locales, advisory, auth).Routes(mux)

	return &Server{
		httpServer: &http.Server{
			Addr:              addr,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

// Start runs the server until interrupted, then shuts down gracefully.
func (s *Server) Start() error {
	errCh := make(chan error, 1)
	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	log.Printf("httpapi: listening on %s", s.httpServer.Addr)
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-stop:
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
