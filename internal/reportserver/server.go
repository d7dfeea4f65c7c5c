// Package reportserver hosts the quiz report, thumbnails, and the stats
// database over HTTP.
package reportserver

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"
)

// Config captures the settings for serving reports and stats.
type Config struct {
	Addr       string
	ResultsDir string
	DBPath     string
	DataDir    string
	ThumbsDir  string
	ThumbWidth int
}

// Serve listens on cfg.Addr and hosts the report UI and data endpoints
// until ctx is cancelled. A cancellation-driven shutdown returns nil.
func Serve(ctx context.Context, cfg Config) error {
	if ctx == nil {
		return errors.New("reportserver: context is nil")
	}
	if cfg.Addr == "" {
		return errors.New("reportserver: addr is required")
	}
	handler, err := NewHandler(cfg)
	if err != nil {
		return err
	}

	ln, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		return fmt.Errorf("reportserver: listen on %s: %w", cfg.Addr, err)
	}
	server := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	done := make(chan error, 1)
	go func() { done <- server.Serve(ln) }()

	var serveErr error
	select {
	case serveErr = <-done:
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
		serveErr = <-done
	}
	if serveErr == nil || errors.Is(serveErr, http.ErrServerClosed) {
		return nil
	}
	return serveErr
}
