package reportserver

import (
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"

	"carquiz/internal/report"
)

//go:embed assets/*
var embeddedAssets embed.FS

// NewHandler builds the HTTP handler for the report UI, thumbnails, and
// the stats database download.
func NewHandler(cfg Config) (http.Handler, error) {
	if cfg.ResultsDir == "" {
		return nil, errors.New("reportserver: results dir is required")
	}
	if cfg.DBPath == "" {
		return nil, errors.New("reportserver: db path is required")
	}
	if cfg.DataDir == "" {
		return nil, errors.New("reportserver: data dir is required")
	}
	if cfg.ThumbsDir == "" {
		return nil, errors.New("reportserver: thumbs dir is required")
	}
	if cfg.ThumbWidth < 1 {
		return nil, fmt.Errorf("reportserver: thumb width must be >= 1, got %d", cfg.ThumbWidth)
	}

	assetsFS, err := fs.Sub(embeddedAssets, "assets")
	if err != nil {
		return nil, fmt.Errorf("reportserver: open embedded assets: %w", err)
	}

	mux := http.NewServeMux()
	mux.Handle("/", serveReport(cfg.ResultsDir))
	mux.Handle("/assets/", http.StripPrefix("/assets/", http.FileServer(http.FS(assetsFS))))
	mux.Handle("/data/stats.duckdb", serveDatabase(cfg.DBPath))
	mux.Handle("/thumbs/", serveThumbs(cfg))
	mux.HandleFunc("/healthz", serveHealth)
	return mux, nil
}

// serveReport renders the sessions report from the results directory.
func serveReport(resultsDir string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		sessions, err := report.LoadAllResults(resultsDir)
		if err != nil {
			http.Error(w, "load sessions: "+err.Error(), http.StatusInternalServerError)
			return
		}
		html, err := report.RenderReportHTML(r.Context(), sessions)
		if err != nil {
			http.Error(w, "render report: "+err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = io.WriteString(w, html)
	})
}

// serveDatabase serves the DuckDB file from disk for browser-side processing.
func serveDatabase(dbPath string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.Header().Set("Allow", http.MethodGet)
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		w.Header().Set("Content-Type", "application/octet-stream")
		http.ServeFile(w, r, dbPath)
	})
}

// serveHealth reports server liveness.
func serveHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, "ok\n")
}
