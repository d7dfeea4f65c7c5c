package reportserver

import (
	"errors"
	"io/fs"
	"net/http"
	"path"
	"path/filepath"
	"strings"

	"carquiz/internal/thumbs"
)

// serveThumbs renders and serves a cached thumbnail for a catalog image.
// The request path after /thumbs/ is the image path relative to the data
// directory.
func serveThumbs(cfg Config) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.Header().Set("Allow", http.MethodGet)
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		rel := strings.TrimPrefix(r.URL.Path, "/thumbs/")
		rel = path.Clean(rel)
		if rel == "." || rel == "/" || strings.HasPrefix(rel, "..") || strings.Contains(rel, "\\") {
			http.NotFound(w, r)
			return
		}

		source := filepath.Join(cfg.DataDir, filepath.FromSlash(rel))
		thumbPath, err := thumbs.Ensure(source, cfg.ThumbsDir, cfg.ThumbWidth)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				http.NotFound(w, r)
				return
			}
			http.Error(w, "render thumbnail: "+err.Error(), http.StatusInternalServerError)
			return
		}
		http.ServeFile(w, r, thumbPath)
	})
}
