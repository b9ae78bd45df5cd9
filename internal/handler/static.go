package handler

import (
	"log/slog"
	"net/http"
	"os"
	"path"
	"path/filepath"

	"github.com/SergeyBogomolovv/storefront/pkg/utils"
	"github.com/go-chi/chi/v5"
)

// StaticHandler serves the storefront pages. Paths that name no file get
// the index page so client-side routes keep working.
type StaticHandler struct {
	logger *slog.Logger
	dir    string
	index  string
	files  http.Handler
}

func NewStaticHandler(logger *slog.Logger, dir, index string) *StaticHandler {
	return &StaticHandler{
		logger: logger.With(slog.String("handler", "static")),
		dir:    dir,
		index:  index,
		files:  http.FileServer(http.Dir(dir)),
	}
}

func (h *StaticHandler) Init(r chi.Router) {
	r.Get("/*", h.Serve)
	r.Head("/*", h.Serve)
}

func (h *StaticHandler) Serve(w http.ResponseWriter, r *http.Request) {
	name := filepath.Join(h.dir, filepath.FromSlash(path.Clean("/"+r.URL.Path)))

	if fi, err := os.Stat(name); err == nil {
		if !fi.IsDir() {
			h.files.ServeHTTP(w, r)
			return
		}
		if _, err := os.Stat(filepath.Join(name, h.index)); err == nil {
			h.files.ServeHTTP(w, r)
			return
		}
	}

	index := filepath.Join(h.dir, h.index)
	if _, err := os.Stat(index); err != nil {
		h.logger.WarnContext(r.Context(), "index page missing", slog.String("path", index))
		utils.WriteError(w, "Not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	http.ServeFile(w, r, index)
}
