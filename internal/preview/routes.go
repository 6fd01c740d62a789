package preview

import (
	"errors"
	"io/fs"
	"net/http"
	"path"
	"strings"

	"github.com/MKhiriev/go-pack-config/internal/logger"
	"github.com/MKhiriev/go-pack-config/internal/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// ConfigPath serves the tree the build was produced from, when known.
const ConfigPath = "/__packcfg/config"

const indexFile = "index.html"

// Handler returns the router of the preview server.
func (s *Server) Handler() http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(s.withRequestID, withLogging, withGZip)

	router.Get(ConfigPath, s.config)
	router.Get("/*", s.static)
	router.Head("/*", s.static)

	return router
}

func (s *Server) config(w http.ResponseWriter, r *http.Request) {
	if s.tree == nil {
		http.NotFound(w, r)
		return
	}
	if _, err := utils.WriteJSON(w, s.tree, http.StatusOK); err != nil {
		logger.FromRequest(r).Error().Err(err).Msg("error writing configuration tree")
	}
}

// static serves files below the root. Unknown paths without an extension
// are client-side routes and get index.html.
func (s *Server) static(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimPrefix(path.Clean("/"+r.URL.Path), "/")
	if name == "" {
		name = "."
	}

	_, err := fs.Stat(s.files, name)
	switch {
	case err == nil:
		s.fileServer.ServeHTTP(w, r)
	case errors.Is(err, fs.ErrNotExist) && path.Ext(name) == "":
		http.ServeFileFS(w, r, s.files, indexFile)
	case errors.Is(err, fs.ErrNotExist):
		http.NotFound(w, r)
	default:
		logger.FromRequest(r).Error().Err(err).Str("path", name).Msg("error reading file")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}
