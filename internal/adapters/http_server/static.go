package httpserver

import (
	"mime"
	"net/http"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
)

const (
	notFoundBody    = "<h1>404 - File Not Found</h1>"
	serverErrorBody = "<h1>500 - Internal Server Error</h1>"
)

// serveAsset resolves the request path under the asset root and writes the
// file with an extension-derived content type. The path is cleaned while
// rooted, so traversal sequences cannot escape the asset directory.
func (h *Handlers) serveAsset(w http.ResponseWriter, r *http.Request) {
	p := r.URL.Path
	if p == "/" {
		p = "/index.html"
	}
	name := filepath.Join(h.Assets, filepath.Clean("/"+p))

	fi, err := os.Stat(name)
	if err != nil || fi.IsDir() {
		writeHTML(w, http.StatusNotFound, notFoundBody)
		return
	}
	body, err := os.ReadFile(name)
	if err != nil {
		log.Error().Err(err).Str("file", name).Msg("static read failed")
		writeHTML(w, http.StatusInternalServerError, serverErrorBody)
		return
	}

	ct := mime.TypeByExtension(filepath.Ext(name))
	if ct == "" {
		ct = "application/octet-stream"
	}
	w.Header().Set("Content-Type", ct)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Str("file", name).Msg("static write failed")
	}
}

func writeHTML(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/html")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}
