package http

import (
	"net/http"
	"os"

	"addonpair/internal/logger"
)

// logo serves the application logo for the device's pairing page. Content
// type is sniffed from the file, so the logo may be PNG, JPEG or SVG without
// configuration.
func (h *Handler) logo(w http.ResponseWriter, r *http.Request) {
	if h.logoPath == "" {
		http.NotFound(w, r)
		return
	}

	data, err := os.ReadFile(h.logoPath)
	if err != nil {
		logger.FromRequest(r).Warn().
			Err(err).
			Str("func", "*Handler.logo").
			Str("path", h.logoPath).
			Msg("logo file not readable")
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", http.DetectContentType(data))
	w.Write(data)
}
