package http

import (
	_ "embed"
	"net/http"
)

//go:embed web/index.html
var indexHTML []byte

// index serves the embedded pairing page. The remote device lands here after
// scanning the QR code and drives the /api endpoints from this page.
func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(indexHTML)
}
