package http

import (
	"net/http"

	"github.com/sparxrahulpawar/tsxChat/internal/app"
)

func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(app.MsgHelloWorld))
}

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(serverVersion))
}
