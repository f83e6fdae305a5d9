// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"runtime/debug"

	"github.com/sparxrahulpawar/tsxChat/internal/app"
	"github.com/sparxrahulpawar/tsxChat/internal/logger"
)

// withRecover turns a panic in next into a logged 500 error envelope.
// http.ErrAbortHandler is re-raised so net/http can abort the connection.
func (h *Handler) withRecover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rw := &responseWriter{ResponseWriter: w}

		defer func() {
			rvr := recover()
			if rvr == nil {
				return
			}
			if rvr == http.ErrAbortHandler {
				panic(rvr)
			}

			logger.FromRequest(r).Error().
				Interface("panic", rvr).
				Bytes("stack", debug.Stack()).
				Msg("recovered from panic")

			// headers are gone once the handler started writing
			if !rw.wroteHeader {
				writeErrorMessage(rw, http.StatusInternalServerError, app.MsgInternalServerError)
			}
		}()

		next.ServeHTTP(rw, r)
	})
}
