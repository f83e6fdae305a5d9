// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "net/http"

// maxLoggedBody caps how much of a response body withLogging keeps.
const maxLoggedBody = 1024

// responseWriter decorates [http.ResponseWriter] to record the status code,
// the number of bytes written and the payload of the last Write (truncated
// to maxLoggedBody) for access logging.
//
// WriteHeader is forwarded to the underlying writer exactly once.
type responseWriter struct {
	http.ResponseWriter

	status      int
	wroteHeader bool
	size        int
	body        []byte
}

func (w *responseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.status = statusCode
	w.wroteHeader = true
	w.ResponseWriter.WriteHeader(statusCode)
}

// Write implies a 200 status when WriteHeader was not called.
func (w *responseWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.size += n
	if len(b) > maxLoggedBody {
		b = b[:maxLoggedBody]
	}
	w.body = b
	return n, err
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (w *responseWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

// statusCode reports the written status; a handler that wrote nothing
// produced an implicit 200.
func (w *responseWriter) statusCode() int {
	if w.status == 0 {
		return http.StatusOK
	}
	return w.status
}
