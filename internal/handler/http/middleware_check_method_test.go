// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/sparxrahulpawar/tsxChat/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildRouter creates a minimal chi.Mux with a set of routes for tests.
// It intentionally does not use Handler.Init() to avoid service/logger setup.
func buildRouter() *chi.Mux {
	router := chi.NewRouter()
	router.NotFound(writeNotFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("root"))
	})
	router.Route("/api/auth", func(r chi.Router) {
		r.Post("/login", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("login"))
		})
		r.Get("/me", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})
	})

	return router
}

func TestCheckHTTPMethod_TableTest(t *testing.T) {
	router := buildRouter()

	tests := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
		wantEnvelope   bool
	}{
		{name: "registered root", method: http.MethodGet, path: "/", expectedStatus: http.StatusOK},
		{name: "registered nested", method: http.MethodPost, path: "/api/auth/login", expectedStatus: http.StatusOK},
		{name: "wrong method on root", method: http.MethodPost, path: "/", expectedStatus: http.StatusNotFound, wantEnvelope: true},
		{name: "wrong method on nested", method: http.MethodGet, path: "/api/auth/login", expectedStatus: http.StatusNotFound, wantEnvelope: true},
		{name: "wrong method DELETE", method: http.MethodDelete, path: "/api/auth/me", expectedStatus: http.StatusNotFound, wantEnvelope: true},
		{name: "unknown path", method: http.MethodGet, path: "/api/unknown", expectedStatus: http.StatusNotFound, wantEnvelope: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.NotEqual(t, http.StatusMethodNotAllowed, rr.Code)

			if tt.wantEnvelope {
				var body models.ErrorResponse
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
				assert.Equal(t, models.StatusFail, body.Status)
				assert.Equal(t, "Cannot find "+tt.path+" on this server", body.Message)
			}
		})
	}
}

func TestCheckHTTPMethod_QueryKeptInMessage(t *testing.T) {
	router := buildRouter()

	req := httptest.NewRequest(http.MethodPut, "/api/auth/me?x=1", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), "Cannot find /api/auth/me?x=1 on this server")
}

func TestCheckHTTPMethod_ConcurrentRequests(t *testing.T) {
	router := buildRouter()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			method := http.MethodPost
			want := http.StatusOK
			if i%2 == 0 {
				method = http.MethodPatch
				want = http.StatusNotFound
			}

			req := httptest.NewRequest(method, "/api/auth/login", nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)
			assert.Equal(t, want, rr.Code)
		}(i)
	}
	wg.Wait()
}
