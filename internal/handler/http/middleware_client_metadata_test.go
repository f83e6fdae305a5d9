package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/sparxrahulpawar/tsxChat/internal/utils"
	"github.com/sparxrahulpawar/tsxChat/models"
	"github.com/stretchr/testify/assert"
)

func TestWithClientMetadata(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		forwarded  string
		userAgent  string
		want       models.ClientMetadata
	}{
		{
			name:       "host and port",
			remoteAddr: "203.0.113.7:51234",
			userAgent:  "curl/8.0",
			want:       models.ClientMetadata{IPAddress: "203.0.113.7", UserAgent: "curl/8.0"},
		},
		{
			name:       "ipv6",
			remoteAddr: "[2001:db8::1]:443",
			want:       models.ClientMetadata{IPAddress: "2001:db8::1"},
		},
		{
			name:       "forwarded by proxy",
			remoteAddr: "10.0.0.1:80",
			forwarded:  "198.51.100.9",
			userAgent:  "tsxchat-cli",
			want:       models.ClientMetadata{IPAddress: "198.51.100.9", UserAgent: "tsxchat-cli"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got models.ClientMetadata
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got = utils.ClientMetadataFromContext(r.Context())
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			req.Header.Set("User-Agent", tt.userAgent)
			if tt.forwarded != "" {
				req.Header.Set("X-Forwarded-For", tt.forwarded)
			}

			middleware.RealIP(newTestHandler().withClientMetadata(next)).ServeHTTP(httptest.NewRecorder(), req)

			assert.Equal(t, tt.want, got)
		})
	}
}
