package http

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sparxrahulpawar/tsxChat/internal/app"
	"github.com/sparxrahulpawar/tsxChat/internal/logger"
	"github.com/sparxrahulpawar/tsxChat/internal/service"
	"github.com/sparxrahulpawar/tsxChat/models"
	"github.com/stretchr/testify/assert"
)

func TestWithRecover_WritesErrorEnvelope(t *testing.T) {
	var logBuf bytes.Buffer
	log := logger.New(&logBuf, "test")

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req = req.WithContext(log.WithContext(req.Context()))
	rr := httptest.NewRecorder()

	assert.NotPanics(t, func() {
		newTestHandler().withRecover(next).ServeHTTP(rr, req)
	})

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Contains(t, rr.Header().Get("Content-Type"), "application/json")
	assert.Equal(t, models.ErrorResponse{Status: models.StatusError, Message: app.MsgInternalServerError}, decodeError(t, rr))

	assert.Contains(t, logBuf.String(), `"panic":"boom"`)
	assert.Contains(t, logBuf.String(), `"level":"error"`)
}

func TestWithRecover_KeepsStartedResponse(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte("partial"))
		panic("late")
	})

	rr := httptest.NewRecorder()
	req := injectNopLogger(httptest.NewRequest(http.MethodGet, "/", nil))
	newTestHandler().withRecover(next).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "partial", rr.Body.String())
}

func TestWithRecover_ReraisesAbortHandler(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic(http.ErrAbortHandler)
	})

	req := injectNopLogger(httptest.NewRequest(http.MethodGet, "/", nil))
	assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
		newTestHandler().withRecover(next).ServeHTTP(httptest.NewRecorder(), req)
	})
}

func TestRoutes_PanickingServiceReturnsEnvelope(t *testing.T) {
	h := &Handler{
		logger: logger.Nop(),
		services: &service.Services{
			AuthService: &mockAuthService{
				loginFn: func(context.Context, models.LoginRequest) (models.AuthResult, error) {
					panic("nil session store")
				},
			},
		},
	}
	router := h.Init()

	body := strings.NewReader(`{"email":"jane@x.com","password":"secret123"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", body)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Contains(t, rr.Header().Get("Content-Type"), "application/json")
	assert.NotEmpty(t, rr.Header().Get("X-Trace-ID"))

	resp := decodeError(t, rr)
	assert.Equal(t, models.StatusError, resp.Status)
	assert.Equal(t, app.MsgInternalServerError, resp.Message)
}
