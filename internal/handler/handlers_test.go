package handler

import (
	"testing"
	"time"

	"github.com/sparxrahulpawar/tsxChat/internal/config"
	"github.com/sparxrahulpawar/tsxChat/internal/logger"
	"github.com/sparxrahulpawar/tsxChat/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestLogger returns a no-op logger suitable for use in tests.
func newTestLogger() *logger.Logger {
	return logger.Nop()
}

// newTestServices returns an empty *service.Services. http.NewHandler only
// stores the pointer, so no service is needed at construction time.
func newTestServices() *service.Services {
	return &service.Services{}
}

// TestNewHandlers_HTTPAddress verifies that a configured HTTPAddress yields
// an initialised HTTP handler and no error.
func TestNewHandlers_HTTPAddress(t *testing.T) {
	cfg := config.Server{
		HTTPAddress:       ":5000",
		RateLimitRequests: 10,
		RateLimitWindow:   time.Minute,
	}

	h, err := NewHandlers(newTestServices(), cfg, newTestLogger())

	require.NoError(t, err)
	require.NotNil(t, h)
	assert.NotNil(t, h.HTTP, "expected HTTP handler to be initialised")
}

// TestNewHandlers_NoAddress verifies that an empty HTTPAddress makes
// NewHandlers return errNoHandlersAreCreated and a nil *Handlers.
func TestNewHandlers_NoAddress(t *testing.T) {
	h, err := NewHandlers(newTestServices(), config.Server{}, newTestLogger())

	require.ErrorIs(t, err, errNoHandlersAreCreated)
	assert.Nil(t, h)
}

// TestNewHandlers_IndependentInstances verifies that two calls to NewHandlers
// produce independent *Handlers instances.
func TestNewHandlers_IndependentInstances(t *testing.T) {
	cfg := config.Server{HTTPAddress: ":5000"}

	h1, err1 := NewHandlers(newTestServices(), cfg, newTestLogger())
	h2, err2 := NewHandlers(newTestServices(), cfg, newTestLogger())

	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.NotSame(t, h1, h2)
	assert.NotSame(t, h1.HTTP, h2.HTTP)
}
