package middlewares

import (
	"context"
	"directory-service/internal/app/config"
	"directory-service/internal/app/models"
	"directory-service/internal/app/services/shared/jwtmanager"
	"directory-service/internal/pkg/constvars"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestMiddlewares(t *testing.T) *Middlewares {
	t.Helper()
	logger := zap.NewNop()
	internalConfig := &config.InternalConfig{JWT: config.AppJWT{Secret: "test-secret"}}
	manager, err := jwtmanager.NewJWTManager(internalConfig, logger)
	require.NoError(t, err)
	return NewMiddlewares(logger, manager, internalConfig)
}

func TestSessionOptional(t *testing.T) {
	middlewares := newTestMiddlewares(t)

	var seen *models.Session
	handler := middlewares.SessionOptional(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = r.Context().Value(constvars.CONTEXT_SESSION_KEY).(*models.Session)
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("No token is anonymous", func(t *testing.T) {
		seen = nil
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		require.NotNil(t, seen)
		assert.False(t, seen.Authenticated())
	})

	t.Run("Valid token is resolved", func(t *testing.T) {
		seen = nil
		token, err := middlewares.JWTManager.CreateToken(context.Background(), &jwtmanager.CreateTokenInput{
			Subject:  "user-1",
			FullName: "Asha Rao",
			Email:    "asha@example.com",
		})
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token.Token)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		require.NotNil(t, seen)
		assert.Equal(t, "user-1", seen.Subject)
		assert.Equal(t, token.Token, seen.Token)
	})

	t.Run("Invalid token is rejected", func(t *testing.T) {
		seen = nil
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer not-a-token")
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Nil(t, seen)
	})

	t.Run("Non bearer scheme is rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Basic abc")
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestRequestIDMiddleware(t *testing.T) {
	middlewares := newTestMiddlewares(t)

	var requestID string
	handler := middlewares.RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID, _ = r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	}))

	t.Run("Client request id is kept", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Request-ID", "client-id")
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, "client-id", requestID)
		assert.Equal(t, "client-id", rr.Header().Get("X-Request-ID"))
	})

	t.Run("Missing request id is generated", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.NotEmpty(t, requestID)
		assert.Equal(t, requestID, rr.Header().Get("X-Request-ID"))
	})
}

func TestErrorHandlerRecoversPanic(t *testing.T) {
	middlewares := newTestMiddlewares(t)
	handler := middlewares.ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rr := httptest.NewRecorder()
	assert.NotPanics(t, func() {
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	})
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
