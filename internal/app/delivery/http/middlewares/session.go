package middlewares

import (
	"context"
	"directory-service/internal/app/models"
	"directory-service/internal/app/services/shared/jwtmanager"
	"directory-service/internal/pkg/constvars"
	"directory-service/internal/pkg/exceptions"
	"directory-service/internal/pkg/utils"
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// SessionOptional resolves the bearer token into a session. Requests without
// a token go through as anonymous; a token that is present but invalid is
// rejected.
func (m *Middlewares) SessionOptional(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

		header := strings.TrimSpace(r.Header.Get(constvars.HeaderAuthorization))
		if header == "" {
			ctx := context.WithValue(r.Context(), constvars.CONTEXT_SESSION_KEY, &models.Session{})
			next.ServeHTTP(w, r.WithContext(ctx))
			return
		}

		if !strings.HasPrefix(header, constvars.BearerPrefix) {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(errors.New("authorization header is not a bearer token")))
			return
		}

		out, err := m.JWTManager.VerifyToken(r.Context(), &jwtmanager.VerifyTokenInput{
			Token: strings.TrimSpace(strings.TrimPrefix(header, constvars.BearerPrefix)),
		})
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(err))
			return
		}
		if !out.Valid {
			m.Log.Info("Middlewares.SessionOptional rejected token",
				zap.String(constvars.LoggingRequestIDKey, requestID),
			)
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenInvalidOrExpired(nil))
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_SESSION_KEY, out.Session)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
