package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/GoArmGo/BlogApp/internal/auth"
	"github.com/GoArmGo/BlogApp/internal/domain"
	"github.com/google/uuid"
)

type contextKey string

const identityKey contextKey = "identity"

// IdentityFromContext returns the requester's user id placed there by the
// auth middleware. ok is false for anonymous requests.
func IdentityFromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(identityKey).(uuid.UUID)
	return id, ok
}

// identityOrNil is for optional-auth endpoints: uuid.Nil means anonymous.
func identityOrNil(ctx context.Context) uuid.UUID {
	id, _ := IdentityFromContext(ctx)
	return id
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}

// RequireAuth rejects requests without a valid bearer token and stores the
// identity claim in the request context.
func RequireAuth(tokens *auth.TokenManager, logger *slog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				respondWithDomainError(w, domain.ErrNoToken, "", logger)
				return
			}

			userID, err := tokens.Parse(token)
			if err != nil {
				respondWithDomainError(w, err, "", logger)
				return
			}

			ctx := context.WithValue(r.Context(), identityKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OptionalAuth personalizes the request when a valid token is present.
// Absent or invalid tokens degrade to an anonymous request instead of
// failing it.
func OptionalAuth(tokens *auth.TokenManager, logger *slog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if token := bearerToken(r); token != "" {
				if userID, err := tokens.Parse(token); err == nil {
					ctx := context.WithValue(r.Context(), identityKey, userID)
					r = r.WithContext(ctx)
				} else {
					logger.Debug("ignoring invalid token on optional-auth endpoint", "error", err)
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequestLogger logs every HTTP request with its status and duration.
func RequestLogger(logger *slog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			ww := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
			next.ServeHTTP(ww, r)

			duration := time.Since(start)
			logger.Info("http request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.statusCode,
				"duration_ms", duration.Milliseconds(),
			)
		})
	}
}

// responseWriter intercepts the response status code.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
