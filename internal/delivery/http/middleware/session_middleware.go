package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"healthconnect/internal/domain/entity"
	"healthconnect/internal/service"
	"healthconnect/pkg/jwt"
	"healthconnect/pkg/response"
)

type contextKey string

const (
	SessionKey   contextKey = "session"
	SessionIDKey contextKey = "session_id"
)

// SessionMiddleware resolves the caller's identity from the session cookie
// or, for API clients, from a bearer token whose session is still live in the
// store. Either way a revoked session means an anonymous request.
type SessionMiddleware struct {
	sessionService service.SessionService
	jwtService     *jwt.JWTService
	cookieName     string
}

func NewSessionMiddleware(sessionService service.SessionService, jwtService *jwt.JWTService, cookieName string) *SessionMiddleware {
	return &SessionMiddleware{
		sessionService: sessionService,
		jwtService:     jwtService,
		cookieName:     cookieName,
	}
}

// Resolve attaches the session to the request context when one exists. It
// never rejects; handlers that need identity use RequireSession.
func (m *SessionMiddleware) Resolve(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionID, ok := m.sessionIDFromRequest(r)
		if !ok {
			next.ServeHTTP(w, r)
			return
		}

		session, err := m.sessionService.Get(r.Context(), sessionID)
		if err != nil {
			if !errors.Is(err, service.ErrSessionNotFound) {
				response.InternalServerError(w, "Failed to resolve session")
				return
			}
			next.ServeHTTP(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), SessionKey, session)
		ctx = context.WithValue(ctx, SessionIDKey, sessionID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireSession rejects anonymous requests.
func (m *SessionMiddleware) RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := GetSessionFromContext(r.Context()); !ok {
			response.Unauthorized(w, "Login required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (m *SessionMiddleware) sessionIDFromRequest(r *http.Request) (string, bool) {
	if cookie, err := r.Cookie(m.cookieName); err == nil && cookie.Value != "" {
		return cookie.Value, true
	}

	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", false
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", false
	}

	claims, err := m.jwtService.ValidateToken(parts[1])
	if err != nil {
		return "", false
	}
	return claims.SessionID, true
}

// GetSessionFromContext extracts the resolved session from context
func GetSessionFromContext(ctx context.Context) (*entity.Session, bool) {
	session, ok := ctx.Value(SessionKey).(*entity.Session)
	return session, ok
}

// GetSessionIDFromContext extracts the session ID from context
func GetSessionIDFromContext(ctx context.Context) (string, bool) {
	sessionID, ok := ctx.Value(SessionIDKey).(string)
	return sessionID, ok
}
