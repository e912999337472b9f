package http

import (
	"context"
	"net/http"
	"strings"

	"deckhub-backend/internal/domain"
	"deckhub-backend/internal/logger"
	"deckhub-backend/internal/session"
)

type contextKey string

const (
	contextKeyProfile   contextKey = "profile"
	contextKeySession   contextKey = "session"
	contextKeySessionID contextKey = "sessionID"
)

// sessionCookieName carries the hub session id when the client uses
// cookies instead of the X-Session-ID header.
const sessionCookieName = "deckhub_session"

// requireAdmin validates the bearer token, then re-reads the profile row
// and requires super_admin. The role claim inside the token is never
// trusted on its own; a lookup failure denies access.
func (s *Server) requireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		tokenString, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || tokenString == "" {
			writeError(w, http.StatusUnauthorized, "missing bearer token")
			return
		}

		claims, err := s.tokens.ValidateToken(tokenString)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "invalid or expired token")
			return
		}

		profile, err := s.auth.AuthorizeAdmin(r.Context(), claims.UserID)
		if err != nil {
			logger.Warn("Admin access denied", "userID", claims.UserID, "email", claims.Email)
			writeJSON(w, http.StatusForbidden, map[string]any{
				"success":  false,
				"error":    "not authorized",
				"identity": claims.Email,
			})
			return
		}

		ctx := context.WithValue(r.Context(), contextKeyProfile, profile)
		next(w, r.WithContext(ctx))
	}
}

// requireLead resolves the hub session from the X-Session-ID header or the
// session cookie. An expired or unreadable session reads as absent.
func (s *Server) requireLead(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := sessionID(r)
		if id == "" {
			writeError(w, http.StatusUnauthorized, "no active session")
			return
		}

		sess, err := s.auth.RestoreLead(id)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "no active session")
			return
		}

		ctx := context.WithValue(r.Context(), contextKeySession, sess)
		ctx = context.WithValue(ctx, contextKeySessionID, id)
		next(w, r.WithContext(ctx))
	}
}

func sessionID(r *http.Request) string {
	if id := r.Header.Get("X-Session-ID"); id != "" {
		return id
	}
	if cookie, err := r.Cookie(sessionCookieName); err == nil {
		return cookie.Value
	}
	return ""
}

func profileFromContext(ctx context.Context) *domain.Profile {
	profile, _ := ctx.Value(contextKeyProfile).(*domain.Profile)
	return profile
}

func sessionFromContext(ctx context.Context) *session.Session {
	sess, _ := ctx.Value(contextKeySession).(*session.Session)
	return sess
}

func sessionIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(contextKeySessionID).(string)
	return id
}
