package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/themizzi/saucesuite/internal/services"
)

// SessionCookie carries the session token
const SessionCookie = "session-username"

// deniedCookie remembers which page a signed-out visitor tried to open
const deniedCookie = "access-denied"

type sessionKey struct{}

// RequireSession resolves the session cookie and rejects signed-out visitors.
// Pages redirect to the login page with an access denied message, API calls
// get a 401.
func RequireSession(sessions services.SessionStore, log logrus.FieldLogger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if sess := lookupSession(sessions, r); sess != nil {
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), sessionKey{}, sess)))
			return
		}

		log.WithField("path", r.URL.Path).Debug("signed-out request")
		if r.Method != http.MethodGet {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		http.SetCookie(w, &http.Cookie{
			Name:     deniedCookie,
			Value:    strings.TrimPrefix(r.URL.Path, "/"),
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
		http.Redirect(w, r, "/", http.StatusSeeOther)
	})
}

func lookupSession(sessions services.SessionStore, r *http.Request) *services.Session {
	c, err := r.Cookie(SessionCookie)
	if err != nil || c.Value == "" {
		return nil
	}
	sess, err := sessions.Get(c.Value)
	if err != nil {
		return nil
	}
	return sess
}

// sessionFrom returns the session RequireSession attached to the request
func sessionFrom(r *http.Request) *services.Session {
	sess, _ := r.Context().Value(sessionKey{}).(*services.Session)
	return sess
}

func setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearCookie(w http.ResponseWriter, name string) {
	http.SetCookie(w, &http.Cookie{Name: name, Value: "", Path: "/", MaxAge: -1})
}

// takeDenied returns and clears the remembered access denied path
func takeDenied(w http.ResponseWriter, r *http.Request) string {
	c, err := r.Cookie(deniedCookie)
	if err != nil || c.Value == "" {
		return ""
	}
	clearCookie(w, deniedCookie)
	return c.Value
}
