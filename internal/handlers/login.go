package handlers

import (
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/themizzi/saucesuite/internal/models"
	"github.com/themizzi/saucesuite/internal/services"
)

// LoginData represents the data passed to the login template
type LoginData struct {
	Username  string
	Error     string
	Usernames []string
	Password  string
}

// LoginHandler serves the login form at the site root
type LoginHandler struct {
	renderer  *Renderer
	auth      services.AuthService
	sessions  services.SessionStore
	usernames []string
	log       logrus.FieldLogger
}

// NewLoginHandler creates a new login handler
func NewLoginHandler(renderer *Renderer, auth services.AuthService, sessions services.SessionStore, accounts []models.User, log logrus.FieldLogger) *LoginHandler {
	names := make([]string, 0, len(accounts))
	for _, u := range accounts {
		names = append(names, u.Username)
	}
	return &LoginHandler{
		renderer:  renderer,
		auth:      auth,
		sessions:  sessions,
		usernames: names,
		log:       log,
	}
}

// ServeHTTP renders the form on GET and signs in on POST
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	switch r.Method {
	case http.MethodGet:
		data := h.data("")
		if path := takeDenied(w, r); path != "" {
			data.Error = models.AccessDenied(path).Error()
		}
		h.renderer.Render(w, "login.html", data)
	case http.MethodPost:
		h.login(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *LoginHandler) login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}
	username := r.PostFormValue("user-name")
	password := r.PostFormValue("password")

	if err := h.auth.Authenticate(username, password); err != nil {
		var loginErr *models.LoginError
		if !errors.As(err, &loginErr) {
			h.log.WithError(err).Error("error authenticating")
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}
		h.log.WithField("username", username).WithField("reason", loginErr.Message).Info("login rejected")
		data := h.data(username)
		data.Error = loginErr.Message
		h.renderer.Render(w, "login.html", data)
		return
	}

	sess, err := h.sessions.Create(username)
	if err != nil {
		h.log.WithError(err).Error("error creating session")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	h.log.WithField("username", username).Info("login accepted")
	setSessionCookie(w, sess.Token)
	http.Redirect(w, r, "/inventory.html", http.StatusSeeOther)
}

func (h *LoginHandler) data(username string) LoginData {
	return LoginData{Username: username, Usernames: h.usernames, Password: models.SharedPassword}
}

// LogoutHandler ends the session and returns to the login page
type LogoutHandler struct {
	sessions services.SessionStore
	log      logrus.FieldLogger
}

// NewLogoutHandler creates a new logout handler
func NewLogoutHandler(sessions services.SessionStore, log logrus.FieldLogger) *LogoutHandler {
	return &LogoutHandler{sessions: sessions, log: log}
}

// ServeHTTP handles GET /logout
func (h *LogoutHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if c, err := r.Cookie(SessionCookie); err == nil && c.Value != "" {
		h.sessions.Delete(c.Value)
		h.log.Info("logout")
	}
	clearCookie(w, SessionCookie)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
