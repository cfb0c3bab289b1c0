package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/themizzi/saucesuite/internal/catalog"
	"github.com/themizzi/saucesuite/internal/models"
	"github.com/themizzi/saucesuite/internal/services"
)

// ProductResponse is one entry of GET /api/product
type ProductResponse struct {
	ID    int     `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// ProductAPIHandler lists the catalog as JSON
type ProductAPIHandler struct{}

// ServeHTTP handles GET /api/product
func (ProductAPIHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var products []ProductResponse
	for _, it := range catalog.Items() {
		products = append(products, ProductResponse{
			ID:    it.ID,
			Name:  it.Name,
			Price: float64(it.Price) / 100,
		})
	}
	writeJSON(w, http.StatusOK, products)
}

// LoginRequest is the POST /api/login body
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is returned for accepted credentials
type LoginResponse struct {
	Token string `json:"token"`
}

// LoginAPIHandler signs in with a JSON body and returns the session token
type LoginAPIHandler struct {
	auth     services.AuthService
	sessions services.SessionStore
	log      logrus.FieldLogger
}

// NewLoginAPIHandler creates a new API login handler
func NewLoginAPIHandler(auth services.AuthService, sessions services.SessionStore, log logrus.FieldLogger) *LoginAPIHandler {
	return &LoginAPIHandler{auth: auth, sessions: sessions, log: log}
}

// ServeHTTP handles POST /api/login. Every rejected login is a 401 with the
// same body so the API does not reveal which accounts exist.
func (h *LoginAPIHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendErrorResponse(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	if err := h.auth.Authenticate(req.Username, req.Password); err != nil {
		var loginErr *models.LoginError
		if !errors.As(err, &loginErr) {
			h.log.WithError(err).Error("error authenticating")
			sendErrorResponse(w, "Internal server error", http.StatusInternalServerError)
			return
		}
		h.log.WithField("username", req.Username).Info("api login rejected")
		sendErrorResponse(w, "Invalid credentials", http.StatusUnauthorized)
		return
	}

	sess, err := h.sessions.Create(req.Username)
	if err != nil {
		h.log.WithError(err).Error("error creating session")
		sendErrorResponse(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	setSessionCookie(w, sess.Token)
	writeJSON(w, http.StatusOK, LoginResponse{Token: sess.Token})
}
