package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/themizzi/saucesuite/internal/catalog"
	"github.com/themizzi/saucesuite/internal/services"
)

// CartData represents the data passed to the cart template
type CartData struct {
	PageData
	Items []catalog.Item
}

// CartHandler shows the cart and routes its footer buttons
type CartHandler struct {
	renderer *Renderer
	log      logrus.FieldLogger
}

// NewCartHandler creates a new cart handler
func NewCartHandler(renderer *Renderer, log logrus.FieldLogger) *CartHandler {
	return &CartHandler{renderer: renderer, log: log}
}

// ServeHTTP renders the cart on GET; POST continues shopping or starts checkout
func (h *CartHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		sess := sessionFrom(r)
		items, err := sess.CartItems()
		if err != nil {
			h.log.WithError(err).Error("error reading cart")
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}
		h.renderer.Render(w, "cart.html", CartData{PageData: PageData{CartCount: len(items)}, Items: items})
	case http.MethodPost:
		switch r.PostFormValue("action") {
		case "checkout":
			http.Redirect(w, r, "/checkout-step-one.html", http.StatusSeeOther)
		case "continue":
			http.Redirect(w, r, "/inventory.html", http.StatusSeeOther)
		default:
			http.Error(w, "Unknown action", http.StatusBadRequest)
		}
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// CartResponse is returned by the cart endpoints
type CartResponse struct {
	Count int `json:"count"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// CartAction is one of the in-page cart mutations
type CartAction int

// Cart mutations
const (
	CartAdd CartAction = iota
	CartRemove
	CartReset
)

// CartAPIHandler applies add, remove and reset for the buttons on the page
type CartAPIHandler struct {
	sessions services.SessionStore
	action   CartAction
	log      logrus.FieldLogger
}

// NewCartAPIHandler creates a handler for one cart action
func NewCartAPIHandler(sessions services.SessionStore, action CartAction, log logrus.FieldLogger) *CartAPIHandler {
	return &CartAPIHandler{sessions: sessions, action: action, log: log}
}

// ServeHTTP handles POST /cart/add, /cart/remove and /reset. A GET of /reset
// resets and returns to the inventory.
func (h *CartAPIHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost && !(h.action == CartReset && r.Method == http.MethodGet) {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	sess := sessionFrom(r)

	var (
		count int
		err   error
	)
	switch h.action {
	case CartReset:
		err = h.sessions.ResetCart(sess.Token)
		h.log.WithField("username", sess.Username).Info("app state reset")
	default:
		id, convErr := strconv.Atoi(r.FormValue("id"))
		if convErr != nil {
			sendErrorResponse(w, "item id must be a number", http.StatusBadRequest)
			return
		}
		if h.action == CartAdd {
			count, err = h.sessions.AddToCart(sess.Token, id)
		} else {
			count, err = h.sessions.RemoveFromCart(sess.Token, id)
		}
	}

	switch {
	case errors.Is(err, catalog.ErrUnknownItem):
		sendErrorResponse(w, err.Error(), http.StatusNotFound)
		return
	case errors.Is(err, services.ErrSessionNotFound):
		sendErrorResponse(w, err.Error(), http.StatusUnauthorized)
		return
	case err != nil:
		h.log.WithError(err).Error("error updating cart")
		sendErrorResponse(w, "Failed to update cart", http.StatusInternalServerError)
		return
	}

	if r.Method == http.MethodGet {
		http.Redirect(w, r, "/inventory.html", http.StatusSeeOther)
		return
	}
	writeJSON(w, http.StatusOK, CartResponse{Count: count})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// sendErrorResponse sends a JSON error response
func sendErrorResponse(w http.ResponseWriter, message string, statusCode int) {
	writeJSON(w, statusCode, ErrorResponse{
		Error:   http.StatusText(statusCode),
		Message: message,
	})
}
