package handlers

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/themizzi/saucesuite/internal/logging"
	"github.com/themizzi/saucesuite/internal/models"
	"github.com/themizzi/saucesuite/internal/services"
)

// MockCheckoutService is a mock implementation of CheckoutService for testing
type MockCheckoutService struct {
	SubmitCustomerFunc func(string, models.CustomerInfo) error
	OverviewFunc       func(string) (*services.Overview, error)
	FinishFunc         func(string) (*models.Order, error)
}

func (m *MockCheckoutService) SubmitCustomer(token string, customer models.CustomerInfo) error {
	if m.SubmitCustomerFunc != nil {
		return m.SubmitCustomerFunc(token, customer)
	}
	return nil
}

func (m *MockCheckoutService) Overview(token string) (*services.Overview, error) {
	if m.OverviewFunc != nil {
		return m.OverviewFunc(token)
	}
	return &services.Overview{}, nil
}

func (m *MockCheckoutService) Finish(token string) (*models.Order, error) {
	if m.FinishFunc != nil {
		return m.FinishFunc(token)
	}
	return &models.Order{Reference: "SAUCE-TEST", Status: models.OrderStatusCompleted}, nil
}

func newTestRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := NewRenderer(logging.NewNullLogger())
	if err != nil {
		t.Fatalf("NewRenderer() error: %v", err)
	}
	return r
}

// withSession attaches sess the way RequireSession does
func withSession(r *http.Request, sess *services.Session) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), sessionKey{}, sess))
}

func formBody(values map[string]string) *strings.Reader {
	form := url.Values{}
	for k, v := range values {
		form.Set(k, v)
	}
	return strings.NewReader(form.Encode())
}

func postForm(target string, values map[string]string) *http.Request {
	req, _ := http.NewRequest(http.MethodPost, target, formBody(values))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}
