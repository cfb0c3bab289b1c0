//go:build e2e

package e2e

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/themizzi/saucesuite/internal/apiclient"
	"github.com/themizzi/saucesuite/internal/scenario"
)

func newAPIClient(t *testing.T) *apiclient.HTTPClient {
	t.Helper()
	if !s.Config.APIChecks {
		t.Skip("API checks disabled, set SAUCE_API_CHECKS=true to run them")
	}
	return apiclient.New(s.Config.BaseURL, apiTimeout, s.Log)
}

// TestAPI tests the storefront JSON endpoints
// Feature: Storefront API
//
//	As an integrator
//	I want to list products and sign in over HTTP
//	So that I can build on the shop without the browser
func TestAPI(t *testing.T) {
	t.Run("TC_API_PRODUCTS_001", func(t *testing.T) {
		// Scenario: List products
		//   When I GET /api/product
		//   Then the status should be 200
		//   And the body should be a non-empty array of products with id, name and price
		client := newAPIClient(t)

		resp, err := client.Products(context.Background())
		require.NoError(t, err)
		n, err := apiclient.CheckProducts(resp)
		require.NoError(t, err)
		assert.Positive(t, n)
	})

	t.Run("TC_API_LOGIN_001", func(t *testing.T) {
		// Scenario: Log in with valid credentials
		//   When I POST the standard user's credentials to /api/login
		//   Then the status should be 200
		//   And I should receive a token and a session cookie
		client := newAPIClient(t)
		user := scenario.StandardUser()

		resp, err := client.Login(context.Background(), user.Username, user.Password)
		require.NoError(t, err)
		token, err := apiclient.CheckLoginSucceeded(resp)
		require.NoError(t, err)
		assert.NotEmpty(t, token)
	})

	t.Run("TC_API_LOGIN_002", func(t *testing.T) {
		// Scenario: Log in with invalid credentials
		//   When I POST unknown credentials to /api/login
		//   Then the status should be 401
		//   And the body should mention "Invalid credentials"
		client := newAPIClient(t)

		resp, err := client.Login(context.Background(), "invalid_user", "wrong_password")
		require.NoError(t, err)
		assert.NoError(t, apiclient.CheckLoginRejected(resp))
	})
}
