package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/product", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":4,"name":"Sauce Labs Backpack","price":29.99}]`))
	})
	mux.HandleFunc("/api/login", func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if !assert.NoError(t, json.NewDecoder(r.Body).Decode(&req)) {
			return
		}
		if req.Username != "standard_user" || req.Password != "secret_sauce" {
			http.Error(w, "Invalid credentials", http.StatusUnauthorized)
			return
		}
		http.SetCookie(w, &http.Cookie{Name: "session-username", Value: "tok"})
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"token":"tok"}`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestHTTPClient_Products(t *testing.T) {
	srv := newTestServer(t)
	c := New(srv.URL+"/", time.Second, nil)

	resp, err := c.Products(context.Background())
	require.NoError(t, err)

	n, err := CheckProducts(resp)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestHTTPClient_Login(t *testing.T) {
	srv := newTestServer(t)
	c := New(srv.URL, time.Second, nil)

	ok, err := c.Login(context.Background(), "standard_user", "secret_sauce")
	require.NoError(t, err)
	token, err := CheckLoginSucceeded(ok)
	require.NoError(t, err)
	assert.Equal(t, "tok", token)

	bad, err := c.Login(context.Background(), "invalid_user", "wrong_password")
	require.NoError(t, err)
	assert.NoError(t, CheckLoginRejected(bad))
}

func TestHTTPClient_TransportError(t *testing.T) {
	c := New("http://127.0.0.1:1", 100*time.Millisecond, nil)
	_, err := c.Products(context.Background())
	assert.Error(t, err)
}

func TestCheckProducts(t *testing.T) {
	tests := []struct {
		name    string
		resp    Response
		wantN   int
		wantErr bool
	}{
		{
			name:  "valid list",
			resp:  Response{StatusCode: 200, Body: []byte(`[{"id":0,"name":"a","price":1},{"id":1,"name":"b","price":2}]`)},
			wantN: 2,
		},
		{
			name:    "wrong status",
			resp:    Response{StatusCode: 404, Body: []byte(`[]`)},
			wantErr: true,
		},
		{
			name:    "not json",
			resp:    Response{StatusCode: 200, Body: []byte(`<html>`)},
			wantErr: true,
		},
		{
			name:    "object instead of array",
			resp:    Response{StatusCode: 200, Body: []byte(`{"id":1}`)},
			wantErr: true,
		},
		{
			name:    "empty array",
			resp:    Response{StatusCode: 200, Body: []byte(`[]`)},
			wantErr: true,
		},
		{
			name:    "missing price",
			resp:    Response{StatusCode: 200, Body: []byte(`[{"id":0,"name":"a"}]`)},
			wantN:   1,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := CheckProducts(&tt.resp)
			assert.Equal(t, tt.wantN, n)
			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrUnexpectedResponse))
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestCheckLoginSucceeded(t *testing.T) {
	withCookie := http.Header{"Set-Cookie": []string{"session-username=x"}}

	tests := []struct {
		name    string
		resp    Response
		wantErr bool
	}{
		{"token and cookie", Response{StatusCode: 200, Header: withCookie, Body: []byte(`{"token":"x"}`)}, false},
		{"no cookie", Response{StatusCode: 200, Header: http.Header{}, Body: []byte(`{"token":"x"}`)}, true},
		{"empty token", Response{StatusCode: 200, Header: withCookie, Body: []byte(`{"token":""}`)}, true},
		{"unauthorized", Response{StatusCode: 401, Header: withCookie, Body: []byte(`Invalid credentials`)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CheckLoginSucceeded(&tt.resp)
			assert.Equal(t, tt.wantErr, err != nil)
		})
	}
}

func TestCheckLoginRejected(t *testing.T) {
	assert.NoError(t, CheckLoginRejected(&Response{StatusCode: 401, Body: []byte("Invalid credentials\n")}))
	assert.Error(t, CheckLoginRejected(&Response{StatusCode: 403, Body: []byte("Invalid credentials")}))
	assert.Error(t, CheckLoginRejected(&Response{StatusCode: 401, Body: []byte("nope")}))
}

type mockClient struct {
	ProductsFunc func(ctx context.Context) (*Response, error)
	LoginFunc    func(ctx context.Context, username, password string) (*Response, error)
}

func (m *mockClient) Products(ctx context.Context) (*Response, error) { return m.ProductsFunc(ctx) }
func (m *mockClient) Login(ctx context.Context, u, p string) (*Response, error) {
	return m.LoginFunc(ctx, u, p)
}

func TestProbe(t *testing.T) {
	// GIVEN a storefront whose product endpoint is down
	client := &mockClient{
		ProductsFunc: func(context.Context) (*Response, error) {
			return nil, errors.New("connection refused")
		},
		LoginFunc: func(_ context.Context, u, _ string) (*Response, error) {
			if u == "standard_user" {
				return &Response{
					StatusCode: 200,
					Header:     http.Header{"Set-Cookie": []string{"s=1"}},
					Body:       []byte(`{"token":"t"}`),
				}, nil
			}
			return &Response{StatusCode: 401, Body: []byte("Invalid credentials")}, nil
		},
	}

	// WHEN probing
	results := Probe(context.Background(), client,
		LoginRequest{Username: "standard_user", Password: "secret_sauce"},
		LoginRequest{Username: "invalid_user", Password: "wrong_password"})

	// THEN every check reports, and only the product check fails
	require.Len(t, results, 3)
	assert.Equal(t, "TC_API_PRODUCTS_001", results[0].Name)
	assert.Error(t, results[0].Err)
	assert.NoError(t, results[1].Err)
	assert.NoError(t, results[2].Err)
}
