package apiclient

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/tidwall/gjson"
)

// ErrUnexpectedResponse is returned when a response breaks the API contract
var ErrUnexpectedResponse = errors.New("unexpected api response")

// InvalidCredentials is the text a rejected login body contains
const InvalidCredentials = "Invalid credentials"

func unexpected(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrUnexpectedResponse, fmt.Sprintf(format, args...))
}

// CheckProducts verifies a 200 with a non-empty JSON array whose first entry
// has id, name and price. It returns the number of products.
func CheckProducts(resp *Response) (int, error) {
	if resp.StatusCode != http.StatusOK {
		return 0, unexpected("status %d, want 200", resp.StatusCode)
	}
	if !gjson.ValidBytes(resp.Body) {
		return 0, unexpected("body is not JSON: %.80s", resp.Body)
	}
	list := gjson.ParseBytes(resp.Body)
	if !list.IsArray() {
		return 0, unexpected("body is %s, want an array", list.Type)
	}
	n := len(list.Array())
	if n == 0 {
		return 0, unexpected("empty product list")
	}
	first := list.Get("0")
	for _, field := range []string{"id", "name", "price"} {
		if !first.Get(field).Exists() {
			return n, unexpected("first product has no %q", field)
		}
	}
	return n, nil
}

// CheckLoginSucceeded verifies a 200 with a non-empty token and a session cookie.
// It returns the token.
func CheckLoginSucceeded(resp *Response) (string, error) {
	if resp.StatusCode != http.StatusOK {
		return "", unexpected("status %d, want 200: %.80s", resp.StatusCode, resp.Body)
	}
	token := gjson.GetBytes(resp.Body, "token")
	if !token.Exists() || token.String() == "" {
		return "", unexpected("no token in %.80s", resp.Body)
	}
	if len(resp.Header.Values("Set-Cookie")) == 0 {
		return "", unexpected("no session cookie")
	}
	return token.String(), nil
}

// CheckLoginRejected verifies a 401 whose body mentions invalid credentials
func CheckLoginRejected(resp *Response) error {
	if resp.StatusCode != http.StatusUnauthorized {
		return unexpected("status %d, want 401", resp.StatusCode)
	}
	if !strings.Contains(string(resp.Body), InvalidCredentials) {
		return unexpected("body %.80q lacks %q", resp.Body, InvalidCredentials)
	}
	return nil
}

// Result is the outcome of one named check
type Result struct {
	Name   string
	Detail string
	Err    error
}

// Probe runs the product and login checks against client. valid must be
// accepted and invalid rejected.
func Probe(ctx context.Context, client Client, valid, invalid LoginRequest) []Result {
	var results []Result

	products, err := client.Products(ctx)
	if err == nil {
		var n int
		n, err = CheckProducts(products)
		results = append(results, Result{Name: "TC_API_PRODUCTS_001", Detail: fmt.Sprintf("%d products", n), Err: err})
	} else {
		results = append(results, Result{Name: "TC_API_PRODUCTS_001", Err: err})
	}

	login, err := client.Login(ctx, valid.Username, valid.Password)
	if err == nil {
		_, err = CheckLoginSucceeded(login)
	}
	results = append(results, Result{Name: "TC_API_LOGIN_001", Detail: "login as " + valid.Username, Err: err})

	rejected, err := client.Login(ctx, invalid.Username, invalid.Password)
	if err == nil {
		err = CheckLoginRejected(rejected)
	}
	results = append(results, Result{Name: "TC_API_LOGIN_002", Detail: "login as " + invalid.Username, Err: err})

	return results
}
