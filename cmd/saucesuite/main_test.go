package main

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/themizzi/saucesuite/internal/handlers"
	"github.com/themizzi/saucesuite/internal/logging"
	"github.com/themizzi/saucesuite/internal/repository"
)

func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	app := NewApp()
	var out bytes.Buffer
	app.Writer = &out
	app.ErrWriter = &bytes.Buffer{}
	err := app.Run(append([]string{"saucesuite", "--log-level", "error"}, args...))
	return out.String(), err
}

func TestScenariosCommand(t *testing.T) {
	out, err := runApp(t, "scenarios")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Equal(t, []string{
		"TC_DDT_LOGIN: Check login for user: standard_user (SUCCESS)",
		"TC_DDT_LOGIN: Check login for user: locked_out_user (FAILURE)",
		"TC_DDT_LOGIN: Check login for user: incorrect_user (FAILURE)",
		"TC_DDT_LOGIN: Check login for user: [EMPTY USERNAME] (FAILURE)",
		"TC_DDT_LOGIN: Check login for user: standard_user (FAILURE)",
	}, lines)
}

func TestScenariosCommand_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "table.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
standard_user:
  username: visual_user
  password: secret_sauce
success_path: inventory.html
failures:
  - username: visual_user
    password: nope
    error_message: "Epic sadface: Username and password do not match any user in this service"
`), 0o600))

	out, err := runApp(t, "scenarios", "--file", path)
	require.NoError(t, err)
	assert.Contains(t, out, "visual_user (SUCCESS)")
	assert.Contains(t, out, "visual_user (FAILURE)")

	_, err = runApp(t, "scenarios", "--file", filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestProbeCommand(t *testing.T) {
	routes, err := handlers.NewStorefront(repository.NewMemoryOrderRepository(), logging.NewNullLogger()).Routes()
	require.NoError(t, err)
	replica := httptest.NewServer(routes)
	defer replica.Close()

	out, err := runApp(t, "probe", "--base-url", replica.URL)
	require.NoError(t, err, out)
	assert.Contains(t, out, "PASS TC_API_PRODUCTS_001 6 products")
	assert.Contains(t, out, "PASS TC_API_LOGIN_001")
	assert.Contains(t, out, "PASS TC_API_LOGIN_002")

	// a site without the API fails every check
	bare := httptest.NewServer(http.NotFoundHandler())
	defer bare.Close()

	out, err = runApp(t, "probe", "--base-url", bare.URL)
	assert.True(t, errors.Is(err, ErrChecksFailed), "got %v", err)
	assert.Equal(t, 3, strings.Count(out, "FAIL "))
}
