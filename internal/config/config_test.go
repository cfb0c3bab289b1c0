package config

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookupFrom(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestLoadSuiteConfig_Defaults(t *testing.T) {
	// GIVEN an empty environment
	// WHEN
	cfg, err := LoadSuiteConfig(lookupFrom(nil))

	// THEN
	require.NoError(t, err)
	assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, TargetReplica, cfg.Target)
	assert.True(t, cfg.Headless)
	assert.True(t, cfg.APIChecks, "replica serves the API surface")
	assert.Equal(t, 5*time.Second, cfg.MenuCloseTimeout)
	assert.Equal(t, 55*time.Second, cfg.LoginWaitTimeout)
}

func TestLoadSuiteConfig_Overrides(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		check   func(t *testing.T, cfg *SuiteConfig)
		wantErr string
	}{
		{
			name: "base url gains trailing slash",
			env:  map[string]string{"SAUCE_BASE_URL": "http://127.0.0.1:9000"},
			check: func(t *testing.T, cfg *SuiteConfig) {
				assert.Equal(t, "http://127.0.0.1:9000/", cfg.BaseURL)
			},
		},
		{
			name: "remote target disables api checks by default",
			env:  map[string]string{"SAUCE_TARGET": "remote"},
			check: func(t *testing.T, cfg *SuiteConfig) {
				assert.Equal(t, TargetRemote, cfg.Target)
				assert.False(t, cfg.APIChecks)
			},
		},
		{
			name: "explicit api checks on remote",
			env:  map[string]string{"SAUCE_TARGET": "remote", "SAUCE_API_CHECKS": "true"},
			check: func(t *testing.T, cfg *SuiteConfig) {
				assert.True(t, cfg.APIChecks)
			},
		},
		{
			name: "menu close timeout override",
			env:  map[string]string{"SAUCE_MENU_CLOSE_TIMEOUT": "1500ms"},
			check: func(t *testing.T, cfg *SuiteConfig) {
				assert.Equal(t, 1500*time.Millisecond, cfg.MenuCloseTimeout)
			},
		},
		{
			name: "headed browser",
			env:  map[string]string{"SAUCE_BROWSER_HEADLESS": "false"},
			check: func(t *testing.T, cfg *SuiteConfig) {
				assert.False(t, cfg.Headless)
			},
		},
		{
			name:    "unknown target",
			env:     map[string]string{"SAUCE_TARGET": "staging"},
			wantErr: "SAUCE_TARGET",
		},
		{
			name:    "relative base url",
			env:     map[string]string{"SAUCE_BASE_URL": "/inventory.html"},
			wantErr: "must be absolute",
		},
		{
			name:    "zero timeout",
			env:     map[string]string{"SAUCE_DEFAULT_TIMEOUT": "0s"},
			wantErr: "SAUCE_DEFAULT_TIMEOUT",
		},
		{
			name:    "malformed duration",
			env:     map[string]string{"SAUCE_MARKER_TIMEOUT": "soon"},
			wantErr: "failed to read suite environment",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadSuiteConfig(lookupFrom(tt.env))
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func TestMilliseconds(t *testing.T) {
	assert.Equal(t, 5000.0, Milliseconds(5*time.Second))
	assert.Equal(t, 250.0, Milliseconds(250*time.Millisecond))
}

func TestLoadServerConfig(t *testing.T) {
	// GIVEN
	env := map[string]string{"PORT": "9090"}

	// WHEN
	cfg := LoadServerConfig(func(k string) string { return env[k] })

	// THEN
	if cfg.Port != "9090" {
		t.Errorf("Expected port 9090, got %s", cfg.Port)
	}
	if cfg.OrderStore != "memory" {
		t.Errorf("Expected memory order store by default, got %s", cfg.OrderStore)
	}
}

func TestLoadPostgresConfig(t *testing.T) {
	full := map[string]string{
		"POSTGRES_USER":     "sauce",
		"POSTGRES_PASSWORD": "secret",
		"POSTGRES_DB":       "orders",
		"POSTGRES_HOSTNAME": "db",
	}

	t.Run("complete", func(t *testing.T) {
		cfg, err := LoadPostgresConfig(func(k string) string { return full[k] })
		require.NoError(t, err)
		assert.Equal(t, "host=db user=sauce password=secret dbname=orders sslmode=disable", cfg.ConnectionString())

		cfg.SearchPath = "test_schema"
		assert.True(t, strings.HasSuffix(cfg.ConnectionString(), " search_path=test_schema"))
	})

	t.Run("missing fields are all reported", func(t *testing.T) {
		_, err := LoadPostgresConfig(func(k string) string {
			if k == "POSTGRES_USER" {
				return "sauce"
			}
			return ""
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "POSTGRES_PASSWORD, POSTGRES_DB, POSTGRES_HOSTNAME")
	})
}
