package suite

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/themizzi/saucesuite/internal/config"
	"github.com/themizzi/saucesuite/internal/fixture"
	"github.com/themizzi/saucesuite/internal/logging"
	"github.com/themizzi/saucesuite/internal/pages"
)

// Suite is the process-wide state of an end-to-end run
type Suite struct {
	Config *config.SuiteConfig
	Env    pages.Env
	Graph  *fixture.Graph
	Log    *logrus.Logger

	browser *Browser
}

// New builds a suite from configuration without starting a browser
func New(cfg *config.SuiteConfig, log *logrus.Logger) (*Suite, error) {
	if log == nil {
		log = logging.NewNullLogger()
	}
	env := pages.NewEnv(cfg, log)
	g, err := StandardGraph(env)
	if err != nil {
		return nil, fmt.Errorf("failed to build fixture graph: %w", err)
	}
	return &Suite{Config: cfg, Env: env, Graph: g, Log: log}, nil
}

// FromEnvironment loads .env files if present, then the suite configuration and logger
func FromEnvironment(envFiles ...string) (*Suite, error) {
	for _, f := range envFiles {
		if _, err := os.Stat(f); err == nil {
			if err := godotenv.Load(f); err != nil {
				return nil, fmt.Errorf("failed to load %s: %w", f, err)
			}
		}
	}
	cfg, err := config.LoadSuiteConfig(os.LookupEnv)
	if err != nil {
		return nil, err
	}
	log, err := logging.New(cfg.LogLevel, cfg.LogFormat, os.Stderr)
	if err != nil {
		return nil, err
	}
	return New(cfg, log)
}

// Start launches the browser
func (s *Suite) Start() error {
	b, err := LaunchBrowser(s.Config, s.Log)
	if err != nil {
		return err
	}
	s.browser = b
	return nil
}

// Close stops the browser if it was started
func (s *Suite) Close() error {
	if s.browser == nil {
		return nil
	}
	err := s.browser.Close()
	s.browser = nil
	return err
}

// Fixtures opens a fresh page for t and returns its fixture scope
func (s *Suite) Fixtures(t testing.TB) *Fixtures {
	t.Helper()
	if s.browser == nil {
		t.Fatalf("browser not started")
	}
	page, err := s.browser.NewPage(t)
	if err != nil {
		t.Fatalf("%v", err)
	}
	return NewFixtures(context.Background(), t, s.Graph, page, s.Log)
}

// Step runs one named step of t
func (s *Suite) Step(t testing.TB, desc string, fn func() error) {
	t.Helper()
	Step(t, s.Log, desc, fn)
}
