package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/playwright-community/playwright-go"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/themizzi/saucesuite/internal/apiclient"
	internalcli "github.com/themizzi/saucesuite/internal/cli"
	"github.com/themizzi/saucesuite/internal/config"
	"github.com/themizzi/saucesuite/internal/logging"
	"github.com/themizzi/saucesuite/internal/scenario"
)

// ErrChecksFailed is returned by probe when any API check fails
var ErrChecksFailed = errors.New("api checks failed")

func logger(c *cli.Context) *logrus.Logger {
	if log, ok := c.App.Metadata["log"].(*logrus.Logger); ok {
		return log
	}
	return logging.NewNullLogger()
}

// ServeCommand returns the serve command
func ServeCommand(getenv func(string) string) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Start the replica storefront",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "port", Usage: "listen port, overrides PORT"},
			&cli.StringFlag{Name: "store", Usage: "order store, memory or postgres, overrides ORDER_STORE"},
		},
		Action: func(c *cli.Context) error {
			log := logger(c)

			cfg := config.LoadServerConfig(getenv)
			if c.IsSet("port") {
				cfg.Port = c.String("port")
			}
			if c.IsSet("store") {
				cfg.OrderStore = c.String("store")
			}

			repo, closeRepo, err := internalcli.OpenOrderRepository(cfg, getenv, log)
			if err != nil {
				return err
			}
			defer closeRepo()
			log.WithField("store", cfg.OrderStore).Info("order store ready")

			deps, err := internalcli.NewServerDependencies(cfg, repo, log)
			if err != nil {
				return err
			}
			return internalcli.RunServe(deps)
		},
	}
}

// ScenariosCommand returns the scenarios command
func ScenariosCommand() *cli.Command {
	return &cli.Command{
		Name:  "scenarios",
		Usage: "Validate the login table and print the data-driven case names",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "file", Usage: "YAML table to use instead of the built-in one"},
		},
		Action: func(c *cli.Context) error {
			table := scenario.LoginTable()
			if path := c.String("file"); path != "" {
				data, err := os.ReadFile(path)
				if err != nil {
					return fmt.Errorf("failed to read %s: %w", path, err)
				}
				if _, table, err = scenario.Parse(data); err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
			}
			if err := table.Validate(); err != nil {
				return err
			}
			for _, name := range table.CaseNames() {
				fmt.Fprintln(c.App.Writer, name)
			}
			return nil
		},
	}
}

// ProbeCommand returns the probe command
func ProbeCommand(lookup func(string) (string, bool)) *cli.Command {
	return &cli.Command{
		Name:  "probe",
		Usage: "Run the API checks against a storefront",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "base-url", Usage: "storefront URL, overrides SAUCE_BASE_URL"},
			&cli.DurationFlag{Name: "timeout", Value: 10 * time.Second, Usage: "per request timeout"},
		},
		Action: func(c *cli.Context) error {
			log := logger(c)

			cfg, err := config.LoadSuiteConfig(lookup)
			if err != nil {
				return err
			}
			if c.IsSet("base-url") {
				cfg.BaseURL = c.String("base-url")
				if err := cfg.Validate(); err != nil {
					return err
				}
			}

			client := apiclient.New(cfg.BaseURL, c.Duration("timeout"), log)
			user := scenario.StandardUser()
			valid := apiclient.LoginRequest{Username: user.Username, Password: user.Password}
			invalid := apiclient.LoginRequest{Username: "invalid_user", Password: "wrong_password"}

			results := apiclient.Probe(context.Background(), client, valid, invalid)
			failed := 0
			for _, r := range results {
				status := "PASS"
				if r.Err != nil {
					status = "FAIL"
					failed++
				}
				fmt.Fprintf(c.App.Writer, "%s %s %s\n", status, r.Name, r.Detail)
				if r.Err != nil {
					fmt.Fprintf(c.App.Writer, "    %v\n", r.Err)
				}
			}
			if failed > 0 {
				return fmt.Errorf("%w: %d of %d", ErrChecksFailed, failed, len(results))
			}
			return nil
		},
	}
}

// InstallCommand returns the install command
func InstallCommand() *cli.Command {
	return &cli.Command{
		Name:  "install",
		Usage: "Install the Playwright driver and Chromium",
		Action: func(c *cli.Context) error {
			return playwright.Install(&playwright.RunOptions{Browsers: []string{"chromium"}})
		},
	}
}
