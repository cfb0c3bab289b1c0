package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/themizzi/saucesuite/internal/logging"
)

var version = "0.1.0"

// NewApp builds the command line application
func NewApp() *cli.App {
	return &cli.App{
		Name:    "saucesuite",
		Usage:   "Sauce Demo end-to-end suite tooling and replica storefront",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "log-level", Value: "info", EnvVars: []string{"LOG_LEVEL"}, Usage: "logrus level"},
			&cli.StringFlag{Name: "log-format", Value: "text", EnvVars: []string{"LOG_FORMAT"}, Usage: "text or json"},
		},
		Before: func(c *cli.Context) error {
			log, err := logging.New(c.String("log-level"), c.String("log-format"), c.App.ErrWriter)
			if err != nil {
				return err
			}
			c.App.Metadata = map[string]interface{}{"log": log}
			return nil
		},
		Commands: []*cli.Command{
			ServeCommand(os.Getenv),
			ScenariosCommand(),
			ProbeCommand(os.LookupEnv),
			InstallCommand(),
		},
	}
}

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "Warning: failed to load .env: %v\n", err)
	}

	if err := NewApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
