package cli

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/themizzi/saucesuite/internal/config"
	"github.com/themizzi/saucesuite/internal/handlers"
	"github.com/themizzi/saucesuite/internal/logging"
	"github.com/themizzi/saucesuite/internal/services"
)

// ServerDependencies holds all dependencies needed for the server
type ServerDependencies struct {
	ServerConfig config.ServerConfig
	Handler      http.Handler
	Log          logrus.FieldLogger
}

// NewServerDependencies wires the replica storefront over an order repository
func NewServerDependencies(cfg config.ServerConfig, orderRepo services.OrderRepository, log logrus.FieldLogger) (ServerDependencies, error) {
	routes, err := handlers.NewStorefront(orderRepo, log).Routes()
	if err != nil {
		return ServerDependencies{}, fmt.Errorf("failed to build routes: %w", err)
	}
	return ServerDependencies{ServerConfig: cfg, Handler: routes, Log: log}, nil
}

// RunServe starts the replica storefront and blocks until a shutdown signal
func RunServe(deps ServerDependencies) error {
	listener, server, err := StartServer(deps)
	if err != nil {
		return err
	}
	defer listener.Close()

	return WaitForShutdown(server, nil, deps.Log)
}

// StartServer creates and starts the HTTP server, returning the listener and server
func StartServer(deps ServerDependencies) (net.Listener, *http.Server, error) {
	log := logging.Category(deps.Log, "server")

	// Create listener
	addr := fmt.Sprintf(":%s", deps.ServerConfig.Port)
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create listener: %w", err)
	}

	// Create HTTP server
	server := &http.Server{
		Handler:           deps.Handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.WithField("addr", listener.Addr().String()).Info("server listening")
		if err := server.Serve(listener); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Error("server error")
		}
	}()

	return listener, server, nil
}

// BaseURL is the loopback address of a listener started by StartServer, with a trailing slash
func BaseURL(listener net.Listener) string {
	return fmt.Sprintf("http://127.0.0.1:%d/", listener.Addr().(*net.TCPAddr).Port)
}

// WaitForShutdown waits for a shutdown signal and gracefully shuts down the server
// If shutdown channel is nil, a new channel will be created and registered with signal.Notify
func WaitForShutdown(server *http.Server, shutdown chan os.Signal, log logrus.FieldLogger) error {
	return WaitForShutdownWithTimeout(server, shutdown, 30*time.Second, log)
}

// WaitForShutdownWithTimeout allows specifying a custom shutdown timeout (primarily for testing)
func WaitForShutdownWithTimeout(server *http.Server, shutdown chan os.Signal, shutdownTimeout time.Duration, log logrus.FieldLogger) error {
	entry := logging.Category(log, "server")

	// Channel to listen for interrupt or terminate signals
	if shutdown == nil {
		shutdown = make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
		defer signal.Stop(shutdown)
	}

	// Wait for shutdown signal
	sig := <-shutdown
	entry.WithField("signal", sig.String()).Info("shutting down server")

	// Give outstanding requests time to complete
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	// Attempt graceful shutdown
	if err := server.Shutdown(ctx); err != nil {
		// Force close the server after timeout
		if err := server.Close(); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}

	entry.Info("server stopped")
	return nil
}
