package server

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/omegaupload/omegaupload/internal/config"
	"github.com/omegaupload/omegaupload/internal/handler"
	"github.com/omegaupload/omegaupload/internal/logger"
)

// server bundles the HTTP server and the expiration reaper under a single
// signal-driven lifecycle: both are [Server] implementations, started
// together and stopped together on SIGINT/SIGTERM/SIGQUIT.
type server struct {
	httpServer *httpServer
	reaper     Server
}

// NewServer constructs the bundled server. reaper may be nil, in which case
// only the HTTP server is run (useful for tests that don't need eviction).
func NewServer(handlers *handler.Handlers, reaper Server, cfg *config.StructuredConfig, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers.HTTP == nil {
		return nil, errNoHTTPServerConfigured
	}

	return &server{
		httpServer: newHTTPServer(handlers.HTTP.Init(), &cfg.Server),
		reaper:     reaper,
	}, nil
}

func (s *server) RunServer() {
	if err := s.run(); err != nil {
		fmt.Printf("Error running server: %v \n", err)
	}
}

func (s *server) Shutdown() {
	s.httpServer.Shutdown()
	if s.reaper != nil {
		s.reaper.Shutdown()
	}
}

func (s *server) run() error {
	if s.httpServer == nil {
		return errors.New("no servers to run")
	}

	idleConnectionsClosed := make(chan struct{})
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	go func() {
		<-ctx.Done()
		s.Shutdown()
		close(idleConnectionsClosed)
	}()

	fmt.Println("Launching HTTP server")
	go s.httpServer.RunServer()

	if s.reaper != nil {
		fmt.Println("Launching expiration reaper")
		go s.reaper.RunServer()
	}

	<-idleConnectionsClosed
	fmt.Println("server Shutdown gracefully")

	return nil
}
