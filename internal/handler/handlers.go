// Package handler provides initialization logic for the inbound transport
// adapter used by the application. The package exposes a Handlers struct so
// the application's main entrypoint can start it uniformly.
package handler

import (
	"github.com/omegaupload/omegaupload/internal/allocator"
	"github.com/omegaupload/omegaupload/internal/config"
	"github.com/omegaupload/omegaupload/internal/handler/http"
	"github.com/omegaupload/omegaupload/internal/logger"
	"github.com/omegaupload/omegaupload/internal/store"
)

// Handlers groups all initialized inbound transport handlers. The main
// application uses this structure to start the appropriate servers based on
// configuration.
type Handlers struct {
	// HTTP contains the initialized HTTP handler if HTTP is enabled in the
	// configuration. If HTTP is disabled, this field remains nil.
	HTTP *http.Handler
}

// NewHandlers constructs the Handlers bundle from the provided store,
// allocator, full application configuration, and logger.
//
// Returns:
//   - (*Handlers, nil) if the HTTP handler was successfully created;
//   - (nil, error) if cfg.Server.HTTPAddress is empty, since no inbound
//     transport could then be initialized.
func NewHandlers(s store.Store, alloc *allocator.Allocator, cfg *config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.Server.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(s, alloc, cfg.Storage, cfg.Static, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
