package http

import (
	"github.com/omegaupload/omegaupload/internal/allocator"
	"github.com/omegaupload/omegaupload/internal/config"
	"github.com/omegaupload/omegaupload/internal/logger"
	"github.com/omegaupload/omegaupload/internal/store"
)

// Handler is the root HTTP handler that wires together all route groups
// and middleware chains for the paste API.
//
// It holds references to the store, the identifier allocator, the static
// and storage configuration, and a structured logger so that every
// sub-handler and middleware can access them and emit consistent,
// context-enriched log entries.
//
// Handler is constructed once at application startup via [NewHandler] and
// its routes are registered by the setup methods defined in routes.go.
// It is not safe to copy a Handler after construction.
type Handler struct {
	// store provides access to the persisted pastes. Handlers never touch
	// the embedded KV engine directly.
	store store.Store

	// allocator mints the identifier for each newly uploaded paste.
	allocator *allocator.Allocator

	// storage carries storage-tier configuration (max blob size, default
	// expiration) needed by the upload handler.
	storage config.Storage

	// static carries the directory served for the bundled web frontend.
	static config.Static

	// logger is the structured logger used by the handler and all middleware
	// for request-scoped and diagnostic log output.
	logger *logger.Logger
}

// NewHandler constructs a [Handler] with the provided dependencies and
// returns a pointer to the initialised instance.
func NewHandler(s store.Store, alloc *allocator.Allocator, storage config.Storage, static config.Static, logger *logger.Logger) *Handler {
	logger.Debug().Msg("http handler created")
	return &Handler{
		store:     s,
		allocator: alloc,
		storage:   storage,
		static:    static,
		logger:    logger,
	}
}
