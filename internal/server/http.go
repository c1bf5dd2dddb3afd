package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/omegaupload/omegaupload/internal/config"
)

type httpServer struct {
	server        *http.Server
	shutdownGrace func() (context.Context, context.CancelFunc)
}

func newHTTPServer(handler http.Handler, cfg *config.Server) *httpServer {
	grace := cfg.ShutdownGrace
	return &httpServer{
		server: &http.Server{
			Addr:         cfg.HTTPAddress,
			Handler:      handler,
			ReadTimeout:  cfg.RequestTimeout,
			WriteTimeout: cfg.RequestTimeout,
		},
		shutdownGrace: func() (context.Context, context.CancelFunc) {
			return context.WithTimeout(context.Background(), grace)
		},
	}
}

func (h *httpServer) RunServer() {
	if err := h.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		fmt.Printf("HTTP server ListenAndServe: %v\n", err)
	}
}

func (h *httpServer) Shutdown() {
	if h.server == nil {
		return
	}

	ctx, cancel := h.shutdownGrace()
	defer cancel()

	if err := h.server.Shutdown(ctx); err != nil {
		fmt.Printf("HTTP server Shutdown: %v\n", err)
	}
}
