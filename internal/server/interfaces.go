package server

// Server defines the common lifecycle contract for long-running components
// managed by this package: the HTTP server and the expiration reaper both
// satisfy it.
//
// Implementations are expected to block in [RunServer] until shutdown is
// requested and to release resources in [Shutdown].
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer()

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
