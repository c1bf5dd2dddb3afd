// Package server wires and runs the application's long-running components.
//
// It bundles the HTTP server and the expiration reaper under a single
// signal-driven lifecycle, handling startup, OS signal handling, and
// graceful shutdown of both.
package server
