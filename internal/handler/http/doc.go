// Package http implements the HTTP transport layer of the paste service.
//
// Route wiring lives in routes.go; request handling in upload.go, fetch.go,
// delete.go, and static.go; cross-cutting concerns (trace ids, access
// logging, gzip, panic recovery, method probing) live in the
// middleware_*.go files.
package http
