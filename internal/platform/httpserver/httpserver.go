// Package httpserver builds the process HTTP server. The engine serializes
// work behind a single mutex, so requests are short; the timeouts here bound
// slow clients, not handlers.
package httpserver

import (
	"net/http"
	"time"
)

// New returns a server for the engine's router. Shutdown is driven by main.
func New(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}
