package configs

import "time"

// HTTP defines configuration for the HTTP server.
type HTTP struct {
	// Port is the TCP port the HTTP server will listen on. Defaults to
	// 3001, the port the API has always been published on.
	Port uint16 `env:"PORT" envDefault:"3001"`
	// ShutdownTimeout bounds how long graceful shutdown waits for
	// in-flight requests to drain.
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`
}
