package config

import "os"

// Server captures HTTP server level configuration.
type Server struct {
	Addr     string
	SeedDemo bool
	LogLevel string
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	addr := os.Getenv("PAWMATES_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	return Server{
		Addr:     addr,
		SeedDemo: os.Getenv("PAWMATES_SEED_DEMO") == "true",
		LogLevel: os.Getenv("PAWMATES_LOG_LEVEL"),
	}
}
