package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

const serviceName = "landing-api"

var zlog = zerolog.New(os.Stdout).With().Timestamp().Str("service", serviceName).Logger()

// InitStructured initializes the structured zerolog logger
func InitStructured(env string) {
	InitStructuredTo(env, os.Stdout)
}

// InitStructuredTo initializes the logger writing to w
func InitStructuredTo(env string, w io.Writer) {
	if IsDevelopment(env) {
		// Pretty console output for development
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}

	zlog = zerolog.New(w).With().
		Timestamp().
		Str("service", serviceName).
		Logger()

	zerolog.TimeFieldFormat = time.RFC3339
}

// IsDevelopment reports whether env names a local/development environment
func IsDevelopment(env string) bool {
	switch env {
	case "", "local", "development", "dev":
		return true
	}
	return false
}

// GetLogger returns the global zerolog logger
func GetLogger() *zerolog.Logger {
	return &zlog
}

// WithRequestID returns a logger with request_id field
func WithRequestID(requestID string) zerolog.Logger {
	return zlog.With().Str("request_id", requestID).Logger()
}

// WithComponent returns a logger tagged with the owning component
func WithComponent(name string) zerolog.Logger {
	return zlog.With().Str("component", name).Logger()
}
