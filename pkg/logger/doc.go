// Package logger builds configured log/slog loggers with sensible
// defaults for development and production environments, plus a few
// shared attribute helpers for consistent log field naming.
package logger
