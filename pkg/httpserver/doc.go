// Package httpserver provides an http.Server wrapper with graceful shutdown
// on context cancellation or OS signals, configurable through functional
// options or an environment-backed Config.
package httpserver
