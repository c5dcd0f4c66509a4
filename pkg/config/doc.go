// Package config loads environment-based configuration structs using
// caarlos0/env tags, with optional .env file support for local development.
package config
