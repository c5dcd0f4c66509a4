// Package handler wires the auth flows onto an HTTP router with CORS,
// maps domain errors to response statuses, and guards the protected route
// with the bearer-token middleware.
package handler
