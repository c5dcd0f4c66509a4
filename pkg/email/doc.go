// Package email defines the outbound email contract and two senders: a
// Postmark-backed client for production and a filesystem sender for local
// development.
package email
