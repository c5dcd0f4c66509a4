// Package mongostore persists user records in a MongoDB collection,
// implementing the auth.Storage contract with a unique email index and
// expiry-aware reset-token lookups.
package mongostore
