// Package async provides a small Future primitive for offloading blocking
// work (password hashing, shared connection setup) without losing the
// synchronous-looking call shape at the caller.
package async
