// Package mongo provides MongoDB client construction with connection retry,
// environment-backed configuration, and a Connector that establishes the
// shared connection lazily with a single in-flight attempt under concurrency.
package mongo
