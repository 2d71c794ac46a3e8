/*
Package datastore defines the core interface for docstore's data persistence layer.

The main interface is DocumentStore, which names every operation of the
document shim: item CRUD with full-JSON or mixed encoding, single-attribute
deletion, native queries (blocking and streaming), and table lifecycle.

Implementations:
  - ddb: DynamoDB implementation with per-operation instrumentation events
  - mock: In-memory mock implementation for testing

Each operation wraps a single store call and resolves or fails exactly once;
retry and backoff policy belong to the underlying AWS SDK client.
*/
package datastore
