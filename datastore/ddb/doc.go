/*
Package ddb provides the DynamoDB implementation of the DocumentStore interface.

The DocumentStore supports:
  - Full-JSON document encoding (every non-key field stored as a JSON string)
  - Mixed encoding (caller-chosen fields JSON-encoded, the rest native)
  - Single-attribute deletion returning the remaining decoded document
  - Native queries with pre-built key condition and filter expressions
  - Streaming queries with pagination, retry logic, and progress reporting
  - Table lifecycle operations (list, create, delete)
  - Per-operation instrumentation events (category, correlation id, key,
    duration), emitted on success and failure alike

Every operation wraps exactly one DynamoDB call and is never retried here;
retry and backoff policy belong to the SDK client (streaming is the one
exception, with opt-in transient-error retry for page fetches).

The DynamoDBAPI interface narrows the SDK client to the calls actually used,
so tests can substitute a fake without AWS infrastructure.
*/
package ddb
