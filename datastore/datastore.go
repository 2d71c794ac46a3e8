/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package datastore

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/suparena/docstore/codec"
	"github.com/suparena/docstore/storagemodels"
)

// DocumentStore is the full operation set of the document shim. Every
// operation wraps exactly one store call: it is timed, normalized into a
// single result-or-error return, and never retried here. The correlation id
// is an opaque caller-supplied token threaded through to instrumentation
// events.
type DocumentStore interface {
	// GetItem retrieves and decodes a document. A missing item yields an
	// empty document and a nil error, not a failure.
	GetItem(ctx context.Context, correlationID, table string, key storagemodels.Key) (storagemodels.Document, []codec.FieldDiagnostic, error)

	// PutItem stores a document with every non-key field JSON-encoded.
	PutItem(ctx context.Context, correlationID, table string, key storagemodels.Key, doc storagemodels.Document) error

	// PutMixedItem stores a document where only the fields named in
	// jsonFields are JSON-encoded; the rest are native typed attributes.
	PutMixedItem(ctx context.Context, correlationID, table string, key storagemodels.Key, doc storagemodels.Document, jsonFields []string) error

	// UpdateItem replaces the named attributes of an existing item.
	UpdateItem(ctx context.Context, correlationID, table string, key storagemodels.Key, doc storagemodels.Document) error

	// UpdateMixedItem is UpdateItem with mixed encoding.
	UpdateMixedItem(ctx context.Context, correlationID, table string, key storagemodels.Key, doc storagemodels.Document, jsonFields []string) error

	// DeleteAttribute removes a single top-level attribute and returns the
	// decoded remaining document (key fields stripped).
	DeleteAttribute(ctx context.Context, correlationID, table string, key storagemodels.Key, attribute string) (storagemodels.Document, []codec.FieldDiagnostic, error)

	// RemoveItem deletes a whole item.
	RemoveItem(ctx context.Context, correlationID, table string, key storagemodels.Key) error

	// QueryTable runs a native query and returns rows decoded with the
	// typed-attribute unwrap only; JSON-string fields come back as stored.
	QueryTable(ctx context.Context, correlationID string, params *storagemodels.QueryParams) ([]storagemodels.Document, error)

	// QueryStream streams query results page by page over a channel.
	QueryStream(ctx context.Context, params *storagemodels.QueryParams, opts ...storagemodels.StreamOption) <-chan storagemodels.StreamResult

	// ListTables returns the raw table-name list from the store.
	ListTables(ctx context.Context) ([]string, error)

	// CreateTable provisions a table from a native schema definition.
	CreateTable(ctx context.Context, def storagemodels.TableDefinition) (*dynamodb.CreateTableOutput, error)

	// DeleteTable drops a table.
	DeleteTable(ctx context.Context, table string) (*dynamodb.DeleteTableOutput, error)
}
