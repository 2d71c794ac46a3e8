/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package docstore

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/suparena/docstore/codec"
	"github.com/suparena/docstore/datastore"
	"github.com/suparena/docstore/datastore/ddb"
	"github.com/suparena/docstore/events"
	"github.com/suparena/docstore/registry"
	"github.com/suparena/docstore/storagemodels"
)

// DocStore is the single object surface consumed by callers. It binds a
// configured store endpoint, the document store operations, and a
// per-instance instrumentation emitter. Construct once and share; the
// client handle and emitter are created once and never mutated.
type DocStore struct {
	config  Config
	store   datastore.DocumentStore
	emitter *events.Emitter
}

// New creates a DocStore from the given configuration. In local mode the
// DynamoDB client targets the configured development endpoint with static
// credentials; otherwise credentials and endpoint come from the ambient
// environment.
func New(ctx context.Context, cfg Config) (*DocStore, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	client, err := newClient(ctx, cfg)
	if err != nil {
		return nil, err
	}

	emitter := events.NewEmitter()
	return &DocStore{
		config:  cfg,
		store:   ddb.New(client, emitter),
		emitter: emitter,
	}, nil
}

// NewWithStore assembles a DocStore around an existing DocumentStore
// implementation. Used by tests to substitute the in-memory mock.
func NewWithStore(cfg Config, store datastore.DocumentStore) *DocStore {
	return &DocStore{
		config:  cfg,
		store:   store,
		emitter: events.NewEmitter(),
	}
}

func newClient(ctx context.Context, cfg Config) (*dynamodb.Client, error) {
	if cfg.Local {
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
			awsconfig.WithRegion(cfg.Region),
			awsconfig.WithCredentialsProvider(
				credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
			),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
		}
		return dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}), nil
	}

	var opts []func(*awsconfig.LoadOptions) error
	if cfg.Region != "" {
		opts = append(opts, awsconfig.WithRegion(cfg.Region))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}
	return dynamodb.NewFromConfig(awsCfg), nil
}

// IsLocal reports whether this instance targets a development endpoint.
func (s *DocStore) IsLocal() bool {
	return s.config.Local
}

// On registers a handler for every instrumentation event of the given
// category emitted by this instance.
func (s *DocStore) On(category events.Category, handler events.Handler) {
	s.emitter.Subscribe(category, handler)
}

// Emitter exposes the instance's instrumentation emitter.
func (s *DocStore) Emitter() *events.Emitter {
	return s.emitter
}

// correlation returns the caller's token, or a fresh one when none was
// supplied.
func correlation(correlationID string) string {
	if correlationID == "" {
		return events.NewCorrelationID()
	}
	return correlationID
}

// GetItem retrieves and decodes a document; a missing item yields an empty
// document and a nil error.
func (s *DocStore) GetItem(ctx context.Context, correlationID, table string, key storagemodels.Key) (storagemodels.Document, []codec.FieldDiagnostic, error) {
	return s.store.GetItem(ctx, correlation(correlationID), table, key)
}

// PutItem stores a document with every non-key field JSON-encoded.
func (s *DocStore) PutItem(ctx context.Context, correlationID, table string, key storagemodels.Key, doc storagemodels.Document) error {
	return s.store.PutItem(ctx, correlation(correlationID), table, key, doc)
}

// PutMixedItem stores a document where only the named fields are
// JSON-encoded and the rest stay native.
func (s *DocStore) PutMixedItem(ctx context.Context, correlationID, table string, key storagemodels.Key, doc storagemodels.Document, jsonFields []string) error {
	return s.store.PutMixedItem(ctx, correlation(correlationID), table, key, doc, jsonFields)
}

// UpdateItem replaces the named attributes of an existing item.
func (s *DocStore) UpdateItem(ctx context.Context, correlationID, table string, key storagemodels.Key, doc storagemodels.Document) error {
	return s.store.UpdateItem(ctx, correlation(correlationID), table, key, doc)
}

// UpdateMixedItem is UpdateItem with mixed encoding.
func (s *DocStore) UpdateMixedItem(ctx context.Context, correlationID, table string, key storagemodels.Key, doc storagemodels.Document, jsonFields []string) error {
	return s.store.UpdateMixedItem(ctx, correlation(correlationID), table, key, doc, jsonFields)
}

// DeleteAttribute removes one attribute and returns the remaining decoded
// document.
func (s *DocStore) DeleteAttribute(ctx context.Context, correlationID, table string, key storagemodels.Key, attribute string) (storagemodels.Document, []codec.FieldDiagnostic, error) {
	return s.store.DeleteAttribute(ctx, correlation(correlationID), table, key, attribute)
}

// RemoveItem deletes a whole item.
func (s *DocStore) RemoveItem(ctx context.Context, correlationID, table string, key storagemodels.Key) error {
	return s.store.RemoveItem(ctx, correlation(correlationID), table, key)
}

// QueryTable runs a native query; rows come back as stored, with no
// JSON-string decoding.
func (s *DocStore) QueryTable(ctx context.Context, correlationID string, params *storagemodels.QueryParams) ([]storagemodels.Document, error) {
	return s.store.QueryTable(ctx, correlation(correlationID), params)
}

// QueryStream streams query results over a channel.
func (s *DocStore) QueryStream(ctx context.Context, params *storagemodels.QueryParams, opts ...storagemodels.StreamOption) <-chan storagemodels.StreamResult {
	return s.store.QueryStream(ctx, params, opts...)
}

// ListTables returns the raw table-name list from the store.
func (s *DocStore) ListTables(ctx context.Context) ([]string, error) {
	return s.store.ListTables(ctx)
}

// CreateTable provisions a table from a native schema definition.
func (s *DocStore) CreateTable(ctx context.Context, def storagemodels.TableDefinition) (*dynamodb.CreateTableOutput, error) {
	return s.store.CreateTable(ctx, def)
}

// DeleteTable drops a table.
func (s *DocStore) DeleteTable(ctx context.Context, table string) (*dynamodb.DeleteTableOutput, error) {
	return s.store.DeleteTable(ctx, table)
}

// EnsureTable creates the named table from its registered definition if the
// store does not have it yet. The definition must have been registered with
// registry.RegisterTableDefinition.
func (s *DocStore) EnsureTable(ctx context.Context, name string) error {
	def, err := registry.GetTableDefinition(name)
	if err != nil {
		return fmt.Errorf("ensure table %q: %w", name, err)
	}

	existing, err := s.store.ListTables(ctx)
	if err != nil {
		return err
	}
	for _, t := range existing {
		if t == name {
			return nil
		}
	}

	_, err = s.store.CreateTable(ctx, def)
	return err
}
