/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package mock provides an in-memory implementation of the DocumentStore
// interface for testing
package mock

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/suparena/docstore/codec"
	dserrors "github.com/suparena/docstore/errors"
	"github.com/suparena/docstore/storagemodels"
)

// DocumentStore is a mock implementation of datastore.DocumentStore. Items
// are held in their encoded attribute form so reads exercise the same decode
// path as the real store.
type DocumentStore struct {
	mu          sync.RWMutex
	tables      map[string]map[string]map[string]types.AttributeValue
	queryFunc   func(ctx context.Context, params *storagemodels.QueryParams) ([]storagemodels.Document, error)
	getError    error
	putError    error
	updateError error
	deleteError error
}

// New creates a new mock DocumentStore
func New() *DocumentStore {
	return &DocumentStore{
		tables: make(map[string]map[string]map[string]types.AttributeValue),
	}
}

// WithQueryFunc sets a custom query function for testing
func (m *DocumentStore) WithQueryFunc(f func(ctx context.Context, params *storagemodels.QueryParams) ([]storagemodels.Document, error)) *DocumentStore {
	m.queryFunc = f
	return m
}

// WithGetError makes GetItem operations return an error
func (m *DocumentStore) WithGetError(err error) *DocumentStore {
	m.getError = err
	return m
}

// WithPutError makes Put operations return an error
func (m *DocumentStore) WithPutError(err error) *DocumentStore {
	m.putError = err
	return m
}

// WithUpdateError makes Update operations return an error
func (m *DocumentStore) WithUpdateError(err error) *DocumentStore {
	m.updateError = err
	return m
}

// WithDeleteError makes DeleteAttribute and RemoveItem return an error
func (m *DocumentStore) WithDeleteError(err error) *DocumentStore {
	m.deleteError = err
	return m
}

// keyString builds a deterministic composite key from the key fields.
func keyString(key storagemodels.Key) string {
	names := key.FieldNames()
	sort.Strings(names)
	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s=%v", name, key[name]))
	}
	return strings.Join(parts, "|")
}

func (m *DocumentStore) table(name string) map[string]map[string]types.AttributeValue {
	t, ok := m.tables[name]
	if !ok {
		t = make(map[string]map[string]types.AttributeValue)
		m.tables[name] = t
	}
	return t
}

// GetItem retrieves and decodes a stored document
func (m *DocumentStore) GetItem(ctx context.Context, correlationID, table string, key storagemodels.Key) (storagemodels.Document, []codec.FieldDiagnostic, error) {
	if m.getError != nil {
		return nil, nil, m.getError
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	item, ok := m.tables[table][keyString(key)]
	if !ok {
		return storagemodels.Document{}, nil, nil
	}
	doc, diags := codec.Unwrap(item, key.FieldNames())
	return doc, diags, nil
}

// PutItem stores a document full-JSON encoded
func (m *DocumentStore) PutItem(ctx context.Context, correlationID, table string, key storagemodels.Key, doc storagemodels.Document) error {
	item, err := codec.Wrap(doc)
	if err != nil {
		return err
	}
	return m.putEncoded(table, key, item)
}

// PutMixedItem stores a document with mixed encoding
func (m *DocumentStore) PutMixedItem(ctx context.Context, correlationID, table string, key storagemodels.Key, doc storagemodels.Document, jsonFields []string) error {
	item, err := codec.WrapMixed(doc, jsonFields)
	if err != nil {
		return err
	}
	return m.putEncoded(table, key, item)
}

func (m *DocumentStore) putEncoded(table string, key storagemodels.Key, item map[string]types.AttributeValue) error {
	if m.putError != nil {
		return m.putError
	}

	keyAttr, err := codec.WrapKey(key)
	if err != nil {
		return err
	}
	for k, v := range keyAttr {
		item[k] = v
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.table(table)[keyString(key)] = item
	return nil
}

// UpdateItem replaces the named attributes of a stored item
func (m *DocumentStore) UpdateItem(ctx context.Context, correlationID, table string, key storagemodels.Key, doc storagemodels.Document) error {
	item, err := codec.Wrap(doc)
	if err != nil {
		return err
	}
	return m.updateEncoded(table, key, item)
}

// UpdateMixedItem replaces the named attributes with mixed encoding
func (m *DocumentStore) UpdateMixedItem(ctx context.Context, correlationID, table string, key storagemodels.Key, doc storagemodels.Document, jsonFields []string) error {
	item, err := codec.WrapMixed(doc, jsonFields)
	if err != nil {
		return err
	}
	return m.updateEncoded(table, key, item)
}

func (m *DocumentStore) updateEncoded(table string, key storagemodels.Key, item map[string]types.AttributeValue) error {
	if m.updateError != nil {
		return m.updateError
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	ks := keyString(key)
	existing, ok := m.table(table)[ks]
	if !ok {
		keyAttr, err := codec.WrapKey(key)
		if err != nil {
			return err
		}
		existing = keyAttr
		m.table(table)[ks] = existing
	}
	for k, v := range item {
		existing[k] = v
	}
	return nil
}

// DeleteAttribute removes one attribute and returns the remaining document
func (m *DocumentStore) DeleteAttribute(ctx context.Context, correlationID, table string, key storagemodels.Key, attribute string) (storagemodels.Document, []codec.FieldDiagnostic, error) {
	if m.deleteError != nil {
		return nil, nil, m.deleteError
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	item, ok := m.tables[table][keyString(key)]
	if !ok {
		return storagemodels.Document{}, nil, nil
	}

	old := make(map[string]types.AttributeValue, len(item))
	for k, v := range item {
		old[k] = v
	}
	delete(item, attribute)

	doc, diags := codec.Unwrap(old, append(key.FieldNames(), attribute))
	return doc, diags, nil
}

// RemoveItem deletes a stored item
func (m *DocumentStore) RemoveItem(ctx context.Context, correlationID, table string, key storagemodels.Key) error {
	if m.deleteError != nil {
		return m.deleteError
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.tables[table], keyString(key))
	return nil
}

// QueryTable runs the configured query function, or returns every item of
// the table decoded with the typed-attribute unwrap when none is set
func (m *DocumentStore) QueryTable(ctx context.Context, correlationID string, params *storagemodels.QueryParams) ([]storagemodels.Document, error) {
	if m.queryFunc != nil {
		return m.queryFunc(ctx, params)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	var docs []storagemodels.Document
	for _, item := range m.tables[params.TableName] {
		doc, err := codec.UnwrapRaw(item)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// QueryStream streams the QueryTable result over a channel
func (m *DocumentStore) QueryStream(ctx context.Context, params *storagemodels.QueryParams, opts ...storagemodels.StreamOption) <-chan storagemodels.StreamResult {
	options := storagemodels.DefaultStreamOptions()
	for _, opt := range opts {
		opt(&options)
	}

	resultCh := make(chan storagemodels.StreamResult, options.BufferSize)
	go func() {
		defer close(resultCh)

		docs, err := m.QueryTable(ctx, "", params)
		if err != nil {
			resultCh <- storagemodels.StreamResult{Error: err}
			return
		}
		for i, doc := range docs {
			select {
			case <-ctx.Done():
				return
			case resultCh <- storagemodels.StreamResult{
				Document: doc,
				Meta:     storagemodels.StreamMeta{Index: int64(i), PageNumber: 1},
			}:
			}
		}
	}()
	return resultCh
}

// ListTables lists the tables holding at least one item or created explicitly
func (m *DocumentStore) ListTables(ctx context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	names := make([]string, 0, len(m.tables))
	for name := range m.tables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// CreateTable records the table name; the raw response is always empty
func (m *DocumentStore) CreateTable(ctx context.Context, def storagemodels.TableDefinition) (*dynamodb.CreateTableOutput, error) {
	if def.TableName == "" {
		return nil, dserrors.NewValidationError("tableName", "table name must not be empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.table(def.TableName)
	return &dynamodb.CreateTableOutput{}, nil
}

// DeleteTable drops the table and everything in it
func (m *DocumentStore) DeleteTable(ctx context.Context, table string) (*dynamodb.DeleteTableOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.tables, table)
	return &dynamodb.DeleteTableOutput{}, nil
}
