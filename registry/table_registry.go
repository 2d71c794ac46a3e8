/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"sort"
	"sync"

	dserrors "github.com/suparena/docstore/errors"
	"github.com/suparena/docstore/storagemodels"
)

// TableRegistry associates table names with their native key schemas.

var (
	tableRegistry = make(map[string]storagemodels.TableDefinition)
	mu            sync.RWMutex
)

// RegisterTableDefinition records the schema for a table so that
// EnsureTable can create it on demand. Registering the same table twice
// overwrites the earlier definition.
func RegisterTableDefinition(def storagemodels.TableDefinition) error {
	if def.TableName == "" {
		return dserrors.NewValidationError("tableName", "table name must not be empty")
	}
	if def.HashKey.Name == "" {
		return dserrors.NewValidationError("hashKey", "hash key must be defined")
	}

	mu.Lock()
	defer mu.Unlock()
	tableRegistry[def.TableName] = def
	return nil
}

// GetTableDefinition retrieves the registered definition for a table name.
func GetTableDefinition(name string) (storagemodels.TableDefinition, error) {
	mu.RLock()
	defer mu.RUnlock()

	def, ok := tableRegistry[name]
	if !ok {
		return storagemodels.TableDefinition{}, dserrors.ErrNoTableDefinition
	}
	return def, nil
}

// ListTableDefinitions returns the registered table names in sorted order.
func ListTableDefinitions() []string {
	mu.RLock()
	defer mu.RUnlock()

	names := make([]string, 0, len(tableRegistry))
	for name := range tableRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
