/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package docstore

import (
	"fmt"
	"sync"
)

// Manager is a thread-safe registry of named DocStore instances. Because
// every DocStore owns its own instrumentation emitter, independently
// configured instances registered here never share event subscribers.
type Manager struct {
	mu     sync.RWMutex
	stores map[string]*DocStore
}

// NewManager creates an empty Manager.
func NewManager() *Manager {
	return &Manager{
		stores: make(map[string]*DocStore),
	}
}

// Register stores the provided DocStore under the given key.
func (m *Manager) Register(key string, s *DocStore) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.stores[key]; exists {
		return fmt.Errorf("docstore with key %q already registered", key)
	}
	m.stores[key] = s
	return nil
}

// Get retrieves the DocStore associated with the given key.
func (m *Manager) Get(key string) (*DocStore, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, exists := m.stores[key]
	if !exists {
		return nil, fmt.Errorf("docstore with key %q not found", key)
	}
	return s, nil
}

// Remove deletes a DocStore by key.
func (m *Manager) Remove(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.stores[key]; !exists {
		return fmt.Errorf("docstore with key %q not found", key)
	}
	delete(m.stores, key)
	return nil
}

// List returns all registered keys.
func (m *Manager) List() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	keys := make([]string, 0, len(m.stores))
	for k := range m.stores {
		keys = append(keys, k)
	}
	return keys
}
