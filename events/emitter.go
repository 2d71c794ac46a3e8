/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package events

import (
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/suparena/docstore/storagemodels"
)

// Category classifies an operation for instrumentation purposes.
type Category string

const (
	Create Category = "Create"
	Read   Category = "Read"
	Update Category = "Update"
	Delete Category = "Delete"
	Query  Category = "Query"
)

// Event is emitted once per completed store operation, success or failure.
// It is ephemeral; nothing is persisted.
type Event struct {
	Category      Category
	CorrelationID string
	Table         string
	Key           storagemodels.Key
	Duration      time.Duration
	Err           error
}

// DurationMs returns the operation duration in whole milliseconds.
func (e Event) DurationMs() int64 {
	return e.Duration.Milliseconds()
}

// Handler receives emitted events. Handlers run synchronously on the
// operation goroutine and should return quickly.
type Handler func(Event)

// Emitter is a per-instance observer channel for operation timing events.
// Each DocStore owns its own Emitter, so independently configured instances
// do not share subscribers. The zero value is not usable; call NewEmitter.
type Emitter struct {
	mu       sync.RWMutex
	handlers map[Category][]Handler
}

// NewEmitter creates an Emitter with no subscribers.
func NewEmitter() *Emitter {
	return &Emitter{
		handlers: make(map[Category][]Handler),
	}
}

// Subscribe registers a handler for every event of the given category.
// Handlers cannot be removed; subscribe for the lifetime of the instance.
func (e *Emitter) Subscribe(category Category, handler Handler) {
	if handler == nil {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.handlers[category] = append(e.handlers[category], handler)
}

// Emit publishes an event to all subscribers of its category.
// Emission is fire-and-forget: a panicking handler is recovered and logged,
// and never influences the outcome of the operation that produced the event.
func (e *Emitter) Emit(ev Event) {
	e.mu.RLock()
	handlers := e.handlers[ev.Category]
	e.mu.RUnlock()

	for _, h := range handlers {
		safeInvoke(h, ev)
	}
}

func safeInvoke(h Handler, ev Event) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("events: handler panic for %s event: %v", ev.Category, r)
		}
	}()
	h(ev)
}

// NewCorrelationID generates an opaque correlation token for callers that
// do not thread their own through.
func NewCorrelationID() string {
	return uuid.NewString()
}
