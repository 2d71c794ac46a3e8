/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"

	"github.com/suparena/docstore/storagemodels"
)

// Common sentinel errors
var (
	// ErrStoreClient marks any failure surfaced by the underlying DynamoDB call
	ErrStoreClient = errors.New("store client error")

	// ErrDecodeField marks a single field whose stored text failed JSON parsing
	ErrDecodeField = errors.New("field decode failed")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrNoTableDefinition is returned when no table definition is registered for a name
	ErrNoTableDefinition = errors.New("no table definition registered")
)

// StoreError wraps a failure from the underlying store call with the
// operation, table, key, and correlation id for observability. The raw
// store error is reachable through Unwrap, so errors.As still matches
// SDK error types. Store errors are never retried here; retry/backoff
// belongs to the SDK client.
type StoreError struct {
	Op            string
	Table         string
	CorrelationID string
	Key           storagemodels.Key
	Err           error
}

func (e *StoreError) Error() string {
	if e.CorrelationID != "" {
		return fmt.Sprintf("%s on table %q (correlation %s): %v", e.Op, e.Table, e.CorrelationID, e.Err)
	}
	return fmt.Sprintf("%s on table %q: %v", e.Op, e.Table, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

func (e *StoreError) Is(target error) bool {
	return target == ErrStoreClient
}

// DecodeFieldError reports one document field whose stored value failed
// JSON parsing during decode. The field is dropped from the result; the
// operation itself still succeeds.
type DecodeFieldError struct {
	Field string
	Err   error
}

func (e *DecodeFieldError) Error() string {
	return fmt.Sprintf("failed to decode field %q: %v", e.Field, e.Err)
}

func (e *DecodeFieldError) Unwrap() error {
	return e.Err
}

func (e *DecodeFieldError) Is(target error) bool {
	return target == ErrDecodeField
}

// ValidationError represents an input validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %q: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// Helper functions for creating errors

// NewStoreError creates a new StoreError
func NewStoreError(op, table, correlationID string, key storagemodels.Key, err error) error {
	return &StoreError{Op: op, Table: table, CorrelationID: correlationID, Key: key, Err: err}
}

// NewDecodeFieldError creates a new DecodeFieldError
func NewDecodeFieldError(field string, err error) error {
	return &DecodeFieldError{Field: field, Err: err}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// IsStoreClient checks if an error originated in the underlying store call
func IsStoreClient(err error) bool {
	return errors.Is(err, ErrStoreClient)
}

// IsDecodeField checks if an error is a per-field decode failure
func IsDecodeField(err error) bool {
	return errors.Is(err, ErrDecodeField)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}
