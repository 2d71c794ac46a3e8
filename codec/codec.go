/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package codec

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	dserrors "github.com/suparena/docstore/errors"
	"github.com/suparena/docstore/storagemodels"
)

// FieldDiagnostic records a single field that could not be decoded.
// The field is omitted from the decoded document; the rest of the
// document is unaffected.
type FieldDiagnostic struct {
	Field string
	Err   error
}

func (d FieldDiagnostic) String() string {
	return fmt.Sprintf("field %q: %v", d.Field, d.Err)
}

// Wrap encodes a document for storage. Every field value is JSON-serialized
// and wrapped as a string attribute, so Unwrap can always parse the stored
// text back to the original value. An empty document encodes to an empty
// attribute map.
func Wrap(doc storagemodels.Document) (map[string]types.AttributeValue, error) {
	item := make(map[string]types.AttributeValue, len(doc))
	for field, value := range doc {
		b, err := json.Marshal(value)
		if err != nil {
			return nil, fmt.Errorf("failed to encode field %q: %w", field, err)
		}
		item[field] = &types.AttributeValueMemberS{Value: string(b)}
	}
	return item, nil
}

// WrapMixed encodes a document where only the fields named in jsonFields are
// JSON-serialized to string attributes; all other fields are stored using the
// store's native type inference (numbers as number attributes, booleans as
// boolean attributes, nested maps as map attributes, and so on).
//
// A field name appearing both in the document and as a key attribute of the
// table is the caller's responsibility to avoid.
func WrapMixed(doc storagemodels.Document, jsonFields []string) (map[string]types.AttributeValue, error) {
	asJSON := make(map[string]struct{}, len(jsonFields))
	for _, name := range jsonFields {
		asJSON[name] = struct{}{}
	}

	item := make(map[string]types.AttributeValue, len(doc))
	for field, value := range doc {
		if _, ok := asJSON[field]; ok {
			b, err := json.Marshal(value)
			if err != nil {
				return nil, fmt.Errorf("failed to encode field %q: %w", field, err)
			}
			item[field] = &types.AttributeValueMemberS{Value: string(b)}
			continue
		}
		av, err := attributevalue.Marshal(value)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal field %q: %w", field, err)
		}
		item[field] = av
	}
	return item, nil
}

// WrapKey encodes a key as native typed attributes. Key values are never
// JSON-encoded.
func WrapKey(key storagemodels.Key) (map[string]types.AttributeValue, error) {
	av, err := attributevalue.MarshalMap(map[string]interface{}(key))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal key: %w", err)
	}
	return av, nil
}

// Unwrap decodes a stored item back into a document. Fields named in
// excludeFields (the lookup key, already known to the caller) are stripped.
// String attributes are JSON-parsed; a field whose text fails to parse is
// logged, reported in the returned diagnostics, and omitted from the result.
// A single malformed field never fails the whole decode.
//
// Native attributes written by WrapMixed (numbers, booleans, nulls, maps,
// lists) decode through the store's own type system, so mixed documents
// round-trip the same way fully JSON-encoded ones do.
func Unwrap(item map[string]types.AttributeValue, excludeFields []string) (storagemodels.Document, []FieldDiagnostic) {
	exclude := make(map[string]struct{}, len(excludeFields))
	for _, name := range excludeFields {
		exclude[name] = struct{}{}
	}

	doc := make(storagemodels.Document, len(item))
	var diags []FieldDiagnostic

	for field, attr := range item {
		if _, skip := exclude[field]; skip {
			continue
		}

		value, err := decodeAttribute(attr)
		if err != nil {
			derr := dserrors.NewDecodeFieldError(field, err)
			log.Printf("codec: dropping %v", derr)
			diags = append(diags, FieldDiagnostic{Field: field, Err: derr})
			continue
		}
		doc[field] = value
	}

	return doc, diags
}

// UnwrapRaw decodes an item using only the typed-attribute unwrap, with no
// JSON-string parsing. Query results use this form: query predicates operate
// against the store's native type system, so rows come back as stored.
func UnwrapRaw(item map[string]types.AttributeValue) (storagemodels.Document, error) {
	var raw map[string]interface{}
	if err := attributevalue.UnmarshalMap(item, &raw); err != nil {
		return nil, fmt.Errorf("failed to unmarshal item: %w", err)
	}
	return storagemodels.Document(raw), nil
}

// decodeAttribute converts one stored attribute to its document value.
func decodeAttribute(attr types.AttributeValue) (interface{}, error) {
	switch tv := attr.(type) {
	case *types.AttributeValueMemberS:
		var value interface{}
		if err := json.Unmarshal([]byte(tv.Value), &value); err != nil {
			return nil, fmt.Errorf("invalid JSON text: %w", err)
		}
		return value, nil

	case *types.AttributeValueMemberN:
		// Number attributes carry valid JSON number text.
		var value interface{}
		if err := json.Unmarshal([]byte(tv.Value), &value); err != nil {
			return nil, fmt.Errorf("invalid number %q: %w", tv.Value, err)
		}
		return value, nil

	default:
		var value interface{}
		if err := attributevalue.Unmarshal(attr, &value); err != nil {
			return nil, fmt.Errorf("failed to unmarshal attribute: %w", err)
		}
		return value, nil
	}
}
