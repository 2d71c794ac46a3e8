/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package storagemodels

import (
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// Document is an arbitrary mapping from field names to JSON-compatible
// values (string, number, bool, nil, nested map, slice). No fixed schema.
type Document map[string]interface{}

// Key identifies a unique row in a table. Key values are scalars and are
// always stored as native typed attributes, never JSON-encoded.
type Key map[string]interface{}

// FieldNames returns the field names of the key.
func (k Key) FieldNames() []string {
	names := make([]string, 0, len(k))
	for name := range k {
		names = append(names, name)
	}
	return names
}

// QueryParams defines parameters for a DynamoDB Query operation.
// Used for both regular queries and streaming queries.
type QueryParams struct {
	// TableName is the DynamoDB table name.
	TableName string
	// KeyConditionExpression is the primary condition for the query.
	KeyConditionExpression string
	// FilterExpression is an optional filter expression.
	FilterExpression *string
	// ExpressionAttributeNames contains substitutions for reserved words.
	ExpressionAttributeNames map[string]string
	// ExpressionAttributeValues contains the values for expression placeholders.
	ExpressionAttributeValues map[string]types.AttributeValue
	// IndexName is optional if you wish to query a secondary index.
	IndexName *string
	// Limit defines an optional limit per query page.
	Limit *int32
	// ExclusiveStartKey for pagination
	ExclusiveStartKey map[string]types.AttributeValue
	// ScanIndexForward specifies the order for index traversal.
	// If true (default), traversal is in ascending order.
	// If false, traversal is in descending order.
	ScanIndexForward *bool
}

// KeyType enumerates the scalar attribute types usable in a table key.
type KeyType string

const (
	KeyTypeString KeyType = "S"
	KeyTypeNumber KeyType = "N"
	KeyTypeBinary KeyType = "B"
)

// KeyAttribute names one attribute of a table key schema.
type KeyAttribute struct {
	Name string  `yaml:"name"`
	Type KeyType `yaml:"type"`
}

// TableDefinition describes the native store schema for CreateTable.
// Throughput settings are optional; when both are zero the table is
// created in on-demand (pay-per-request) mode.
type TableDefinition struct {
	TableName     string        `yaml:"tableName"`
	HashKey       KeyAttribute  `yaml:"hashKey"`
	RangeKey      *KeyAttribute `yaml:"rangeKey,omitempty"`
	ReadCapacity  int64         `yaml:"readCapacity,omitempty"`
	WriteCapacity int64         `yaml:"writeCapacity,omitempty"`
}
