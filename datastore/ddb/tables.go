/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	dserrors "github.com/suparena/docstore/errors"
	"github.com/suparena/docstore/storagemodels"
)

// ListTables returns the raw table-name list from the store, following
// pagination until the full list is collected.
func (d *DocumentStore) ListTables(ctx context.Context) ([]string, error) {
	var names []string
	var startTable *string

	for {
		out, err := d.client.ListTables(ctx, &dynamodb.ListTablesInput{
			ExclusiveStartTableName: startTable,
		})
		if err != nil {
			return nil, dserrors.NewStoreError("ListTables", "", "", nil, err)
		}
		names = append(names, out.TableNames...)

		if out.LastEvaluatedTableName == nil {
			return names, nil
		}
		startTable = out.LastEvaluatedTableName
	}
}

// CreateTable provisions a table from a native schema definition and returns
// the raw store response. When the definition carries no throughput values
// the table is created in on-demand billing mode.
func (d *DocumentStore) CreateTable(ctx context.Context, def storagemodels.TableDefinition) (*dynamodb.CreateTableOutput, error) {
	if def.TableName == "" {
		return nil, dserrors.NewValidationError("tableName", "table name must not be empty")
	}
	if def.HashKey.Name == "" {
		return nil, dserrors.NewValidationError("hashKey", "hash key must be defined")
	}

	attrDefs := []types.AttributeDefinition{
		{
			AttributeName: aws.String(def.HashKey.Name),
			AttributeType: types.ScalarAttributeType(def.HashKey.Type),
		},
	}
	keySchema := []types.KeySchemaElement{
		{
			AttributeName: aws.String(def.HashKey.Name),
			KeyType:       types.KeyTypeHash,
		},
	}

	if def.RangeKey != nil {
		attrDefs = append(attrDefs, types.AttributeDefinition{
			AttributeName: aws.String(def.RangeKey.Name),
			AttributeType: types.ScalarAttributeType(def.RangeKey.Type),
		})
		keySchema = append(keySchema, types.KeySchemaElement{
			AttributeName: aws.String(def.RangeKey.Name),
			KeyType:       types.KeyTypeRange,
		})
	}

	input := &dynamodb.CreateTableInput{
		TableName:            aws.String(def.TableName),
		AttributeDefinitions: attrDefs,
		KeySchema:            keySchema,
	}

	if def.ReadCapacity > 0 || def.WriteCapacity > 0 {
		input.BillingMode = types.BillingModeProvisioned
		input.ProvisionedThroughput = &types.ProvisionedThroughput{
			ReadCapacityUnits:  aws.Int64(def.ReadCapacity),
			WriteCapacityUnits: aws.Int64(def.WriteCapacity),
		}
	} else {
		input.BillingMode = types.BillingModePayPerRequest
	}

	out, err := d.client.CreateTable(ctx, input)
	if err != nil {
		return nil, dserrors.NewStoreError("CreateTable", def.TableName, "", nil, err)
	}
	return out, nil
}

// DeleteTable drops a table and returns the raw store response.
func (d *DocumentStore) DeleteTable(ctx context.Context, table string) (*dynamodb.DeleteTableOutput, error) {
	out, err := d.client.DeleteTable(ctx, &dynamodb.DeleteTableInput{
		TableName: aws.String(table),
	})
	if err != nil {
		return nil, dserrors.NewStoreError("DeleteTable", table, "", nil, err)
	}
	return out, nil
}
