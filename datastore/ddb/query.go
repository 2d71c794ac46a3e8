/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/suparena/docstore/codec"
	dserrors "github.com/suparena/docstore/errors"
	"github.com/suparena/docstore/events"
	"github.com/suparena/docstore/storagemodels"
)

// QueryTable performs a query using the provided pre-built native
// parameters. Rows are decoded with the typed-attribute unwrap only — no
// JSON-string parsing — because query predicates operate against the store's
// native type system, not against JSON blobs. Fields written by PutItem come
// back as the stored JSON text; this is the lower-level escape hatch for
// native filtering.
func (d *DocumentStore) QueryTable(ctx context.Context, correlationID string, params *storagemodels.QueryParams) (docs []storagemodels.Document, err error) {
	start := time.Now()
	defer func() { d.emit(events.Query, correlationID, params.TableName, nil, start, err) }()

	out, err := d.client.Query(ctx, buildQueryInput(params))
	if err != nil {
		return nil, dserrors.NewStoreError("Query", params.TableName, correlationID, nil, err)
	}

	docs = make([]storagemodels.Document, 0, len(out.Items))
	for _, item := range out.Items {
		doc, err := codec.UnwrapRaw(item)
		if err != nil {
			return nil, fmt.Errorf("failed to unwrap query item: %w", err)
		}
		docs = append(docs, doc)
	}

	return docs, nil
}

// buildQueryInput maps QueryParams onto the SDK input shape. Shared by
// QueryTable and QueryStream.
func buildQueryInput(params *storagemodels.QueryParams) *dynamodb.QueryInput {
	input := &dynamodb.QueryInput{
		TableName:                 aws.String(params.TableName),
		KeyConditionExpression:    aws.String(params.KeyConditionExpression),
		ExpressionAttributeValues: params.ExpressionAttributeValues,
		FilterExpression:          params.FilterExpression,
		IndexName:                 params.IndexName,
		Limit:                     params.Limit,
		ExclusiveStartKey:         params.ExclusiveStartKey,
		ScanIndexForward:          params.ScanIndexForward,
	}
	if len(params.ExpressionAttributeNames) > 0 {
		input.ExpressionAttributeNames = params.ExpressionAttributeNames
	}
	return input
}
