/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dserrors "github.com/suparena/docstore/errors"
	"github.com/suparena/docstore/storagemodels"
)

func TestQueryTableDecodesRows(t *testing.T) {
	var captured *dynamodb.QueryInput
	store := New(&fakeClient{
		queryFn: func(in *dynamodb.QueryInput) (*dynamodb.QueryOutput, error) {
			captured = in
			return &dynamodb.QueryOutput{
				Items: []map[string]types.AttributeValue{
					{
						"id":    &types.AttributeValueMemberS{Value: "p-1"},
						"name":  &types.AttributeValueMemberS{Value: `"Alice"`},
						"score": &types.AttributeValueMemberN{Value: "42"},
					},
					{
						"id":    &types.AttributeValueMemberS{Value: "p-2"},
						"name":  &types.AttributeValueMemberS{Value: `"Bob"`},
						"score": &types.AttributeValueMemberN{Value: "17"},
					},
				},
			}, nil
		},
	}, nil)

	params := &storagemodels.QueryParams{
		TableName:              "players",
		KeyConditionExpression: "id = :id",
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":id": &types.AttributeValueMemberS{Value: "p-1"},
		},
	}

	docs, err := store.QueryTable(context.Background(), "", params)
	require.NoError(t, err)
	require.Len(t, docs, 2)

	require.NotNil(t, captured)
	assert.Equal(t, "players", *captured.TableName)
	assert.Equal(t, "id = :id", *captured.KeyConditionExpression)
	assert.Nil(t, captured.ExpressionAttributeNames)

	// Query decoding is native only: JSON text stays verbatim, numbers are
	// numbers.
	assert.Equal(t, `"Alice"`, docs[0]["name"])
	assert.Equal(t, float64(42), docs[0]["score"])
	assert.Equal(t, "p-2", docs[1]["id"])
}

func TestQueryTablePassesOptionalParams(t *testing.T) {
	var captured *dynamodb.QueryInput
	store := New(&fakeClient{
		queryFn: func(in *dynamodb.QueryInput) (*dynamodb.QueryOutput, error) {
			captured = in
			return &dynamodb.QueryOutput{}, nil
		},
	}, nil)

	params := &storagemodels.QueryParams{
		TableName:              "players",
		KeyConditionExpression: "#r = :r",
		ExpressionAttributeNames: map[string]string{
			"#r": "region",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":r": &types.AttributeValueMemberS{Value: "east"},
		},
		IndexName:        aws.String("region-index"),
		Limit:            aws.Int32(25),
		FilterExpression: aws.String("score > :min"),
		ScanIndexForward: aws.Bool(false),
	}

	_, err := store.QueryTable(context.Background(), "", params)
	require.NoError(t, err)
	require.NotNil(t, captured)
	assert.Equal(t, "region-index", *captured.IndexName)
	assert.Equal(t, int32(25), *captured.Limit)
	assert.Equal(t, "region", captured.ExpressionAttributeNames["#r"])
	assert.Equal(t, "score > :min", *captured.FilterExpression)
	assert.False(t, *captured.ScanIndexForward)
}

func TestQueryTableError(t *testing.T) {
	store := New(&fakeClient{
		queryFn: func(*dynamodb.QueryInput) (*dynamodb.QueryOutput, error) {
			return nil, errors.New("bad condition")
		},
	}, nil)

	_, err := store.QueryTable(context.Background(), "corr-q", &storagemodels.QueryParams{
		TableName:              "players",
		KeyConditionExpression: "id = :id",
	})
	require.Error(t, err)
	assert.True(t, dserrors.IsStoreClient(err))

	var se *dserrors.StoreError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "corr-q", se.CorrelationID)
}
