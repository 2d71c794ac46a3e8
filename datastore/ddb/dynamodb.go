/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/suparena/docstore/codec"
	dserrors "github.com/suparena/docstore/errors"
	"github.com/suparena/docstore/events"
	"github.com/suparena/docstore/storagemodels"
)

// DocumentStore implements datastore.DocumentStore on top of AWS DynamoDB.
// Each operation wraps a single client call, times it, and publishes one
// instrumentation event on the emitter — on success and on failure alike.
type DocumentStore struct {
	client  DynamoDBAPI
	emitter *events.Emitter
}

// New constructs a DocumentStore over the given DynamoDB client. The emitter
// may be nil, in which case no events are published.
func New(client DynamoDBAPI, emitter *events.Emitter) *DocumentStore {
	return &DocumentStore{
		client:  client,
		emitter: emitter,
	}
}

// emit publishes one event for a completed operation. Fire-and-forget: the
// event never influences the operation outcome.
func (d *DocumentStore) emit(cat events.Category, correlationID, table string, key storagemodels.Key, start time.Time, err error) {
	if d.emitter == nil {
		return
	}
	d.emitter.Emit(events.Event{
		Category:      cat,
		CorrelationID: correlationID,
		Table:         table,
		Key:           key,
		Duration:      time.Since(start),
		Err:           err,
	})
}

// GetItem retrieves a single item and decodes it back into a document, with
// the key fields stripped. A missing item returns an empty document and a nil
// error; callers cannot distinguish "no such item" from "item with every
// field unparseable" by the document alone, but the diagnostics slice is
// empty in the former case.
func (d *DocumentStore) GetItem(ctx context.Context, correlationID, table string, key storagemodels.Key) (doc storagemodels.Document, diags []codec.FieldDiagnostic, err error) {
	start := time.Now()
	defer func() { d.emit(events.Read, correlationID, table, key, start, err) }()

	keyAttr, err := codec.WrapKey(key)
	if err != nil {
		return nil, nil, err
	}

	out, err := d.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(table),
		Key:       keyAttr,
	})
	if err != nil {
		return nil, nil, dserrors.NewStoreError("GetItem", table, correlationID, key, err)
	}
	if out.Item == nil {
		return storagemodels.Document{}, nil, nil
	}

	doc, diags = codec.Unwrap(out.Item, key.FieldNames())
	return doc, diags, nil
}

// PutItem stores a document with every non-key field JSON-encoded as a
// string attribute. The key fields are merged in as native attributes.
func (d *DocumentStore) PutItem(ctx context.Context, correlationID, table string, key storagemodels.Key, doc storagemodels.Document) (err error) {
	start := time.Now()
	defer func() { d.emit(events.Create, correlationID, table, key, start, err) }()

	item, err := codec.Wrap(doc)
	if err != nil {
		return err
	}
	return d.putEncoded(ctx, correlationID, table, key, item)
}

// PutMixedItem stores a document where only the fields named in jsonFields
// are JSON-encoded; all other fields keep their native typed-attribute form
// so the store can query and filter on them.
func (d *DocumentStore) PutMixedItem(ctx context.Context, correlationID, table string, key storagemodels.Key, doc storagemodels.Document, jsonFields []string) (err error) {
	start := time.Now()
	defer func() { d.emit(events.Create, correlationID, table, key, start, err) }()

	item, err := codec.WrapMixed(doc, jsonFields)
	if err != nil {
		return err
	}
	return d.putEncoded(ctx, correlationID, table, key, item)
}

func (d *DocumentStore) putEncoded(ctx context.Context, correlationID, table string, key storagemodels.Key, item map[string]types.AttributeValue) error {
	keyAttr, err := codec.WrapKey(key)
	if err != nil {
		return err
	}
	for k, v := range keyAttr {
		item[k] = v
	}

	_, err = d.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(table),
		Item:      item,
	})
	if err != nil {
		return dserrors.NewStoreError("PutItem", table, correlationID, key, err)
	}
	return nil
}

// UpdateItem replaces the named attributes of an existing item with the
// document's fields, full-JSON encoded.
func (d *DocumentStore) UpdateItem(ctx context.Context, correlationID, table string, key storagemodels.Key, doc storagemodels.Document) (err error) {
	start := time.Now()
	defer func() { d.emit(events.Update, correlationID, table, key, start, err) }()

	item, err := codec.Wrap(doc)
	if err != nil {
		return err
	}
	return d.updateEncoded(ctx, correlationID, table, key, item)
}

// UpdateMixedItem is UpdateItem with mixed encoding.
func (d *DocumentStore) UpdateMixedItem(ctx context.Context, correlationID, table string, key storagemodels.Key, doc storagemodels.Document, jsonFields []string) (err error) {
	start := time.Now()
	defer func() { d.emit(events.Update, correlationID, table, key, start, err) }()

	item, err := codec.WrapMixed(doc, jsonFields)
	if err != nil {
		return err
	}
	return d.updateEncoded(ctx, correlationID, table, key, item)
}

func (d *DocumentStore) updateEncoded(ctx context.Context, correlationID, table string, key storagemodels.Key, item map[string]types.AttributeValue) error {
	keyAttr, err := codec.WrapKey(key)
	if err != nil {
		return err
	}

	updateExpr, exprNames, exprValues, err := buildUpdateExpression(item)
	if err != nil {
		return err
	}

	_, err = d.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(table),
		Key:                       keyAttr,
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeNames:  exprNames,
		ExpressionAttributeValues: exprValues,
	})
	if err != nil {
		return dserrors.NewStoreError("UpdateItem", table, correlationID, key, err)
	}
	return nil
}

// DeleteAttribute removes a single top-level attribute from an item. The
// store is asked for the item's old values, which are decoded with the key
// fields and the removed attribute stripped, so the result is the document
// that remains after the deletion.
func (d *DocumentStore) DeleteAttribute(ctx context.Context, correlationID, table string, key storagemodels.Key, attribute string) (doc storagemodels.Document, diags []codec.FieldDiagnostic, err error) {
	start := time.Now()
	defer func() { d.emit(events.Delete, correlationID, table, key, start, err) }()

	if attribute == "" {
		err = dserrors.NewValidationError("attribute", "attribute name must not be empty")
		return nil, nil, err
	}

	keyAttr, err := codec.WrapKey(key)
	if err != nil {
		return nil, nil, err
	}

	out, err := d.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                aws.String(table),
		Key:                      keyAttr,
		UpdateExpression:         aws.String("REMOVE #attr"),
		ExpressionAttributeNames: map[string]string{"#attr": attribute},
		ReturnValues:             types.ReturnValueAllOld,
	})
	if err != nil {
		return nil, nil, dserrors.NewStoreError("DeleteAttribute", table, correlationID, key, err)
	}

	exclude := append(key.FieldNames(), attribute)
	doc, diags = codec.Unwrap(out.Attributes, exclude)
	return doc, diags, nil
}

// RemoveItem deletes a whole item.
func (d *DocumentStore) RemoveItem(ctx context.Context, correlationID, table string, key storagemodels.Key) (err error) {
	start := time.Now()
	defer func() { d.emit(events.Delete, correlationID, table, key, start, err) }()

	keyAttr, err := codec.WrapKey(key)
	if err != nil {
		return err
	}

	_, err = d.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(table),
		Key:       keyAttr,
	})
	if err != nil {
		return dserrors.NewStoreError("RemoveItem", table, correlationID, key, err)
	}
	return nil
}

// buildUpdateExpression transforms an encoded attribute map into:
//   - an update expression (e.g., "SET #f0 = :v0, #f1 = :v1")
//   - a corresponding map of expression attribute names
//   - a corresponding map of expression attribute values
func buildUpdateExpression(item map[string]types.AttributeValue) (string,
	map[string]string,
	map[string]types.AttributeValue,
	error) {

	if len(item) == 0 {
		return "", nil, nil, dserrors.NewValidationError("", "no attributes to update")
	}

	setClauses := make([]string, 0, len(item))
	exprAttrNames := make(map[string]string, len(item))
	exprAttrValues := make(map[string]types.AttributeValue, len(item))

	i := 0
	for field, av := range item {
		placeholderName := fmt.Sprintf("#f%d", i)
		placeholderValue := fmt.Sprintf(":v%d", i)

		setClauses = append(setClauses, fmt.Sprintf("%s = %s", placeholderName, placeholderValue))
		exprAttrNames[placeholderName] = field
		exprAttrValues[placeholderValue] = av
		i++
	}

	return "SET " + strings.Join(setClauses, ", "), exprAttrNames, exprAttrValues, nil
}
