/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suparena/docstore/events"
	"github.com/suparena/docstore/storagemodels"
)

// collectEvents subscribes one recording handler to every category.
func collectEvents(emitter *events.Emitter) *[]events.Event {
	var got []events.Event
	record := func(ev events.Event) { got = append(got, ev) }
	for _, cat := range []events.Category{events.Create, events.Read, events.Update, events.Delete, events.Query} {
		emitter.Subscribe(cat, record)
	}
	return &got
}

func TestEachOperationEmitsExactlyOneEvent(t *testing.T) {
	emitter := events.NewEmitter()
	got := collectEvents(emitter)
	store := New(&fakeClient{}, emitter)
	ctx := context.Background()
	doc := storagemodels.Document{"name": "Alice"}

	_, _, err := store.GetItem(ctx, "c1", "players", testKey)
	require.NoError(t, err)
	require.NoError(t, store.PutItem(ctx, "c2", "players", testKey, doc))
	require.NoError(t, store.PutMixedItem(ctx, "c3", "players", testKey, doc, nil))
	require.NoError(t, store.UpdateItem(ctx, "c4", "players", testKey, doc))
	require.NoError(t, store.UpdateMixedItem(ctx, "c5", "players", testKey, doc, nil))
	_, _, err = store.DeleteAttribute(ctx, "c6", "players", testKey, "name")
	require.NoError(t, err)
	require.NoError(t, store.RemoveItem(ctx, "c7", "players", testKey))
	_, err = store.QueryTable(ctx, "c8", &storagemodels.QueryParams{TableName: "players"})
	require.NoError(t, err)

	require.Len(t, *got, 8)

	wantCategories := []events.Category{
		events.Read,
		events.Create,
		events.Create,
		events.Update,
		events.Update,
		events.Delete,
		events.Delete,
		events.Query,
	}
	for i, ev := range *got {
		assert.Equal(t, wantCategories[i], ev.Category, "event %d", i)
		assert.Equal(t, "players", ev.Table)
		assert.NoError(t, ev.Err)
		assert.GreaterOrEqual(t, ev.DurationMs(), int64(0))
	}
	assert.Equal(t, "c1", (*got)[0].CorrelationID)
	assert.Equal(t, testKey, (*got)[0].Key)

	// Query events carry no key.
	assert.Nil(t, (*got)[7].Key)
}

func TestFailedOperationStillEmits(t *testing.T) {
	emitter := events.NewEmitter()
	got := collectEvents(emitter)
	cause := errors.New("throttled")
	store := New(&fakeClient{
		putItemFn: func(*dynamodb.PutItemInput) (*dynamodb.PutItemOutput, error) {
			return nil, cause
		},
	}, emitter)

	err := store.PutItem(context.Background(), "c1", "players", testKey,
		storagemodels.Document{"name": "Alice"})
	require.Error(t, err)

	require.Len(t, *got, 1)
	ev := (*got)[0]
	assert.Equal(t, events.Create, ev.Category)
	assert.ErrorIs(t, ev.Err, cause)
}

func TestNilEmitterIsSafe(t *testing.T) {
	store := New(&fakeClient{}, nil)

	assert.NotPanics(t, func() {
		_ = store.PutItem(context.Background(), "", "players", testKey,
			storagemodels.Document{"name": "Alice"})
	})
}
