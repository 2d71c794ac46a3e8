//go:build integration

/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package docstore

import (
	"context"
	"encoding/json"
	"log"
	"testing"
	"time"

	"github.com/go-openapi/strfmt"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suparena/docstore/datastore/testmodels"
	"github.com/suparena/docstore/events"
	"github.com/suparena/docstore/registry"
	"github.com/suparena/docstore/storagemodels"
)

// Requires a reachable DynamoDB endpoint, typically DynamoDB Local:
//
//	docker run -p 8000:8000 amazon/dynamodb-local
//	DOCSTORE_LOCAL=true DOCSTORE_ENDPOINT=http://localhost:8000 \
//	  DOCSTORE_REGION=us-east-1 DOCSTORE_ACCESS_KEY=local \
//	  DOCSTORE_SECRET_KEY=local go test -tags integration ./...
func newIntegrationStore(t *testing.T) *DocStore {
	t.Helper()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, proceeding with environment variables")
	}

	cfg := ConfigFromEnv()
	if !cfg.Local {
		t.Skip("integration test requires DOCSTORE_LOCAL=true")
	}

	store, err := New(context.Background(), cfg)
	require.NoError(t, err)
	return store
}

func TestIntegrationMatchLifecycle(t *testing.T) {
	store := newIntegrationStore(t)
	ctx := context.Background()

	table := "docstore-it-matches"
	require.NoError(t, registry.RegisterTableDefinition(storagemodels.TableDefinition{
		TableName: table,
		HashKey:   storagemodels.KeyAttribute{Name: "Id", Type: storagemodels.KeyTypeString},
	}))
	require.NoError(t, store.EnsureTable(ctx, table))
	defer func() {
		if _, err := store.DeleteTable(ctx, table); err != nil {
			t.Logf("cleanup: %v", err)
		}
	}()

	var reads, writes int
	store.On(events.Read, func(events.Event) { reads++ })
	store.On(events.Create, func(events.Event) { writes++ })

	id := "m-100"
	home, away := "p-1", "p-2"
	playedAt := strfmt.DateTime(time.Now().UTC().Truncate(time.Second))
	record := testmodels.MatchRecord{
		ID:         &id,
		HomePlayer: &home,
		AwayPlayer: &away,
		Score:      "3:1",
		PlayedAt:   &playedAt,
	}

	// Flatten the model into a schemaless document, key field excluded.
	raw, err := json.Marshal(record)
	require.NoError(t, err)
	var doc storagemodels.Document
	require.NoError(t, json.Unmarshal(raw, &doc))
	delete(doc, "Id")

	key := storagemodels.Key{"Id": id}
	require.NoError(t, store.PutItem(ctx, "", table, key, doc))

	got, diags, err := store.GetItem(ctx, "", table, key)
	require.NoError(t, err)
	require.Empty(t, diags)
	assert.Equal(t, "3:1", got["Score"])
	assert.Equal(t, "p-1", got["HomePlayer"])
	assert.NotContains(t, got, "Id")

	remaining, diags, err := store.DeleteAttribute(ctx, "", table, key, "Score")
	require.NoError(t, err)
	require.Empty(t, diags)
	assert.NotContains(t, remaining, "Score")
	assert.Equal(t, "p-2", remaining["AwayPlayer"])

	require.NoError(t, store.RemoveItem(ctx, "", table, key))
	got, _, err = store.GetItem(ctx, "", table, key)
	require.NoError(t, err)
	assert.Empty(t, got)

	assert.Equal(t, 2, reads)
	assert.Equal(t, 1, writes)
}

func TestIntegrationMixedModeQuery(t *testing.T) {
	store := newIntegrationStore(t)
	ctx := context.Background()

	table := "docstore-it-mixed"
	require.NoError(t, registry.RegisterTableDefinition(storagemodels.TableDefinition{
		TableName: table,
		HashKey:   storagemodels.KeyAttribute{Name: "Id", Type: storagemodels.KeyTypeString},
	}))
	require.NoError(t, store.EnsureTable(ctx, table))
	defer store.DeleteTable(ctx, table)

	key := storagemodels.Key{"Id": "m-200"}
	doc := storagemodels.Document{
		"Score":  42,
		"Detail": map[string]interface{}{"sets": []interface{}{"11:7", "11:9"}},
	}
	require.NoError(t, store.PutMixedItem(ctx, "", table, key, doc, []string{"Detail"}))

	got, diags, err := store.GetItem(ctx, "", table, key)
	require.NoError(t, err)
	require.Empty(t, diags)
	assert.Equal(t, float64(42), got["Score"])
	assert.Equal(t, map[string]interface{}{"sets": []interface{}{"11:7", "11:9"}}, got["Detail"])
}
