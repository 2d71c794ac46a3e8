/*
Package registry manages table schema registration for docstore.

The registry associates table names with their native key schemas so the
facade can provision missing tables on demand:

	registry.RegisterTableDefinition(storagemodels.TableDefinition{
	    TableName: "players",
	    HashKey:   storagemodels.KeyAttribute{Name: "id", Type: storagemodels.KeyTypeString},
	})

	// later, typically at startup
	err := store.EnsureTable(ctx, "players")

The registry is thread-safe and should be populated during initialization,
typically in init() functions.
*/
package registry
