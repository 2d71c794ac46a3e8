/*
Package docstore is a data-access shim that stores and retrieves
semi-structured JSON documents in AWS DynamoDB while hiding DynamoDB's
typed-attribute wire format.

Documents are schemaless maps. In full-JSON mode every non-key field is
JSON-serialized and stored as a string attribute; in mixed mode a
caller-chosen subset of fields stays JSON-in-a-string while the rest are
stored natively so the store can query and filter on them. Key fields are
always native and are stripped from decoded results.

Basic Usage:

	store, err := docstore.New(ctx, docstore.Config{
	    Region:    "us-east-1",
	    Endpoint:  "http://localhost:8000",
	    AccessKey: "local",
	    SecretKey: "local",
	    Local:     true,
	})

	key := storagemodels.Key{"id": "p-123"}
	err = store.PutItem(ctx, "", "players", key, storagemodels.Document{
	    "name": "Alice",
	    "age":  30,
	})

	doc, diags, err := store.GetItem(ctx, "", "players", key)
	// doc == {"name": "Alice", "age": 30}; diags lists any undecodable fields

Instrumentation:

Every completed operation emits one timing event, success or failure alike.
Subscribe per category on the instance:

	store.On(events.Create, func(ev events.Event) {
	    log.Printf("%s %s took %dms", ev.Category, ev.Table, ev.DurationMs())
	})

The query engine, consistency model, retry policy, and transport all belong
to the AWS SDK client; this module wraps each store primitive in exactly one
timed, single-resolution call and adds nothing else.
*/
package docstore
