/*
Package codec converts between plain JSON documents and DynamoDB's
typed-attribute wire representation.

Two encoding modes are supported:

Full JSON mode (Wrap):
Every document field is JSON-serialized and stored as a string attribute.
The stored item is opaque to the store's query engine but round-trips any
JSON-serializable value exactly:

	item, _ := codec.Wrap(storagemodels.Document{"name": "Alice", "age": 30})
	// item["name"] == &types.AttributeValueMemberS{Value: `"Alice"`}
	// item["age"]  == &types.AttributeValueMemberS{Value: `30`}

Mixed mode (WrapMixed):
A caller-chosen subset of fields stays JSON-in-a-string while the rest are
stored as native typed attributes, so the store can filter on them:

	item, _ := codec.WrapMixed(doc, []string{"payload"})
	// doc["payload"] is an opaque JSON blob; everything else is native

Keys are always encoded natively via WrapKey and are stripped from decoded
output, since they are redundant with the lookup key the caller already holds.

Decoding is deliberately lossy on error: a field whose stored text is not
valid JSON is logged, reported in the returned FieldDiagnostic slice, and
omitted. One malformed field never prevents the rest of the document from
being usable.
*/
package codec
