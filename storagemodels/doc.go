/*
Package storagemodels defines the data structures used throughout docstore.

Key Types:

Document and Key:
A Document is the schemaless JSON mapping callers store and retrieve; a Key
is the scalar subset that identifies a row. Keys are always persisted as
native typed attributes, while non-key document fields are JSON-encoded
strings (or native attributes in mixed mode).

QueryParams:
Parameters for querying the datastore:

	params := &QueryParams{
	    TableName:              "my-table",
	    KeyConditionExpression: "PK = :pk",
	    ExpressionAttributeValues: map[string]types.AttributeValue{
	        ":pk": &types.AttributeValueMemberS{Value: "USER#123"},
	    },
	    FilterExpression: aws.String("Status = :status"),
	    IndexName:        aws.String("GSI1"),
	    Limit:            aws.Int32(100),
	}

TableDefinition:
Native key schema for table creation:

	def := TableDefinition{
	    TableName: "players",
	    HashKey:   KeyAttribute{Name: "id", Type: KeyTypeString},
	}

StreamResult:
Results from streaming queries with metadata:

	type StreamResult struct {
	    Document Document                        // The decoded document
	    Raw      map[string]types.AttributeValue // Raw DynamoDB attributes
	    Error    error                           // Item-specific error, if any
	    Meta     StreamMeta                      // Metadata about this item
	}

StreamOptions:
Configuration for streaming behavior:

	opts := []StreamOption{
	    WithBufferSize(100),
	    WithPageSize(25),
	    WithMaxRetries(3),
	    WithProgressHandler(progressFunc),
	}

These types provide a consistent interface across storage implementations.
*/
package storagemodels
