/*
Package errors provides semantic error types for the docstore library.

The package defines the two failure classes of the data-access shim with
specific types that can be checked using the standard errors.Is() function
or the provided helper functions.

Common Errors:

	var (
	    ErrStoreClient       = errors.New("store client error")
	    ErrDecodeField       = errors.New("field decode failed")
	    ErrInvalidInput      = errors.New("invalid input")
	    ErrNoTableDefinition = errors.New("no table definition registered")
	)

StoreError carries the operation, table, key, and correlation id of a failed
store call and unwraps to the raw AWS SDK error:

	doc, _, err := store.GetItem(ctx, cid, "players", key)
	if err != nil {
	    var se *errors.StoreError
	    if stderrors.As(err, &se) {
	        log.Printf("%s failed on %s: %v", se.Op, se.Table, se.Err)
	    }
	}

DecodeFieldError reports a single undecodable field; the operation still
succeeds and the field is omitted from the decoded document.

The error types implement the error interface and support wrapping,
making them compatible with Go's standard error handling patterns.
*/
package errors
