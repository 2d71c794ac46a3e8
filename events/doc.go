/*
Package events provides the instrumentation emitter for docstore operations.

Every completed store operation publishes exactly one Event carrying its
category (Create, Read, Update, Delete, Query), the caller's correlation id,
the table and key it touched, the measured duration, and the error if the
operation failed. Emission is uniform across success and failure.

Subscribers register per category and independently of any single call:

	emitter.Subscribe(events.Create, func(ev events.Event) {
	    log.Printf("put %v took %dms", ev.Key, ev.DurationMs())
	})

Emitters are per DocStore instance rather than process-wide, so multiple
independently configured instances never share subscribers.
*/
package events
