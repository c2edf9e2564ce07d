// Package tagged provides runtime helpers for tagged tuples: two-element
// values whose first element is a string tag and whose second element is a
// payload whose shape depends on that tag.
//
// Key operations:
// - New: build a Value from a tag and a payload
// - Match: dispatch a Value to the handler registered for its tag
// - Unwrap/TryUnwrap: read the payload after asserting the expected tag
// - Is: shallow, panic-free tag test on arbitrary input
//
// Match trusts the caller to supply a handler for every tag the value can
// carry. A missing handler is not diagnosed; calling it panics like any other
// nil func.
package tagged
