// Package result provides Result[T, E], a tagged tuple restricted to the
// two tags "ok" and "err".
//
// Key operations:
// - Ok/Err: construct a Result
// - IsOk/IsErr: tag tests
// - Map/MapErr: transform one side, pass the other through untouched
// - Match: collapse a Result through both mandatory handlers
// - Unwrap: read the ok value, panic with *UnwrapError on err
//
// Unwrap is a contract check, not error handling: test with IsOk/IsErr or use
// Match first when an err is expected. Fluent sequencing lives in the chain
// subpackage.
package result
