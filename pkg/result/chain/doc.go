// Package chain provides a fluent wrapper around result.Result[T, E].
//
// A Chain owns one Result and every step returns a new Chain, so a chain can
// be shared and branched freely. Steps never flip ok and err.
//
// Key operations:
// - Start: begin a chain from a Result
// - Map/MapErr methods: same-type transformations
// - Map/MapErr functions: transformations that change T or E
// - Unwrap/Match: end the chain with a plain value
package chain
