package chain

import (
	"fmt"

	"github.com/ib-77/tagged3/pkg/result"
)

// Chain wraps a result.Result to enable fluent chaining
type Chain[T, E any] struct {
	result result.Result[T, E]
}

// Start creates a new chain from a result.Result
func Start[T, E any](r result.Result[T, E]) Chain[T, E] {
	return Chain[T, E]{result: r}
}

// Result returns the underlying result.Result
func (c Chain[T, E]) Result() result.Result[T, E] {
	return c.result
}

func (c Chain[T, E]) IsOk() bool {
	return result.IsOk(c.result)
}

func (c Chain[T, E]) IsErr() bool {
	return result.IsErr(c.result)
}

func (c Chain[T, E]) Tag() string {
	return c.result.Tag()
}

// Map transforms the ok value
func (c Chain[T, E]) Map(f func(value T) T) Chain[T, E] {
	return Map(c, f)
}

// MapErr transforms the err reason
func (c Chain[T, E]) MapErr(f func(reason E) E) Chain[T, E] {
	return MapErr(c, f)
}

// Unwrap returns the ok value, panics on err.
// Unlike result.Unwrap the panic error only renders the reason and wraps nothing.
func (c Chain[T, E]) Unwrap() T {
	if reason, failed := c.result.Reason(); failed {
		panic(fmt.Errorf("unwrap called on err: %v", reason))
	}
	value, _ := c.result.Value()
	return value
}

// Map chains a transformation that may change the ok type
func Map[T, U, E any](c Chain[T, E], f func(value T) U) Chain[U, E] {
	return Chain[U, E]{result: result.Map(c.result, f)}
}

// MapErr chains a transformation that may change the err type
func MapErr[T, E, F any](c Chain[T, E], f func(reason E) F) Chain[T, F] {
	return Chain[T, F]{result: result.MapErr(c.result, f)}
}

// Match collapses the chain through result.Match
func Match[T, E, R any](c Chain[T, E], cases result.Cases[T, E, R]) R {
	return result.Match(c.result, cases)
}
