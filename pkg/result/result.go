package result

import (
	"fmt"

	"github.com/samber/lo"
)

const (
	TagOk  = "ok"
	TagErr = "err"
)

// Result holds either an ok value or an err reason, never both.
// The zero value is ok with the zero T.
type Result[T, E any] struct {
	value  T
	reason E
	failed bool
}

// Cases holds both handlers of Match; neither may be nil
type Cases[T, E, R any] struct {
	Ok  func(value T) R
	Err func(reason E) R
}

func Ok[T, E any](value T) Result[T, E] {
	return Result[T, E]{value: value}
}

func Err[T, E any](reason E) Result[T, E] {
	return Result[T, E]{reason: reason, failed: true}
}

// FromTuple converts a (value, error) pair, a non-nil error wins
func FromTuple[T any](value T, err error) Result[T, error] {
	if err != nil {
		return Err[T](err)
	}
	return Ok[T, error](value)
}

// ToTuple converts back to the (value, error) convention
func ToTuple[T any](r Result[T, error]) (T, error) {
	if r.failed {
		return lo.Empty[T](), r.reason
	}
	return r.value, nil
}

func IsOk[T, E any](r Result[T, E]) bool {
	return r.IsOk()
}

func IsErr[T, E any](r Result[T, E]) bool {
	return r.IsErr()
}

// Map applies f to an ok value; an err is returned as is and f is not called
func Map[T, U, E any](r Result[T, E], f func(value T) U) Result[U, E] {
	if r.failed {
		return Err[U](r.reason)
	}
	return Ok[U, E](f(r.value))
}

// MapErr applies f to an err reason; an ok is returned as is and f is not called
func MapErr[T, E, F any](r Result[T, E], f func(reason E) F) Result[T, F] {
	if !r.failed {
		return Ok[T, F](r.value)
	}
	return Err[T](f(r.reason))
}

// Unwrap returns the ok value or panics with *UnwrapError
func Unwrap[T, E any](r Result[T, E]) T {
	if r.failed {
		panic(newUnwrapError(r.reason))
	}
	return r.value
}

// Match calls exactly one of the handlers
func Match[T, E, R any](r Result[T, E], cases Cases[T, E, R]) R {
	if r.failed {
		return cases.Err(r.reason)
	}
	return cases.Ok(r.value)
}

func (r Result[T, E]) IsOk() bool {
	return !r.failed
}

func (r Result[T, E]) IsErr() bool {
	return r.failed
}

func (r Result[T, E]) Tag() string {
	if r.failed {
		return TagErr
	}
	return TagOk
}

// Payload returns the value or the reason, whichever the tag selects
func (r Result[T, E]) Payload() any {
	if r.failed {
		return r.reason
	}
	return r.value
}

func (r Result[T, E]) Value() (T, bool) {
	if r.failed {
		return lo.Empty[T](), false
	}
	return r.value, true
}

func (r Result[T, E]) Reason() (E, bool) {
	if !r.failed {
		return lo.Empty[E](), false
	}
	return r.reason, true
}

func (r Result[T, E]) String() string {
	return fmt.Sprintf("%s(%v)", r.Tag(), r.Payload())
}
