package tagged

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/samber/lo"
)

// ErrTagMismatch is raised by Unwrap when the value carries another tag
var ErrTagMismatch = errors.New("tagged: unwrap failed: tag mismatch")

// Value is an immutable (tag, payload) pair
type Value struct {
	tag     string
	payload any
}

// Handler receives the payload of a matched Value
type Handler[R any] func(payload any) R

// Cases maps every tag a Value may carry to its handler
type Cases[R any] map[string]Handler[R]

func New(tag string, payload any) Value {
	return Value{
		tag:     tag,
		payload: payload,
	}
}

func (v Value) Tag() string {
	return v.tag
}

func (v Value) Payload() any {
	return v.payload
}

func (v Value) String() string {
	return fmt.Sprintf("%s(%v)", v.tag, v.payload)
}

// Case adapts a typed handler to a Handler.
// The payload is asserted to P; a nil payload is passed as the zero P.
func Case[P, R any](fn func(P) R) Handler[R] {
	return func(payload any) R {
		return fn(payloadAs[P](payload))
	}
}

// Match calls the handler registered for v's tag with v's payload.
// Every tag v can carry must have a handler in cases.
func Match[R any](v Carrier, cases Cases[R]) R {
	return cases[v.Tag()](v.Payload())
}

// Unwrap returns the payload of v as P, panics with ErrTagMismatch
// when v is not tagged with tag
func Unwrap[P any](v Carrier, tag string) P {
	p, err := TryUnwrap[P](v, tag)
	if err != nil {
		panic(err)
	}
	return p
}

// TryUnwrap is Unwrap returning ErrTagMismatch instead of panicking
func TryUnwrap[P any](v Carrier, tag string) (P, error) {
	if v.Tag() != tag {
		return lo.Empty[P](), ErrTagMismatch
	}
	return payloadAs[P](v.Payload()), nil
}

// Is reports whether val is a tagged shape whose first element equals tag.
// Taggers and non-empty slices or arrays, behind any number of pointers, are
// recognised; anything else, nil included, is false.
func Is(val any, tag string) bool {
	if val == nil {
		return false
	}

	rv := reflect.ValueOf(val)
	for rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return false
		}
		rv = rv.Elem()
	}

	if t, ok := val.(Tagger); ok {
		return t.Tag() == tag
	}
	if t, ok := rv.Interface().(Tagger); ok {
		return t.Tag() == tag
	}

	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return rv.Len() > 0 && rv.Index(0).Interface() == tag
	default:
		return false
	}
}

func payloadAs[P any](payload any) P {
	if payload == nil {
		return lo.Empty[P]()
	}
	return payload.(P)
}
