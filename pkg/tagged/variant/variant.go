package variant

import "github.com/ib-77/tagged3/pkg/tagged"

type (
	Value          = tagged.Value
	Tagger         = tagged.Tagger
	Carrier        = tagged.Carrier
	Handler[R any] = tagged.Handler[R]
	Cases[R any]   = tagged.Cases[R]
)

// ErrTagMismatch is tagged.ErrTagMismatch
var ErrTagMismatch = tagged.ErrTagMismatch

// New builds a variant value from a tag and its payload
func New(tag string, payload any) Value {
	return tagged.New(tag, payload)
}

// Case adapts a typed handler, see tagged.Case
func Case[P, R any](fn func(P) R) Handler[R] {
	return tagged.Case[P, R](fn)
}

// Match a variant value with a set of cases, one per tag
func Match[R any](v Carrier, cases Cases[R]) R {
	return tagged.Match[R](v, cases)
}

// Unwrap returns the payload, panics with ErrTagMismatch on another tag
func Unwrap[P any](v Carrier, name string) P {
	return tagged.Unwrap[P](v, name)
}

// TryUnwrap is Unwrap returning ErrTagMismatch instead of panicking
func TryUnwrap[P any](v Carrier, name string) (P, error) {
	return tagged.TryUnwrap[P](v, name)
}

// Is checks if val is a variant value tagged with name
func Is(val any, name string) bool {
	return tagged.Is(val, name)
}
