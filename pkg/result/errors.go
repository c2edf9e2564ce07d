package result

import "reflect"

const unwrapOnErr = "unwrap called on err"

// UnwrapError is the panic value of Unwrap on an err Result
type UnwrapError struct {
	msg string
	// Cause is the err payload as stored in the Result
	Cause any
}

func newUnwrapError(reason any) *UnwrapError {
	msg := unwrapOnErr
	if reason != nil {
		if rv := reflect.ValueOf(reason); rv.Kind() == reflect.String {
			msg = rv.String()
		}
	}
	return &UnwrapError{msg: msg, Cause: reason}
}

func (e *UnwrapError) Error() string {
	return e.msg
}

// Unwrap exposes Cause to errors.Is/As when it is an error
func (e *UnwrapError) Unwrap() error {
	if err, ok := e.Cause.(error); ok {
		return err
	}
	return nil
}
