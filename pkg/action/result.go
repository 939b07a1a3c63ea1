package action

import (
	"encoding/json"
	"errors"
)

// Result is the outcome of a facade operation: either Ok with data or Err
// with a user facing message. There is no partial success.
type Result[T any] struct {
	ok   bool
	data T

	message string
	cause   error
}

func Ok[T any](data T) Result[T] {
	return Result[T]{
		ok:   true,
		data: data,
	}
}

func Err[T any](message string) Result[T] {
	return Result[T]{
		message: message,
	}
}

func (r Result[T]) IsOk() bool {
	return r.ok
}

// Get returns the data and true for Ok results.
func (r Result[T]) Get() (T, bool) {
	return r.data, r.ok
}

// Message returns the user facing error message of an Err result.
func (r Result[T]) Message() string {
	return r.message
}

// Cause returns the technical error behind an Err result. It is never
// serialized.
func (r Result[T]) Cause() error {
	return r.cause
}

type envelope[T any] struct {
	Success bool `json:"success"`

	Data  *T     `json:"data,omitempty"`
	Error string `json:"error,omitempty"`
}

func (r Result[T]) MarshalJSON() ([]byte, error) {
	if r.ok {
		return json.Marshal(envelope[T]{
			Success: true,
			Data:    &r.data,
		})
	}

	return json.Marshal(envelope[T]{
		Error: r.message,
	})
}

func (r *Result[T]) UnmarshalJSON(data []byte) error {
	var e envelope[T]

	if err := json.Unmarshal(data, &e); err != nil {
		return err
	}

	if !e.Success {
		if e.Error == "" {
			return errors.New("missing error message")
		}

		*r = Err[T](e.Error)
		return nil
	}

	var value T

	if e.Data != nil {
		value = *e.Data
	}

	*r = Ok(value)
	return nil
}
