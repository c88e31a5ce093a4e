// Package envelope defines the JSON wrapper returned by every endpoint:
//
//	{"data": <payload>}  or  {"errors": ["...", ...]}
//
// An Envelope is either a success or a failure, never both. The only way
// to build one is through Success, Failure or FailureList.
package envelope

import (
	"bytes"
	"encoding/json"
)

// GenericError is used by FailureList when handed an empty list.
const GenericError = "unexpected error"

// Envelope wraps a payload of type T or a non-empty list of error messages.
type Envelope[T any] struct {
	data   T
	errors []string
}

// Success wraps payload.
func Success[T any](payload T) Envelope[T] {
	return Envelope[T]{data: payload}
}

// Failure builds an error envelope. At least one message is required.
func Failure[T any](msg string, more ...string) Envelope[T] {
	errs := make([]string, 0, 1+len(more))
	errs = append(errs, msg)
	errs = append(errs, more...)
	return Envelope[T]{errors: errs}
}

// FailureList builds an error envelope from errs, substituting
// GenericError when errs is empty.
func FailureList[T any](errs []string) Envelope[T] {
	if len(errs) == 0 {
		return Failure[T](GenericError)
	}
	return Failure[T](errs[0], errs[1:]...)
}

// OK reports whether e is a success.
func (e Envelope[T]) OK() bool {
	return len(e.errors) == 0
}

// Data returns the payload and true for a success, or the zero value and
// false for a failure.
func (e Envelope[T]) Data() (T, bool) {
	return e.data, e.OK()
}

// Errors returns a copy of the error messages; nil for a success.
func (e Envelope[T]) Errors() []string {
	if e.OK() {
		return nil
	}
	out := make([]string, len(e.errors))
	copy(out, e.errors)
	return out
}

type wire struct {
	Data   json.RawMessage `json:"data,omitempty"`
	Errors []string        `json:"errors,omitempty"`
}

var jsonNull = []byte("null")

// MarshalJSON emits only the populated side. A success whose payload
// encodes to null is written as {}.
func (e Envelope[T]) MarshalJSON() ([]byte, error) {
	if !e.OK() {
		return json.Marshal(wire{Errors: e.errors})
	}

	raw, err := json.Marshal(e.data)
	if err != nil {
		return nil, err
	}
	if bytes.Equal(raw, jsonNull) {
		raw = nil
	}
	return json.Marshal(wire{Data: raw})
}

// UnmarshalJSON decodes either shape. A body carrying errors is a failure
// regardless of any data present.
func (e *Envelope[T]) UnmarshalJSON(b []byte) error {
	var w wire
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}

	if len(w.Errors) > 0 {
		*e = FailureList[T](w.Errors)
		return nil
	}

	var payload T
	if len(w.Data) > 0 {
		if err := json.Unmarshal(w.Data, &payload); err != nil {
			return err
		}
	}
	*e = Success(payload)
	return nil
}
