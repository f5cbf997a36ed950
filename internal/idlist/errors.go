package idlist

import (
	"errors"
	"fmt"
)

// Kind classifies why an identifier list could not be decoded.
type Kind int

const (
	// KindDecode means the text is not valid JSON.
	KindDecode Kind = iota + 1
	// KindShape means the text is valid JSON but not an array.
	KindShape
	// KindUnexpected covers every other failure, such as non-string elements.
	KindUnexpected
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindDecode:
		return "decode"
	case KindShape:
		return "shape"
	case KindUnexpected:
		return "unexpected"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ErrNotArray is wrapped by every KindShape error.
var ErrNotArray = errors.New("value is not an array")

// Error is the error type returned by Decode and the encoders.
type Error struct {
	Kind Kind
	Err  error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s error: %v", e.Kind, e.Err)
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf reports the Kind carried by err. Errors that did not come from this
// package are KindUnexpected.
func KindOf(err error) Kind {
	var listErr *Error
	if errors.As(err, &listErr) {
		return listErr.Kind
	}
	return KindUnexpected
}

func newError(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Err: fmt.Errorf(format, args...)}
}
