package apiclient

import (
	"errors"
	"fmt"
)

// Sentinel errors for descriptor validation and call argument binding.
var (
	ErrBadTemplate           = errors.New("malformed template")
	ErrUnresolvedPlaceholder = errors.New("unresolved placeholder")
	ErrDuplicateEndpoint     = errors.New("duplicate endpoint")
	ErrDuplicateParam        = errors.New("duplicate parameter")
	ErrArgumentCount         = errors.New("argument count mismatch")
	ErrEncodeBody            = errors.New("encode body")
)

// GenerationError reports an ill-formed endpoint descriptor. It is
// produced while an endpoint is declared, recorded on the Schema, and
// never surfaces from a call — an endpoint that fails generation emits
// no operation.
type GenerationError struct {
	Endpoint string
	Err      error
}

// Error describes the failing endpoint and cause.
func (e *GenerationError) Error() string {
	return fmt.Sprintf("apiclient: endpoint %q: %v", e.Endpoint, e.Err)
}

// Unwrap returns the underlying cause.
func (e *GenerationError) Unwrap() error { return e.Err }

// AuthError reports a failure from the PreRequest hook. It is returned
// before any network I/O happens.
type AuthError struct {
	Endpoint string
	Err      error
}

// Error describes the failing endpoint and cause.
func (e *AuthError) Error() string {
	return fmt.Sprintf("apiclient: endpoint %q: pre-request: %v", e.Endpoint, e.Err)
}

// Unwrap returns the underlying cause.
func (e *AuthError) Unwrap() error { return e.Err }

// RequestError reports a transport-level failure while sending the
// request. The transport's error is carried unchanged as the cause.
type RequestError struct {
	Endpoint string
	Err      error
}

// Error describes the failing endpoint and cause.
func (e *RequestError) Error() string {
	return fmt.Sprintf("apiclient: endpoint %q: request: %v", e.Endpoint, e.Err)
}

// Unwrap returns the underlying cause.
func (e *RequestError) Unwrap() error { return e.Err }

// DecodeError reports a response body that could not be converted to the
// endpoint's declared response kind.
type DecodeError struct {
	Endpoint string
	Err      error
}

// Error describes the failing endpoint and cause.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("apiclient: endpoint %q: decode: %v", e.Endpoint, e.Err)
}

// Unwrap returns the underlying cause.
func (e *DecodeError) Unwrap() error { return e.Err }
