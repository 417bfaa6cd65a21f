package apiclient

import (
	"encoding/json"
	"io"
	"net/http"
	"reflect"
)

// ResponseKind describes how a response body is consumed.
type ResponseKind int

const (
	// RespStatus yields only the HTTP status code; the body is discarded.
	RespStatus ResponseKind = iota
	// RespText yields the body as text.
	RespText
	// RespBytes yields the raw body bytes.
	RespBytes
	// RespJSON decodes the body as JSON into the response type.
	RespJSON
)

// String returns the kind name as used in schema descriptions.
func (k ResponseKind) String() string {
	switch k {
	case RespStatus:
		return "status"
	case RespText:
		return "text"
	case RespBytes:
		return "bytes"
	case RespJSON:
		return "json"
	}
	return "unknown"
}

// StatusCode is the response type of an endpoint that only cares about
// the HTTP status. The status is returned for success and non-success
// responses alike.
type StatusCode int

// Success reports whether the status is in the 2xx range.
func (s StatusCode) Success() bool { return s >= 200 && s < 300 }

// Text is the response type of an endpoint whose body is consumed as text.
type Text string

// Bytes is the response type of an endpoint whose body is consumed raw.
type Bytes []byte

// classifyResponse determines the response kind from a declared response
// type: StatusCode, Text, and Bytes select their kinds; anything else is
// decoded from JSON.
func classifyResponse(t reflect.Type) ResponseKind {
	switch t {
	case reflect.TypeFor[StatusCode]():
		return RespStatus
	case reflect.TypeFor[Text]():
		return RespText
	case reflect.TypeFor[Bytes]():
		return RespBytes
	}
	return RespJSON
}

// decodeResponse converts res into Resp per the endpoint's response kind.
// The status code is never inspected: a non-success response decodes the
// same way a success does.
func decodeResponse[Resp any](e *Endpoint, res *http.Response) (Resp, error) {
	var zero Resp
	switch e.respKind {
	case RespStatus:
		return any(StatusCode(res.StatusCode)).(Resp), nil
	case RespText:
		b, err := io.ReadAll(res.Body)
		if err != nil {
			return zero, &DecodeError{Endpoint: e.name, Err: err}
		}
		return any(Text(b)).(Resp), nil
	case RespBytes:
		b, err := io.ReadAll(res.Body)
		if err != nil {
			return zero, &DecodeError{Endpoint: e.name, Err: err}
		}
		return any(Bytes(b)).(Resp), nil
	case RespJSON:
		var out Resp
		if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
			return zero, &DecodeError{Endpoint: e.name, Err: err}
		}
		return out, nil
	}
	return zero, nil
}
