package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"reflect"
)

// bind closes a validated endpoint over the assembly pipeline. Every call
// runs the same fixed sequence: interpolate the URL, build the request,
// run the PreRequest hook, apply the client's Auth, set the declared
// headers, attach the body, send, and decode. Exactly one network call
// happens per invocation; no retries, caching, or status-based failures
// live here.
func bind[Body, Resp any](e *Endpoint) Operation[Body, Resp] {
	return func(ctx context.Context, a Api, body *Body, args ...any) (Resp, error) {
		var zero Resp

		if len(args) != len(e.params) {
			return zero, fmt.Errorf("%w: endpoint %q takes %d argument(s), got %d",
				ErrArgumentCount, e.name, len(e.params), len(args))
		}
		resolve := e.resolver(reflect.ValueOf(body), args)

		req, err := e.newRequest(ctx, resolve)
		if err != nil {
			return zero, &RequestError{Endpoint: e.name, Err: err}
		}

		// The hook runs before any network I/O; its failure aborts the
		// call as an AuthError.
		req, err = a.PreRequest(req)
		if err != nil {
			return zero, &AuthError{Endpoint: e.name, Err: err}
		}

		if auth, ok := a.(Authenticator); ok {
			auth.Auth().apply(req)
		}

		e.applyHeaders(req, resolve)

		if err := e.attachBody(req, body); err != nil {
			return zero, err
		}

		res, err := a.HTTPClient().Do(req)
		if err != nil {
			return zero, &RequestError{Endpoint: e.name, Err: err}
		}
		defer res.Body.Close() //nolint:errcheck // read side

		return decodeResponse[Resp](e, res)
	}
}

// resolver returns the placeholder lookup for one call. Bindings were
// fixed at declaration time; this only fetches values.
func (e *Endpoint) resolver(body reflect.Value, args []any) func(name string) string {
	return func(name string) string {
		b := e.bindings[name]
		switch b.kind {
		case bindConst:
			return b.value
		case bindParam:
			return stringify(reflect.ValueOf(args[b.param]))
		case bindField:
			v := body
			for v.Kind() == reflect.Pointer {
				v = v.Elem()
			}
			if !v.IsValid() {
				return ""
			}
			return stringify(v.FieldByIndex(b.field))
		}
		return ""
	}
}

// newRequest interpolates the URL template and builds the base request.
// The body is attached later, after the hook and auth have run.
func (e *Endpoint) newRequest(ctx context.Context, resolve func(string) string) (*http.Request, error) {
	return http.NewRequestWithContext(ctx, e.method, e.url.interpolate(resolve), nil)
}

// applyHeaders sets the descriptor-declared headers, interpolating each
// value for this call.
func (e *Endpoint) applyHeaders(req *http.Request, resolve func(string) string) {
	for _, h := range e.headers {
		req.Header.Set(h.name, h.tmpl.interpolate(resolve))
	}
}

// attachBody encodes and attaches the request payload per the endpoint's
// body kind.
func (e *Endpoint) attachBody(req *http.Request, body any) error {
	switch e.bodyKind {
	case BodyNone:
		return nil
	case BodyJSON:
		b, err := json.Marshal(body)
		if err != nil {
			return &RequestError{Endpoint: e.name, Err: fmt.Errorf("%w: %w", ErrEncodeBody, err)}
		}
		setBody(req, "application/json", b)
		return nil
	case BodyForm:
		v := reflect.ValueOf(body)
		for v.Kind() == reflect.Pointer {
			if v.IsNil() {
				return &RequestError{Endpoint: e.name, Err: fmt.Errorf("%w: nil form body", ErrEncodeBody)}
			}
			v = v.Elem()
		}
		setBody(req, "application/x-www-form-urlencoded", []byte(encodeForm(v)))
		return nil
	case BodyMultipart:
		m, err := toMultipart(body)
		if err != nil {
			return &RequestError{Endpoint: e.name, Err: fmt.Errorf("%w: %w", ErrEncodeBody, err)}
		}
		ct, b, err := m.content()
		if err != nil {
			return &RequestError{Endpoint: e.name, Err: fmt.Errorf("%w: %w", ErrEncodeBody, err)}
		}
		setBody(req, ct, b)
		return nil
	}
	return nil
}

// toMultipart unwraps the operation's *Body into the Multipart builder.
func toMultipart(body any) (*Multipart, error) {
	switch m := body.(type) {
	case *Multipart:
		if m == nil {
			return nil, fmt.Errorf("nil multipart body")
		}
		return m, nil
	case **Multipart:
		if m == nil || *m == nil {
			return nil, fmt.Errorf("nil multipart body")
		}
		return *m, nil
	}
	return nil, fmt.Errorf("multipart body has unexpected type %T", body)
}

// setBody attaches an in-memory payload with a replayable GetBody, so
// transport-level middleware such as Retry can re-send it.
func setBody(req *http.Request, contentType string, b []byte) {
	req.Header.Set("Content-Type", contentType)
	req.ContentLength = int64(len(b))
	req.Body = io.NopCloser(bytes.NewReader(b))
	req.GetBody = func() (io.ReadCloser, error) {
		return io.NopCloser(bytes.NewReader(b)), nil
	}
}
