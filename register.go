package apiclient

import (
	"net/http"
	"reflect"
)

// register is the internal generic declaration function. It validates the
// descriptor eagerly: templates are parsed, every placeholder is resolved
// against the declared scope, and duplicate names are rejected. On
// success it returns the bound operation; on failure it records a
// GenerationError on the schema and returns nil — no operation is
// emitted.
func register[Body, Resp any](reg Registrar, method, name, url string, opts ...EndpointOption) Operation[Body, Resp] {
	s := reg.schema()

	e := &Endpoint{
		name:     name,
		method:   method,
		rawURL:   reg.expand(url),
		bodyType: reflect.TypeFor[Body](),
	}
	for _, h := range reg.headerDefaults() {
		e.headers = append(e.headers, headerTemplate{name: h[0], raw: h[1]})
	}
	for _, opt := range opts {
		opt(e)
	}

	e.bodyKind = classifyBody(e.bodyType)
	e.respKind = classifyResponse(reflect.TypeFor[Resp]())

	if err := e.compile(s.constants); err != nil {
		s.fail(name, err)
		return nil
	}
	if err := s.add(e); err != nil {
		s.fail(name, err)
		return nil
	}

	return bind[Body, Resp](e)
}

// Get declares a GET endpoint with no request body.
func Get[Resp any](reg Registrar, name, url string, opts ...EndpointOption) Operation[Void, Resp] {
	return register[Void, Resp](reg, http.MethodGet, name, url, opts...)
}

// Delete declares a DELETE endpoint with no request body.
func Delete[Resp any](reg Registrar, name, url string, opts ...EndpointOption) Operation[Void, Resp] {
	return register[Void, Resp](reg, http.MethodDelete, name, url, opts...)
}

// Head declares a HEAD endpoint. HEAD responses have no body, so the
// operation yields the status code.
func Head(reg Registrar, name, url string, opts ...EndpointOption) Operation[Void, StatusCode] {
	return register[Void, StatusCode](reg, http.MethodHead, name, url, opts...)
}

// Post declares a POST endpoint. The body kind follows the Body type:
// Void attaches nothing, Multipart a prebuilt multipart payload, a struct
// with form tags a URL-encoded form, and anything else JSON.
func Post[Body, Resp any](reg Registrar, name, url string, opts ...EndpointOption) Operation[Body, Resp] {
	return register[Body, Resp](reg, http.MethodPost, name, url, opts...)
}

// Put declares a PUT endpoint. Body handling matches Post.
func Put[Body, Resp any](reg Registrar, name, url string, opts ...EndpointOption) Operation[Body, Resp] {
	return register[Body, Resp](reg, http.MethodPut, name, url, opts...)
}

// Patch declares a PATCH endpoint. Body handling matches Post.
func Patch[Body, Resp any](reg Registrar, name, url string, opts ...EndpointOption) Operation[Body, Resp] {
	return register[Body, Resp](reg, http.MethodPatch, name, url, opts...)
}
