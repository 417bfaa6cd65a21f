package apiclient

import (
	"fmt"
	"reflect"
)

// Endpoint is the immutable descriptor for one operation: method, URL
// template, header templates, parameter list, and body/response kinds.
// It is declared once, validated at declaration time, and shared by every
// call to the operation.
type Endpoint struct {
	name    string
	method  string
	rawURL  string
	summary string

	params  []string
	headers []headerTemplate

	bodyKind BodyKind
	respKind ResponseKind
	bodyType reflect.Type

	url      *template
	bindings map[string]binding
}

// headerTemplate is one descriptor-declared header with a templated value.
type headerTemplate struct {
	name string
	raw  string
	tmpl *template
}

// EndpointOption configures an endpoint at declaration time.
type EndpointOption func(*Endpoint)

// WithParams declares the endpoint's extra parameters, in the order the
// operation's call arguments supply them. Template placeholders may
// reference them by name.
func WithParams(names ...string) EndpointOption {
	return func(e *Endpoint) {
		e.params = append(e.params, names...)
	}
}

// WithHeader declares a header on the endpoint. The value is a template
// interpolated per call against the same scope as the URL.
func WithHeader(name, value string) EndpointOption {
	return func(e *Endpoint) {
		e.headers = append(e.headers, headerTemplate{name: name, raw: value})
	}
}

// WithSummary sets a short description, surfaced in schema dumps.
func WithSummary(s string) EndpointOption {
	return func(e *Endpoint) {
		e.summary = s
	}
}

// bindKind discriminates placeholder bindings.
type bindKind int

const (
	bindConst bindKind = iota
	bindParam
	bindField
)

// binding records where a placeholder's value comes from at call time.
// Resolution happens once, at declaration time.
type binding struct {
	kind  bindKind
	value string // bindConst: the constant's value
	param int    // bindParam: index into the call arguments
	field []int  // bindField: reflect index into the body value
}

// compile parses the endpoint's templates and resolves every placeholder
// against the declared scope: call parameters, then body fields (JSON and
// form bodies only), then schema constants. Any failure is a generation
// failure; the endpoint must not be used.
func (e *Endpoint) compile(constants map[string]string) error {
	var err error
	if e.url, err = parseTemplate(e.rawURL); err != nil {
		return err
	}
	for i := range e.headers {
		if e.headers[i].tmpl, err = parseTemplate(e.headers[i].raw); err != nil {
			return err
		}
	}

	seen := make(map[string]bool, len(e.params))
	for _, p := range e.params {
		if !validIdent(p) {
			return fmt.Errorf("%w: invalid parameter name %q", ErrBadTemplate, p)
		}
		if seen[p] {
			return fmt.Errorf("%w: %q", ErrDuplicateParam, p)
		}
		seen[p] = true
	}

	var fields []fieldInfo
	switch e.bodyKind {
	case BodyForm:
		fields = formFields(e.bodyType)
	case BodyJSON:
		fields = jsonFields(e.bodyType)
	case BodyNone, BodyMultipart:
	}

	e.bindings = make(map[string]binding)
	names := e.url.placeholders()
	for _, h := range e.headers {
		names = append(names, h.tmpl.placeholders()...)
	}
	for _, name := range names {
		if _, ok := e.bindings[name]; ok {
			continue
		}
		b, ok := e.resolve(name, constants, fields)
		if !ok {
			return fmt.Errorf("%w: {%s}", ErrUnresolvedPlaceholder, name)
		}
		e.bindings[name] = b
	}
	return nil
}

// resolve finds the binding for one placeholder name. Parameters shadow
// body fields, which shadow constants.
func (e *Endpoint) resolve(name string, constants map[string]string, fields []fieldInfo) (binding, bool) {
	for i, p := range e.params {
		if p == name {
			return binding{kind: bindParam, param: i}, true
		}
	}
	for _, f := range fields {
		if f.name == name {
			return binding{kind: bindField, field: f.index}, true
		}
	}
	if v, ok := constants[name]; ok {
		return binding{kind: bindConst, value: v}, true
	}
	return binding{}, false
}
