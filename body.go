package apiclient

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/url"
	"reflect"
	"strconv"
	"strings"
)

// BodyKind describes how a request payload is encoded.
type BodyKind int

const (
	// BodyNone attaches no payload.
	BodyNone BodyKind = iota
	// BodyJSON serializes the body value as JSON.
	BodyJSON
	// BodyForm serializes the body value as URL-encoded key/value pairs
	// in field-declaration order.
	BodyForm
	// BodyMultipart attaches a prebuilt multipart payload.
	BodyMultipart
)

// String returns the kind name as used in schema descriptions.
func (k BodyKind) String() string {
	switch k {
	case BodyNone:
		return "none"
	case BodyJSON:
		return "json"
	case BodyForm:
		return "form"
	case BodyMultipart:
		return "multipart"
	}
	return "unknown"
}

// classifyBody determines the body kind from a declared body type:
// Void means no body, *Multipart a prebuilt multipart payload, a struct
// with form tags a URL-encoded form, and anything else JSON.
func classifyBody(t reflect.Type) BodyKind {
	if t == reflect.TypeFor[Void]() {
		return BodyNone
	}
	if t == reflect.TypeFor[Multipart]() || t == reflect.TypeFor[*Multipart]() {
		return BodyMultipart
	}
	if hasFormTags(t) {
		return BodyForm
	}
	return BodyJSON
}

// encodeForm encodes v as application/x-www-form-urlencoded, preserving
// field declaration order.
func encodeForm(v reflect.Value) string {
	for v.Kind() == reflect.Pointer {
		v = v.Elem()
	}
	var b strings.Builder
	for _, f := range formFields(v.Type()) {
		if b.Len() > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(f.name))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(stringify(v.FieldByIndex(f.index))))
	}
	return b.String()
}

// stringify converts a value to its string form for form encoding and
// template interpolation.
func stringify(v reflect.Value) string {
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return ""
		}
		v = v.Elem()
	}
	//exhaustive:ignore
	switch v.Kind() {
	case reflect.String:
		return v.String()
	case reflect.Bool:
		return strconv.FormatBool(v.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(v.Uint(), 10)
	case reflect.Float32:
		return strconv.FormatFloat(v.Float(), 'f', -1, 32)
	case reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'f', -1, 64)
	default:
		return fmt.Sprint(v.Interface())
	}
}

// Multipart is a prebuilt multipart/form-data payload, used as the body
// type of an endpoint. Parts are written in the order they are added.
// Builder methods record the first error; it surfaces when the request
// body is attached.
type Multipart struct {
	buf  bytes.Buffer
	w    *multipart.Writer
	err  error
	done bool
}

// NewMultipart returns an empty multipart payload builder.
func NewMultipart() *Multipart {
	m := &Multipart{}
	m.w = multipart.NewWriter(&m.buf)
	return m
}

// Text adds a text field.
func (m *Multipart) Text(name, value string) *Multipart {
	if m.err == nil {
		m.err = m.w.WriteField(name, value)
	}
	return m
}

// File adds a file part, reading its content from r.
func (m *Multipart) File(fieldname, filename string, r io.Reader) *Multipart {
	if m.err != nil {
		return m
	}
	part, err := m.w.CreateFormFile(fieldname, filename)
	if err != nil {
		m.err = err
		return m
	}
	_, m.err = io.Copy(part, r)
	return m
}

// content finalizes the payload and returns its content type and bytes.
func (m *Multipart) content() (string, []byte, error) {
	if m.err != nil {
		return "", nil, m.err
	}
	if !m.done {
		if err := m.w.Close(); err != nil {
			return "", nil, err
		}
		m.done = true
	}
	return m.w.FormDataContentType(), m.buf.Bytes(), nil
}
