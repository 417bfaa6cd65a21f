package apiclient

import (
	"reflect"
	"strings"
)

// fieldInfo is one encodable body field: its wire name and reflect index.
type fieldInfo struct {
	name  string
	index []int
}

// deref unwraps pointer types.
func deref(t reflect.Type) reflect.Type {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}

// hasFormTags reports whether the given type has any exported fields with
// a "form" struct tag. Such body types are encoded as URL-encoded forms.
func hasFormTags(t reflect.Type) bool {
	t = deref(t)
	if t.Kind() != reflect.Struct {
		return false
	}
	for i := range t.NumField() {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		if f.Tag.Get("form") != "" {
			return true
		}
	}
	return false
}

// formFields returns the form-tagged fields of t in declaration order.
func formFields(t reflect.Type) []fieldInfo {
	t = deref(t)
	if t.Kind() != reflect.Struct {
		return nil
	}
	var fields []fieldInfo
	for i := range t.NumField() {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		name := f.Tag.Get("form")
		if name == "" || name == "-" {
			continue
		}
		fields = append(fields, fieldInfo{name: name, index: f.Index})
	}
	return fields
}

// jsonFields returns the JSON-encodable fields of t in declaration order,
// using the json tag name when present and the Go field name otherwise.
func jsonFields(t reflect.Type) []fieldInfo {
	t = deref(t)
	if t.Kind() != reflect.Struct {
		return nil
	}
	var fields []fieldInfo
	for i := range t.NumField() {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		name := f.Name
		if tag := f.Tag.Get("json"); tag != "" {
			tagName, _, _ := strings.Cut(tag, ",")
			if tagName == "-" {
				continue
			}
			if tagName != "" {
				name = tagName
			}
		}
		fields = append(fields, fieldInfo{name: name, index: f.Index})
	}
	return fields
}
