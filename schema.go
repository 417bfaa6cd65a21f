package apiclient

import (
	"errors"
	"fmt"
	"sync"
)

// Schema is the declaration scope for a set of endpoints: it holds the
// constants templates may reference, collects declared endpoints, and
// records generation errors. Declare all endpoints, then gate on Err or
// Must before the operations are used — an endpoint that fails validation
// emits no operation.
type Schema struct {
	mu        sync.Mutex
	constants map[string]string
	endpoints []*Endpoint
	names     map[string]bool
	errs      []error
}

// SchemaOption configures a Schema.
type SchemaOption func(*Schema)

// WithConstant defines a named constant available to every template in
// the schema.
func WithConstant(name, value string) SchemaOption {
	return func(s *Schema) {
		s.constants[name] = value
	}
}

// WithConstants defines multiple constants at once.
func WithConstants(m map[string]string) SchemaOption {
	return func(s *Schema) {
		for name, value := range m {
			s.constants[name] = value
		}
	}
}

// NewSchema creates a Schema with the given options.
func NewSchema(opts ...SchemaOption) *Schema {
	s := &Schema{
		constants: make(map[string]string),
		names:     make(map[string]bool),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Err returns all generation errors recorded while declaring endpoints,
// joined, or nil if every declaration validated. A schema with errors is
// incomplete and must not be used.
func (s *Schema) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return errors.Join(s.errs...)
}

// Must panics if any declaration failed. It returns the schema so it can
// close a declaration block:
//
//	var s = declareEndpoints().Must()
func (s *Schema) Must() *Schema {
	if err := s.Err(); err != nil {
		panic(err)
	}
	return s
}

// add records a validated endpoint, rejecting duplicate names.
func (s *Schema) add(e *Endpoint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.names[e.name] {
		return fmt.Errorf("%w: %q", ErrDuplicateEndpoint, e.name)
	}
	s.names[e.name] = true
	s.endpoints = append(s.endpoints, e)
	return nil
}

// fail records a generation error for the named endpoint.
func (s *Schema) fail(name string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errs = append(s.errs, &GenerationError{Endpoint: name, Err: err})
}

// Registrar is the interface accepted by the declaration functions.
// Both *Schema and *Group implement it.
type Registrar interface {
	schema() *Schema
	expand(url string) string
	headerDefaults() [][2]string
}

func (s *Schema) schema() *Schema             { return s }
func (s *Schema) expand(url string) string    { return url }
func (s *Schema) headerDefaults() [][2]string { return nil }
