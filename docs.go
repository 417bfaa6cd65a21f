package apiclient

import (
	"io"

	"gopkg.in/yaml.v3"
)

// EndpointInfo is a read-only description of one declared endpoint, in
// declaration order, for schema dumps and docs.
type EndpointInfo struct {
	Name     string       `yaml:"name"`
	Method   string       `yaml:"method"`
	URL      string       `yaml:"url"`
	Summary  string       `yaml:"summary,omitempty"`
	Params   []string     `yaml:"params,omitempty"`
	Headers  []HeaderInfo `yaml:"headers,omitempty"`
	Body     string       `yaml:"body"`
	Response string       `yaml:"response"`
}

// HeaderInfo is one declared header template.
type HeaderInfo struct {
	Name  string `yaml:"name"`
	Value string `yaml:"value"`
}

// Endpoints returns descriptions of every successfully declared endpoint.
func (s *Schema) Endpoints() []EndpointInfo {
	s.mu.Lock()
	defer s.mu.Unlock()

	infos := make([]EndpointInfo, 0, len(s.endpoints))
	for _, e := range s.endpoints {
		info := EndpointInfo{
			Name:     e.name,
			Method:   e.method,
			URL:      e.rawURL,
			Summary:  e.summary,
			Params:   e.params,
			Body:     e.bodyKind.String(),
			Response: e.respKind.String(),
		}
		for _, h := range e.headers {
			info.Headers = append(info.Headers, HeaderInfo{Name: h.name, Value: h.raw})
		}
		infos = append(infos, info)
	}
	return infos
}

// WriteYAML writes the declared endpoint set as a YAML document.
func (s *Schema) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close() //nolint:errcheck // flushed by Encode
	return enc.Encode(struct {
		Endpoints []EndpointInfo `yaml:"endpoints"`
	}{Endpoints: s.Endpoints()})
}
