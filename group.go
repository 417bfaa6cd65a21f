package apiclient

// Group declares endpoints under a shared URL template prefix with shared
// default headers.
type Group struct {
	s       *Schema
	prefix  string
	headers [][2]string
}

// GroupOption configures a Group.
type GroupOption func(*Group)

// WithGroupHeader declares a default header for every endpoint in the
// group. The value is a template, interpolated per call like endpoint
// headers.
func WithGroupHeader(name, value string) GroupOption {
	return func(g *Group) {
		g.headers = append(g.headers, [2]string{name, value})
	}
}

// Group creates an endpoint group with the given URL template prefix.
// The prefix participates in template validation like any other part of
// the endpoint URL.
func (s *Schema) Group(prefix string, opts ...GroupOption) *Group {
	g := &Group{s: s, prefix: prefix}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *Group) schema() *Schema             { return g.s }
func (g *Group) expand(url string) string    { return g.prefix + url }
func (g *Group) headerDefaults() [][2]string { return g.headers }
