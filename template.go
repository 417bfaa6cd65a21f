package apiclient

import (
	"fmt"
	"strings"
)

// template is a parsed URL or header-value template: an alternating
// sequence of literal runs and {identifier} placeholders. Templates are
// parsed and scope-checked once, when the endpoint is declared, and only
// interpolated afterwards.
type template struct {
	raw  string
	segs []segment
}

// segment is one literal run or one placeholder.
type segment struct {
	lit  string
	name string // placeholder identifier; empty for literals
}

// parseTemplate parses raw into literal and placeholder segments.
// The grammar is deliberately minimal: a placeholder is "{" identifier "}"
// where an identifier is [A-Za-z_][A-Za-z0-9_]*. There are no escapes;
// stray braces are malformed.
func parseTemplate(raw string) (*template, error) {
	t := &template{raw: raw}
	rest := raw
	for rest != "" {
		open := strings.IndexByte(rest, '{')
		if open < 0 {
			if strings.IndexByte(rest, '}') >= 0 {
				return nil, fmt.Errorf("%w: unmatched %q in %q", ErrBadTemplate, "}", raw)
			}
			t.segs = append(t.segs, segment{lit: rest})
			break
		}
		if lit := rest[:open]; lit != "" {
			if strings.IndexByte(lit, '}') >= 0 {
				return nil, fmt.Errorf("%w: unmatched %q in %q", ErrBadTemplate, "}", raw)
			}
			t.segs = append(t.segs, segment{lit: lit})
		}
		rest = rest[open+1:]
		end := strings.IndexByte(rest, '}')
		if end < 0 {
			return nil, fmt.Errorf("%w: unterminated placeholder in %q", ErrBadTemplate, raw)
		}
		name := rest[:end]
		if !validIdent(name) {
			return nil, fmt.Errorf("%w: invalid placeholder %q in %q", ErrBadTemplate, "{"+name+"}", raw)
		}
		t.segs = append(t.segs, segment{name: name})
		rest = rest[end+1:]
	}
	return t, nil
}

// placeholders returns the placeholder identifiers in order of appearance,
// without deduplication.
func (t *template) placeholders() []string {
	var names []string
	for _, s := range t.segs {
		if s.name != "" {
			names = append(names, s.name)
		}
	}
	return names
}

// interpolate substitutes every placeholder using resolve. The resolver is
// total for validated templates: scope membership was checked when the
// endpoint was declared.
func (t *template) interpolate(resolve func(name string) string) string {
	var b strings.Builder
	b.Grow(len(t.raw))
	for _, s := range t.segs {
		if s.name != "" {
			b.WriteString(resolve(s.name))
			continue
		}
		b.WriteString(s.lit)
	}
	return b.String()
}

// validIdent reports whether name is a valid placeholder identifier.
func validIdent(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
