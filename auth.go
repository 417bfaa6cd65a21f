package apiclient

import "net/http"

// authKind discriminates the Auth variants.
type authKind int

const (
	authNone authKind = iota
	authBasic
	authBearer
	authHeader
)

// Auth selects the credential applied to every request sent through a
// Client. The zero value is NoAuth. Auth values are immutable and safe to
// share across concurrent calls.
//
// Multi-step or stateful schemes (token refresh, request signing) do not
// belong here — implement the Api interface and do the work in PreRequest
// instead.
type Auth struct {
	kind  authKind
	user  string
	pass  string
	token string
	name  string
	value string
}

// NoAuth returns the Auth that adds nothing to requests.
func NoAuth() Auth {
	return Auth{}
}

// BasicAuth returns an Auth that sets HTTP basic credentials.
func BasicAuth(username, password string) Auth {
	return Auth{kind: authBasic, user: username, pass: password}
}

// BearerAuth returns an Auth that sets an Authorization bearer token.
func BearerAuth(token string) Auth {
	return Auth{kind: authBearer, token: token}
}

// HeaderAuth returns an Auth that sets a single named header, for simple
// custom schemes (API keys and the like) without growing the variant set.
func HeaderAuth(name, value string) Auth {
	return Auth{kind: authHeader, name: name, value: value}
}

// apply sets the credential on req. Exactly one branch executes.
func (a Auth) apply(req *http.Request) {
	switch a.kind {
	case authNone:
	case authBasic:
		req.SetBasicAuth(a.user, a.pass)
	case authBearer:
		req.Header.Set("Authorization", "Bearer "+a.token)
	case authHeader:
		req.Header.Set(a.name, a.value)
	}
}
