// Package apiclient is a generics-first declarative HTTP client for Go.
// Endpoints are described once — method, URL template, header templates,
// body and response types — and the package emits strongly-typed callable
// operations that share a single client.
//
// Endpoints are declared with package-level generic functions against a
// Schema, which holds the constants templates may reference:
//
//	s := apiclient.NewSchema(apiclient.WithConstant("base", "https://api.example.com"))
//
//	todos      := apiclient.Get[[]Todo](s, "todos", "{base}/todos")
//	todo       := apiclient.Get[Todo](s, "todo", "{base}/todos/{id}", apiclient.WithParams("id"))
//	createTodo := apiclient.Post[CreateTodo, Todo](s, "create_todo", "{base}/todos")
//	deleteTodo := apiclient.Delete[apiclient.StatusCode](s, "delete_todo", "{base}/todos/{id}", apiclient.WithParams("id"))
//	s.Must()
//
// Every descriptor is validated when it is declared: unresolved template
// placeholders, malformed templates, and duplicate endpoint names are
// generation errors, surfaced through Schema.Err or Schema.Must before any
// call is made — never at call time.
//
// Operations run against any value implementing the Api interface. The
// default Client carries a fresh http.Client and an Auth value:
//
//	c := apiclient.NewClient(apiclient.WithAuth(apiclient.BearerAuth(token)))
//
//	item, err := todo(ctx, c, nil, 1)
//	status, err := deleteTodo(ctx, c, nil, 1)
//
// The response kind is chosen by the response type parameter: StatusCode
// yields only the status, Text the decoded body text, Bytes the raw body,
// and any other type is decoded from JSON. A non-success status is never
// an error by itself.
//
// Request customization — signing, token refresh, custom headers — goes
// through the PreRequest hook on the Api interface. Cross-cutting concerns
// such as logging, rate limiting, and retries attach at the transport via
// Middleware:
//
//	c := apiclient.NewClient(apiclient.WithMiddleware(
//	    apiclient.Logging(slog.Default()),
//	    apiclient.RateLimit(apiclient.RateLimitConfig{Rate: 10, Burst: 5}),
//	))
package apiclient
