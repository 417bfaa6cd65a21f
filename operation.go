package apiclient

import "context"

// Void is used as the Body type parameter for endpoints without a request
// body.
type Void struct{}

// Operation is a bound, callable endpoint. It is a pure function of the
// client state and the call arguments: body is the request payload (pass
// nil for Void), and args supplies the endpoint's declared parameters in
// declaration order. Operations hold no mutable state and are safe to
// call concurrently against the same Api.
type Operation[Body, Resp any] func(ctx context.Context, a Api, body *Body, args ...any) (Resp, error)
