package apiclient_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/apiclient"
	"github.com/bjaus/apiclient/apitest"
)

func TestMiddleware_order(t *testing.T) {
	t.Parallel()

	srv := apitest.NewServer(t)
	op := declarePing(t, srv)

	tag := func(v string) apiclient.Middleware {
		return func(next http.RoundTripper) http.RoundTripper {
			return apiclient.RoundTripperFunc(func(req *http.Request) (*http.Response, error) {
				req = req.Clone(req.Context())
				req.Header.Add("X-Order", v)
				return next.RoundTrip(req)
			})
		}
	}

	c := apiclient.NewClient(apiclient.WithMiddleware(tag("outer"), tag("inner")))

	_, err := op(context.Background(), c, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"outer", "inner"}, srv.Last().Header.Values("X-Order"))
}

func TestUserAgent(t *testing.T) {
	t.Parallel()

	srv := apitest.NewServer(t)
	op := declarePing(t, srv)

	c := apiclient.NewClient(apiclient.WithMiddleware(apiclient.UserAgent("myclient/2.0")))
	_, err := op(context.Background(), c, nil)
	require.NoError(t, err)
	assert.Equal(t, "myclient/2.0", srv.Last().Header.Get("User-Agent"))
}

func TestUserAgent_does_not_override(t *testing.T) {
	t.Parallel()

	srv := apitest.NewServer(t)
	s := apiclient.NewSchema(apiclient.WithConstant("base", srv.URL()))
	op := apiclient.Get[apiclient.StatusCode](s, "ping", "{base}/ping",
		apiclient.WithHeader("User-Agent", "endpoint/1.0"))
	require.NoError(t, s.Err())

	c := apiclient.NewClient(apiclient.WithMiddleware(apiclient.UserAgent("fallback/1.0")))
	_, err := op(context.Background(), c, nil)
	require.NoError(t, err)
	assert.Equal(t, "endpoint/1.0", srv.Last().Header.Get("User-Agent"))
}

func TestRequestID_generates(t *testing.T) {
	t.Parallel()

	srv := apitest.NewServer(t)
	op := declarePing(t, srv)

	c := apiclient.NewClient(apiclient.WithMiddleware(apiclient.RequestID()))

	_, err := op(context.Background(), c, nil)
	require.NoError(t, err)
	first := srv.Last().Header.Get("X-Request-ID")
	assert.Len(t, first, 16)

	_, err = op(context.Background(), c, nil)
	require.NoError(t, err)
	assert.NotEqual(t, first, srv.Last().Header.Get("X-Request-ID"))
}

func TestRequestID_custom(t *testing.T) {
	t.Parallel()

	srv := apitest.NewServer(t)
	op := declarePing(t, srv)

	c := apiclient.NewClient(apiclient.WithMiddleware(apiclient.RequestID(apiclient.RequestIDConfig{
		Header:    "X-Trace-ID",
		Generator: func() string { return "fixed" },
	})))

	_, err := op(context.Background(), c, nil)
	require.NoError(t, err)
	assert.Equal(t, "fixed", srv.Last().Header.Get("X-Trace-ID"))
}
