package apiclient_test

import (
	"context"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/apiclient"
	"github.com/bjaus/apiclient/apitest"
)

func declarePing(t *testing.T, srv *apitest.Server) apiclient.Operation[apiclient.Void, apiclient.StatusCode] {
	t.Helper()
	s := apiclient.NewSchema(apiclient.WithConstant("base", srv.URL()))
	op := apiclient.Get[apiclient.StatusCode](s, "ping", "{base}/ping")
	require.NoError(t, s.Err())
	return op
}

func TestAuth_variants(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		auth   apiclient.Auth
		header string
		want   string
	}{
		"none": {
			auth:   apiclient.NoAuth(),
			header: "Authorization",
			want:   "",
		},
		"basic": {
			auth:   apiclient.BasicAuth("user", "pass"),
			header: "Authorization",
			want:   "Basic " + base64.StdEncoding.EncodeToString([]byte("user:pass")),
		},
		"bearer": {
			auth:   apiclient.BearerAuth("tok-123"),
			header: "Authorization",
			want:   "Bearer tok-123",
		},
		"header": {
			auth:   apiclient.HeaderAuth("X-Api-Key", "secret"),
			header: "X-Api-Key",
			want:   "secret",
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			srv := apitest.NewServer(t)
			op := declarePing(t, srv)
			c := apiclient.NewClient(apiclient.WithAuth(tc.auth))

			_, err := op(context.Background(), c, nil)
			require.NoError(t, err)

			assert.Equal(t, tc.want, srv.Last().Header.Get(tc.header))
		})
	}
}

// Switching from NoAuth to BasicAuth, holding everything else fixed,
// changes nothing but the added credential header.
func TestAuth_none_to_basic_adds_only_credential(t *testing.T) {
	t.Parallel()

	srv := apitest.NewServer(t)
	op := declarePing(t, srv)

	_, err := op(context.Background(), apiclient.NewClient(), nil)
	require.NoError(t, err)
	_, err = op(context.Background(), apiclient.NewClient(apiclient.WithAuth(apiclient.BasicAuth("u", "p"))), nil)
	require.NoError(t, err)

	reqs := srv.Requests()
	require.Len(t, reqs, 2)

	plain, authed := reqs[0], reqs[1]
	assert.Empty(t, plain.Header.Get("Authorization"))
	assert.NotEmpty(t, authed.Header.Get("Authorization"))

	authed.Header.Del("Authorization")
	assert.Equal(t, plain.Method, authed.Method)
	assert.Equal(t, plain.Path, authed.Path)
	assert.Equal(t, plain.Body, authed.Body)
	assert.Equal(t, plain.Header, authed.Header)
}

// An Api implementation without an Auth authenticates via PreRequest or
// not at all; no implicit credential is added.
func TestAuth_custom_api_without_authenticator(t *testing.T) {
	t.Parallel()

	srv := apitest.NewServer(t)
	op := declarePing(t, srv)

	_, err := op(context.Background(), bareAPI{}, nil)
	require.NoError(t, err)
	assert.Empty(t, srv.Last().Header.Get("Authorization"))
}
