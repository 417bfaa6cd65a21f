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

type Item struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func TestRegister_all_methods(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		declare func(s *apiclient.Schema) func(ctx context.Context, a apiclient.Api) error
		method  string
	}{
		"GET": {
			method: http.MethodGet,
			declare: func(s *apiclient.Schema) func(ctx context.Context, a apiclient.Api) error {
				op := apiclient.Get[Item](s, "op", "{base}/items")
				return func(ctx context.Context, a apiclient.Api) error {
					_, err := op(ctx, a, nil)
					return err
				}
			},
		},
		"DELETE": {
			method: http.MethodDelete,
			declare: func(s *apiclient.Schema) func(ctx context.Context, a apiclient.Api) error {
				op := apiclient.Delete[apiclient.StatusCode](s, "op", "{base}/items")
				return func(ctx context.Context, a apiclient.Api) error {
					_, err := op(ctx, a, nil)
					return err
				}
			},
		},
		"HEAD": {
			method: http.MethodHead,
			declare: func(s *apiclient.Schema) func(ctx context.Context, a apiclient.Api) error {
				op := apiclient.Head(s, "op", "{base}/items")
				return func(ctx context.Context, a apiclient.Api) error {
					_, err := op(ctx, a, nil)
					return err
				}
			},
		},
		"POST": {
			method: http.MethodPost,
			declare: func(s *apiclient.Schema) func(ctx context.Context, a apiclient.Api) error {
				op := apiclient.Post[Item, Item](s, "op", "{base}/items")
				return func(ctx context.Context, a apiclient.Api) error {
					_, err := op(ctx, a, &Item{ID: 1, Name: "x"})
					return err
				}
			},
		},
		"PUT": {
			method: http.MethodPut,
			declare: func(s *apiclient.Schema) func(ctx context.Context, a apiclient.Api) error {
				op := apiclient.Put[Item, Item](s, "op", "{base}/items")
				return func(ctx context.Context, a apiclient.Api) error {
					_, err := op(ctx, a, &Item{ID: 1, Name: "x"})
					return err
				}
			},
		},
		"PATCH": {
			method: http.MethodPatch,
			declare: func(s *apiclient.Schema) func(ctx context.Context, a apiclient.Api) error {
				op := apiclient.Patch[Item, Item](s, "op", "{base}/items")
				return func(ctx context.Context, a apiclient.Api) error {
					_, err := op(ctx, a, &Item{ID: 1, Name: "x"})
					return err
				}
			},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			srv := apitest.NewServer(t)
			s := apiclient.NewSchema(apiclient.WithConstant("base", srv.URL()))
			call := tc.declare(s)
			require.NoError(t, s.Err())

			require.NoError(t, call(context.Background(), apiclient.NewClient()))
			assert.Equal(t, tc.method, srv.Last().Method)
			assert.Equal(t, "/items", srv.Last().Path)
		})
	}
}

// Scenario: GET "{BASE}/items/{id}" with id=1 issues GET /items/1 with no
// body and decodes the JSON response.
func TestRegister_get_decodes_json(t *testing.T) {
	t.Parallel()

	srv := apitest.NewServer(t)
	srv.RespondJSON(http.StatusOK, Item{ID: 1, Name: "x"})

	s := apiclient.NewSchema(apiclient.WithConstant("BASE", srv.URL()))
	getItem := apiclient.Get[Item](s, "item", "{BASE}/items/{id}", apiclient.WithParams("id"))
	require.NoError(t, s.Err())

	item, err := getItem(context.Background(), apiclient.NewClient(), nil, 1)
	require.NoError(t, err)

	assert.Equal(t, Item{ID: 1, Name: "x"}, item)

	got := srv.Last()
	assert.Equal(t, http.MethodGet, got.Method)
	assert.Equal(t, "/items/1", got.Path)
	assert.Empty(t, got.Body)
}

// Scenario: a placeholder absent from parameters and constants fails
// generation with an error naming it; no operation is emitted.
func TestRegister_unresolved_placeholder(t *testing.T) {
	t.Parallel()

	s := apiclient.NewSchema()
	op := apiclient.Get[Item](s, "item", "{BASE}/items/{id}", apiclient.WithParams("id"))

	assert.Nil(t, op)

	err := s.Err()
	require.Error(t, err)
	assert.ErrorIs(t, err, apiclient.ErrUnresolvedPlaceholder)

	var genErr *apiclient.GenerationError
	require.ErrorAs(t, err, &genErr)
	assert.Equal(t, "item", genErr.Endpoint)
	assert.Contains(t, err.Error(), "{BASE}")
}

func TestRegister_duplicate_name(t *testing.T) {
	t.Parallel()

	s := apiclient.NewSchema(apiclient.WithConstant("base", "https://example.com"))
	first := apiclient.Get[Item](s, "item", "{base}/items")
	second := apiclient.Get[Item](s, "item", "{base}/other")

	assert.NotNil(t, first)
	assert.Nil(t, second)
	assert.ErrorIs(t, s.Err(), apiclient.ErrDuplicateEndpoint)
}

func TestRegister_malformed_template(t *testing.T) {
	t.Parallel()

	s := apiclient.NewSchema()
	op := apiclient.Get[Item](s, "item", "https://example.com/items/{id")

	assert.Nil(t, op)
	assert.ErrorIs(t, s.Err(), apiclient.ErrBadTemplate)
}

// Declaring the same descriptor twice yields operations with identical
// request-assembly behavior.
func TestRegister_deterministic(t *testing.T) {
	t.Parallel()

	declare := func(base string) apiclient.Operation[Item, Item] {
		s := apiclient.NewSchema(apiclient.WithConstant("base", base))
		op := apiclient.Post[Item, Item](s, "create", "{base}/items",
			apiclient.WithHeader("X-Trace", "item-{id}"))
		s.Must()
		return op
	}

	srv := apitest.NewServer(t)
	c := apiclient.NewClient()
	body := &Item{ID: 7, Name: "n"}

	_, err := declare(srv.URL())(context.Background(), c, body)
	require.NoError(t, err)
	_, err = declare(srv.URL())(context.Background(), c, body)
	require.NoError(t, err)

	reqs := srv.Requests()
	require.Len(t, reqs, 2)
	assert.Equal(t, reqs[0].Method, reqs[1].Method)
	assert.Equal(t, reqs[0].Path, reqs[1].Path)
	assert.Equal(t, reqs[0].Body, reqs[1].Body)
	assert.Equal(t, reqs[0].Header.Get("X-Trace"), reqs[1].Header.Get("X-Trace"))
	assert.Equal(t, reqs[0].Header.Get("Content-Type"), reqs[1].Header.Get("Content-Type"))
}

func TestOperation_argument_count(t *testing.T) {
	t.Parallel()

	srv := apitest.NewServer(t)
	s := apiclient.NewSchema(apiclient.WithConstant("base", srv.URL()))
	getItem := apiclient.Get[Item](s, "item", "{base}/items/{id}", apiclient.WithParams("id"))
	require.NoError(t, s.Err())

	_, err := getItem(context.Background(), apiclient.NewClient(), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, apiclient.ErrArgumentCount)
	assert.Empty(t, srv.Requests())
}
