package fakturoid_test

import (
	"errors"
	"testing"

	"github.com/fakturoid-community/fakturoid-go/pkg/fakturoid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveRoute(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		template string
		contexts []fakturoid.RouteParams
		want     string
	}{
		{
			name:     "collection path",
			template: "/accounts/${slug}/${resource}.json",
			contexts: []fakturoid.RouteParams{
				{"slug": "acme"},
				{"resource": "subjects"},
			},
			want: "/accounts/acme/subjects.json",
		},
		{
			name:     "detail path with entity id",
			template: "/accounts/${slug}/${resource}/${id}.json",
			contexts: []fakturoid.RouteParams{
				{"slug": "acme", "resource": "invoices"},
				{"id": "42"},
			},
			want: "/accounts/acme/invoices/42.json",
		},
		{
			name:     "later context wins",
			template: "/accounts/${slug}/account.json",
			contexts: []fakturoid.RouteParams{
				{"slug": "old"},
				{"slug": "new"},
			},
			want: "/accounts/new/account.json",
		},
		{
			name:     "no placeholders",
			template: "/user.json",
			contexts: nil,
			want:     "/user.json",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path, err := fakturoid.ResolveRoute(tt.template, tt.contexts...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, path)
		})
	}
}

func TestResolveRouteMissingParameter(t *testing.T) {
	t.Parallel()

	_, err := fakturoid.ResolveRoute("/accounts/${slug}/${resource}/${id}.json",
		fakturoid.RouteParams{"slug": "acme", "resource": "invoices"})
	require.Error(t, err)

	var routeErr *fakturoid.RouteError

	require.ErrorAs(t, err, &routeErr)
	assert.Equal(t, "id", routeErr.Parameter)
	assert.Equal(t, []string{"resource", "slug"}, routeErr.Available)
	assert.Contains(t, routeErr.Error(), `missing parameter "id"`)
}

func TestResolveRouteEmptyContext(t *testing.T) {
	t.Parallel()

	_, err := fakturoid.ResolveRoute("/accounts/${slug}/account.json")
	require.Error(t, err)

	var routeErr *fakturoid.RouteError

	require.ErrorAs(t, err, &routeErr)
	assert.Equal(t, "slug", routeErr.Parameter)
	assert.Empty(t, routeErr.Available)
	assert.Contains(t, routeErr.Error(), "available: none")
}

func TestRouteErrorIsNotNotFound(t *testing.T) {
	t.Parallel()

	err := error(&fakturoid.RouteError{Template: "${x}", Parameter: "x"})
	assert.False(t, fakturoid.IsNotFound(err))
	assert.False(t, errors.Is(err, fakturoid.ErrNoMoreItems))
}
