package client_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fakturoid-community/fakturoid-go/internal/client"
	internalhttp "github.com/fakturoid-community/fakturoid-go/internal/http"
	"github.com/fakturoid-community/fakturoid-go/pkg/fakturoid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAccount(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/accounts/acme/account.json", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"subdomain":"acme","name":"Acme Corp","currency":"CZK"}`))
	}))
	t.Cleanup(server.Close)

	httpClient := internalhttp.NewClient(server.URL, nil)
	account := client.NewLoadableClient[fakturoid.Account](httpClient, testSession,
		"/accounts/${slug}/account.json", "account")

	loaded, err := account.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "acme", *loaded.Subdomain)
	assert.Equal(t, "CZK", *loaded.Currency)
	assert.True(t, loaded.Bound())
}

func TestLoadCurrentUserIgnoresSlug(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/user.json", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":5,"full_name":"Jana Nova","email":"jana@acme.example"}`))
	}))
	t.Cleanup(server.Close)

	httpClient := internalhttp.NewClient(server.URL, nil)
	user := client.NewLoadableClient[fakturoid.User](httpClient, testSession, "/user.json", "user")

	loaded, err := user.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(5), *loaded.ID)
	assert.Equal(t, "Jana Nova", *loaded.FullName)
}

func TestLoadSurfacesNotFound(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	t.Cleanup(server.Close)

	httpClient := internalhttp.NewClient(server.URL, nil)
	account := client.NewLoadableClient[fakturoid.Account](httpClient, testSession,
		"/accounts/${slug}/account.json", "account")

	_, err := account.Load(context.Background())
	require.Error(t, err)
	assert.True(t, fakturoid.IsNotFound(err))
}
