//go:build integration

package integration

import (
	"context"
	"os"
	"testing"

	"github.com/fakturoid-community/fakturoid-go/pkg/fakturoid"
	"github.com/fakturoid-community/fakturoid-go/pkg/fakturoidclient"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConfig holds configuration for integration tests.
type TestConfig struct {
	Slug         string
	ClientID     string
	ClientSecret string
}

// LoadTestConfig loads configuration from environment variables.
func LoadTestConfig() *TestConfig {
	return &TestConfig{
		Slug:         os.Getenv("FAKTUROID_SLUG"),
		ClientID:     os.Getenv("FAKTUROID_CLIENT_ID"),
		ClientSecret: os.Getenv("FAKTUROID_CLIENT_SECRET"),
	}
}

// SkipIfMissingConfig skips the test when credentials are not configured.
func (config *TestConfig) SkipIfMissingConfig(t *testing.T) {
	t.Helper()

	if config.Slug == "" || config.ClientID == "" || config.ClientSecret == "" {
		t.Skip("FAKTUROID_SLUG / FAKTUROID_CLIENT_ID / FAKTUROID_CLIENT_SECRET not set, skipping integration test")
	}
}

func newClient(t *testing.T) fakturoid.Client {
	t.Helper()

	config := LoadTestConfig()
	config.SkipIfMissingConfig(t)

	client, err := fakturoidclient.NewWithClientCredentials(config.Slug, config.ClientID, config.ClientSecret)
	require.NoError(t, err)

	return client
}

func TestAccountLoad(t *testing.T) {
	client := newClient(t)

	account, err := client.Account().Load(context.Background())
	require.NoError(t, err)
	require.NotNil(t, account.Subdomain)
	assert.Equal(t, os.Getenv("FAKTUROID_SLUG"), *account.Subdomain)
}

func TestCurrentUserLoad(t *testing.T) {
	client := newClient(t)

	user, err := client.CurrentUser().Load(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, user.ID)
}

func TestSubjectLifecycle(t *testing.T) {
	client := newClient(t)
	ctx := context.Background()

	created, err := client.Subjects().Create(ctx, &fakturoid.Subject{
		Name: fakturoid.Ptr("Integration Test Subject"),
	})
	require.NoError(t, err)
	require.NotNil(t, created.ID)

	defer func() {
		_ = client.Subjects().Delete(ctx, *created.ID)
	}()

	created.Name = fakturoid.Ptr("Integration Test Subject Renamed")

	updated, err := client.Subjects().Update(ctx, created)
	require.NoError(t, err)
	assert.Equal(t, "Integration Test Subject Renamed", *updated.Name)

	fetched, err := client.Subjects().Get(ctx, *created.ID)
	require.NoError(t, err)
	assert.Equal(t, *updated.Name, *fetched.Name)
}

func TestInvoicesFirstPage(t *testing.T) {
	client := newClient(t)

	it := client.Invoices().Index(context.Background(), fakturoid.NewListParams())

	count := 0

	for it.HasNext() && count < fakturoid.PerPage {
		invoice, err := it.Next()
		require.NoError(t, err)
		require.NotNil(t, invoice.ID)

		count++
	}
}
