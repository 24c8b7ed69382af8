package fakturoid_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fakturoid-community/fakturoid-go/pkg/fakturoid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsNotFound(t *testing.T) {
	t.Parallel()

	notFound := &fakturoid.NotFoundError{URL: "https://app.fakturoid.cz/api/v3/accounts/acme/subjects/99.json"}

	assert.True(t, fakturoid.IsNotFound(notFound))
	assert.True(t, fakturoid.IsNotFound(fmt.Errorf("getting subject: %w", notFound)))
	assert.False(t, fakturoid.IsNotFound(errors.New("plain error")))
	assert.False(t, fakturoid.IsNotFound(nil))
	assert.Contains(t, notFound.Error(), "subjects/99.json")
}

func TestIsAuthenticationFailed(t *testing.T) {
	t.Parallel()

	authErr := &fakturoid.AuthenticationError{StatusCode: 401, Body: `{"error":"invalid_client"}`}

	assert.True(t, fakturoid.IsAuthenticationFailed(authErr))
	assert.True(t, fakturoid.IsAuthenticationFailed(fmt.Errorf("authenticating request: %w", authErr)))
	assert.False(t, fakturoid.IsAuthenticationFailed(errors.New("plain error")))
	assert.Contains(t, authErr.Error(), "401")
	assert.Contains(t, authErr.Error(), "invalid_client")
}

func TestIsAPIError(t *testing.T) {
	t.Parallel()

	apiErr := &fakturoid.APIError{
		StatusCode: 422,
		URL:        "https://app.fakturoid.cz/api/v3/accounts/acme/subjects.json",
		Body:       `{"errors":{"name":["can't be blank"]}}`,
	}

	wrapped := fmt.Errorf("creating subject: %w", apiErr)

	got, ok := fakturoid.IsAPIError(wrapped)
	require.True(t, ok)
	assert.Equal(t, 422, got.StatusCode)
	assert.Contains(t, got.Body, "can't be blank")

	_, ok = fakturoid.IsAPIError(errors.New("plain error"))
	assert.False(t, ok)
}

func TestNotFoundIsNotAPIError(t *testing.T) {
	t.Parallel()

	// The taxonomy keeps 404 distinct from other HTTP failures.
	notFound := &fakturoid.NotFoundError{URL: "/x"}

	_, ok := fakturoid.IsAPIError(notFound)
	assert.False(t, ok)
	assert.False(t, fakturoid.IsAuthenticationFailed(notFound))
}
