// Package fakturoidclient creates configured fakturoid.Client instances.
package fakturoidclient

import (
	"fmt"
	"os"
	"strings"

	"github.com/fakturoid-community/fakturoid-go/internal/client"
	"github.com/fakturoid-community/fakturoid-go/pkg/fakturoid"
	"github.com/joho/godotenv"
)

// Environment variable names read by NewFromEnv.
const (
	EnvSlug         = "FAKTUROID_SLUG"
	EnvClientID     = "FAKTUROID_CLIENT_ID"
	EnvClientSecret = "FAKTUROID_CLIENT_SECRET"
)

// New creates a client from the given configuration. The base URL and user
// agent are defaulted when empty; credentials are required.
func New(config *fakturoid.Config) (fakturoid.Client, error) {
	if config == nil {
		return nil, fakturoid.ErrConfigRequired
	}

	normalized := *config
	normalized.BaseURL = normalizeBaseURL(normalized.BaseURL)

	if normalized.UserAgent == "" {
		normalized.UserAgent = fakturoid.DefaultUserAgent
	}

	c, err := client.New(&normalized)
	if err != nil {
		return nil, fmt.Errorf("creating client: %w", err)
	}

	return c, nil
}

// NewWithClientCredentials creates a client for the given account slug and
// OAuth2 client credentials, with default settings for everything else.
func NewWithClientCredentials(slug, clientID, clientSecret string) (fakturoid.Client, error) {
	return New(&fakturoid.Config{
		Slug:         slug,
		ClientID:     clientID,
		ClientSecret: clientSecret,
	})
}

// NewFromEnv creates a client from FAKTUROID_SLUG, FAKTUROID_CLIENT_ID and
// FAKTUROID_CLIENT_SECRET. A .env file in the working directory is loaded
// first when present; already-set variables win over the file.
func NewFromEnv() (fakturoid.Client, error) {
	// Missing .env is the normal case outside development.
	_ = godotenv.Load()

	return NewWithClientCredentials(
		os.Getenv(EnvSlug),
		os.Getenv(EnvClientID),
		os.Getenv(EnvClientSecret),
	)
}

func normalizeBaseURL(baseURL string) string {
	if baseURL == "" {
		return fakturoid.DefaultBaseURL
	}

	baseURL = strings.TrimRight(baseURL, "/")

	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		baseURL = "https://" + baseURL
	}

	return baseURL
}
