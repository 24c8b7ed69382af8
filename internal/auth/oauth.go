package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/fakturoid-community/fakturoid-go/internal/constants"
	"github.com/fakturoid-community/fakturoid-go/pkg/fakturoid"
)

// TokenManager guarantees a valid Authorization header value before a request
// proceeds.
type TokenManager interface {
	// Authorization returns the header value for the current credential,
	// performing a token exchange first when renewal is due.
	Authorization(ctx context.Context) (string, error)

	// Refresh forces a token exchange regardless of the current credential.
	Refresh(ctx context.Context) error
}

// ClientCredentialsManager implements TokenManager using the OAuth2
// client-credentials grant. A failed exchange is fatal and never retried.
type ClientCredentialsManager struct {
	tokenURL     string
	clientID     string
	clientSecret string
	userAgent    string
	httpClient   *http.Client
	store        *CredentialStore

	// refreshMu serializes exchanges. Concurrent callers that race past the
	// renewal check perform a benign duplicate exchange; the later credential
	// simply supersedes the earlier one.
	refreshMu sync.Mutex

	now func() time.Time
}

// NewClientCredentialsManager creates a manager seeded with an expired
// placeholder credential, so the first Authorization call performs the
// initial exchange.
func NewClientCredentialsManager(tokenURL, clientID, clientSecret, userAgent string) (*ClientCredentialsManager, error) {
	if tokenURL == "" {
		return nil, constants.ErrTokenURLRequired
	}

	manager := &ClientCredentialsManager{
		tokenURL:     tokenURL,
		clientID:     clientID,
		clientSecret: clientSecret,
		userAgent:    userAgent,
		httpClient:   &http.Client{Timeout: constants.TokenExchangeTimeout},
		store:        NewCredentialStore(),
		now:          time.Now,
	}

	manager.store.Set(NewPlaceholderCredential(manager.now()))

	return manager, nil
}

// Authorization implements TokenManager.
func (m *ClientCredentialsManager) Authorization(ctx context.Context) (string, error) {
	credential := m.store.Get()
	if credential.ShouldRenew(m.now()) {
		err := m.Refresh(ctx)
		if err != nil {
			return "", err
		}

		credential = m.store.Get()
	}

	return credential.Authorization(), nil
}

// Refresh implements TokenManager. It POSTs the client-credentials grant with
// Basic auth to the token endpoint and replaces the stored credential
// wholesale.
func (m *ClientCredentialsManager) Refresh(ctx context.Context) error {
	m.refreshMu.Lock()
	defer m.refreshMu.Unlock()

	form := url.Values{"grant_type": []string{"client_credentials"}}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("creating token request: %w", err)
	}

	req.SetBasicAuth(m.clientID, m.clientSecret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	if m.userAgent != "" {
		req.Header.Set("User-Agent", m.userAgent)
	}

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("requesting token: %w", err)
	}

	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading token response: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return &fakturoid.AuthenticationError{
			StatusCode: resp.StatusCode,
			Body:       string(body),
		}
	}

	credential := &Credential{}

	err = json.Unmarshal(body, credential)
	if err != nil {
		return fmt.Errorf("parsing token response: %w", err)
	}

	credential.IssuedAt = m.now()
	m.store.Set(credential)

	return nil
}

// Current returns the stored credential for introspection, e.g. by the CLI's
// token command.
func (m *ClientCredentialsManager) Current() *Credential {
	return m.store.Get()
}
