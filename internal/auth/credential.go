// Package auth owns the bearer credential lifecycle: the client-credentials
// exchange, the preemptive renewal policy, and the thread-safe credential
// store.
package auth

import (
	"fmt"
	"time"
)

// placeholderTokenType marks the deliberately expired credential a session
// starts with, so the first request triggers an exchange.
const placeholderTokenType = "placeholder"

// Credential is a bearer token together with the instant it was issued.
// Credentials are immutable; renewal replaces the whole value.
type Credential struct {
	TokenType   string `json:"token_type"`
	AccessToken string `json:"access_token"`

	// ExpiresIn is the lifetime in seconds as reported by the token
	// endpoint.
	ExpiresIn int64 `json:"expires_in"`

	// IssuedAt is recorded locally when the exchange response arrives.
	IssuedAt time.Time `json:"-"`
}

// NewPlaceholderCredential creates the expired credential a session is
// constructed with. Its negative lifetime makes it due for renewal
// immediately.
func NewPlaceholderCredential(now time.Time) *Credential {
	return &Credential{
		TokenType: placeholderTokenType,
		ExpiresIn: -1,
		IssuedAt:  now,
	}
}

// Lifetime returns the credential's declared validity period.
func (c *Credential) Lifetime() time.Duration {
	return time.Duration(c.ExpiresIn) * time.Second
}

// RenewAt is the instant renewal becomes due: the midpoint of the lifetime,
// leaving a buffer for clock skew and in-flight request latency.
func (c *Credential) RenewAt() time.Time {
	return c.IssuedAt.Add(c.Lifetime() / 2)
}

// ExpiresAt is the instant the credential actually expires.
func (c *Credential) ExpiresAt() time.Time {
	return c.IssuedAt.Add(c.Lifetime())
}

// ShouldRenew reports whether the credential is due for preemptive renewal.
func (c *Credential) ShouldRenew(now time.Time) bool {
	if c == nil {
		return true
	}

	return !now.Before(c.RenewAt())
}

// Authorization renders the credential as an Authorization header value.
func (c *Credential) Authorization() string {
	return fmt.Sprintf("%s %s", c.TokenType, c.AccessToken)
}
