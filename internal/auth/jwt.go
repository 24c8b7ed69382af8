package auth

import (
	"fmt"
	"time"

	"github.com/fakturoid-community/fakturoid-go/internal/constants"
	"github.com/golang-jwt/jwt/v5"
)

// TokenExpiry decodes the unverified claims of an access token and returns
// its exp claim. The token is issued by the API itself, so this is for
// display and diagnostics only, not validation.
func TokenExpiry(accessToken string) (time.Time, error) {
	parser := jwt.NewParser()

	token, _, err := parser.ParseUnverified(accessToken, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %w", constants.ErrMalformedToken, err)
	}

	expiry, err := token.Claims.GetExpirationTime()
	if err != nil {
		return time.Time{}, fmt.Errorf("reading expiry claim: %w", err)
	}

	if expiry == nil {
		return time.Time{}, constants.ErrNoExpiryClaim
	}

	return expiry.Time, nil
}
