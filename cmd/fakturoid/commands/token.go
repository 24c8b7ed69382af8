package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/fakturoid-community/fakturoid-go/internal/auth"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// ErrNoTokenManager means the client implementation does not expose its
// credential manager.
var ErrNoTokenManager = errors.New("client does not expose a token manager")

// tokenProvider is satisfied by the concrete client implementation.
type tokenProvider interface {
	TokenManager() *auth.ClientCredentialsManager
}

// NewTokenCommand creates the token command.
func NewTokenCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "token",
		Short: "Show the current access token",
		Long:  "Perform a token exchange and show the resulting credential and its lifetime",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			provider, ok := client.(tokenProvider)
			if !ok {
				return ErrNoTokenManager
			}

			manager := provider.TokenManager()

			err = manager.Refresh(context.Background())
			if err != nil {
				return fmt.Errorf("exchanging token: %w", err)
			}

			credential := manager.Current()

			// Prefer the exp claim when the token is a JWT; fall back to the
			// issued_at + expires_in arithmetic otherwise.
			expiresAt := credential.ExpiresAt()
			if claimExpiry, err := auth.TokenExpiry(credential.AccessToken); err == nil {
				expiresAt = claimExpiry
			}

			info := struct {
				TokenType string    `json:"token_type" yaml:"token_type"`
				ExpiresIn int64     `json:"expires_in" yaml:"expires_in"`
				ExpiresAt time.Time `json:"expires_at" yaml:"expires_at"`
				RenewAt   time.Time `json:"renew_at"   yaml:"renew_at"`
			}{
				TokenType: credential.TokenType,
				ExpiresIn: credential.ExpiresIn,
				ExpiresAt: expiresAt,
				RenewAt:   credential.RenewAt(),
			}

			output := viper.GetString("output")
			if output == OutputFormatJSON || output == OutputFormatYAML {
				return renderEncoded(info, output)
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Property", "Value")
			_ = table.Append("Token Type", info.TokenType)
			_ = table.Append("Expires In", fmt.Sprintf("%ds", info.ExpiresIn))
			_ = table.Append("Expires At", info.ExpiresAt.Format(time.RFC3339))
			_ = table.Append("Renew At", info.RenewAt.Format(time.RFC3339))

			if err := table.Render(); err != nil {
				return fmt.Errorf("rendering table: %w", err)
			}

			return nil
		},
	}
}
