package commands

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fakturoid-community/fakturoid-go/internal/constants"
	"github.com/fakturoid-community/fakturoid-go/pkg/fakturoid"
	"github.com/fakturoid-community/fakturoid-go/pkg/fakturoidclient"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

// NewLoginCommand creates the login command.
func NewLoginCommand() *cobra.Command {
	var (
		slug         string
		clientID     string
		clientSecret string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store API credentials",
		Long:  "Verify OAuth2 client credentials against the API and store them in the config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			reader := bufio.NewReader(os.Stdin)

			if slug == "" {
				fmt.Fprint(os.Stdout, "Account slug: ")

				line, err := reader.ReadString('\n')
				if err != nil {
					return fmt.Errorf("reading slug: %w", err)
				}

				slug = strings.TrimSpace(line)
			}

			if clientID == "" {
				fmt.Fprint(os.Stdout, "Client ID: ")

				line, err := reader.ReadString('\n')
				if err != nil {
					return fmt.Errorf("reading client id: %w", err)
				}

				clientID = strings.TrimSpace(line)
			}

			if clientSecret == "" {
				fmt.Fprint(os.Stdout, "Client secret: ")

				secret, err := term.ReadPassword(int(os.Stdin.Fd()))

				fmt.Fprintln(os.Stdout)

				if err != nil {
					return fmt.Errorf("reading client secret: %w", err)
				}

				clientSecret = strings.TrimSpace(string(secret))
			}

			client, err := fakturoidclient.New(&fakturoid.Config{
				Slug:         slug,
				ClientID:     clientID,
				ClientSecret: clientSecret,
				BaseURL:      viper.GetString("base_url"),
			})
			if err != nil {
				return fmt.Errorf("creating API client: %w", err)
			}

			// A successful account load proves the credentials work.
			account, err := client.Account().Load(context.Background())
			if err != nil {
				return fmt.Errorf("verifying credentials: %w", err)
			}

			viper.Set("slug", slug)
			viper.Set("client_id", clientID)
			viper.Set("client_secret", clientSecret)

			err = saveConfig()
			if err != nil {
				return err
			}

			fmt.Fprintf(os.Stdout, "Logged in to account '%s' (%s)\n", slug, stringOrNA(account.Name))

			return nil
		},
	}

	cmd.Flags().StringVar(&slug, "slug", "", "account slug (subdomain)")
	cmd.Flags().StringVar(&clientID, "client-id", "", "OAuth2 client ID")
	cmd.Flags().StringVar(&clientSecret, "client-secret", "", "OAuth2 client secret (prompted when omitted)")

	return cmd
}

func saveConfig() error {
	cfgFile := viper.ConfigFileUsed()

	if cfgFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}

		configDir := filepath.Join(home, ".fakturoid")

		err = os.MkdirAll(configDir, constants.ConfigDirPerm)
		if err != nil {
			return fmt.Errorf("creating config directory: %w", err)
		}

		cfgFile = filepath.Join(configDir, "config.yml")
	}

	err := viper.WriteConfigAs(cfgFile)
	if err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	err = os.Chmod(cfgFile, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("restricting config file permissions: %w", err)
	}

	fmt.Fprintln(os.Stdout, "Credentials saved to", cfgFile)

	return nil
}
