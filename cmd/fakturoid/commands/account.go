package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewAccountCommand creates the account command.
func NewAccountCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "account",
		Short: "Show account details",
		Long:  "Show settings and defaults of the configured Fakturoid account",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			account, err := client.Account().Load(context.Background())
			if err != nil {
				return fmt.Errorf("loading account: %w", err)
			}

			output := viper.GetString("output")
			if output == OutputFormatJSON || output == OutputFormatYAML {
				return renderEncoded(account, output)
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Property", "Value")
			_ = table.Append("Subdomain", stringOrNA(account.Subdomain))
			_ = table.Append("Name", stringOrNA(account.Name))
			_ = table.Append("Email", stringOrNA(account.Email))
			_ = table.Append("Registration No", stringOrNA(account.RegistrationNo))
			_ = table.Append("VAT No", stringOrNA(account.VATNo))
			_ = table.Append("Currency", stringOrNA(account.Currency))
			_ = table.Append("Plan", stringOrNA(account.Plan))

			if account.VATMode != nil {
				_ = table.Append("VAT Mode", string(*account.VATMode))
			} else {
				_ = table.Append("VAT Mode", NotAvailable)
			}

			if err := table.Render(); err != nil {
				return fmt.Errorf("rendering table: %w", err)
			}

			return nil
		},
	}
}
