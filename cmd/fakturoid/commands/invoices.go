package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/fakturoid-community/fakturoid-go/pkg/fakturoid"
	"github.com/olekukonko/tablewriter"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewInvoicesCommand creates the invoices command group.
func NewInvoicesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "invoices",
		Short: "Manage invoices",
		Long:  "List, show, search invoices and fire lifecycle events on them",
	}

	cmd.AddCommand(newInvoicesListCommand())
	cmd.AddCommand(newInvoicesGetCommand())
	cmd.AddCommand(newInvoicesSearchCommand())
	cmd.AddCommand(newInvoicesFireCommand())

	return cmd
}

func newInvoicesListCommand() *cobra.Command {
	var status string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List invoices",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			params := fakturoid.NewListParams()
			if status != "" {
				params.WithFilter("status", status)
			}

			invoices, err := client.Invoices().List(context.Background(), params)
			if err != nil {
				return fmt.Errorf("listing invoices: %w", err)
			}

			return outputInvoices(invoices)
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "filter by status (open, paid, overdue, ...)")

	return cmd
}

func newInvoicesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get INVOICE_ID",
		Short: "Show an invoice",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("%w: %q", ErrInvoiceIDRequired, args[0])
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			invoice, err := client.Invoices().Get(context.Background(), id)
			if err != nil {
				return fmt.Errorf("getting invoice: %w", err)
			}

			return outputInvoices([]fakturoid.Invoice{*invoice})
		},
	}
}

func newInvoicesSearchCommand() *cobra.Command {
	var tags []string

	cmd := &cobra.Command{
		Use:   "search QUERY",
		Short: "Search invoices",
		Long:  "Full-text search across invoice numbers, subjects and line names",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			params := fakturoid.NewSearchParams(args[0])
			if len(tags) > 0 {
				params.WithTags(tags...)
			}

			invoices, err := client.Invoices().Search(context.Background(), params).All()
			if err != nil {
				return fmt.Errorf("searching invoices: %w", err)
			}

			return outputInvoices(invoices)
		},
	}

	cmd.Flags().StringSliceVar(&tags, "tags", nil, "narrow the search to the given tags")

	return cmd
}

func newInvoicesFireCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "fire INVOICE_ID EVENT",
		Short: "Fire a lifecycle event on an invoice",
		Long: `Fire a state-transition event on an invoice.

Available events: mark_as_sent, cancel, undo_cancel, lock, unlock,
mark_as_uncollectible, undo_uncollectible, pay, pay_proforma, remove_payment`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("%w: %q", ErrInvoiceIDRequired, args[0])
			}

			event := fakturoid.InvoiceAction(args[1])

			client, err := CreateClient()
			if err != nil {
				return err
			}

			err = client.InvoiceEvents().Fire(context.Background(), id, event)
			if err != nil {
				return fmt.Errorf("firing event: %w", err)
			}

			fmt.Fprintf(os.Stdout, "Fired '%s' on invoice %d\n", event, id)

			return nil
		},
	}
}

func outputInvoices(invoices []fakturoid.Invoice) error {
	output := viper.GetString("output")
	if output == OutputFormatJSON || output == OutputFormatYAML {
		return renderEncoded(invoices, output)
	}

	if len(invoices) == 0 {
		fmt.Fprintln(os.Stdout, "No invoices found")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Number", "Subject ID", "Status", "Total", "Issued", "Due")

	for _, invoice := range invoices {
		_ = table.Append(
			int64OrNA(invoice.ID),
			stringOrNA(invoice.Number),
			int64OrNA(invoice.SubjectID),
			stringOrNA(invoice.Status),
			decimalOrNA(invoice.Total),
			dateOrNA(invoice.IssuedOn),
			dateOrNA(invoice.DueOn),
		)
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("rendering table: %w", err)
	}

	return nil
}

func decimalOrNA(value *decimal.Decimal) string {
	if value == nil {
		return NotAvailable
	}

	return value.String()
}

func dateOrNA(value *fakturoid.Date) string {
	if value == nil {
		return NotAvailable
	}

	return value.String()
}
