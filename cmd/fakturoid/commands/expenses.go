package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/fakturoid-community/fakturoid-go/pkg/fakturoid"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewExpensesCommand creates the expenses command group.
func NewExpensesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "expenses",
		Short: "Manage expenses",
		Long:  "List and show expenses, and lock or unlock them",
	}

	cmd.AddCommand(newExpensesListCommand())
	cmd.AddCommand(newExpensesGetCommand())
	cmd.AddCommand(newExpensesFireCommand())

	return cmd
}

func newExpensesListCommand() *cobra.Command {
	var status string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List expenses",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			params := fakturoid.NewListParams()
			if status != "" {
				params.WithFilter("status", status)
			}

			expenses, err := client.Expenses().List(context.Background(), params)
			if err != nil {
				return fmt.Errorf("listing expenses: %w", err)
			}

			return outputExpenses(expenses)
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "filter by status (open, paid, overdue)")

	return cmd
}

func newExpensesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get EXPENSE_ID",
		Short: "Show an expense",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("%w: %q", ErrExpenseIDRequired, args[0])
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			expense, err := client.Expenses().Get(context.Background(), id)
			if err != nil {
				return fmt.Errorf("getting expense: %w", err)
			}

			return outputExpenses([]fakturoid.Expense{*expense})
		},
	}
}

func newExpensesFireCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "fire EXPENSE_ID EVENT",
		Short: "Fire a lifecycle event on an expense",
		Long: `Fire a state-transition event on an expense.

Available events: lock, unlock`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("%w: %q", ErrExpenseIDRequired, args[0])
			}

			event := fakturoid.LockableAction(args[1])
			if event != fakturoid.LockableActionLock && event != fakturoid.LockableActionUnlock {
				return fmt.Errorf("%w: %q", ErrInvalidEvent, args[1])
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			err = client.ExpenseEvents().Fire(context.Background(), id, event)
			if err != nil {
				return fmt.Errorf("firing event: %w", err)
			}

			fmt.Fprintf(os.Stdout, "Fired '%s' on expense %d\n", event, id)

			return nil
		},
	}
}

func outputExpenses(expenses []fakturoid.Expense) error {
	output := viper.GetString("output")
	if output == OutputFormatJSON || output == OutputFormatYAML {
		return renderEncoded(expenses, output)
	}

	if len(expenses) == 0 {
		fmt.Fprintln(os.Stdout, "No expenses found")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Number", "Supplier", "Status", "Total", "Issued", "Due")

	for _, expense := range expenses {
		_ = table.Append(
			int64OrNA(expense.ID),
			stringOrNA(expense.Number),
			stringOrNA(expense.SupplierName),
			stringOrNA(expense.Status),
			decimalOrNA(expense.Total),
			dateOrNA(expense.IssuedOn),
			dateOrNA(expense.DueOn),
		)
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("rendering table: %w", err)
	}

	return nil
}
