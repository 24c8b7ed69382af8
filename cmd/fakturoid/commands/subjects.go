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

// NewSubjectsCommand creates the subjects command group.
func NewSubjectsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "subjects",
		Short: "Manage subjects",
		Long:  "List, show, create, search and delete subjects (customers and suppliers)",
	}

	cmd.AddCommand(newSubjectsListCommand())
	cmd.AddCommand(newSubjectsGetCommand())
	cmd.AddCommand(newSubjectsSearchCommand())
	cmd.AddCommand(newSubjectsCreateCommand())
	cmd.AddCommand(newSubjectsDeleteCommand())

	return cmd
}

func newSubjectsListCommand() *cobra.Command {
	var customID string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List subjects",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			params := fakturoid.NewListParams()
			if customID != "" {
				params.WithCustomID(customID)
			}

			subjects, err := client.Subjects().List(context.Background(), params)
			if err != nil {
				return fmt.Errorf("listing subjects: %w", err)
			}

			return outputSubjects(subjects)
		},
	}

	cmd.Flags().StringVar(&customID, "custom-id", "", "filter by custom id")

	return cmd
}

func newSubjectsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get SUBJECT_ID",
		Short: "Show a subject",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("%w: %q", ErrSubjectIDRequired, args[0])
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			subject, err := client.Subjects().Get(context.Background(), id)
			if err != nil {
				return fmt.Errorf("getting subject: %w", err)
			}

			return outputSubjects([]fakturoid.Subject{*subject})
		},
	}
}

func newSubjectsSearchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "search QUERY",
		Short: "Search subjects",
		Long:  "Full-text search across subject names, addresses and identifiers",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			params := fakturoid.NewSearchParams(args[0])

			subjects, err := client.Subjects().Search(context.Background(), params).All()
			if err != nil {
				return fmt.Errorf("searching subjects: %w", err)
			}

			return outputSubjects(subjects)
		},
	}
}

func newSubjectsCreateCommand() *cobra.Command {
	var (
		name  string
		email string
		phone string
		web   string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a subject",
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" {
				return ErrNameRequired
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			subject := &fakturoid.Subject{Name: fakturoid.Ptr(name)}

			if email != "" {
				subject.Email = fakturoid.Ptr(email)
			}

			if phone != "" {
				subject.Phone = fakturoid.Ptr(phone)
			}

			if web != "" {
				subject.Web = fakturoid.Ptr(web)
			}

			created, err := client.Subjects().Create(context.Background(), subject)
			if err != nil {
				return fmt.Errorf("creating subject: %w", err)
			}

			fmt.Fprintf(os.Stdout, "Created subject '%s' with id %s\n",
				stringOrNA(created.Name), int64OrNA(created.ID))

			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "subject name (required)")
	cmd.Flags().StringVar(&email, "email", "", "subject email")
	cmd.Flags().StringVar(&phone, "phone", "", "subject phone")
	cmd.Flags().StringVar(&web, "web", "", "subject web address")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newSubjectsDeleteCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete SUBJECT_ID",
		Short: "Delete a subject",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("%w: %q", ErrSubjectIDRequired, args[0])
			}

			if !force {
				fmt.Fprintf(os.Stdout, "Really delete subject %d? (y/N): ", id)

				var response string

				_, _ = fmt.Scanln(&response)
				if response != "y" && response != "Y" {
					fmt.Fprintln(os.Stdout, "Cancelled")

					return nil
				}
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			err = client.Subjects().Delete(context.Background(), id)
			if err != nil {
				return fmt.Errorf("deleting subject: %w", err)
			}

			fmt.Fprintf(os.Stdout, "Deleted subject %d\n", id)

			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip confirmation prompt")

	return cmd
}

func outputSubjects(subjects []fakturoid.Subject) error {
	output := viper.GetString("output")
	if output == OutputFormatJSON || output == OutputFormatYAML {
		return renderEncoded(subjects, output)
	}

	if len(subjects) == 0 {
		fmt.Fprintln(os.Stdout, "No subjects found")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Name", "Email", "Registration No", "City")

	for _, subject := range subjects {
		_ = table.Append(
			int64OrNA(subject.ID),
			stringOrNA(subject.Name),
			stringOrNA(subject.Email),
			stringOrNA(subject.RegistrationNo),
			stringOrNA(subject.City),
		)
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("rendering table: %w", err)
	}

	return nil
}
