package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/phonebook/pkg/types"
)

func (a *app) newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Walk through adding, editing, finding and deleting contacts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd.OutOrStdout())
		},
	}
}

// runDemo builds a two-contact directory, edits one phone, looks one up
// and deletes a contact, printing the directory along the way.
func runDemo(w io.Writer) error {
	book := types.NewDirectory()

	john, err := newDemoRecord("John", "1234567890", "5555555555")
	if err != nil {
		return err
	}
	book.AddRecord(john)

	jane, err := newDemoRecord("Jane", "9876543210")
	if err != nil {
		return err
	}
	book.AddRecord(jane)

	fmt.Fprintf(w, "Address book:\n%s\n", book)

	if r, ok := book.Find("John"); ok {
		if err := r.EditPhone("1234567890", "1112223333"); err != nil {
			return fmt.Errorf("edit phone: %w", err)
		}
		fmt.Fprintf(w, "\nUpdated John:\n%s\n", r)

		if p, ok := r.FindPhone("5555555555"); ok {
			fmt.Fprintf(w, "\nFound phone: %s\n", p)
		}
	}

	if err := book.Delete("Jane"); err != nil {
		return fmt.Errorf("delete contact: %w", err)
	}
	fmt.Fprintf(w, "\nAddress book after deleting Jane:\n%s\n", book)
	return nil
}

func newDemoRecord(name string, phones ...string) (*types.Record, error) {
	r, err := types.NewRecord(name)
	if err != nil {
		return nil, fmt.Errorf("create record: %w", err)
	}
	for _, p := range phones {
		if err := r.AddPhone(p); err != nil {
			return nil, fmt.Errorf("add phone: %w", err)
		}
	}
	return r, nil
}
