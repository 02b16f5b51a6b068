package session

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/phonebook/internal/config"
	"github.com/mesh-intelligence/phonebook/pkg/types"
)

// newCommandTree builds the cobra tree for one command line. A fresh tree
// per line keeps no parse state between lines.
func newCommandTree(s *Session) *cobra.Command {
	root := &cobra.Command{
		Use:           "phonebook",
		Short:         "Manage contacts in this session",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetOut(s.out)
	root.SetErr(s.out)

	root.AddCommand(
		&cobra.Command{
			Use:   "add <name> [phone...]",
			Short: "Create a contact or add phones to an existing one",
			Args:  cobra.MinimumNArgs(1),
			RunE:  s.runAdd,
		},
		&cobra.Command{
			Use:     "show <name>",
			Aliases: []string{"phone"},
			Short:   "Show a contact",
			Args:    cobra.ExactArgs(1),
			RunE:    s.runShow,
		},
		&cobra.Command{
			Use:   "find-phone <name> <phone>",
			Short: "Look up one phone of a contact",
			Args:  cobra.ExactArgs(2),
			RunE:  s.runFindPhone,
		},
		&cobra.Command{
			Use:   "remove-phone <name> <phone>",
			Short: "Remove a phone from a contact",
			Args:  cobra.ExactArgs(2),
			RunE:  s.runRemovePhone,
		},
		&cobra.Command{
			Use:     "edit-phone <name> <old> <new>",
			Aliases: []string{"change"},
			Short:   "Replace a phone; the new number goes to the end of the list",
			Args:    cobra.ExactArgs(3),
			RunE:    s.runEditPhone,
		},
		&cobra.Command{
			Use:   "delete <name>",
			Short: "Delete a contact",
			Args:  cobra.ExactArgs(1),
			RunE:  s.runDelete,
		},
		&cobra.Command{
			Use:     "all",
			Aliases: []string{"list"},
			Short:   "List every contact",
			Args:    cobra.NoArgs,
			RunE:    s.runAll,
		},
		&cobra.Command{
			Use:     "exit",
			Aliases: []string{"quit", "close"},
			Short:   "End the session",
			Args:    cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				s.done = true
				fmt.Fprintln(s.out, "Good bye!")
				return nil
			},
		},
	)

	// Names and numbers are positional data, never flags. Only a leading
	// -h or --help is honored.
	for _, c := range root.Commands() {
		c.DisableFlagParsing = true
		c.Args = helpOrArgs(c.Args)
		c.RunE = helpOrRun(c.RunE)
	}
	return root
}

func isHelp(args []string) bool {
	return len(args) > 0 && (args[0] == "-h" || args[0] == "--help")
}

func helpOrArgs(check cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if isHelp(args) || check == nil {
			return nil
		}
		return check(cmd, args)
	}
}

func helpOrRun(run func(*cobra.Command, []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if isHelp(args) {
			return cmd.Help()
		}
		return run(cmd, args)
	}
}

func (s *Session) runAdd(cmd *cobra.Command, args []string) error {
	name, raws := args[0], args[1:]

	// Validate every phone before touching the directory.
	for _, raw := range raws {
		if err := types.Validate(types.KindPhone, raw); err != nil {
			return fmt.Errorf("%s: %w", raw, err)
		}
	}

	r, exists := s.dir.Find(name)
	if !exists {
		var err error
		if r, err = types.NewRecord(name); err != nil {
			return err
		}
	}
	for _, raw := range raws {
		if err := r.AddPhone(raw); err != nil {
			return err
		}
	}

	if exists {
		fmt.Fprintln(s.out, "Contact updated.")
		return nil
	}
	s.dir.AddRecord(r)
	fmt.Fprintln(s.out, "Contact added.")
	return nil
}

func (s *Session) runShow(cmd *cobra.Command, args []string) error {
	r, err := s.lookup(args[0])
	if err != nil {
		return err
	}
	return s.render(r.Snapshot(), r.String())
}

func (s *Session) runFindPhone(cmd *cobra.Command, args []string) error {
	r, err := s.lookup(args[0])
	if err != nil {
		return err
	}
	p, ok := r.FindPhone(args[1])
	if !ok {
		fmt.Fprintln(s.out, types.ReasonPhoneNotFound)
		return nil
	}
	fmt.Fprintln(s.out, p)
	return nil
}

func (s *Session) runRemovePhone(cmd *cobra.Command, args []string) error {
	r, err := s.lookup(args[0])
	if err != nil {
		return err
	}
	if err := r.RemovePhone(args[1]); err != nil {
		return fmt.Errorf("%s: %w", args[1], err)
	}
	fmt.Fprintln(s.out, "Phone removed.")
	return nil
}

func (s *Session) runEditPhone(cmd *cobra.Command, args []string) error {
	r, err := s.lookup(args[0])
	if err != nil {
		return err
	}
	if err := r.EditPhone(args[1], args[2]); err != nil {
		return err
	}
	fmt.Fprintln(s.out, "Phone updated.")
	return nil
}

func (s *Session) runDelete(cmd *cobra.Command, args []string) error {
	if err := s.dir.Delete(args[0]); err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}
	fmt.Fprintln(s.out, "Contact deleted.")
	return nil
}

func (s *Session) runAll(cmd *cobra.Command, args []string) error {
	if s.dir.Len() == 0 && s.format == config.OutputText {
		fmt.Fprintln(s.out, "No contacts.")
		return nil
	}
	return s.render(s.dir.Snapshot(), s.dir.String())
}

// lookup turns an absent name into a *types.NotFoundError for commands
// that need the record to exist.
func (s *Session) lookup(name string) (*types.Record, error) {
	r, ok := s.dir.Find(name)
	if !ok {
		return nil, fmt.Errorf("%s: %w", name, &types.NotFoundError{
			Kind:   types.KindName,
			Key:    name,
			Reason: types.ReasonContactNotFound,
		})
	}
	return r, nil
}
