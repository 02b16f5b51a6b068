package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/phonebook/internal/session"
)

func (a *app) newShellCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Start an interactive session (the default)",
		Long: `Read commands from standard input, one per line, against a directory that
exists only for this session. Type "help" for the command list.`,
		Args: cobra.NoArgs,
		RunE: a.runShell,
	}
}

func (a *app) runShell(cmd *cobra.Command, args []string) error {
	in, out := cmd.InOrStdin(), cmd.OutOrStdout()

	opts := []session.Option{
		session.WithLogger(a.logger),
		session.WithFormat(a.settings.Output),
		session.WithColor(useColor(a.settings.Color, out)),
	}
	interactive := isTerminal(in)
	if interactive {
		opts = append(opts, session.WithPrompt(a.settings.Prompt))
	}

	s := session.New(out, opts...)
	a.logger.Info("session started", zap.String("session", s.ID()), zap.Bool("interactive", interactive))
	return s.Run(cmd.Context(), in)
}
