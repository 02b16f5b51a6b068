// Package cli implements the phonebook command-line interface: an
// interactive shell over a process-scoped contact directory, plus demo,
// init, config and version commands.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/phonebook"
	"github.com/mesh-intelligence/phonebook/internal/config"
	"github.com/mesh-intelligence/phonebook/internal/paths"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	output    string
	verbose   bool
	noColor   bool
}

// app is the state shared by subcommands once PersistentPreRunE has run.
type app struct {
	flags     rootFlags
	configDir string
	settings  config.Settings
	logger    *zap.Logger
}

// systemError marks failures of the environment (config files, terminals)
// rather than of the user's input.
type systemError struct{ err error }

func (e *systemError) Error() string { return e.err.Error() }
func (e *systemError) Unwrap() error { return e.err }

func sysErr(format string, args ...any) error {
	return &systemError{err: fmt.Errorf(format, args...)}
}

// NewRootCmd creates the top-level "phonebook" command with global flags
// and all subcommands registered. Running it without a subcommand starts
// the shell.
func NewRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "phonebook",
		Short: "An in-memory contact directory",
		Long: `Phonebook keeps contacts and their ten-digit phone numbers in memory for
the duration of one session. Run without arguments to start the shell.`,
		Version:           phonebook.Version,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
		RunE: a.runShell,
	}
	root.CompletionOptions.DisableDefaultCmd = true

	root.PersistentFlags().StringVar(&a.flags.configDir, "config-dir", "", "configuration directory (default: $XDG_CONFIG_HOME/phonebook)")
	root.PersistentFlags().StringVarP(&a.flags.output, "output", "o", "", "listing format: text, json or yaml")
	root.PersistentFlags().BoolVarP(&a.flags.verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().BoolVar(&a.flags.noColor, "no-color", false, "disable colored output")

	root.AddCommand(a.newShellCmd())
	root.AddCommand(a.newDemoCmd())
	root.AddCommand(a.newInitCmd())
	root.AddCommand(a.newConfigCmd())
	root.AddCommand(newVersionCmd())

	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "phonebook:", err)
		stop()
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	var se *systemError
	if errors.As(err, &se) {
		return exitSysError
	}
	return exitUserError
}

// setup resolves the config directory, loads settings, applies flag
// overrides and builds the logger.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	if cmd.Name() == "version" {
		return nil
	}

	dir, err := paths.ResolveConfigDir(a.flags.configDir)
	if err != nil {
		return sysErr("resolve config dir: %w", err)
	}
	a.configDir = dir

	settings, err := config.Load(dir)
	if err != nil {
		return sysErr("load config: %w", err)
	}
	if a.flags.output != "" {
		settings.Output = a.flags.output
	}
	if a.flags.verbose {
		settings.LogLevel = config.LevelDebug
	}
	if a.flags.noColor {
		settings.Color = config.ColorNever
	}
	if err := settings.Validate(); err != nil {
		return err
	}
	a.settings = settings

	logger, err := newLogger(cmd.ErrOrStderr(), settings.LogLevel)
	if err != nil {
		return sysErr("initialize logger: %w", err)
	}
	a.logger = logger.With(zap.String("command", cmd.Name()))
	a.logger.Debug("configuration loaded",
		zap.String("config_dir", dir),
		zap.String("output", settings.Output),
		zap.String("color", settings.Color))
	return nil
}

// isTerminal reports whether v is a file attached to a terminal.
func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// useColor resolves the color setting against the output writer.
func useColor(mode string, out io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isTerminal(out)
}
