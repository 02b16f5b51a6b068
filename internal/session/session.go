// Package session runs a line-oriented command shell over one in-memory
// contact directory. The directory lives as long as the Session.
package session

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/muesli/termenv"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/phonebook/internal/config"
	"github.com/mesh-intelligence/phonebook/pkg/types"
)

// Session interprets commands against a Directory and writes results to
// out. It is not safe for concurrent use.
type Session struct {
	id     string
	dir    *types.Directory
	out    io.Writer
	log    *zap.Logger
	format string
	prompt string
	color  bool
	styles styles
	done   bool
}

type styles struct {
	err    lipgloss.Style
	prompt lipgloss.Style
}

// Option configures a Session.
type Option func(*Session)

// WithDirectory makes the session operate on d instead of a new directory.
func WithDirectory(d *types.Directory) Option {
	return func(s *Session) { s.dir = d }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(s *Session) { s.log = l }
}

// WithFormat selects the output format for listings (config.OutputText,
// config.OutputJSON or config.OutputYAML).
func WithFormat(format string) Option {
	return func(s *Session) { s.format = format }
}

// WithPrompt sets the prompt printed before each line is read. An empty
// prompt prints nothing.
func WithPrompt(p string) Option {
	return func(s *Session) { s.prompt = p }
}

// WithColor enables ANSI styling of prompts and errors.
func WithColor(enabled bool) Option {
	return func(s *Session) { s.color = enabled }
}

// New returns a session writing to out.
func New(out io.Writer, opts ...Option) *Session {
	s := &Session{
		id:     newSessionID(),
		out:    out,
		log:    zap.NewNop(),
		format: config.OutputText,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.dir == nil {
		s.dir = types.NewDirectory()
	}

	r := lipgloss.NewRenderer(out)
	r.SetColorProfile(termenv.ANSI256)
	s.styles = styles{
		err:    r.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		prompt: r.NewStyle().Foreground(lipgloss.Color("12")),
	}
	s.log = s.log.With(zap.String("session", s.id))
	return s
}

// ID returns the session identifier used in log entries.
func (s *Session) ID() string { return s.id }

// Directory returns the directory the session operates on.
func (s *Session) Directory() *types.Directory { return s.dir }

// Done reports whether an exit command has ended the session.
func (s *Session) Done() bool { return s.done }

// Execute runs a single command line. Blank lines and lines starting with
// '#' do nothing. The returned error is the command's failure; the
// directory is unchanged when a command fails.
func (s *Session) Execute(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
		return nil
	}

	s.log.Debug("executing command",
		zap.String("command", fields[0]),
		zap.Int("args", len(fields)-1))

	root := newCommandTree(s)
	root.SetArgs(fields)
	if err := root.Execute(); err != nil {
		s.log.Info("command rejected", zap.String("command", fields[0]), zap.Error(err))
		return err
	}
	return nil
}

// Run reads commands from in until EOF, an exit command, or ctx is done.
// Command failures are printed and do not stop the loop; only read errors
// and cancellation are returned.
func (s *Session) Run(ctx context.Context, in io.Reader) error {
	s.log.Debug("session started")
	defer func() { s.log.Debug("session ended", zap.Int("contacts", s.dir.Len())) }()

	scanner := bufio.NewScanner(in)
	for !s.done {
		if err := ctx.Err(); err != nil {
			return err
		}
		s.printPrompt()
		if !scanner.Scan() {
			break
		}
		if err := s.Execute(scanner.Text()); err != nil {
			s.printError(err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read commands: %w", err)
	}
	return nil
}

func (s *Session) printPrompt() {
	if s.prompt == "" {
		return
	}
	fmt.Fprint(s.out, s.paint(s.styles.prompt, s.prompt))
}

func (s *Session) printError(err error) {
	fmt.Fprintln(s.out, s.paint(s.styles.err, "error: "+err.Error()))
}

func (s *Session) paint(st lipgloss.Style, text string) string {
	if !s.color {
		return text
	}
	return st.Render(text)
}

func newSessionID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}
