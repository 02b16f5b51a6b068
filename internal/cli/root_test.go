package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/phonebook/internal/config"
)

// run executes the root command with args and stdin, returning stdout and
// stderr. The config directory is isolated under t.TempDir().
func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("PHONEBOOK_CONFIG_DIR", t.TempDir())

	var out, errOut bytes.Buffer
	root := NewRootCmd()
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), errOut.String(), err
}

func TestVersionCmd(t *testing.T) {
	out, _, err := run(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "phonebook v0.1.0\nmodule: github.com/mesh-intelligence/phonebook\n", out)
}

func TestDemoCmd(t *testing.T) {
	out, _, err := run(t, "", "demo")
	require.NoError(t, err)

	want := `Address book:
Name: John, Phones: 1234567890; 5555555555
Name: Jane, Phones: 9876543210

Updated John:
Name: John, Phones: 5555555555; 1112223333

Found phone: 5555555555

Address book after deleting Jane:
Name: John, Phones: 5555555555; 1112223333
`
	assert.Equal(t, want, out)
}

func TestShellIsDefault(t *testing.T) {
	script := "add John 1234567890\nall\n"

	out, _, err := run(t, script)
	require.NoError(t, err)
	assert.Equal(t, "Contact added.\nName: John, Phones: 1234567890\n", out)

	shellOut, _, err := run(t, script, "shell")
	require.NoError(t, err)
	assert.Equal(t, out, shellOut)
}

func TestShellOutputFlag(t *testing.T) {
	out, _, err := run(t, "add John 1234567890\nall\n", "--output", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"name": "John"`)
}

func TestShellPrintsCommandErrors(t *testing.T) {
	out, _, err := run(t, "add John 12\ndelete John\n")
	require.NoError(t, err, "command failures do not fail the shell")
	assert.Equal(t, "error: 12: invalid phone format\nerror: John: contact not found\n", out)
}

func TestShellVerboseLogsToStderr(t *testing.T) {
	_, errOut, err := run(t, "add John\n", "--verbose")
	require.NoError(t, err)
	assert.Contains(t, errOut, `"msg":"executing command"`)
	assert.Contains(t, errOut, `"session":`)
}

func TestShellQuietByDefault(t *testing.T) {
	_, errOut, err := run(t, "add John\n")
	require.NoError(t, err)
	assert.Empty(t, errOut)
}

func TestInvalidOutputFlag(t *testing.T) {
	_, _, err := run(t, "", "--output", "xml", "shell")
	assert.ErrorIs(t, err, config.ErrOutputUnknown)
	assert.Equal(t, exitUserError, exitCode(err))
}

func TestInitCmd(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "cfg")

	out, _, err := run(t, "", "--config-dir", dir, "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote")
	assert.FileExists(t, filepath.Join(dir, "config.yaml"))

	out, _, err = run(t, "", "--config-dir", dir, "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Config already exists")
}

func TestConfigCmd(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("output: yaml\n"), 0o644))

	out, _, err := run(t, "", "--config-dir", dir, "--no-color", "config")
	require.NoError(t, err)
	assert.Contains(t, out, "# config dir: "+dir)
	assert.Contains(t, out, "output: yaml")
	assert.Contains(t, out, "color: never")
}

func TestBrokenConfigIsSystemError(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("output: [\n"), 0o644))

	_, _, err := run(t, "", "--config-dir", dir, "demo")
	require.Error(t, err)
	assert.Equal(t, exitSysError, exitCode(err))
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, exitSuccess, exitCode(nil))
	assert.Equal(t, exitUserError, exitCode(errors.New("bad input")))
	assert.Equal(t, exitSysError, exitCode(sysErr("disk: %w", errors.New("full"))))
}

func TestUseColor(t *testing.T) {
	var buf bytes.Buffer
	assert.True(t, useColor(config.ColorAlways, &buf))
	assert.False(t, useColor(config.ColorNever, &buf))
	assert.False(t, useColor(config.ColorAuto, &buf), "a buffer is not a terminal")
}
