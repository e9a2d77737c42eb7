package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

const transientDefinitions = `error_code("Bar", 2)
error_code("Foo", 1)
error_class("Transient", ["Bar"])
`

// writeDefinitions writes src to a definitions file in a temp dir.
func writeDefinitions(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "error_codes.err")
	require.NoError(t, os.WriteFile(path, []byte(src), 0644))
	return path
}

// execute runs cmd with args and returns what it wrote to stdout and stderr.
func execute(t *testing.T, cmd *cobra.Command, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("ERRCODEGEN_CONFIG", "")

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}
