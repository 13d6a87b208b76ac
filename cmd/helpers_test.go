package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	domainmocks "capres.dev/pkg/capres/internal/domain/mocks"
)

// useTempWorkdir switches into a fresh directory and keeps the log file there.
func useTempWorkdir(t *testing.T) string {
	t.Helper()

	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)

	originalWD, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { require.NoError(t, os.Chdir(originalWD)) })

	t.Setenv("CAPRES_LOG_FILENAME", filepath.Join(dir, "capres-test.log"))

	// Rebind config keys to unchanged flags left over from earlier commands.
	newRootCmd().AddCommand(newResolveCmd())

	return dir
}

// useMockWorkflow replaces the configured workflow for the duration of the test.
func useMockWorkflow(t *testing.T) *domainmocks.MockWorkflow {
	t.Helper()

	mockWorkflow := domainmocks.NewMockWorkflow(t)

	originalWorkflow := workflow
	workflow = mockWorkflow
	t.Cleanup(func() { workflow = originalWorkflow })

	return mockWorkflow
}

// setConfig feeds a configuration key through its environment variable, so
// explicit flags still take precedence and the value is dropped after the test.
func setConfig(t *testing.T, key, value string) {
	t.Helper()

	t.Setenv(envPrefix+"_"+strings.ToUpper(envKeyReplacer.Replace(key)), value)
}

func executeCmd(t *testing.T, sub *cobra.Command, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd()
	cmd.AddCommand(sub)

	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)

	err := cmd.Execute()

	return out.String(), err
}

func writeTestFile(t *testing.T, path, content string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}
