package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestInitCmd_WritesConfigFile(t *testing.T) {
	tempDir := useTempWorkdir(t)

	out, err := executeCmd(t, newInitCmd(), "init")
	require.NoError(t, err)
	assert.Contains(t, out, configFileName)

	targetPath := filepath.Join(tempDir, configFileName)
	contents, err := os.ReadFile(targetPath)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, yaml.Unmarshal(contents, &doc))
	assert.Contains(t, doc, "sdk")
	assert.Contains(t, doc, "companion")
}

func TestInitCmd_ErrorsWhenFileExists(t *testing.T) {
	tempDir := useTempWorkdir(t)

	targetPath := filepath.Join(tempDir, configFileName)
	require.NoError(t, os.WriteFile(targetPath, []byte("existing: true\n"), 0o644))

	_, err := executeCmd(t, newInitCmd(), "init")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--force")

	contents, err := os.ReadFile(targetPath)
	require.NoError(t, err)
	assert.Equal(t, "existing: true\n", string(contents))
}

func TestInitCmd_ForceOverwrites(t *testing.T) {
	tempDir := useTempWorkdir(t)

	targetPath := filepath.Join(tempDir, configFileName)
	require.NoError(t, os.WriteFile(targetPath, []byte("existing: true\n"), 0o644))

	_, err := executeCmd(t, newInitCmd(), "init", "--force")
	require.NoError(t, err)

	contents, err := os.ReadFile(targetPath)
	require.NoError(t, err)
	assert.Contains(t, string(contents), "sdk:")
}
