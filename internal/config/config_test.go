package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func withWorkingDir(t *testing.T, dir string) {
	t.Helper()
	previous, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(previous) })
}

func TestLoadReturnsDefaultsWhenFileIsAbsent(t *testing.T) {
	withWorkingDir(t, t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "> ", cfg.Prompt)
	require.True(t, cfg.ColorEnabled())
	require.True(t, cfg.EchoResults)
}

func TestLoadReadsOverridesFromYAMLFile(t *testing.T) {
	dir := t.TempDir()
	withWorkingDir(t, dir)

	content := "prompt: \"lox> \"\ncolor: false\necho_results: false\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".golox.yaml"), []byte(content), 0o644))

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "lox> ", cfg.Prompt)
	require.False(t, cfg.ColorEnabled())
	require.False(t, cfg.EchoResults)
}

func TestLoadReturnsDefaultsOnMalformedYAML(t *testing.T) {
	dir := t.TempDir()
	withWorkingDir(t, dir)

	require.NoError(t, os.WriteFile(filepath.Join(dir, ".golox.yaml"), []byte("not: [valid: yaml"), 0o644))

	cfg, err := Load()
	require.Error(t, err)
	require.Equal(t, defaultConfig(), cfg)
}

func TestColorEnabledDefaultsTrueWhenUnset(t *testing.T) {
	cfg := Config{}
	require.True(t, cfg.ColorEnabled())
}
