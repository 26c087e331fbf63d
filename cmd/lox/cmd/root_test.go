package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/loxlang/golox/pkg/lox"
	"github.com/stretchr/testify/require"
)

func writeScript(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "script.lox")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRunFileExitsOKOnSuccess(t *testing.T) {
	path := writeScript(t, `print "hi";`)
	require.Equal(t, lox.ExitOK, runFile(path))
}

func TestRunFileExitsDataErrorOnResolveFailure(t *testing.T) {
	path := writeScript(t, `{ var a = a; }`)
	require.Equal(t, lox.ExitDataError, runFile(path))
}

func TestRunFileExitsSoftwareOnRuntimeError(t *testing.T) {
	path := writeScript(t, `print 1 + true;`)
	require.Equal(t, lox.ExitSoftware, runFile(path))
}

func TestRunFileExitsDataErrorWhenFileIsMissing(t *testing.T) {
	require.Equal(t, lox.ExitDataError, runFile(filepath.Join(t.TempDir(), "missing.lox")))
}

func TestExecuteRunsAScriptAndReturnsItsExitCode(t *testing.T) {
	path := writeScript(t, `print "ok";`)

	rootCmd.SetArgs([]string{path})
	defer rootCmd.SetArgs(nil)

	require.Equal(t, lox.ExitOK, Execute())
}

func TestExecuteReturnsUsageErrorForTooManyArguments(t *testing.T) {
	rootCmd.SetArgs([]string{"one.lox", "two.lox"})
	defer rootCmd.SetArgs(nil)

	require.Equal(t, lox.ExitUsage, Execute())
}
