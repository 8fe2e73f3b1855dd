package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// chdir is a stand-in for testing.T.Chdir, which requires Go 1.24.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		require.NoError(t, os.Chdir(prev))
	})
}

func execute(t *testing.T, input string, args ...string) string {
	t.Helper()
	chdir(t, t.TempDir())

	var out bytes.Buffer
	rootCmd.SetIn(strings.NewReader(input))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	// A nil slice makes cobra fall back to os.Args, which carries
	// go test flags here.
	if args == nil {
		args = []string{}
	}
	rootCmd.SetArgs(args)

	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestExecute_RunsCommandStream(t *testing.T) {
	out := execute(t, "c A1F 01-06-2025 10 VaxX\na alice VaxX\nq\n")
	require.Equal(t, "A1F\nA1F\n", out)
}

func TestExecute_WritesDefaultConfig(t *testing.T) {
	execute(t, "q\n")

	cwd, err := os.Getwd()
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(cwd, ".vaxreg", "config.yaml"))
	require.NoError(t, err)
}

func TestExecute_PortugueseArgument(t *testing.T) {
	out := execute(t, "a alice VaxX\n", "pt")
	require.Equal(t, "esgotado\n", out)
}

func TestExecute_UnknownLanguageFallsBackToEnglish(t *testing.T) {
	out := execute(t, "a alice VaxX\n", "fr")
	require.Equal(t, "no stock\n", out)
}

func TestExecute_DebugEnvEnablesLogFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	t.Setenv("VAXREG_DEBUG", "1")

	logPath := filepath.Join(dir, "vaxreg.log")
	require.NoError(t, os.MkdirAll(filepath.Join(dir, ".vaxreg"), 0o750))
	cfgYAML := "language: en\nlog_file: " + logPath + "\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".vaxreg", "config.yaml"), []byte(cfgYAML), 0o600))

	var out bytes.Buffer
	rootCmd.SetIn(strings.NewReader("t\nq\n"))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{})
	require.NoError(t, rootCmd.Execute())

	_, err := os.Stat(logPath)
	require.NoError(t, err)
}
