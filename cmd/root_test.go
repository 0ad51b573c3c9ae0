package cmd

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const input = "1,a@b.com,Jo,Doe,1 Main St,Springfield,IL,62704,0000,217-555-0100\n" +
	"2,c@d.com,Ann,Lee,9 Elm Rd,London,LND,SW1A,1072,+44 20 7946 0958\n"

// execute runs the root command with args and returns stdout. Flag state is
// reset afterwards because cobra keeps it on the package-level commands.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	previous := slog.Default()
	t.Cleanup(func() {
		slog.SetDefault(previous)
		resetFlags(rootCmd)
		for _, sub := range rootCmd.Commands() {
			resetFlags(sub)
		}
	})

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return out.String(), err
}

func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
}

func writeInput(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	chdir(t, dir)
	require.NoError(t, os.WriteFile("recipients.csv", []byte(input), 0o644))
	return dir
}

func TestRoot_RequiresExactlyOneArgument(t *testing.T) {
	chdir(t, t.TempDir())

	_, err := execute(t)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s), received 0")

	_, err = execute(t, "a.csv", "b.csv")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s), received 2")
}

func TestRoot_SplitsIntoWorkingDirectory(t *testing.T) {
	dir := writeInput(t)

	out, err := execute(t, "recipients.csv")

	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "apology.USA_IL.csv"))
	assert.FileExists(t, filepath.Join(dir, "apology.GBR_LND.csv"))
	assert.Contains(t, out, "Records read:    2")
	assert.Contains(t, out, "Phones redacted: 1")
	assert.Contains(t, out, "Wrote 2 file(s):")
	assert.Contains(t, out, "apology.GBR_LND.csv")
}

func TestRoot_DryRun(t *testing.T) {
	dir := writeInput(t)

	out, err := execute(t, "recipients.csv", "--dry-run")

	require.NoError(t, err)
	assert.Contains(t, out, "Would write 2 file(s):")
	assert.NoFileExists(t, filepath.Join(dir, "apology.USA_IL.csv"))
}

func TestRoot_ReportThenReportCommand(t *testing.T) {
	dir := writeInput(t)

	_, err := execute(t, "recipients.csv", "--report")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "apology.summary.xlsx"))

	out, err := execute(t, "report")
	require.NoError(t, err)
	assert.Contains(t, out, "USA_IL")
	assert.Contains(t, out, "GBR_LND")
	assert.Contains(t, out, "apology.USA_IL.csv")
}

func TestRoot_ConfigFileEnablesReport(t *testing.T) {
	dir := writeInput(t)
	require.NoError(t, os.WriteFile("apology.yaml", []byte("write_report: true\nlog_level: error\n"), 0o644))

	_, err := execute(t, "recipients.csv")

	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "apology.summary.xlsx"))
}

func TestRoot_MalformedInputFails(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	require.NoError(t, os.WriteFile("bad.csv", []byte("1,a@b.com,Jo,Doe,1 Main St,Springfield,IL,62704\n"), 0o644))

	_, err := execute(t, "bad.csv")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading input: line 2:")
	matches, _ := filepath.Glob(filepath.Join(dir, "apology.*"))
	assert.Empty(t, matches)
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")

	require.NoError(t, err)
	assert.Contains(t, out, "Version:    "+Version)
	assert.Contains(t, out, "Table:      219 country codes")

	out, err = execute(t, "version", "--short")
	require.NoError(t, err)
	assert.Equal(t, Version+"\n", out)
}

// chdir changes the working directory for the duration of the test,
// restoring it on cleanup (equivalent of testing.T.Chdir, Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { require.NoError(t, os.Chdir(wd)) })
}
