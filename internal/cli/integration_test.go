package cli_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/syntree/internal/cli"
	"github.com/yaklabco/syntree/internal/logging"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := cli.NewRootCommand(cli.BuildInfo{
		Version: "test",
		Commit:  "test",
		Date:    "test",
	})

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String() + stderr.String(), err
}

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestIntegration_InspectJSON(t *testing.T) {
	t.Parallel()

	path := writeTempFile(t, "data.json", `[1, null]`)

	output, err := execute(t, "inspect", "--color", "never", path)
	require.NoError(t, err)

	assert.Contains(t, output, "document")
	assert.Contains(t, output, "array")
	assert.Contains(t, output, "number")
	assert.Contains(t, output, "null")
	assert.Contains(t, output, "no syntax errors")
}

func TestIntegration_InspectSexp(t *testing.T) {
	t.Parallel()

	path := writeTempFile(t, "data.json", `[1, null]`)

	output, err := execute(t, "inspect", "--sexp", "--color", "never", path)
	require.NoError(t, err)

	assert.Contains(t, output, "(document (array (number) (null)))")
}

func TestIntegration_InspectNamedOnly(t *testing.T) {
	t.Parallel()

	path := writeTempFile(t, "data.json", `[1, null]`)

	output, err := execute(t, "inspect", "--named-only", "--no-extents", "--color", "never", path)
	require.NoError(t, err)

	assert.NotContains(t, output, `"["`)
	assert.Contains(t, output, "number")
}

func TestIntegration_InspectSyntaxError(t *testing.T) {
	t.Parallel()

	path := writeTempFile(t, "broken.json", `[1,`)

	output, err := execute(t, "inspect", "--color", "never", path)
	require.Error(t, err)
	assert.ErrorIs(t, err, cli.ErrSyntaxErrorsFound)
	assert.Equal(t, cli.ExitSyntaxErrors, cli.ExitCodeFor(err))
	assert.Contains(t, output, "syntax error")
}

func TestIntegration_InspectExplicitLanguage(t *testing.T) {
	t.Parallel()

	// The flag overrides what extension or content detection would pick.
	path := writeTempFile(t, "payload.dat", `{"a": 1}`)

	output, err := execute(t, "inspect", "--language", "json", "--color", "never", path)
	require.NoError(t, err)

	assert.Contains(t, output, "object")
	assert.Contains(t, output, "pair")
}

func TestIntegration_InspectUnknownLanguage(t *testing.T) {
	t.Parallel()

	path := writeTempFile(t, "data.json", `{}`)

	_, err := execute(t, "inspect", "--language", "klingon", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown language")
	assert.Equal(t, cli.ExitInvalidUsage, cli.ExitCodeFor(err))
}

func TestIntegration_InspectMissingFile(t *testing.T) {
	t.Parallel()

	_, err := execute(t, "inspect", filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.Equal(t, cli.ExitIOError, cli.ExitCodeFor(err))
}

func TestIntegration_ConfigExtensionOverride(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	srcPath := filepath.Join(tmpDir, "payload.data")
	require.NoError(t, os.WriteFile(srcPath, []byte(`[true]`), 0o644))

	cfgPath := filepath.Join(tmpDir, ".syntree.yml")
	cfgContent := "languages:\n  .data: json\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfgContent), 0o644))

	output, err := execute(t, "inspect", "--config", cfgPath, "--color", "never", srcPath)
	require.NoError(t, err)

	assert.Contains(t, output, "array")
	assert.Contains(t, output, "true")
}

func TestIntegration_ConfigLogLevel(t *testing.T) {
	// Not parallel: asserts on the shared default logger's level.
	tmpDir := t.TempDir()
	srcPath := filepath.Join(tmpDir, "data.json")
	require.NoError(t, os.WriteFile(srcPath, []byte(`[1]`), 0o644))

	cfgPath := filepath.Join(tmpDir, ".syntree.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("log_level: debug\n"), 0o644))
	t.Cleanup(func() { logging.SetLevel("info") })

	_, err := execute(t, "inspect", "--config", cfgPath, "--color", "never", srcPath)
	require.NoError(t, err)

	assert.Equal(t, log.DebugLevel, logging.Default().GetLevel())
}

func TestIntegration_DebugFlagOverridesConfigLogLevel(t *testing.T) {
	// Not parallel: asserts on the shared default logger's level.
	tmpDir := t.TempDir()
	srcPath := filepath.Join(tmpDir, "data.json")
	require.NoError(t, os.WriteFile(srcPath, []byte(`[1]`), 0o644))

	cfgPath := filepath.Join(tmpDir, ".syntree.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("log_level: error\n"), 0o644))
	t.Cleanup(func() { logging.SetLevel("info") })

	_, err := execute(t, "inspect", "--debug", "--config", cfgPath, "--color", "never", srcPath)
	require.NoError(t, err)

	assert.Equal(t, log.DebugLevel, logging.Default().GetLevel())
}

func TestIntegration_InspectUsesContextLogger(t *testing.T) {
	t.Parallel()

	path := writeTempFile(t, "data.json", `[1]`)

	var logBuf bytes.Buffer
	logger := log.NewWithOptions(&logBuf, log.Options{})
	logger.SetLevel(log.DebugLevel)

	cmd := cli.NewRootCommand(cli.BuildInfo{})
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{"inspect", "--color", "never", path})

	ctx := logging.WithLogger(context.Background(), logger)
	require.NoError(t, cmd.ExecuteContext(ctx))

	assert.Contains(t, logBuf.String(), "parsing")
	assert.Contains(t, logBuf.String(), "parsed")
}

func TestIntegration_Symbols(t *testing.T) {
	t.Parallel()

	output, err := execute(t, "symbols", "--color", "never", "json")
	require.NoError(t, err)

	assert.Contains(t, output, "NAME")
	assert.Contains(t, output, "NAMED")
	assert.Contains(t, output, "document")
}

func TestIntegration_SymbolsNamedOnly(t *testing.T) {
	t.Parallel()

	output, err := execute(t, "symbols", "--named-only", "--color", "never", "json")
	require.NoError(t, err)

	assert.Contains(t, output, "document")
	// Anonymous bracket tokens are filtered out.
	assert.NotContains(t, output, `{`)
}

func TestIntegration_SymbolsUnknownLanguage(t *testing.T) {
	t.Parallel()

	_, err := execute(t, "symbols", "klingon")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown language")
}
