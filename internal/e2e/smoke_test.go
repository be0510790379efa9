package e2e

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSmokeFlow(t *testing.T) {
	home := t.TempDir()
	binaryPath := buildBinary(t)
	catalogPath := filepath.Join(home, "catalog.toml")
	dbPath := filepath.Join(home, "catalog.db")

	_, stderr, err := runMed(t, binaryPath, home, "catalog", "init", "--path", catalogPath)
	require.NoError(t, err, "stderr: %s", stderr)

	_, stderr, err = runMed(t, binaryPath, home, "catalog", "import", "--from", catalogPath, "--db", dbPath)
	require.NoError(t, err, "stderr: %s", stderr)

	stdout, stderr, err := runMed(t, binaryPath, home, "--catalog-source", "sqlite", "--catalog-path", dbPath, "sessions")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "Morning Calm (1)")
	assert.Contains(t, stdout, "Deep Sleep Journey (2)")

	stdout, stderr, err = runMed(t, binaryPath, home, "play", "1", "--headless", "--toggles", "3")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "stopped after 3 toggles")
}

func buildBinary(t *testing.T) string {
	t.Helper()

	binaryPath := filepath.Join(t.TempDir(), "med-e2e")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/med")
	cmd.Dir = repoRoot(t)

	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "build med binary: %s", string(output))
	return binaryPath
}

func runMed(t *testing.T, binaryPath, home string, args ...string) (string, string, error) {
	t.Helper()

	cmd := exec.Command(binaryPath, args...)
	cmd.Env = append(os.Environ(), "HOME="+home, "MED_CONFIG_DIR=", "MED_CATALOG_SOURCE=", "MED_CATALOG_PATH=")

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

func repoRoot(t *testing.T) string {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(wd, "..", ".."))
}
