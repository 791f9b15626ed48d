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

	_, stderr, err := runFfsub(t, binaryPath, home, "catalog", "seed")
	require.NoError(t, err, "stderr: %s", stderr)

	stdout, stderr, err := runFfsub(t, binaryPath, home,
		"decide", "--json",
		"--energy", "ok",
		"--at", "2026-08-30T18:05:00Z",
	)
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "\"decisionType\"")
	assert.Contains(t, stdout, "\"contextHash\"")

	stdout, stderr, err = runFfsub(t, binaryPath, home, "history", "--days", "30")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "decisions: 1")
}

func buildBinary(t *testing.T) string {
	t.Helper()

	binaryPath := filepath.Join(t.TempDir(), "ffsub-e2e")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/ffsub")
	cmd.Dir = repoRoot(t)

	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "build ffsub binary: %s", string(output))
	return binaryPath
}

func runFfsub(t *testing.T, binaryPath, home string, args ...string) (string, string, error) {
	t.Helper()

	cmd := exec.Command(binaryPath, args...)
	cmd.Env = append(os.Environ(), "HOME="+home)

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
