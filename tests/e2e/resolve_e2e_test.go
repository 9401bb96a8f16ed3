package e2e

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"buildplan/tests/testutil"
)

func TestResolveCommandE2E(t *testing.T) {
	root := testutil.RepoRoot(t)
	outDir := t.TempDir()

	cmd := exec.Command("go", "run", "./cmd/buildplan", "resolve",
		"--manifest", "fixtures/manifest.yaml",
		"--variant", "release",
		"--variant", "store",
		"--output", outDir,
	)
	cmd.Dir = root
	cmd.Env = append(os.Environ(), "GO111MODULE=on")
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, string(out))

	require.FileExists(t, filepath.Join(outDir, "release.plan.yaml"))
	require.FileExists(t, filepath.Join(outDir, "store.plan.yaml"))
	assert.NoFileExists(t, filepath.Join(outDir, "debug.plan.yaml"))
}

func TestResolveCommandExitCodes(t *testing.T) {
	root := testutil.RepoRoot(t)
	tests := []struct {
		name     string
		manifest string
		extra    []string
		code     int
	}{
		{name: "missing platform", manifest: "fixtures/manifest-no-platform.yaml", code: 4},
		{name: "conflicting platforms", manifest: "fixtures/manifest-conflict.yaml", code: 3},
		{name: "strict warnings", manifest: "fixtures/manifest.yaml", extra: []string{"--catalog", "fixtures/catalog-strict.yaml", "--strict"}, code: 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"run", "./cmd/buildplan", "resolve",
				"--manifest", tt.manifest,
				"--output", t.TempDir(),
			}, tt.extra...)
			cmd := exec.Command("go", args...)
			cmd.Dir = root
			out, err := cmd.CombinedOutput()
			require.Error(t, err, string(out))

			var exitErr *exec.ExitError
			require.True(t, errors.As(err, &exitErr), string(out))
			assert.Equal(t, tt.code, exitErr.ExitCode(), string(out))
		})
	}
}
