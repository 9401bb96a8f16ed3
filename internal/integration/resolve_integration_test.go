package integration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"buildplan/internal/adapters"
	"buildplan/internal/core"
	"buildplan/internal/policies"
	"buildplan/internal/types"
)

func TestResolveIntegration(t *testing.T) {
	root := repoRoot(t)
	manifest, err := adapters.NewManifestFileAdapter().LoadManifest(filepath.Join(root, "fixtures/manifest.hcl"))
	require.NoError(t, err)

	registries, err := core.NewManifestCompiler(policies.DefaultPluginCompatibility()).Compile(t.Context(), manifest)
	require.NoError(t, err)

	signing, err := adapters.NewSigningStoreFileAdapter(filepath.Join(root, "fixtures/signing.yaml"))
	require.NoError(t, err)
	versions := core.NewVersionReader(
		adapters.NewDescriptorVersionSource(filepath.Join(root, "fixtures/version.yaml")),
		registries.Overrides,
	)
	resolver := core.NewResolver(versions, registries.Plugins, registries.Variants, registries.Graph, signing).
		WithApplication(registries.Application)

	plan, err := resolver.Resolve(t.Context(), "release")
	require.NoError(t, err)
	assert.Equal(t, 23, plan.Version.MinSdk)
	assert.Equal(t, 34, plan.Version.TargetSdk)
	assert.Equal(t, 35, plan.Version.CompileSdk)
	assert.Equal(t, "-12", plan.Variant.Overrides["versionNameSuffix"])
	assert.Equal(t, "11", plan.Application.JavaVersion)

	outDir := t.TempDir()
	path, err := adapters.NewPlanFileAdapter(outDir).WritePlan(plan, types.PlanFormatJSON)
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(outDir, "release.plan.json"))
	require.NoError(t, err)

	restored, err := adapters.NewPlanReaderAdapter().ReadPlan(path)
	require.NoError(t, err)
	assert.Equal(t, plan.Fingerprint, core.Fingerprint(restored))
}

func repoRoot(t *testing.T) string {
	dir, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(dir, "..", ".."))
}
