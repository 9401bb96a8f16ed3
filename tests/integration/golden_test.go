package integration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"buildplan/internal/adapters"
	"buildplan/internal/core"
	"buildplan/internal/policies"
	"buildplan/internal/types"
	"buildplan/tests/testutil"
)

// buildResolver wires the file adapters to the core the way the app
// service does, without the service in between.
func buildResolver(t *testing.T, manifestPath string) core.Resolver {
	t.Helper()
	manifest, err := adapters.NewManifestFileAdapter().LoadManifest(manifestPath)
	require.NoError(t, err)
	registries, err := core.NewManifestCompiler(policies.DefaultPluginCompatibility()).Compile(t.Context(), manifest)
	require.NoError(t, err)

	signing, err := adapters.NewSigningStoreFileAdapter(testutil.Fixture(t, "signing.yaml"))
	require.NoError(t, err)
	catalog, err := adapters.NewCatalogFileAdapter(testutil.Fixture(t, "catalog.yaml"))
	require.NoError(t, err)

	versions := core.NewVersionReader(
		adapters.NewDescriptorVersionSource(testutil.Fixture(t, "local.properties")),
		registries.Overrides,
	)
	return core.NewResolver(versions, registries.Plugins, registries.Variants, registries.Graph, signing).
		WithCatalog(catalog).
		WithApplication(registries.Application)
}

// TestGoldenPlan resolves the sample manifest and compares each plan with
// the committed golden file. Missing golden files are written so they can
// be committed.
//
// To update golden files after an intentional change, delete the
// testdata/golden/ directory and re-run the test.
func TestGoldenPlan(t *testing.T) {
	root := testutil.RepoRoot(t)
	goldenDir := filepath.Join(root, "tests", "integration", "testdata", "golden")
	resolver := buildResolver(t, testutil.Fixture(t, "manifest.yaml"))

	for _, variant := range []string{"debug", "release", "store"} {
		t.Run(variant, func(t *testing.T) {
			plan, err := resolver.Resolve(t.Context(), variant)
			require.NoError(t, err)
			actual, err := adapters.EncodePlan(plan, types.PlanFormatYAML)
			require.NoError(t, err)

			goldenPath := filepath.Join(goldenDir, adapters.PlanFileName(variant, types.PlanFormatYAML))
			if _, statErr := os.Stat(goldenPath); os.IsNotExist(statErr) {
				require.NoError(t, os.MkdirAll(goldenDir, 0o755))
				require.NoError(t, os.WriteFile(goldenPath, actual, 0o644))
				t.Logf("golden file written: %s (commit it)", goldenPath)
				return
			}

			expected, err := os.ReadFile(goldenPath)
			require.NoError(t, err)
			assert.Equal(t, string(expected), string(actual),
				"golden mismatch for %s -- delete testdata/golden/ and re-run to regenerate", variant)
		})
	}
}

// TestManifestFormatsAgree checks that the YAML and HCL fixtures describe
// the same build for the release variant.
func TestManifestFormatsAgree(t *testing.T) {
	fromYAML, err := buildResolver(t, testutil.Fixture(t, "manifest.yaml")).Resolve(t.Context(), "release")
	require.NoError(t, err)
	fromHCL, err := buildResolver(t, testutil.Fixture(t, "manifest.hcl")).Resolve(t.Context(), "release")
	require.NoError(t, err)

	if diff := cmp.Diff(fromYAML.Dependencies, fromHCL.Dependencies); diff != "" {
		t.Fatalf("dependencies differ between formats (-yaml +hcl):\n%s", diff)
	}
	if diff := cmp.Diff(fromYAML.Plugins, fromHCL.Plugins); diff != "" {
		t.Fatalf("plugins differ between formats (-yaml +hcl):\n%s", diff)
	}
	assert.Equal(t, fromYAML.Version, fromHCL.Version)
	assert.Equal(t, fromYAML.Signing, fromHCL.Signing)
	assert.Equal(t, fromYAML.Application.Namespace, fromHCL.Application.Namespace)
}

// TestResolveConcurrentVariants resolves the same sealed registries from
// several goroutines; every result must match the sequential one.
func TestResolveConcurrentVariants(t *testing.T) {
	resolver := buildResolver(t, testutil.Fixture(t, "manifest.yaml"))

	expected, err := resolver.Resolve(t.Context(), "release")
	require.NoError(t, err)

	results := make(chan types.ResolvedBuildPlan, 8)
	errs := make(chan error, 8)
	for range 8 {
		go func() {
			plan, err := resolver.Resolve(t.Context(), "release")
			if err != nil {
				errs <- err
				return
			}
			results <- plan
		}()
	}
	for range 8 {
		select {
		case err := <-errs:
			t.Fatalf("concurrent resolve failed: %v", err)
		case plan := <-results:
			assert.Equal(t, expected.Fingerprint, plan.Fingerprint)
		}
	}
}
