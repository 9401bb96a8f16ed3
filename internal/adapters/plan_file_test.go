package adapters

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"buildplan/internal/types"
)

func samplePlan() types.ResolvedBuildPlan {
	return types.ResolvedBuildPlan{
		Version: types.VersionSnapshot{MinSdk: 23, TargetSdk: 34, CompileSdk: 35, AppVersionCode: 7, AppVersionName: "1.2.0"},
		Application: types.Application{
			Namespace:     "com.rynd.smoked_app",
			ApplicationID: "com.rynd.smoked_app",
		},
		Plugins: []types.PluginDeclaration{
			{ID: "com.android.application", AppliedVia: types.AppliedViaDirect},
			{ID: "dev.flutter.flutter-gradle-plugin", AppliedVia: types.AppliedViaExternalTool},
		},
		Variant: types.Variant{Name: "release", SigningIdentityRef: "debug", Overrides: map[string]string{"minifyEnabled": "true"}},
		Signing: types.SigningIdentity{Name: "debug", CredentialsRef: DebugCredentialsRef},
		Dependencies: []types.ResolvedDependency{
			{Group: "com.google.firebase", Artifact: "firebase-analytics", Version: "34.0.0", Scope: types.ScopeCompile, Platform: "com.google.firebase:firebase-bom"},
		},
		Platforms: []types.PlatformDeclaration{
			{Coordinate: types.Coordinate{Group: "com.google.firebase", Artifact: "firebase-bom"}, Version: "34.0.0"},
		},
		Fingerprint: "0123456789abcdef",
	}
}

func TestPlanFileRoundTrip(t *testing.T) {
	for _, format := range []types.PlanFormat{types.PlanFormatYAML, types.PlanFormatJSON} {
		t.Run(string(format), func(t *testing.T) {
			dir := filepath.Join(t.TempDir(), "plans")
			path, err := NewPlanFileAdapter(dir).WritePlan(samplePlan(), format)
			require.NoError(t, err)
			assert.Equal(t, filepath.Join(dir, "release.plan."+string(format)), path)

			plan, err := NewPlanReaderAdapter().ReadPlan(path)
			require.NoError(t, err)
			if diff := cmp.Diff(samplePlan(), plan); diff != "" {
				t.Fatalf("plan changed across write/read (-want +got):\n%s", diff)
			}
		})
	}
}

func TestEncodePlanIsStable(t *testing.T) {
	first, err := EncodePlan(samplePlan(), types.PlanFormatYAML)
	require.NoError(t, err)
	second, err := EncodePlan(samplePlan(), types.PlanFormatYAML)
	require.NoError(t, err)
	assert.Equal(t, string(first), string(second))

	_, err = EncodePlan(samplePlan(), "toml")
	require.Error(t, err)
}

func TestPlanFileErrors(t *testing.T) {
	_, err := NewPlanFileAdapter("").WritePlan(samplePlan(), types.PlanFormatYAML)
	require.Error(t, err)

	path := filepath.Join(t.TempDir(), "empty.plan.yaml")
	require.NoError(t, os.WriteFile(path, []byte("fingerprint: abc\n"), 0644))
	_, err = NewPlanReaderAdapter().ReadPlan(path)
	require.Error(t, err)
}

func TestPlanFileRejectsEscapingVariantNames(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "out")
	for _, name := range []string{"../x", "nested/x", ".."} {
		t.Run(name, func(t *testing.T) {
			plan := samplePlan()
			plan.Variant.Name = name
			_, err := NewPlanFileAdapter(outDir).WritePlan(plan, types.PlanFormatYAML)
			require.Error(t, err)
			assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
		})
	}
	_, err := os.Stat(filepath.Join(filepath.Dir(outDir), "x.plan.yaml"))
	assert.True(t, os.IsNotExist(err))
}
