package core

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"buildplan/internal/policies"
	"buildplan/internal/types"
)

func sampleManifest() types.Manifest {
	return types.Manifest{
		APIVersion: "v1",
		Metadata:   types.Metadata{Name: "sample-app"},
		Android: types.AndroidBlock{
			Namespace:   "com.example.sample",
			NdkVersion:  "27.0.12077973",
			JavaVersion: "JavaVersion.VERSION_11",
			DefaultConfig: types.DefaultConfig{
				MinSdk: "23",
			},
		},
		Plugins: []types.PluginEntry{
			{ID: "com.android.application"},
			{ID: "kotlin-android"},
			{ID: "dev.flutter.flutter-gradle-plugin", AppliedVia: "external_tool"},
			{ID: "com.google.gms.google-services"},
		},
		Variants: []types.VariantEntry{
			{Name: "debug", Signing: "debug"},
			{Name: "release"},
		},
		Dependencies: []types.DependencyEntry{
			{Notation: "com.google.firebase:firebase-bom:34.0.0", Platform: true},
			{Notation: "com.google.firebase:firebase-analytics", Scope: "implementation"},
		},
	}
}

func TestManifestCompilerCompile(t *testing.T) {
	compiler := NewManifestCompiler(policies.DefaultPluginCompatibility())
	registries, err := compiler.Compile(t.Context(), sampleManifest())
	require.NoError(t, err)

	assert.Len(t, registries.Plugins.All(), 4)
	assert.Equal(t, []string{"debug", "release"}, registries.Variants.Names())
	assert.Equal(t, types.VersionOverrides{MinSdk: 23}, registries.Overrides)

	expectedApp := types.Application{
		Namespace:     "com.example.sample",
		ApplicationID: "com.example.sample",
		NdkVersion:    "27.0.12077973",
		JavaVersion:   "11",
	}
	if diff := cmp.Diff(expectedApp, registries.Application); diff != "" {
		t.Fatalf("unexpected application (-want +got):\n%s", diff)
	}

	deps, err := registries.Graph.Resolve(t.Context())
	require.NoError(t, err)
	require.Len(t, deps, 1)
	assert.Equal(t, "34.0.0", deps[0].Version)
	assert.Equal(t, "com.google.firebase:firebase-bom", deps[0].Platform)
}

func TestManifestCompilerValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*types.Manifest)
		kind   ErrorKind
	}{
		{name: "api version", mutate: func(m *types.Manifest) { m.APIVersion = "v2" }},
		{name: "missing name", mutate: func(m *types.Manifest) { m.Metadata.Name = "" }},
		{name: "no variants", mutate: func(m *types.Manifest) { m.Variants = nil }},
		{
			name:   "unknown default variant",
			mutate: func(m *types.Manifest) { m.Signing.DefaultVariant = "staging" },
			kind:   KindUnknownVariant,
		},
		{
			name:   "scoped platform",
			mutate: func(m *types.Manifest) { m.Dependencies[0].Scope = "test" },
			kind:   KindInvalidDeclaration,
		},
		{
			name:   "platform without version",
			mutate: func(m *types.Manifest) { m.Dependencies[0].Notation = "com.google.firebase:firebase-bom" },
			kind:   KindInvalidDeclaration,
		},
		{
			name: "duplicate plugin",
			mutate: func(m *types.Manifest) {
				m.Plugins = append(m.Plugins, types.PluginEntry{ID: "kotlin-android"})
			},
			kind: KindDuplicatePlugin,
		},
		{
			name: "duplicate variant",
			mutate: func(m *types.Manifest) {
				m.Variants = append(m.Variants, types.VariantEntry{Name: "release"})
			},
			kind: KindDuplicateVariant,
		},
		{
			name:   "unresolved signing identity",
			mutate: func(m *types.Manifest) { m.Variants[1].Signing = "upload" },
			kind:   KindUnresolvedSigningIdentity,
		},
		{
			name: "conflicting platform",
			mutate: func(m *types.Manifest) {
				m.Dependencies = append(m.Dependencies, types.DependencyEntry{Notation: "com.google.firebase:firebase-bom:33.1.0", Platform: true})
			},
			kind: KindConflictingPlatform,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			manifest := sampleManifest()
			tt.mutate(&manifest)
			_, err := NewManifestCompiler(policies.DefaultPluginCompatibility()).Compile(t.Context(), manifest)
			require.Error(t, err)
			assert.Equal(t, tt.kind, KindOf(err))
		})
	}
}

func TestManifestCompilerSdkCodenames(t *testing.T) {
	manifest := sampleManifest()
	manifest.Android.DefaultConfig = types.DefaultConfig{MinSdk: "M", TargetSdk: "U", CompileSdk: " 35 "}

	registries, err := NewManifestCompiler(policies.DefaultPluginCompatibility()).Compile(t.Context(), manifest)
	require.NoError(t, err)
	assert.Equal(t, types.VersionOverrides{MinSdk: 23, TargetSdk: 34, CompileSdk: 35}, registries.Overrides)

	manifest.Android.DefaultConfig.TargetSdk = "Flan"
	_, err = NewManifestCompiler(policies.DefaultPluginCompatibility()).Compile(t.Context(), manifest)
	require.Error(t, err)
	assert.Equal(t, KindInvalidVersionData, KindOf(err))
	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "default_config.target_sdk", cfgErr.Subject)
}

func TestManifestCompilerDeclaredIdentities(t *testing.T) {
	manifest := sampleManifest()
	manifest.Signing.Identities = []string{"upload"}
	manifest.Variants[1].Signing = "upload"

	registries, err := NewManifestCompiler(nil).Compile(t.Context(), manifest)
	require.NoError(t, err)
	release, err := registries.Variants.ResolveWithDefaults(t.Context(), "release")
	require.NoError(t, err)
	assert.Equal(t, "upload", release.SigningIdentityRef)
}

func TestNormalizeJavaVersion(t *testing.T) {
	tests := map[string]string{
		"11":                      "11",
		"VERSION_17":              "17",
		"JavaVersion.VERSION_1_8": "1.8",
		"":                        "",
	}
	for in, want := range tests {
		assert.Equal(t, want, normalizeJavaVersion(in), in)
	}
}
