package app

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"buildplan/internal/core"
)

func TestValidateApp(t *testing.T) {
	result, err := NewService().Validate(t.Context(), ValidateRequest{
		ManifestPath: fixturePath(t, "manifest.yaml"),
	})
	require.NoError(t, err)
	if diff := cmp.Diff("smoked-app", result.ManifestName); diff != "" {
		t.Fatalf("unexpected manifest name (-want +got):\n%s", diff)
	}
	assert.Equal(t, []string{"debug", "release", "store"}, result.Variants)
	assert.Len(t, result.Plugins, 4)
	assert.Equal(t, []string{"debug", "upload"}, result.Identities)
	assert.Equal(t, 1, result.Platforms)
	assert.Equal(t, 1, result.Declared)
	assert.Equal(t, 1, result.Dependencies)
}

func TestValidateAppReportsGraphErrors(t *testing.T) {
	_, err := NewService().Validate(t.Context(), ValidateRequest{
		ManifestPath: fixturePath(t, "manifest-no-platform.yaml"),
	})
	require.Error(t, err)
	assert.True(t, core.IsKind(err, core.KindNoPlatformForNamespace))

	_, err = NewService().Validate(t.Context(), ValidateRequest{})
	require.Error(t, err)
}
