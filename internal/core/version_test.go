package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"buildplan/internal/types"
)

func TestParseVersion(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{raw: "34.0.0", want: "34.0.0"},
		{raw: " 2024.06.00 ", want: "2024.06.00"},
		{raw: "1.2.3-alpha01", want: "1.2.3-alpha01"},
		{raw: "", wantErr: true},
		{raw: "1.+", wantErr: true},
		{raw: "latest.release", wantErr: true},
		{raw: "[1.0,2.0)", wantErr: true},
		{raw: "abc", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseVersion(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCompareVersions(t *testing.T) {
	assert.Positive(t, CompareVersions("1.10.0", "1.9.0"))
	assert.Negative(t, CompareVersions("33.1.0", "34.0.0"))
	assert.Zero(t, CompareVersions("34.0.0", "34.0.0"))
	assert.True(t, SameVersion("34.0.0", " 34.0.0"))
	assert.False(t, SameVersion("34.0.0", "34.0.1"))
}

func TestParseNotation(t *testing.T) {
	coordinate, version, err := ParseNotation("com.google.firebase:firebase-bom:34.0.0")
	require.NoError(t, err)
	assert.Equal(t, types.Coordinate{Group: "com.google.firebase", Artifact: "firebase-bom"}, coordinate)
	assert.Equal(t, "34.0.0", version)

	coordinate, version, err = ParseNotation("com.google.firebase:firebase-analytics")
	require.NoError(t, err)
	assert.Equal(t, "com.google.firebase:firebase-analytics", coordinate.String())
	assert.Empty(t, version)

	for _, raw := range []string{"", "firebase", "a:b:c:d", ":artifact", "group:artifact:"} {
		_, _, err := ParseNotation(raw)
		assert.True(t, IsKind(err, KindInvalidDeclaration), raw)
	}
}

func TestParseScope(t *testing.T) {
	tests := map[string]types.DependencyScope{
		"":                   types.ScopeCompile,
		"implementation":     types.ScopeCompile,
		"api":                types.ScopeCompile,
		"runtimeOnly":        types.ScopeRuntimeOnly,
		"runtime_only":       types.ScopeRuntimeOnly,
		"testImplementation": types.ScopeTest,
	}
	for raw, want := range tests {
		got, err := ParseScope(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, want, got, raw)
	}
	_, err := ParseScope("compileOnly")
	assert.True(t, IsKind(err, KindInvalidDeclaration))
}

func TestSdkRange(t *testing.T) {
	sdkRange, err := ParseSdkRange(">=21,<=34")
	require.NoError(t, err)
	assert.True(t, sdkRange.Allows(21))
	assert.True(t, sdkRange.Allows(34))
	assert.False(t, sdkRange.Allows(35))
	assert.False(t, sdkRange.Allows(19))
	assert.Equal(t, ">=21,<=34", sdkRange.String())

	_, err = ParseSdkRange("")
	assert.Error(t, err)
}
