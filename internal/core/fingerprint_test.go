package core

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"buildplan/internal/types"
)

func TestFingerprintStableAndSensitive(t *testing.T) {
	plan := types.ResolvedBuildPlan{
		Version: scenarioSnapshot(),
		Variant: types.Variant{Name: "release", SigningIdentityRef: "debug", Overrides: map[string]string{"b": "2", "a": "1"}},
		Signing: types.SigningIdentity{Name: "debug"},
		Dependencies: []types.ResolvedDependency{
			{Group: "com.google.firebase", Artifact: "firebase-analytics", Version: "34.0.0", Scope: types.ScopeCompile},
		},
	}
	first := Fingerprint(plan)
	assert.Len(t, first, 16)
	assert.Equal(t, first, Fingerprint(plan))

	plan.Fingerprint = "ignored"
	assert.Equal(t, first, Fingerprint(plan))

	plan.Dependencies[0].Version = "34.0.1"
	assert.NotEqual(t, first, Fingerprint(plan))
}
