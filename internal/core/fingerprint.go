package core

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/cespare/xxhash/v2"

	"buildplan/internal/types"
)

// Fingerprint hashes every field of the plan except the fingerprint itself.
// Identical plans always produce identical fingerprints.
func Fingerprint(plan types.ResolvedBuildPlan) string {
	hasher := xxhash.New()
	write := func(parts ...string) {
		for _, part := range parts {
			_, _ = hasher.WriteString(part)
			_, _ = hasher.WriteString("\x00")
		}
		_, _ = hasher.WriteString("\n")
	}

	v := plan.Version
	write("version", strconv.Itoa(v.MinSdk), strconv.Itoa(v.TargetSdk), strconv.Itoa(v.CompileSdk),
		strconv.Itoa(v.AppVersionCode), v.AppVersionName)
	a := plan.Application
	write("application", a.Namespace, a.ApplicationID, a.NdkVersion, a.JavaVersion)
	for _, plugin := range plan.Plugins {
		write("plugin", plugin.ID, string(plugin.AppliedVia))
	}
	write("variant", plan.Variant.Name, plan.Variant.SigningIdentityRef)
	keys := make([]string, 0, len(plan.Variant.Overrides))
	for key := range plan.Variant.Overrides {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		write("override", key, plan.Variant.Overrides[key])
	}
	write("signing", plan.Signing.Name, plan.Signing.CredentialsRef)
	for _, dep := range plan.Dependencies {
		write("dependency", dep.Group, dep.Artifact, dep.Version, string(dep.Scope), dep.Platform)
	}
	for _, platform := range plan.Platforms {
		write("platform", platform.Coordinate.Group, platform.Coordinate.Artifact, platform.Version)
	}
	for _, warning := range plan.Warnings {
		write("warning", string(warning.Kind), warning.Coordinate, warning.Message)
	}
	return fmt.Sprintf("%016x", hasher.Sum64())
}
