package core

import (
	"fmt"
	"strings"

	"buildplan/internal/types"
)

// ParseNotation splits a Gradle "group:artifact[:version]" string into a
// coordinate and an optional version. A missing version means the
// declaration inherits it from a platform.
func ParseNotation(raw string) (types.Coordinate, string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return types.Coordinate{}, "", errInvalidDeclaration("dependency", "empty notation")
	}
	parts := strings.Split(raw, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return types.Coordinate{}, "", errInvalidDeclaration(raw, "expected group:artifact[:version]")
	}
	coordinate := types.Coordinate{
		Group:    strings.TrimSpace(parts[0]),
		Artifact: strings.TrimSpace(parts[1]),
	}
	if coordinate.Group == "" || coordinate.Artifact == "" {
		return types.Coordinate{}, "", errInvalidDeclaration(raw, "group and artifact must not be empty")
	}
	if len(parts) == 2 {
		return coordinate, "", nil
	}
	version := strings.TrimSpace(parts[2])
	if version == "" {
		return types.Coordinate{}, "", errInvalidDeclaration(raw, "empty version")
	}
	return coordinate, version, nil
}

// scopeAliases maps Gradle configuration names onto dependency scopes.
var scopeAliases = map[string]types.DependencyScope{
	"":                   types.ScopeCompile,
	"compile":            types.ScopeCompile,
	"implementation":     types.ScopeCompile,
	"api":                types.ScopeCompile,
	"runtime_only":       types.ScopeRuntimeOnly,
	"runtimeonly":        types.ScopeRuntimeOnly,
	"test":               types.ScopeTest,
	"testimplementation": types.ScopeTest,
}

func ParseScope(raw string) (types.DependencyScope, error) {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	scope, ok := scopeAliases[normalized]
	if !ok {
		return "", errInvalidDeclaration(raw, fmt.Sprintf("unknown dependency scope %q", raw))
	}
	return scope, nil
}

func validScope(scope types.DependencyScope) bool {
	switch scope {
	case types.ScopeCompile, types.ScopeRuntimeOnly, types.ScopeTest:
		return true
	default:
		return false
	}
}

func ParseAppliedVia(raw string) (types.AppliedVia, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", string(types.AppliedViaDirect):
		return types.AppliedViaDirect, nil
	case string(types.AppliedViaExternalTool), "external-tool", "external":
		return types.AppliedViaExternalTool, nil
	default:
		return "", errInvalidDeclaration(raw, "applied_via must be direct or external_tool")
	}
}
