package core

import (
	"context"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"

	"buildplan/internal/types"
)

// DependencyGraph collects dependency and platform (BOM) declarations and
// resolves them into concrete versions. At most one platform is active per
// group namespace.
type DependencyGraph struct {
	declarations []types.DependencyDeclaration
	platforms    map[string]types.PlatformDeclaration
	sealed       bool
}

func NewDependencyGraph() *DependencyGraph {
	return &DependencyGraph{
		platforms: map[string]types.PlatformDeclaration{},
	}
}

func (g *DependencyGraph) AddDependency(decl types.DependencyDeclaration) error {
	if g.sealed {
		return errRegistrySealed("dependency graph")
	}
	decl.Coordinate = normalizeCoordinate(decl.Coordinate)
	if decl.Coordinate.Group == "" || decl.Coordinate.Artifact == "" {
		return errInvalidDeclaration(decl.Coordinate.String(), "group and artifact must not be empty")
	}
	if decl.Scope == "" {
		decl.Scope = types.ScopeCompile
	}
	if !validScope(decl.Scope) {
		return errInvalidDeclaration(decl.Coordinate.String(), "unknown scope "+string(decl.Scope))
	}
	switch decl.Constraint.Kind {
	case types.ConstraintExplicit:
		version, err := ParseVersion(decl.Constraint.Version)
		if err != nil {
			return errInvalidDeclaration(decl.Coordinate.String(), err.Error())
		}
		decl.Constraint.Version = version
	case types.ConstraintFromPlatform:
		decl.Constraint.Version = ""
	default:
		return errInvalidDeclaration(decl.Coordinate.String(), "unknown version constraint kind")
	}
	g.declarations = append(g.declarations, decl)
	return nil
}

// AddPlatform registers a BOM. Redeclaring the same version for a
// namespace is a no-op; a different version is a conflict.
func (g *DependencyGraph) AddPlatform(decl types.PlatformDeclaration) error {
	if g.sealed {
		return errRegistrySealed("dependency graph")
	}
	decl.Coordinate = normalizeCoordinate(decl.Coordinate)
	if decl.Coordinate.Group == "" || decl.Coordinate.Artifact == "" {
		return errInvalidDeclaration(decl.Coordinate.String(), "group and artifact must not be empty")
	}
	version, err := ParseVersion(decl.Version)
	if err != nil {
		return errInvalidDeclaration(decl.Coordinate.String(), err.Error())
	}
	decl.Version = version
	namespace := decl.Namespace()
	if existing, ok := g.platforms[namespace]; ok {
		if existing.Coordinate == decl.Coordinate && SameVersion(existing.Version, decl.Version) {
			return nil
		}
		return errConflictingPlatform(namespace, existing.Coordinate.String()+":"+existing.Version, decl.Coordinate.String()+":"+decl.Version)
	}
	g.platforms[namespace] = decl
	return nil
}

// Platforms returns the active platforms sorted by namespace.
func (g *DependencyGraph) Platforms() []types.PlatformDeclaration {
	out := make([]types.PlatformDeclaration, 0, len(g.platforms))
	for _, platform := range g.platforms {
		out = append(out, platform)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Coordinate.Group != out[j].Coordinate.Group {
			return out[i].Coordinate.Group < out[j].Coordinate.Group
		}
		return out[i].Coordinate.Artifact < out[j].Coordinate.Artifact
	})
	return out
}

func (g *DependencyGraph) Declarations() []types.DependencyDeclaration {
	return append([]types.DependencyDeclaration(nil), g.declarations...)
}

// Resolve assigns a version to every declaration, collapses duplicate
// coordinate+scope pairs and returns the result sorted by group, artifact
// and scope. Two different versions for one coordinate are a conflict.
func (g *DependencyGraph) Resolve(ctx context.Context) ([]types.ResolvedDependency, error) {
	type scopedKey struct {
		coordinate types.Coordinate
		scope      types.DependencyScope
	}
	pinned := map[types.Coordinate]string{}
	merged := map[scopedKey]types.ResolvedDependency{}

	for _, decl := range g.declarations {
		resolved := types.ResolvedDependency{
			Group:    decl.Coordinate.Group,
			Artifact: decl.Coordinate.Artifact,
			Scope:    decl.Scope,
		}
		switch decl.Constraint.Kind {
		case types.ConstraintFromPlatform:
			platform, ok := g.platforms[decl.Coordinate.Group]
			if !ok {
				return nil, errNoPlatformForNamespace(decl.Coordinate.Group)
			}
			resolved.Version = platform.Version
			resolved.Platform = platform.Coordinate.String()
		default:
			resolved.Version = decl.Constraint.Version
		}

		if existing, ok := pinned[decl.Coordinate]; ok {
			if !SameVersion(existing, resolved.Version) {
				return nil, errVersionConflict(decl.Coordinate.String(), existing, resolved.Version)
			}
		} else {
			pinned[decl.Coordinate] = resolved.Version
		}

		key := scopedKey{coordinate: decl.Coordinate, scope: decl.Scope}
		if existing, ok := merged[key]; ok {
			// Keep platform provenance when either declaration carries it.
			if existing.Platform == "" && resolved.Platform != "" {
				existing.Platform = resolved.Platform
				merged[key] = existing
			}
			continue
		}
		merged[key] = resolved
	}

	out := make([]types.ResolvedDependency, 0, len(merged))
	for _, dep := range merged {
		out = append(out, dep)
	}
	sortResolved(out)
	log.Ctx(ctx).Debug().
		Int("declared", len(g.declarations)).
		Int("resolved", len(out)).
		Msg("dependencies resolved")
	return out, nil
}

func (g *DependencyGraph) Seal() {
	g.sealed = true
}

func sortResolved(deps []types.ResolvedDependency) {
	sort.Slice(deps, func(i, j int) bool {
		if deps[i].Group != deps[j].Group {
			return deps[i].Group < deps[j].Group
		}
		if deps[i].Artifact != deps[j].Artifact {
			return deps[i].Artifact < deps[j].Artifact
		}
		return deps[i].Scope < deps[j].Scope
	})
}

func normalizeCoordinate(coordinate types.Coordinate) types.Coordinate {
	return types.Coordinate{
		Group:    strings.TrimSpace(coordinate.Group),
		Artifact: strings.TrimSpace(coordinate.Artifact),
	}
}
