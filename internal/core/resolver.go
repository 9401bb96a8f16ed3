package core

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"buildplan/internal/ports"
	"buildplan/internal/types"
)

// Resolver merges the version snapshot, plugin registry, variant table and
// dependency graph into one ResolvedBuildPlan. Constructing a Resolver
// seals the registries; Resolve only reads them, so concurrent calls for
// different variants are safe.
type Resolver struct {
	Versions    VersionReader
	Plugins     *PluginRegistry
	Variants    *VariantTable
	Graph       *DependencyGraph
	Signing     ports.SigningStorePort
	Catalog     ports.DependencyCatalogPort
	Application types.Application
}

func NewResolver(versions VersionReader, plugins *PluginRegistry, variants *VariantTable, graph *DependencyGraph, signing ports.SigningStorePort) Resolver {
	plugins.Seal()
	variants.Seal()
	graph.Seal()
	return Resolver{
		Versions: versions,
		Plugins:  plugins,
		Variants: variants,
		Graph:    graph,
		Signing:  signing,
	}
}

func (r Resolver) WithCatalog(catalog ports.DependencyCatalogPort) Resolver {
	r.Catalog = catalog
	return r
}

func (r Resolver) WithApplication(application types.Application) Resolver {
	r.Application = application
	return r
}

// Resolve builds the plan for variantName. The first failing step aborts;
// no partial plan is returned. SDK incompatibilities are attached to the
// plan as warnings.
func (r Resolver) Resolve(ctx context.Context, variantName string) (types.ResolvedBuildPlan, error) {
	if r.Plugins == nil || r.Variants == nil || r.Graph == nil {
		return types.ResolvedBuildPlan{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("resolver requires plugin registry, variant table and dependency graph")
	}
	variantName = strings.TrimSpace(variantName)

	snapshot, err := r.Versions.Read(ctx)
	if err != nil {
		return types.ResolvedBuildPlan{}, err
	}

	if err := r.Plugins.Validate(ctx); err != nil {
		return types.ResolvedBuildPlan{}, err
	}

	variant, err := r.Variants.ResolveWithDefaults(ctx, variantName)
	if err != nil {
		return types.ResolvedBuildPlan{}, err
	}
	variant, err = expandOverrides(variant, snapshot)
	if err != nil {
		return types.ResolvedBuildPlan{}, err
	}

	signing, err := r.lookupSigning(variant.SigningIdentityRef)
	if err != nil {
		return types.ResolvedBuildPlan{}, err
	}

	deps, err := r.Graph.Resolve(ctx)
	if err != nil {
		return types.ResolvedBuildPlan{}, err
	}

	plan := types.ResolvedBuildPlan{
		Version:      snapshot,
		Application:  r.Application,
		Plugins:      r.Plugins.All(),
		Variant:      variant,
		Signing:      signing,
		Dependencies: deps,
		Platforms:    r.Graph.Platforms(),
	}
	warnings, err := r.checkDependencySdk(snapshot, deps)
	if err != nil {
		return types.ResolvedBuildPlan{}, err
	}
	plan.Warnings = warnings
	plan.Fingerprint = Fingerprint(plan)

	log.Ctx(ctx).Debug().
		Str("variant", variant.Name).
		Int("dependencies", len(deps)).
		Int("warnings", len(warnings)).
		Str("fingerprint", plan.Fingerprint).
		Msg("plan assembled")
	return plan, nil
}

func (r Resolver) lookupSigning(ref string) (types.SigningIdentity, error) {
	if r.Signing == nil {
		return types.SigningIdentity{}, errSigningIdentityNotFound(ref, errors.New("no signing store configured"))
	}
	identity, err := r.Signing.Lookup(ref)
	if err != nil {
		return types.SigningIdentity{}, errSigningIdentityNotFound(ref, err)
	}
	if strings.TrimSpace(identity.Name) == "" {
		identity.Name = ref
	}
	if identity.Name != ref {
		return types.SigningIdentity{}, errSigningIdentityNotFound(ref,
			fmt.Errorf("store returned identity %q", identity.Name))
	}
	return identity, nil
}

// checkDependencySdk compares targetSdk against each dependency's SDK
// range when the catalog has one for the resolved version.
func (r Resolver) checkDependencySdk(snapshot types.VersionSnapshot, deps []types.ResolvedDependency) ([]types.Warning, error) {
	if r.Catalog == nil {
		return nil, nil
	}
	var warnings []types.Warning
	seen := map[string]struct{}{}
	for _, dep := range deps {
		coordinate := dep.Coordinate()
		key := coordinate.String() + ":" + dep.Version
		if _, done := seen[key]; done {
			continue
		}
		seen[key] = struct{}{}
		raw, ok, err := r.Catalog.SdkRange(coordinate, dep.Version)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		sdkRange, err := ParseSdkRange(raw)
		if err != nil {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("invalid sdk range for %s", key)).
				WithCause(err)
		}
		if sdkRange.Allows(snapshot.TargetSdk) {
			continue
		}
		warnings = append(warnings, types.Warning{
			Kind:       types.WarningIncompatibleDependencySdk,
			Coordinate: key,
			Message:    fmt.Sprintf("target_sdk %d outside supported range %s", snapshot.TargetSdk, sdkRange),
		})
	}
	return warnings, nil
}
