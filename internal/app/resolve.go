package app

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"buildplan/internal/adapters"
	"buildplan/internal/core"
	"buildplan/internal/ports"
	"buildplan/internal/types"
)

const defaultParallelism = 4

func (s Service) Resolve(ctx context.Context, req ResolveRequest) (ResolveResult, error) {
	manifestPath := strings.TrimSpace(req.ManifestPath)
	if manifestPath == "" {
		return ResolveResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("manifest path is required")
	}
	outputDir := strings.TrimSpace(req.OutputDir)
	if outputDir == "" {
		return ResolveResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("output directory is required")
	}
	format, err := normalizeFormat(req.Format)
	if err != nil {
		return ResolveResult{}, err
	}

	runID := s.newRunID()
	logger := log.Ctx(ctx).With().Str("run_id", runID).Logger()
	ctx = logger.WithContext(ctx)

	manifest, err := s.Manifests.LoadManifest(manifestPath)
	if err != nil {
		return ResolveResult{}, err
	}
	registries, err := core.NewManifestCompiler(s.Policy).Compile(ctx, manifest)
	if err != nil {
		return ResolveResult{}, err
	}

	baseDir := filepath.Dir(manifestPath)
	versions, err := versionSource(pickPath(req.VersionSource, manifest.Sources.VersionDescriptor, baseDir))
	if err != nil {
		return ResolveResult{}, err
	}
	signing, err := adapters.NewSigningStoreFileAdapter(pickPath(req.SigningStore, manifest.Sources.SigningStore, baseDir))
	if err != nil {
		return ResolveResult{}, err
	}
	variantNames := req.Variants
	if len(variantNames) == 0 {
		variantNames = registries.Variants.Names()
	}

	resolver := core.NewResolver(
		core.NewVersionReader(versions, registries.Overrides),
		registries.Plugins,
		registries.Variants,
		registries.Graph,
		signing,
	).WithApplication(registries.Application)
	if catalogPath := pickPath(req.Catalog, manifest.Sources.Catalog, baseDir); catalogPath != "" {
		catalog, err := adapters.NewCatalogFileAdapter(catalogPath)
		if err != nil {
			return ResolveResult{}, err
		}
		resolver = resolver.WithCatalog(catalog)
	}

	plans, err := resolveVariants(ctx, resolver, variantNames, req.Parallelism)
	if err != nil {
		return ResolveResult{}, err
	}
	if req.Strict {
		if warnErr := strictCheck(plans); warnErr != nil {
			return ResolveResult{}, warnErr
		}
	}

	writer := adapters.NewPlanFileAdapter(outputDir)
	result := ResolveResult{ManifestName: manifest.Metadata.Name, RunID: runID}
	for _, plan := range plans {
		path, err := writer.WritePlan(plan, format)
		if err != nil {
			return ResolveResult{}, err
		}
		for _, warning := range plan.Warnings {
			logger.Warn().
				Str("variant", plan.Variant.Name).
				Str("coordinate", warning.Coordinate).
				Msg(warning.Message)
		}
		result.Plans = append(result.Plans, PlanSummary{
			Variant:     plan.Variant.Name,
			Path:        path,
			Fingerprint: plan.Fingerprint,
			Warnings:    plan.Warnings,
		})
	}
	logger.Info().
		Str("manifest", manifest.Metadata.Name).
		Int("plans", len(result.Plans)).
		Msg("resolve complete")
	return result, nil
}

// resolveVariants resolves each variant concurrently. Plans come back in
// request order; the first failure cancels the rest.
func resolveVariants(ctx context.Context, resolver core.Resolver, names []string, parallelism int) ([]types.ResolvedBuildPlan, error) {
	if parallelism <= 0 {
		parallelism = defaultParallelism
	}
	seen := map[string]struct{}{}
	for _, name := range names {
		if _, dup := seen[name]; dup {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("variant %s requested twice", name))
		}
		seen[name] = struct{}{}
	}

	plans := make([]types.ResolvedBuildPlan, len(names))
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(parallelism)
	for i, name := range names {
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}
			variantCtx := log.Ctx(groupCtx).With().Str("variant", name).Logger().WithContext(groupCtx)
			plan, err := resolver.Resolve(variantCtx, name)
			if err != nil {
				return err
			}
			plans[i] = plan
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return plans, nil
}

func strictCheck(plans []types.ResolvedBuildPlan) error {
	var variants []string
	count := 0
	for _, plan := range plans {
		if len(plan.Warnings) == 0 {
			continue
		}
		variants = append(variants, plan.Variant.Name)
		count += len(plan.Warnings)
	}
	if count == 0 {
		return nil
	}
	return &WarningsError{Variants: variants, Count: count}
}

// versionSource falls back to an empty snapshot so a manifest whose
// default_config sets every field needs no descriptor file.
func versionSource(path string) (ports.VersionSourcePort, error) {
	if path == "" {
		return adapters.NewStaticVersionSource(types.VersionSnapshot{}), nil
	}
	return adapters.NewDescriptorVersionSource(path), nil
}

func pickPath(explicit string, fromManifest string, baseDir string) string {
	if path := strings.TrimSpace(explicit); path != "" {
		return path
	}
	path := strings.TrimSpace(fromManifest)
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(baseDir, path)
}

func normalizeFormat(format types.PlanFormat) (types.PlanFormat, error) {
	switch types.PlanFormat(strings.ToLower(strings.TrimSpace(string(format)))) {
	case "", types.PlanFormatYAML, "yml":
		return types.PlanFormatYAML, nil
	case types.PlanFormatJSON:
		return types.PlanFormatJSON, nil
	default:
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unsupported plan format: %s", format))
	}
}

func (s Service) newRunID() string {
	if s.RunID == nil {
		return ""
	}
	return s.RunID()
}
