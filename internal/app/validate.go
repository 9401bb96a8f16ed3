package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"buildplan/internal/core"
)

// Validate loads the manifest and checks everything that does not depend
// on external sources: schema, plugin table, variants and the dependency
// graph.
func (s Service) Validate(ctx context.Context, req ValidateRequest) (ValidateResult, error) {
	manifestPath := strings.TrimSpace(req.ManifestPath)
	if manifestPath == "" {
		return ValidateResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("manifest path is required")
	}
	manifest, err := s.Manifests.LoadManifest(manifestPath)
	if err != nil {
		return ValidateResult{}, err
	}
	registries, err := core.NewManifestCompiler(s.Policy).Compile(ctx, manifest)
	if err != nil {
		return ValidateResult{}, err
	}
	if err := registries.Plugins.Validate(ctx); err != nil {
		return ValidateResult{}, err
	}
	deps, err := registries.Graph.Resolve(ctx)
	if err != nil {
		return ValidateResult{}, err
	}
	var plugins []string
	for _, plugin := range registries.Plugins.All() {
		plugins = append(plugins, plugin.ID)
	}
	return ValidateResult{
		ManifestName: manifest.Metadata.Name,
		Plugins:      plugins,
		Variants:     registries.Variants.Names(),
		Identities:   registries.Variants.Identities(),
		Platforms:    len(registries.Graph.Platforms()),
		Declared:     len(registries.Graph.Declarations()),
		Dependencies: len(deps),
	}, nil
}
