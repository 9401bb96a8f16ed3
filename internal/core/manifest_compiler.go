package core

import (
	"context"
	"fmt"
	"strings"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"buildplan/internal/ports"
	"buildplan/internal/shared"
	"buildplan/internal/types"
)

const SupportedAPIVersion = "v1"

// Registries is the loaded, not yet sealed, state a Resolver works on.
type Registries struct {
	Plugins     *PluginRegistry
	Variants    *VariantTable
	Graph       *DependencyGraph
	Overrides   types.VersionOverrides
	Application types.Application
}

type ManifestCompiler struct {
	Policy ports.PluginPolicyPort
}

func NewManifestCompiler(policy ports.PluginPolicyPort) ManifestCompiler {
	return ManifestCompiler{Policy: policy}
}

func (c ManifestCompiler) ValidateManifest(ctx context.Context, manifest types.Manifest) error {
	if strings.TrimSpace(manifest.APIVersion) != SupportedAPIVersion {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unsupported api_version %q (want %s)", manifest.APIVersion, SupportedAPIVersion))
	}
	if strings.TrimSpace(manifest.Metadata.Name) == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("metadata.name must be set")
	}
	if len(manifest.Variants) == 0 {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("variants must not be empty")
	}
	if name := strings.TrimSpace(manifest.Signing.DefaultVariant); name != "" && !declaresVariant(manifest, name) {
		return errUnknownVariant(name)
	}
	for _, dep := range manifest.Dependencies {
		if dep.Platform && strings.TrimSpace(dep.Scope) != "" {
			return errInvalidDeclaration(dep.Notation, "platform entries take no scope")
		}
	}
	log.Ctx(ctx).Debug().Str("manifest", manifest.Metadata.Name).Msg("manifest validated")
	return nil
}

// Compile validates the manifest and loads it into fresh registries. Every
// variant is checked for a resolvable signing identity here, so a broken
// variant fails the load rather than a later resolve of an unrelated one.
func (c ManifestCompiler) Compile(ctx context.Context, manifest types.Manifest) (Registries, error) {
	if err := c.ValidateManifest(ctx, manifest); err != nil {
		return Registries{}, err
	}
	overrides, err := overridesFromManifest(manifest.Android.DefaultConfig)
	if err != nil {
		return Registries{}, err
	}
	registries := Registries{
		Plugins:     NewPluginRegistry(c.Policy),
		Variants:    NewVariantTable(manifest.Signing.DefaultVariant, manifest.Signing.Identities),
		Graph:       NewDependencyGraph(),
		Overrides:   overrides,
		Application: applicationFromManifest(manifest.Android),
	}
	assert.NotEmpty(ctx, registries.Variants.DefaultName(), "default variant must be set")

	for _, entry := range manifest.Plugins {
		if err := registries.Plugins.Register(types.PluginDeclaration{
			ID:         entry.ID,
			AppliedVia: types.AppliedVia(entry.AppliedVia),
		}); err != nil {
			return Registries{}, err
		}
	}
	for _, entry := range manifest.Variants {
		if err := registries.Variants.Define(types.Variant{
			Name:               entry.Name,
			SigningIdentityRef: entry.Signing,
			Overrides:          entry.Overrides,
		}); err != nil {
			return Registries{}, err
		}
	}
	for _, entry := range manifest.Dependencies {
		if err := addDependencyEntry(registries.Graph, entry); err != nil {
			return Registries{}, err
		}
	}
	if err := registries.Variants.Validate(ctx); err != nil {
		return Registries{}, err
	}
	log.Ctx(ctx).Debug().
		Int("plugins", len(manifest.Plugins)).
		Int("variants", len(manifest.Variants)).
		Int("dependencies", len(manifest.Dependencies)).
		Msg("manifest compiled")
	return registries, nil
}

func addDependencyEntry(graph *DependencyGraph, entry types.DependencyEntry) error {
	coordinate, version, err := ParseNotation(entry.Notation)
	if err != nil {
		return err
	}
	if entry.Platform {
		if version == "" {
			return errInvalidDeclaration(entry.Notation, "platform requires an explicit version")
		}
		return graph.AddPlatform(types.PlatformDeclaration{
			Coordinate: coordinate,
			Version:    version,
		})
	}
	scope, err := ParseScope(entry.Scope)
	if err != nil {
		return err
	}
	constraint := types.VersionConstraint{Kind: types.ConstraintFromPlatform}
	if version != "" {
		constraint = types.VersionConstraint{Kind: types.ConstraintExplicit, Version: version}
	}
	return graph.AddDependency(types.DependencyDeclaration{
		Coordinate: coordinate,
		Constraint: constraint,
		Scope:      scope,
		Source:     "manifest:" + entry.Notation,
	})
}

func declaresVariant(manifest types.Manifest, name string) bool {
	for _, variant := range manifest.Variants {
		if strings.TrimSpace(variant.Name) == name {
			return true
		}
	}
	return false
}

func overridesFromManifest(cfg types.DefaultConfig) (types.VersionOverrides, error) {
	overrides := types.VersionOverrides{
		AppVersionCode: cfg.VersionCode,
		AppVersionName: cfg.VersionName,
	}
	levels := []struct {
		field string
		raw   string
		dst   *int
	}{
		{"default_config.min_sdk", cfg.MinSdk, &overrides.MinSdk},
		{"default_config.target_sdk", cfg.TargetSdk, &overrides.TargetSdk},
		{"default_config.compile_sdk", cfg.CompileSdk, &overrides.CompileSdk},
	}
	for _, level := range levels {
		if strings.TrimSpace(level.raw) == "" {
			continue
		}
		parsed, err := shared.ParseSdkLevel(level.raw)
		if err != nil {
			return types.VersionOverrides{}, errInvalidVersionData(level.field, err.Error())
		}
		*level.dst = parsed
	}
	return overrides, nil
}

func applicationFromManifest(android types.AndroidBlock) types.Application {
	applicationID := strings.TrimSpace(android.ApplicationID)
	if applicationID == "" {
		applicationID = strings.TrimSpace(android.Namespace)
	}
	return types.Application{
		Namespace:     strings.TrimSpace(android.Namespace),
		ApplicationID: applicationID,
		NdkVersion:    strings.TrimSpace(android.NdkVersion),
		JavaVersion:   normalizeJavaVersion(android.JavaVersion),
	}
}

// normalizeJavaVersion accepts "11", "1.8" and Gradle's "VERSION_11" form.
func normalizeJavaVersion(value string) string {
	normalized := strings.TrimSpace(value)
	normalized = strings.TrimPrefix(normalized, "JavaVersion.")
	normalized = strings.TrimPrefix(normalized, "VERSION_")
	return strings.ReplaceAll(normalized, "_", ".")
}
