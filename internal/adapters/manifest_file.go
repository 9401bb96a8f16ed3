package adapters

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"gopkg.in/yaml.v3"

	"buildplan/internal/ports"
	"buildplan/internal/types"
)

// ManifestFileAdapter loads build manifests from YAML or HCL files. The
// format is chosen by file extension; anything other than .hcl is YAML.
type ManifestFileAdapter struct{}

func NewManifestFileAdapter() ManifestFileAdapter {
	return ManifestFileAdapter{}
}

func (a ManifestFileAdapter) LoadManifest(path string) (types.Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.Manifest{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("manifest file not found").
			WithCause(err)
	}
	if strings.EqualFold(filepath.Ext(path), ".hcl") {
		return decodeHCLManifest(path, data)
	}
	return decodeYAMLManifest(data)
}

func decodeYAMLManifest(data []byte) (types.Manifest, error) {
	var manifest types.Manifest
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&manifest); err != nil && !errors.Is(err, io.EOF) {
		return types.Manifest{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse manifest yaml").
			WithCause(err)
	}
	return manifest, nil
}

type hclManifest struct {
	APIVersion string        `hcl:"api_version"`
	Metadata   *hclMetadata  `hcl:"metadata,block"`
	Android    *hclAndroid   `hcl:"android,block"`
	Plugins    []hclPlugin   `hcl:"plugin,block"`
	Signing    *hclSigning   `hcl:"signing,block"`
	Variants   []hclVariant  `hcl:"variant,block"`
	Deps       []hclDep      `hcl:"dependency,block"`
	Platforms  []hclPlatform `hcl:"platform,block"`
	Sources    *hclSources   `hcl:"sources,block"`
}

type hclMetadata struct {
	Name        string   `hcl:"name"`
	Owners      []string `hcl:"owners,optional"`
	Description string   `hcl:"description,optional"`
}

type hclAndroid struct {
	Namespace     string            `hcl:"namespace,optional"`
	ApplicationID string            `hcl:"application_id,optional"`
	NdkVersion    string            `hcl:"ndk_version,optional"`
	JavaVersion   string            `hcl:"java_version,optional"`
	DefaultConfig *hclDefaultConfig `hcl:"default_config,block"`
}

type hclDefaultConfig struct {
	MinSdk      string `hcl:"min_sdk,optional"`
	TargetSdk   string `hcl:"target_sdk,optional"`
	CompileSdk  string `hcl:"compile_sdk,optional"`
	VersionCode int    `hcl:"version_code,optional"`
	VersionName string `hcl:"version_name,optional"`
}

type hclPlugin struct {
	ID         string `hcl:"id,label"`
	AppliedVia string `hcl:"applied_via,optional"`
}

type hclSigning struct {
	DefaultVariant string   `hcl:"default_variant,optional"`
	Identities     []string `hcl:"identities,optional"`
}

type hclVariant struct {
	Name      string            `hcl:"name,label"`
	Signing   string            `hcl:"signing,optional"`
	Overrides map[string]string `hcl:"overrides,optional"`
}

type hclDep struct {
	Notation string `hcl:"notation,label"`
	Scope    string `hcl:"scope,optional"`
}

type hclPlatform struct {
	Notation string `hcl:"notation,label"`
}

type hclSources struct {
	VersionDescriptor string `hcl:"version_descriptor,optional"`
	SigningStore      string `hcl:"signing_store,optional"`
	Catalog           string `hcl:"catalog,optional"`
}

// decodeHCLManifest maps the block form onto the YAML shape. Platform
// blocks come first in the dependency list so declaration order matches
// how Gradle files are usually written.
func decodeHCLManifest(path string, data []byte) (types.Manifest, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(data, path)
	if diags.HasErrors() {
		return types.Manifest{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse manifest hcl").
			WithCause(fmt.Errorf("%s: %w", path, diags))
	}
	var doc hclManifest
	if diags := gohcl.DecodeBody(file.Body, nil, &doc); diags.HasErrors() {
		return types.Manifest{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to decode manifest hcl").
			WithCause(fmt.Errorf("%s: %w", path, diags))
	}

	manifest := types.Manifest{APIVersion: doc.APIVersion}
	if doc.Metadata != nil {
		manifest.Metadata = types.Metadata{
			Name:        doc.Metadata.Name,
			Owners:      doc.Metadata.Owners,
			Description: doc.Metadata.Description,
		}
	}
	if doc.Android != nil {
		manifest.Android = types.AndroidBlock{
			Namespace:     doc.Android.Namespace,
			ApplicationID: doc.Android.ApplicationID,
			NdkVersion:    doc.Android.NdkVersion,
			JavaVersion:   doc.Android.JavaVersion,
		}
		if cfg := doc.Android.DefaultConfig; cfg != nil {
			manifest.Android.DefaultConfig = types.DefaultConfig{
				MinSdk:      cfg.MinSdk,
				TargetSdk:   cfg.TargetSdk,
				CompileSdk:  cfg.CompileSdk,
				VersionCode: cfg.VersionCode,
				VersionName: cfg.VersionName,
			}
		}
	}
	for _, plugin := range doc.Plugins {
		manifest.Plugins = append(manifest.Plugins, types.PluginEntry{ID: plugin.ID, AppliedVia: plugin.AppliedVia})
	}
	if doc.Signing != nil {
		manifest.Signing = types.SigningBlock{
			DefaultVariant: doc.Signing.DefaultVariant,
			Identities:     doc.Signing.Identities,
		}
	}
	for _, variant := range doc.Variants {
		manifest.Variants = append(manifest.Variants, types.VariantEntry{
			Name:      variant.Name,
			Signing:   variant.Signing,
			Overrides: variant.Overrides,
		})
	}
	for _, platform := range doc.Platforms {
		manifest.Dependencies = append(manifest.Dependencies, types.DependencyEntry{Notation: platform.Notation, Platform: true})
	}
	for _, dep := range doc.Deps {
		manifest.Dependencies = append(manifest.Dependencies, types.DependencyEntry{Notation: dep.Notation, Scope: dep.Scope})
	}
	if doc.Sources != nil {
		manifest.Sources = types.SourcesBlock{
			VersionDescriptor: doc.Sources.VersionDescriptor,
			SigningStore:      doc.Sources.SigningStore,
			Catalog:           doc.Sources.Catalog,
		}
	}
	return manifest, nil
}

var _ ports.ManifestPort = ManifestFileAdapter{}
