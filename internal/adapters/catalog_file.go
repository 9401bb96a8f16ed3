package adapters

import (
	"os"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	debversion "github.com/knqyf263/go-deb-version"
	"gopkg.in/yaml.v3"

	"buildplan/internal/ports"
	"buildplan/internal/shared"
	"buildplan/internal/types"
)

// CatalogFileAdapter answers SDK range queries from a YAML dependency
// catalog. Catalog versions are compared with Debian version ordering.
type CatalogFileAdapter struct {
	artifacts map[string][]types.CatalogVersion
}

func NewCatalogFileAdapter(path string) (CatalogFileAdapter, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return CatalogFileAdapter{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("catalog file not found").
			WithCause(err)
	}
	var file types.CatalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return CatalogFileAdapter{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse catalog yaml").
			WithCause(err)
	}
	artifacts := make(map[string][]types.CatalogVersion, len(file.Artifacts))
	for key, versions := range file.Artifacts {
		parts := strings.SplitN(key, ":", 2)
		if len(parts) != 2 {
			return CatalogFileAdapter{}, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("catalog key must be group:artifact: " + key)
		}
		artifacts[shared.CoordinateKey(parts[0], parts[1])] = versions
	}
	return CatalogFileAdapter{artifacts: artifacts}, nil
}

func (a CatalogFileAdapter) SdkRange(coordinate types.Coordinate, version string) (string, bool, error) {
	versions, ok := a.artifacts[shared.CoordinateKey(coordinate.Group, coordinate.Artifact)]
	if !ok {
		return "", false, nil
	}
	for _, entry := range versions {
		if !catalogVersionMatches(entry.Version, version) {
			continue
		}
		sdk := strings.TrimSpace(entry.Sdk)
		return sdk, sdk != "", nil
	}
	return "", false, nil
}

func catalogVersionMatches(a string, b string) bool {
	a = strings.TrimSpace(a)
	b = strings.TrimSpace(b)
	if a == b {
		return true
	}
	v1, err := debversion.NewVersion(a)
	if err != nil {
		return false
	}
	v2, err := debversion.NewVersion(b)
	if err != nil {
		return false
	}
	return v1.Equal(v2)
}

var _ ports.DependencyCatalogPort = CatalogFileAdapter{}
