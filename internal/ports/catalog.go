package ports

import "buildplan/internal/types"

//go:generate go run go.uber.org/mock/mockgen -source=catalog.go -destination=mocks/mock_catalog.go -package=mocks

// DependencyCatalogPort exposes dependency source metadata. SdkRange
// returns ok=false when the source has nothing for the coordinate/version.
type DependencyCatalogPort interface {
	SdkRange(coordinate types.Coordinate, version string) (string, bool, error)
}
