package ports

import (
	"context"

	"buildplan/internal/types"
)

//go:generate go run go.uber.org/mock/mockgen -source=version.go -destination=mocks/mock_version.go -package=mocks

// VersionSourcePort reads SDK and application version data from the
// external project descriptor.
type VersionSourcePort interface {
	Read(ctx context.Context) (types.VersionSnapshot, error)
}
