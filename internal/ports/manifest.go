package ports

import "buildplan/internal/types"

type ManifestPort interface {
	LoadManifest(path string) (types.Manifest, error)
}
