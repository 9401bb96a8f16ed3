package types

// CatalogFile is the dependency source metadata file. Artifacts are keyed
// by "group:artifact".
type CatalogFile struct {
	Artifacts map[string][]CatalogVersion `yaml:"artifacts"`
}

type CatalogVersion struct {
	Version string `yaml:"version"`
	// Sdk is a specifier set over Android API levels, e.g. ">=21,<=34".
	Sdk string `yaml:"sdk,omitempty"`
}
