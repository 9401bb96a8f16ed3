package app

import "buildplan/internal/types"

type ValidateRequest struct {
	ManifestPath string
}

type ValidateResult struct {
	ManifestName string
	Plugins      []string
	Variants     []string
	Identities   []string
	Platforms    int
	Declared     int
	Dependencies int
}

// ResolveRequest paths override the manifest's sources block. Relative
// paths in the manifest are taken from the manifest's directory.
type ResolveRequest struct {
	ManifestPath  string
	Variants      []string
	VersionSource string
	SigningStore  string
	Catalog       string
	OutputDir     string
	Format        types.PlanFormat
	Strict        bool
	Parallelism   int
}

type PlanSummary struct {
	Variant     string
	Path        string
	Fingerprint string
	Warnings    []types.Warning
}

type ResolveResult struct {
	ManifestName string
	RunID        string
	Plans        []PlanSummary
}

type InspectRequest struct {
	PlanPath string
}

type InspectResult struct {
	Variant          string
	Signing          string
	Version          types.VersionSnapshot
	Plugins          []string
	Dependencies     []types.ResolvedDependency
	Warnings         []types.Warning
	Fingerprint      string
	FingerprintValid bool
}
