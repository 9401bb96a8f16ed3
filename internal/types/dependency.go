package types

type Coordinate struct {
	Group    string `yaml:"group" json:"group"`
	Artifact string `yaml:"artifact" json:"artifact"`
}

func (c Coordinate) String() string {
	return c.Group + ":" + c.Artifact
}

type VersionConstraint struct {
	Kind    ConstraintKind
	Version string
}

type DependencyDeclaration struct {
	Coordinate Coordinate
	Constraint VersionConstraint
	Scope      DependencyScope
	Source     string
}

// PlatformDeclaration is a BOM entry. Its version governs every inherited
// declaration in the same group namespace.
type PlatformDeclaration struct {
	Coordinate Coordinate `yaml:"coordinate" json:"coordinate"`
	Version    string     `yaml:"version" json:"version"`
}

func (p PlatformDeclaration) Namespace() string {
	return p.Coordinate.Group
}

type ResolvedDependency struct {
	Group    string          `yaml:"group" json:"group"`
	Artifact string          `yaml:"artifact" json:"artifact"`
	Version  string          `yaml:"version" json:"version"`
	Scope    DependencyScope `yaml:"scope" json:"scope"`
	Platform string          `yaml:"platform,omitempty" json:"platform,omitempty"`
}

func (d ResolvedDependency) Coordinate() Coordinate {
	return Coordinate{Group: d.Group, Artifact: d.Artifact}
}
