package types

type Application struct {
	Namespace     string `yaml:"namespace,omitempty" json:"namespace,omitempty"`
	ApplicationID string `yaml:"application_id,omitempty" json:"application_id,omitempty"`
	NdkVersion    string `yaml:"ndk_version,omitempty" json:"ndk_version,omitempty"`
	JavaVersion   string `yaml:"java_version,omitempty" json:"java_version,omitempty"`
}

type Warning struct {
	Kind       WarningKind `yaml:"kind" json:"kind"`
	Coordinate string      `yaml:"coordinate" json:"coordinate"`
	Message    string      `yaml:"message" json:"message"`
}

// ResolvedBuildPlan is the terminal output of one resolution run. It is
// owned by the caller and never mutated by the resolver after return.
type ResolvedBuildPlan struct {
	Version      VersionSnapshot       `yaml:"version" json:"version"`
	Application  Application           `yaml:"application" json:"application"`
	Plugins      []PluginDeclaration   `yaml:"plugins" json:"plugins"`
	Variant      Variant               `yaml:"variant" json:"variant"`
	Signing      SigningIdentity       `yaml:"signing" json:"signing"`
	Dependencies []ResolvedDependency  `yaml:"dependencies" json:"dependencies"`
	Platforms    []PlatformDeclaration `yaml:"platforms" json:"platforms"`
	Warnings     []Warning             `yaml:"warnings,omitempty" json:"warnings,omitempty"`
	Fingerprint  string                `yaml:"fingerprint" json:"fingerprint"`
}
