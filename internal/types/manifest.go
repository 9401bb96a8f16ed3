package types

type Metadata struct {
	Name        string   `yaml:"name"`
	Owners      []string `yaml:"owners"`
	Description string   `yaml:"description,omitempty"`
}

// DefaultConfig holds values set directly in the manifest. Anything set
// here takes precedence over the external project descriptor. SDK levels
// are an API level or a release codename ("34", "U").
type DefaultConfig struct {
	MinSdk      string `yaml:"min_sdk,omitempty"`
	TargetSdk   string `yaml:"target_sdk,omitempty"`
	CompileSdk  string `yaml:"compile_sdk,omitempty"`
	VersionCode int    `yaml:"version_code,omitempty"`
	VersionName string `yaml:"version_name,omitempty"`
}

type AndroidBlock struct {
	Namespace     string        `yaml:"namespace"`
	ApplicationID string        `yaml:"application_id"`
	NdkVersion    string        `yaml:"ndk_version,omitempty"`
	JavaVersion   string        `yaml:"java_version,omitempty"`
	DefaultConfig DefaultConfig `yaml:"default_config"`
}

type PluginEntry struct {
	ID         string `yaml:"id"`
	AppliedVia string `yaml:"applied_via,omitempty"`
}

type SigningBlock struct {
	// DefaultVariant is the variant others inherit from. Empty means "debug".
	DefaultVariant string   `yaml:"default_variant,omitempty"`
	Identities     []string `yaml:"identities"`
}

type VariantEntry struct {
	Name      string            `yaml:"name"`
	Signing   string            `yaml:"signing,omitempty"`
	Overrides map[string]string `yaml:"overrides,omitempty"`
}

// DependencyEntry uses Gradle notation: "group:artifact" or
// "group:artifact:version".
type DependencyEntry struct {
	Notation string `yaml:"notation"`
	Scope    string `yaml:"scope,omitempty"`
	Platform bool   `yaml:"platform,omitempty"`
}

type SourcesBlock struct {
	VersionDescriptor string `yaml:"version_descriptor,omitempty"`
	SigningStore      string `yaml:"signing_store,omitempty"`
	Catalog           string `yaml:"catalog,omitempty"`
}

type Manifest struct {
	APIVersion   string            `yaml:"api_version"`
	Metadata     Metadata          `yaml:"metadata"`
	Android      AndroidBlock      `yaml:"android"`
	Plugins      []PluginEntry     `yaml:"plugins"`
	Signing      SigningBlock      `yaml:"signing"`
	Variants     []VariantEntry    `yaml:"variants"`
	Dependencies []DependencyEntry `yaml:"dependencies"`
	Sources      SourcesBlock      `yaml:"sources,omitempty"`
}
