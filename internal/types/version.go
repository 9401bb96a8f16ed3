package types

// VersionSnapshot is the SDK and application version data read from the
// external project descriptor. A snapshot is read once per resolution run.
type VersionSnapshot struct {
	MinSdk         int    `yaml:"min_sdk" json:"min_sdk"`
	TargetSdk      int    `yaml:"target_sdk" json:"target_sdk"`
	CompileSdk     int    `yaml:"compile_sdk" json:"compile_sdk"`
	AppVersionCode int    `yaml:"app_version_code" json:"app_version_code"`
	AppVersionName string `yaml:"app_version_name" json:"app_version_name"`
}

// VersionOverrides carries manifest-level values that take precedence over
// the descriptor. Zero values mean "not set".
type VersionOverrides struct {
	MinSdk         int
	TargetSdk      int
	CompileSdk     int
	AppVersionCode int
	AppVersionName string
}
