package types

type AppliedVia string

const (
	AppliedViaDirect       AppliedVia = "direct"
	AppliedViaExternalTool AppliedVia = "external_tool"
)

type DependencyScope string

const (
	ScopeCompile     DependencyScope = "compile"
	ScopeRuntimeOnly DependencyScope = "runtime_only"
	ScopeTest        DependencyScope = "test"
)

type ConstraintKind string

const (
	ConstraintExplicit     ConstraintKind = "explicit"
	ConstraintFromPlatform ConstraintKind = "platform"
)

type WarningKind string

const (
	WarningIncompatibleDependencySdk WarningKind = "IncompatibleDependencySdk"
)

type PlanFormat string

const (
	PlanFormatYAML PlanFormat = "yaml"
	PlanFormatJSON PlanFormat = "json"
)

type ViolationKind string

const (
	ViolationIncompatible ViolationKind = "incompatible"
	ViolationOrder        ViolationKind = "order"
)
