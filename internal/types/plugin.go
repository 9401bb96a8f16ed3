package types

type PluginDeclaration struct {
	ID         string     `yaml:"id" json:"id"`
	AppliedVia AppliedVia `yaml:"applied_via" json:"applied_via"`
}

// PluginViolation is a breach of the plugin compatibility table. For order
// violations First must be applied before Second.
type PluginViolation struct {
	Kind   ViolationKind
	First  string
	Second string
}
