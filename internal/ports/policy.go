package ports

import "buildplan/internal/types"

// PluginPolicyPort owns the plugin compatibility table. CanonicalID maps
// aliases such as "application" onto the id the table uses.
type PluginPolicyPort interface {
	CanonicalID(id string) string
	Check(plugins []types.PluginDeclaration) []types.PluginViolation
}
