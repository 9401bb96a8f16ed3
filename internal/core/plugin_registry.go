package core

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	"buildplan/internal/ports"
	"buildplan/internal/types"
)

// PluginRegistry is an append-only, ordered list of plugin declarations
// with a uniqueness index on the canonical plugin id, so an alias and the
// full id of one plugin count as the same plugin. Application order matters.
type PluginRegistry struct {
	Policy  ports.PluginPolicyPort
	plugins []types.PluginDeclaration
	index   map[string]int
	sealed  bool
}

func NewPluginRegistry(policy ports.PluginPolicyPort) *PluginRegistry {
	return &PluginRegistry{
		Policy: policy,
		index:  map[string]int{},
	}
}

func (r *PluginRegistry) Register(decl types.PluginDeclaration) error {
	if r.sealed {
		return errRegistrySealed("plugin registry")
	}
	decl.ID = strings.TrimSpace(decl.ID)
	if decl.ID == "" {
		return errInvalidDeclaration("plugin", "id must not be empty")
	}
	via, err := ParseAppliedVia(string(decl.AppliedVia))
	if err != nil {
		return err
	}
	decl.AppliedVia = via
	if existing, ok := r.index[r.canonical(decl.ID)]; ok {
		return errDuplicatePlugin(decl.ID, r.plugins[existing].ID)
	}
	r.index[r.canonical(decl.ID)] = len(r.plugins)
	r.plugins = append(r.plugins, decl)
	return nil
}

// All returns the declarations in registration order.
func (r *PluginRegistry) All() []types.PluginDeclaration {
	return append([]types.PluginDeclaration(nil), r.plugins...)
}

func (r *PluginRegistry) Has(id string) bool {
	_, ok := r.index[r.canonical(id)]
	return ok
}

func (r *PluginRegistry) canonical(id string) string {
	id = strings.TrimSpace(id)
	if r.Policy == nil {
		return id
	}
	return r.Policy.CanonicalID(id)
}

// Validate reports the first breach of the compatibility table.
func (r *PluginRegistry) Validate(ctx context.Context) error {
	if r.Policy == nil {
		return nil
	}
	for _, violation := range r.Policy.Check(r.All()) {
		switch violation.Kind {
		case types.ViolationOrder:
			return errMisorderedPlugins(violation.First, violation.Second)
		default:
			return errIncompatiblePlugins(violation.First, violation.Second)
		}
	}
	log.Ctx(ctx).Debug().Int("plugins", len(r.plugins)).Msg("plugins validated")
	return nil
}

func (r *PluginRegistry) Seal() {
	r.sealed = true
}
