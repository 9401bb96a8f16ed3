package core

import (
	"context"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"

	"buildplan/internal/types"
)

// DefaultSigningIdentity is always known: toolchains generate a debug
// keystore on demand.
const DefaultSigningIdentity = "debug"

// DefaultVariantName is the variant others inherit from when the manifest
// does not name one.
const DefaultVariantName = "debug"

type VariantTable struct {
	variants    []types.Variant
	index       map[string]int
	identities  map[string]struct{}
	defaultName string
	sealed      bool
}

func NewVariantTable(defaultName string, identities []string) *VariantTable {
	defaultName = strings.TrimSpace(defaultName)
	if defaultName == "" {
		defaultName = DefaultVariantName
	}
	known := map[string]struct{}{DefaultSigningIdentity: {}}
	for _, identity := range identities {
		if trimmed := strings.TrimSpace(identity); trimmed != "" {
			known[trimmed] = struct{}{}
		}
	}
	return &VariantTable{
		index:       map[string]int{},
		identities:  known,
		defaultName: defaultName,
	}
}

func (t *VariantTable) Define(variant types.Variant) error {
	if t.sealed {
		return errRegistrySealed("variant table")
	}
	variant.Name = strings.TrimSpace(variant.Name)
	if variant.Name == "" {
		return errInvalidDeclaration("variant", "name must not be empty")
	}
	// Plan files are named after the variant.
	if strings.ContainsAny(variant.Name, `/\`) || variant.Name == "." || variant.Name == ".." {
		return errInvalidDeclaration(variant.Name, "variant name must not contain path separators")
	}
	if _, exists := t.index[variant.Name]; exists {
		return errDuplicateVariant(variant.Name)
	}
	variant.SigningIdentityRef = strings.TrimSpace(variant.SigningIdentityRef)
	variant.Overrides = copyOverrides(variant.Overrides)
	t.index[variant.Name] = len(t.variants)
	t.variants = append(t.variants, variant)
	return nil
}

// Resolve returns the variant exactly as declared, without inheritance.
func (t *VariantTable) Resolve(name string) (types.Variant, error) {
	idx, ok := t.index[strings.TrimSpace(name)]
	if !ok {
		return types.Variant{}, errUnknownVariant(name)
	}
	variant := t.variants[idx]
	variant.Overrides = copyOverrides(variant.Overrides)
	return variant, nil
}

// InheritDefaults merges variant over defaults field by field: explicit
// overrides and an explicit signing ref win, anything unset falls back.
// With no ref on either side the variant signs with DefaultSigningIdentity.
func (t *VariantTable) InheritDefaults(variant types.Variant, defaults types.Variant) (types.Variant, error) {
	merged := types.Variant{
		Name:               variant.Name,
		SigningIdentityRef: variant.SigningIdentityRef,
		Overrides:          copyOverrides(defaults.Overrides),
	}
	for key, value := range variant.Overrides {
		merged.Overrides[key] = value
	}
	if merged.SigningIdentityRef == "" {
		merged.SigningIdentityRef = defaults.SigningIdentityRef
	}
	if merged.SigningIdentityRef == "" {
		merged.SigningIdentityRef = DefaultSigningIdentity
	}
	if _, ok := t.identities[merged.SigningIdentityRef]; !ok {
		return types.Variant{}, errUnresolvedSigningIdentity(merged.Name, merged.SigningIdentityRef)
	}
	return merged, nil
}

// ResolveWithDefaults resolves name and applies inheritance from the
// default variant when one is defined.
func (t *VariantTable) ResolveWithDefaults(ctx context.Context, name string) (types.Variant, error) {
	variant, err := t.Resolve(name)
	if err != nil {
		return types.Variant{}, err
	}
	defaults := types.Variant{}
	if variant.Name != t.defaultName {
		if base, err := t.Resolve(t.defaultName); err == nil {
			defaults = base
		}
	}
	merged, err := t.InheritDefaults(variant, defaults)
	if err != nil {
		return types.Variant{}, err
	}
	log.Ctx(ctx).Debug().
		Str("variant", merged.Name).
		Str("signing", merged.SigningIdentityRef).
		Msg("variant resolved")
	return merged, nil
}

// Validate checks that every declared variant resolves after inheritance.
func (t *VariantTable) Validate(ctx context.Context) error {
	for _, variant := range t.variants {
		if _, err := t.ResolveWithDefaults(ctx, variant.Name); err != nil {
			return err
		}
	}
	return nil
}

func (t *VariantTable) DefaultName() string {
	return t.defaultName
}

// Names returns variant names in declaration order.
func (t *VariantTable) Names() []string {
	names := make([]string, 0, len(t.variants))
	for _, variant := range t.variants {
		names = append(names, variant.Name)
	}
	return names
}

func (t *VariantTable) Identities() []string {
	out := make([]string, 0, len(t.identities))
	for name := range t.identities {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

func (t *VariantTable) Seal() {
	t.sealed = true
}

func copyOverrides(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for key, value := range in {
		out[key] = value
	}
	return out
}
