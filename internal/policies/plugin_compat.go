package policies

import (
	"strings"

	"buildplan/internal/ports"
	"buildplan/internal/types"
)

const (
	PluginApplication    = "com.android.application"
	PluginLibrary        = "com.android.library"
	PluginDynamicFeature = "com.android.dynamic-feature"
	PluginKotlinAndroid  = "org.jetbrains.kotlin.android"
	PluginKotlinMPP      = "org.jetbrains.kotlin.multiplatform"
	PluginKotlinKapt     = "org.jetbrains.kotlin.kapt"
	PluginFlutter        = "dev.flutter.flutter-gradle-plugin"
	PluginGoogleServices = "com.google.gms.google-services"
	PluginCrashlytics    = "com.google.firebase.crashlytics"
)

// pluginAliases maps short plugin ids onto their canonical ids so the
// table only has to name each plugin once.
var pluginAliases = map[string]string{
	"application":          PluginApplication,
	"android":              PluginApplication,
	"library":              PluginLibrary,
	"android-library":      PluginLibrary,
	"dynamic-feature":      PluginDynamicFeature,
	"kotlin-android":       PluginKotlinAndroid,
	"kotlin-multiplatform": PluginKotlinMPP,
	"kotlin-kapt":          PluginKotlinKapt,
	"flutter":              PluginFlutter,
	"flutter-plugin":       PluginFlutter,
	"google-services":      PluginGoogleServices,
	"crashlytics":          PluginCrashlytics,
}

// PluginPair names two canonical plugin ids.
type PluginPair struct {
	First  string
	Second string
}

var defaultIncompatible = []PluginPair{
	{PluginApplication, PluginLibrary},
	{PluginApplication, PluginDynamicFeature},
	{PluginLibrary, PluginDynamicFeature},
	{PluginKotlinAndroid, PluginKotlinMPP},
}

// defaultPrecedes lists plugins whose output the second plugin consumes.
var defaultPrecedes = []PluginPair{
	{PluginApplication, PluginFlutter},
	{PluginApplication, PluginGoogleServices},
	{PluginKotlinAndroid, PluginKotlinKapt},
	{PluginGoogleServices, PluginCrashlytics},
}

type PluginCompatibility struct {
	Incompatible []PluginPair
	Precedes     []PluginPair
}

func NewPluginCompatibility(incompatible []PluginPair, precedes []PluginPair) PluginCompatibility {
	return PluginCompatibility{
		Incompatible: append(append([]PluginPair(nil), defaultIncompatible...), incompatible...),
		Precedes:     append(append([]PluginPair(nil), defaultPrecedes...), precedes...),
	}
}

func DefaultPluginCompatibility() PluginCompatibility {
	return NewPluginCompatibility(nil, nil)
}

// Check returns violations in table order, incompatible pairs first. Each
// violation names the plugin ids as declared, not their canonical form.
func (p PluginCompatibility) Check(plugins []types.PluginDeclaration) []types.PluginViolation {
	position := map[string]int{}
	declared := map[string]string{}
	for i, plugin := range plugins {
		canonical := CanonicalPluginID(plugin.ID)
		if _, seen := position[canonical]; seen {
			continue
		}
		position[canonical] = i
		declared[canonical] = plugin.ID
	}

	var violations []types.PluginViolation
	for _, pair := range p.Incompatible {
		a, b := CanonicalPluginID(pair.First), CanonicalPluginID(pair.Second)
		_, hasA := position[a]
		_, hasB := position[b]
		if hasA && hasB {
			violations = append(violations, types.PluginViolation{
				Kind:   types.ViolationIncompatible,
				First:  declared[a],
				Second: declared[b],
			})
		}
	}
	for _, pair := range p.Precedes {
		a, b := CanonicalPluginID(pair.First), CanonicalPluginID(pair.Second)
		posA, hasA := position[a]
		posB, hasB := position[b]
		if hasA && hasB && posA > posB {
			violations = append(violations, types.PluginViolation{
				Kind:   types.ViolationOrder,
				First:  declared[a],
				Second: declared[b],
			})
		}
	}
	return violations
}

func (p PluginCompatibility) CanonicalID(id string) string {
	return CanonicalPluginID(id)
}

func CanonicalPluginID(id string) string {
	normalized := strings.TrimSpace(id)
	if canonical, ok := pluginAliases[strings.ToLower(normalized)]; ok {
		return canonical
	}
	return normalized
}

var _ ports.PluginPolicyPort = PluginCompatibility{}
