package core

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
)

type ErrorKind string

const (
	KindSourceUnavailable         ErrorKind = "SourceUnavailable"
	KindInvalidVersionData        ErrorKind = "InvalidVersionData"
	KindDuplicatePlugin           ErrorKind = "DuplicatePlugin"
	KindIncompatiblePlugins       ErrorKind = "IncompatiblePlugins"
	KindMisorderedPlugins         ErrorKind = "MisorderedPlugins"
	KindDuplicateVariant          ErrorKind = "DuplicateVariant"
	KindUnknownVariant            ErrorKind = "UnknownVariant"
	KindUnresolvedSigningIdentity ErrorKind = "UnresolvedSigningIdentity"
	KindSigningIdentityNotFound   ErrorKind = "SigningIdentityNotFound"
	KindUnresolvedPlaceholder     ErrorKind = "UnresolvedPlaceholder"
	KindConflictingPlatform       ErrorKind = "ConflictingPlatform"
	KindNoPlatformForNamespace    ErrorKind = "NoPlatformForNamespace"
	KindVersionConflict           ErrorKind = "VersionConflict"
	KindInvalidDeclaration        ErrorKind = "InvalidDeclaration"
	KindRegistrySealed            ErrorKind = "RegistrySealed"
)

// ConfigError is the structured failure of a load or resolve step. Subject
// is the offending identifier; Values carries conflicting values in the
// order they were encountered.
type ConfigError struct {
	Kind    ErrorKind
	Subject string
	Values  []string
	err     error
}

func (e *ConfigError) Error() string {
	return e.err.Error()
}

func (e *ConfigError) Unwrap() error {
	return e.err
}

func (e *ConfigError) Code() errbuilder.ErrCode {
	return errbuilder.CodeOf(e.err)
}

func newConfigError(kind ErrorKind, code errbuilder.ErrCode, subject string, msg string, values ...string) error {
	return &ConfigError{
		Kind:    kind,
		Subject: subject,
		Values:  values,
		err: errbuilder.New().
			WithCode(code).
			WithMsg(msg),
	}
}

// KindOf returns the ErrorKind carried by err, or "" when err is not a
// ConfigError.
func KindOf(err error) ErrorKind {
	var cfgErr *ConfigError
	if errors.As(err, &cfgErr) {
		return cfgErr.Kind
	}
	return ""
}

func IsKind(err error, kind ErrorKind) bool {
	return KindOf(err) == kind
}

func errSourceUnavailable(source string, cause error) error {
	return &ConfigError{
		Kind:    KindSourceUnavailable,
		Subject: source,
		err: errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(fmt.Sprintf("version source unavailable: %s", source)).
			WithCause(cause),
	}
}

func errInvalidVersionData(field string, detail string) error {
	return newConfigError(KindInvalidVersionData, errbuilder.CodeInvalidArgument, field,
		fmt.Sprintf("invalid version data: %s: %s", field, detail))
}

func errDuplicatePlugin(id string, existing string) error {
	if existing == id {
		return newConfigError(KindDuplicatePlugin, errbuilder.CodeAlreadyExists, id,
			fmt.Sprintf("duplicate plugin: %s", id), existing)
	}
	return newConfigError(KindDuplicatePlugin, errbuilder.CodeAlreadyExists, id,
		fmt.Sprintf("duplicate plugin: %s (already applied as %s)", id, existing), existing)
}

func errIncompatiblePlugins(a string, b string) error {
	return newConfigError(KindIncompatiblePlugins, errbuilder.CodeFailedPrecondition, a,
		fmt.Sprintf("incompatible plugins: %s and %s", a, b), a, b)
}

func errMisorderedPlugins(first string, second string) error {
	return newConfigError(KindMisorderedPlugins, errbuilder.CodeFailedPrecondition, second,
		fmt.Sprintf("plugin %s must be applied before %s", first, second), first, second)
}

func errDuplicateVariant(name string) error {
	return newConfigError(KindDuplicateVariant, errbuilder.CodeAlreadyExists, name,
		fmt.Sprintf("duplicate variant: %s", name))
}

func errUnknownVariant(name string) error {
	return newConfigError(KindUnknownVariant, errbuilder.CodeNotFound, name,
		fmt.Sprintf("unknown variant: %s", name))
}

func errUnresolvedSigningIdentity(variant string, ref string) error {
	return newConfigError(KindUnresolvedSigningIdentity, errbuilder.CodeFailedPrecondition, variant,
		fmt.Sprintf("variant %s references unresolved signing identity %q", variant, ref), ref)
}

func errSigningIdentityNotFound(name string, cause error) error {
	builder := errbuilder.New().
		WithCode(errbuilder.CodeNotFound).
		WithMsg(fmt.Sprintf("signing identity not found: %s", name))
	if cause != nil {
		builder = builder.WithCause(cause)
	}
	return &ConfigError{
		Kind:    KindSigningIdentityNotFound,
		Subject: name,
		err:     builder,
	}
}

func errUnresolvedPlaceholder(variant string, name string) error {
	return newConfigError(KindUnresolvedPlaceholder, errbuilder.CodeInvalidArgument, variant,
		fmt.Sprintf("variant %s uses unresolved placeholder $(%s)", variant, name), name)
}

func errConflictingPlatform(namespace string, existing string, incoming string) error {
	return newConfigError(KindConflictingPlatform, errbuilder.CodeFailedPrecondition, namespace,
		fmt.Sprintf("conflicting platform for namespace %s: %s vs %s", namespace, existing, incoming),
		existing, incoming)
}

func errNoPlatformForNamespace(group string) error {
	return newConfigError(KindNoPlatformForNamespace, errbuilder.CodeNotFound, group,
		fmt.Sprintf("no platform for namespace: %s", group))
}

func errVersionConflict(coordinate string, v1 string, v2 string) error {
	return newConfigError(KindVersionConflict, errbuilder.CodeFailedPrecondition, coordinate,
		fmt.Sprintf("version conflict for %s: %s vs %s", coordinate, v1, v2), v1, v2)
}

func errInvalidDeclaration(subject string, detail string) error {
	return newConfigError(KindInvalidDeclaration, errbuilder.CodeInvalidArgument, subject,
		strings.TrimSpace(fmt.Sprintf("invalid declaration %s: %s", subject, detail)))
}

func errRegistrySealed(registry string) error {
	return newConfigError(KindRegistrySealed, errbuilder.CodeFailedPrecondition, registry,
		fmt.Sprintf("%s is sealed", registry))
}
