package core

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"buildplan/internal/types"
)

// Expand substitutes every $(name) in s with lookup(name). "$$" is a
// literal dollar sign; any other use of '$' is a syntax error.
func Expand(s string, lookup func(string) (string, error)) (string, error) {
	var out strings.Builder
	out.Grow(len(s))
	rest := s
	for {
		before, after, found := strings.Cut(rest, "$")
		out.WriteString(before)
		if !found {
			return out.String(), nil
		}
		switch {
		case after == "":
			return "", fmt.Errorf("dangling '$' at end of %q", s)
		case after[0] == '$':
			out.WriteByte('$')
			rest = after[1:]
		case after[0] == '(':
			name, tail, closed := strings.Cut(after[1:], ")")
			if !closed {
				return "", fmt.Errorf("unterminated $( in %q", s)
			}
			value, err := lookup(strings.TrimSpace(name))
			if err != nil {
				return "", err
			}
			out.WriteString(value)
			rest = tail
		default:
			word, _, _ := strings.Cut(after, " ")
			return "", fmt.Errorf("bare $%s in %q, placeholders are written $(name)", word, s)
		}
	}
}

// placeholderError marks a mapping miss so callers can tell it apart from
// a syntax error.
type placeholderError struct {
	name string
}

func (e placeholderError) Error() string {
	return fmt.Sprintf("unknown placeholder %s", e.name)
}

// expandOverrides substitutes snapshot fields into the variant's override
// values.
func expandOverrides(variant types.Variant, snapshot types.VersionSnapshot) (types.Variant, error) {
	values := map[string]string{
		"min_sdk":      strconv.Itoa(snapshot.MinSdk),
		"target_sdk":   strconv.Itoa(snapshot.TargetSdk),
		"compile_sdk":  strconv.Itoa(snapshot.CompileSdk),
		"version_code": strconv.Itoa(snapshot.AppVersionCode),
		"version_name": snapshot.AppVersionName,
		"variant":      variant.Name,
	}
	mapping := func(name string) (string, error) {
		value, ok := values[name]
		if !ok {
			return "", placeholderError{name: name}
		}
		return value, nil
	}
	keys := make([]string, 0, len(variant.Overrides))
	for key := range variant.Overrides {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	expanded := make(map[string]string, len(keys))
	for _, key := range keys {
		raw := variant.Overrides[key]
		value, err := Expand(raw, mapping)
		if err != nil {
			var missing placeholderError
			if errors.As(err, &missing) {
				return types.Variant{}, errUnresolvedPlaceholder(variant.Name, missing.name)
			}
			return types.Variant{}, errInvalidDeclaration(variant.Name+"."+key, err.Error())
		}
		expanded[key] = value
	}
	variant.Overrides = expanded
	return variant, nil
}
