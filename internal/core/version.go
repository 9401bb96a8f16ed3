package core

import (
	"fmt"
	"strings"

	debversion "github.com/knqyf263/go-deb-version"
)

// dynamicMarkers are Gradle dynamic version forms. They resolve differently
// over time, so a plan built from them would not be reproducible.
var dynamicMarkers = []string{"+", "latest.", "["}

// ParseVersion validates a concrete version literal and returns it trimmed.
func ParseVersion(raw string) (string, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return "", fmt.Errorf("empty version")
	}
	for _, marker := range dynamicMarkers {
		if strings.Contains(value, marker) {
			return "", fmt.Errorf("dynamic version %q is not allowed", value)
		}
	}
	if _, err := debversion.NewVersion(value); err != nil {
		return "", fmt.Errorf("unparseable version %q: %w", value, err)
	}
	return value, nil
}

// CompareVersions orders two version literals. Unparseable input falls back
// to lexical order so sorting stays total.
func CompareVersions(a string, b string) int {
	v1, err := debversion.NewVersion(a)
	if err != nil {
		return strings.Compare(a, b)
	}
	v2, err := debversion.NewVersion(b)
	if err != nil {
		return strings.Compare(a, b)
	}
	return v1.Compare(v2)
}

// SameVersion reports whether two literals denote the same version, so
// "34.0.0" and " 34.0.0" do not count as a conflict.
func SameVersion(a string, b string) bool {
	a = strings.TrimSpace(a)
	b = strings.TrimSpace(b)
	if a == b {
		return true
	}
	v1, err := debversion.NewVersion(a)
	if err != nil {
		return false
	}
	v2, err := debversion.NewVersion(b)
	if err != nil {
		return false
	}
	return v1.Equal(v2)
}
