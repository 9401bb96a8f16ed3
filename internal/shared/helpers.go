// Package shared provides helpers used by both the core resolver and the
// adapters that feed it.
package shared

import (
	"fmt"
	"strconv"
	"strings"
)

// sdkCodenames maps Android release codenames to API levels.
var sdkCodenames = map[string]int{
	"G":     9,
	"I":     14,
	"J":     16,
	"J-MR1": 17,
	"J-MR2": 18,
	"K":     19,
	"L":     21,
	"L-MR1": 22,
	"M":     23,
	"N":     24,
	"N-MR1": 25,
	"O":     26,
	"O-MR1": 27,
	"P":     28,
	"Q":     29,
	"R":     30,
	"S":     31,
	"S-V2":  32,
	"T":     33,
	"U":     34,
	"V":     35,
}

// ParseSdkLevel accepts a numeric API level or a release codename.
func ParseSdkLevel(raw string) (int, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return 0, fmt.Errorf("empty sdk level")
	}
	if level, err := strconv.Atoi(value); err == nil {
		if level <= 0 {
			return 0, fmt.Errorf("sdk level must be positive: %d", level)
		}
		return level, nil
	}
	if level, ok := sdkCodenames[strings.ToUpper(value)]; ok {
		return level, nil
	}
	return 0, fmt.Errorf("unknown sdk level %q", value)
}

// CoordinateKey renders the "group:artifact" key used by catalogs and
// warnings.
func CoordinateKey(group string, artifact string) string {
	return strings.TrimSpace(group) + ":" + strings.TrimSpace(artifact)
}
