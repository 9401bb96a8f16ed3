package core

import (
	"fmt"
	"strconv"
	"strings"

	pep440 "github.com/aquasecurity/go-pep440-version"
)

// SdkRange is a specifier set over API levels such as ">=21,<=34".
type SdkRange struct {
	raw   string
	specs pep440.Specifiers
}

func ParseSdkRange(raw string) (SdkRange, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return SdkRange{}, fmt.Errorf("empty sdk range")
	}
	specs, err := pep440.NewSpecifiers(value)
	if err != nil {
		return SdkRange{}, fmt.Errorf("invalid sdk range %q: %w", value, err)
	}
	return SdkRange{raw: value, specs: specs}, nil
}

func (r SdkRange) Allows(level int) bool {
	version, err := pep440.Parse(strconv.Itoa(level))
	if err != nil {
		return false
	}
	return r.specs.Check(version)
}

func (r SdkRange) String() string {
	return r.raw
}
