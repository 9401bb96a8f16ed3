package core

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"buildplan/internal/ports"
	"buildplan/internal/types"
)

// VersionReader takes one snapshot from the version source, lays the
// manifest overrides on top and enforces minSdk <= targetSdk <= compileSdk.
type VersionReader struct {
	Source    ports.VersionSourcePort
	Overrides types.VersionOverrides
}

func NewVersionReader(source ports.VersionSourcePort, overrides types.VersionOverrides) VersionReader {
	return VersionReader{
		Source:    source,
		Overrides: overrides,
	}
}

func (r VersionReader) Read(ctx context.Context) (types.VersionSnapshot, error) {
	if r.Source == nil {
		return types.VersionSnapshot{}, errSourceUnavailable("version source", errors.New("no version source configured"))
	}
	snapshot, err := r.Source.Read(ctx)
	if err != nil {
		if KindOf(err) != "" {
			return types.VersionSnapshot{}, err
		}
		if errbuilder.CodeOf(err) == errbuilder.CodeInvalidArgument {
			return types.VersionSnapshot{}, &ConfigError{
				Kind:    KindInvalidVersionData,
				Subject: "version source",
				err: errbuilder.New().
					WithCode(errbuilder.CodeInvalidArgument).
					WithMsg("invalid version data in descriptor").
					WithCause(err),
			}
		}
		return types.VersionSnapshot{}, errSourceUnavailable("version source", err)
	}
	snapshot = applyVersionOverrides(snapshot, r.Overrides)
	if err := ValidateSnapshot(snapshot); err != nil {
		return types.VersionSnapshot{}, err
	}
	log.Ctx(ctx).Debug().
		Int("min_sdk", snapshot.MinSdk).
		Int("target_sdk", snapshot.TargetSdk).
		Int("compile_sdk", snapshot.CompileSdk).
		Msg("version snapshot read")
	return snapshot, nil
}

func ValidateSnapshot(snapshot types.VersionSnapshot) error {
	required := []struct {
		field string
		value int
	}{
		{"min_sdk", snapshot.MinSdk},
		{"target_sdk", snapshot.TargetSdk},
		{"compile_sdk", snapshot.CompileSdk},
		{"app_version_code", snapshot.AppVersionCode},
	}
	for _, field := range required {
		if field.value <= 0 {
			return errInvalidVersionData(field.field, "missing or not positive")
		}
	}
	if strings.TrimSpace(snapshot.AppVersionName) == "" {
		return errInvalidVersionData("app_version_name", "missing")
	}
	if snapshot.MinSdk > snapshot.TargetSdk {
		return errInvalidVersionData("min_sdk", fmt.Sprintf("%d exceeds target_sdk %d", snapshot.MinSdk, snapshot.TargetSdk))
	}
	if snapshot.TargetSdk > snapshot.CompileSdk {
		return errInvalidVersionData("target_sdk", fmt.Sprintf("%d exceeds compile_sdk %d", snapshot.TargetSdk, snapshot.CompileSdk))
	}
	return nil
}

func applyVersionOverrides(snapshot types.VersionSnapshot, overrides types.VersionOverrides) types.VersionSnapshot {
	if overrides.MinSdk > 0 {
		snapshot.MinSdk = overrides.MinSdk
	}
	if overrides.TargetSdk > 0 {
		snapshot.TargetSdk = overrides.TargetSdk
	}
	if overrides.CompileSdk > 0 {
		snapshot.CompileSdk = overrides.CompileSdk
	}
	if overrides.AppVersionCode > 0 {
		snapshot.AppVersionCode = overrides.AppVersionCode
	}
	if strings.TrimSpace(overrides.AppVersionName) != "" {
		snapshot.AppVersionName = strings.TrimSpace(overrides.AppVersionName)
	}
	return snapshot
}
