package adapters

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"

	"buildplan/internal/ports"
	"buildplan/internal/shared"
	"buildplan/internal/types"
)

// Descriptor keys as written by the Flutter tool into local.properties.
const (
	KeyMinSdk      = "flutter.minSdkVersion"
	KeyTargetSdk   = "flutter.targetSdkVersion"
	KeyCompileSdk  = "flutter.compileSdkVersion"
	KeyVersionCode = "flutter.versionCode"
	KeyVersionName = "flutter.versionName"
)

// DescriptorVersionSource reads version data from the project descriptor.
// The format follows the file extension: .properties, .yaml or .json.
// The file is read once; later calls return the same snapshot so every
// variant in one run sees identical values.
type DescriptorVersionSource struct {
	Path string

	mu       sync.Mutex
	snapshot *types.VersionSnapshot
}

func NewDescriptorVersionSource(path string) *DescriptorVersionSource {
	return &DescriptorVersionSource{Path: path}
}

func (s *DescriptorVersionSource) Read(ctx context.Context) (types.VersionSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.snapshot != nil {
		return *s.snapshot, nil
	}
	if strings.TrimSpace(s.Path) == "" {
		return types.VersionSnapshot{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("version descriptor path is empty")
	}

	v, err := newDescriptorViper()
	if err != nil {
		return types.VersionSnapshot{}, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to set up descriptor codecs").
			WithCause(err)
	}
	v.SetConfigFile(s.Path)
	if err := v.ReadInConfig(); err != nil {
		return types.VersionSnapshot{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("failed to read version descriptor").
			WithCause(err)
	}

	snapshot := types.VersionSnapshot{}
	if snapshot.MinSdk, err = sdkField(v, KeyMinSdk); err != nil {
		return types.VersionSnapshot{}, err
	}
	if snapshot.TargetSdk, err = sdkField(v, KeyTargetSdk); err != nil {
		return types.VersionSnapshot{}, err
	}
	if snapshot.CompileSdk, err = sdkField(v, KeyCompileSdk); err != nil {
		return types.VersionSnapshot{}, err
	}
	if raw := strings.TrimSpace(v.GetString(KeyVersionCode)); raw != "" {
		code, convErr := strconv.Atoi(raw)
		if convErr != nil {
			return types.VersionSnapshot{}, invalidDescriptorField(KeyVersionCode, raw, convErr)
		}
		snapshot.AppVersionCode = code
	}
	snapshot.AppVersionName = strings.TrimSpace(v.GetString(KeyVersionName))

	log.Ctx(ctx).Debug().
		Str("descriptor", s.Path).
		Int("target_sdk", snapshot.TargetSdk).
		Str("version_name", snapshot.AppVersionName).
		Msg("version descriptor loaded")
	s.snapshot = &snapshot
	return snapshot, nil
}

// sdkField returns 0 for an absent key so manifest defaults can fill it.
func sdkField(v *viper.Viper, key string) (int, error) {
	raw := strings.TrimSpace(v.GetString(key))
	if raw == "" {
		return 0, nil
	}
	level, err := shared.ParseSdkLevel(raw)
	if err != nil {
		return 0, invalidDescriptorField(key, raw, err)
	}
	return level, nil
}

func invalidDescriptorField(key string, raw string, cause error) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg(fmt.Sprintf("invalid %s value %q", key, raw)).
		WithCause(cause)
}

// StaticVersionSource serves a fixed snapshot. The CLI uses it when the
// manifest's default_config carries every version field.
type StaticVersionSource struct {
	Snapshot types.VersionSnapshot
}

func NewStaticVersionSource(snapshot types.VersionSnapshot) StaticVersionSource {
	return StaticVersionSource{Snapshot: snapshot}
}

func (s StaticVersionSource) Read(ctx context.Context) (types.VersionSnapshot, error) {
	return s.Snapshot, nil
}

var (
	_ ports.VersionSourcePort = (*DescriptorVersionSource)(nil)
	_ ports.VersionSourcePort = StaticVersionSource{}
)
