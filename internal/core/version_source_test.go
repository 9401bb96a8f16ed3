package core

import (
	"errors"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"buildplan/internal/ports/mocks"
	"buildplan/internal/types"
)

func TestVersionReaderAppliesOverrides(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := mocks.NewMockVersionSourcePort(ctrl)
	source.EXPECT().Read(gomock.Any()).Return(types.VersionSnapshot{
		MinSdk: 21, TargetSdk: 33, CompileSdk: 34, AppVersionCode: 1, AppVersionName: "1.0.0",
	}, nil)

	reader := NewVersionReader(source, types.VersionOverrides{MinSdk: 23, TargetSdk: 34, AppVersionName: " 1.0.1 "})
	snapshot, err := reader.Read(t.Context())
	require.NoError(t, err)
	assert.Equal(t, types.VersionSnapshot{
		MinSdk: 23, TargetSdk: 34, CompileSdk: 34, AppVersionCode: 1, AppVersionName: "1.0.1",
	}, snapshot)
}

func TestVersionReaderErrors(t *testing.T) {
	tests := []struct {
		name     string
		snapshot types.VersionSnapshot
		err      error
		kind     ErrorKind
	}{
		{
			name: "source failure",
			err:  errors.New("open local.properties: no such file"),
			kind: KindSourceUnavailable,
		},
		{
			name: "malformed field",
			err:  errbuilder.New().WithCode(errbuilder.CodeInvalidArgument).WithMsg("flutter.versionCode: not a number"),
			kind: KindInvalidVersionData,
		},
		{
			name:     "missing field",
			snapshot: types.VersionSnapshot{MinSdk: 21, TargetSdk: 34, CompileSdk: 34, AppVersionName: "1.0"},
			kind:     KindInvalidVersionData,
		},
		{
			name:     "min above target",
			snapshot: types.VersionSnapshot{MinSdk: 35, TargetSdk: 34, CompileSdk: 34, AppVersionCode: 1, AppVersionName: "1.0"},
			kind:     KindInvalidVersionData,
		},
		{
			name:     "target above compile",
			snapshot: types.VersionSnapshot{MinSdk: 21, TargetSdk: 35, CompileSdk: 34, AppVersionCode: 1, AppVersionName: "1.0"},
			kind:     KindInvalidVersionData,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			source := mocks.NewMockVersionSourcePort(ctrl)
			source.EXPECT().Read(gomock.Any()).Return(tt.snapshot, tt.err)

			_, err := NewVersionReader(source, types.VersionOverrides{}).Read(t.Context())
			require.Error(t, err)
			assert.Equal(t, tt.kind, KindOf(err))
		})
	}
}

func TestVersionReaderWithoutSource(t *testing.T) {
	_, err := VersionReader{}.Read(t.Context())
	require.Error(t, err)
	assert.True(t, IsKind(err, KindSourceUnavailable))

	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, errbuilder.CodeInternal, cfgErr.Code())
}
