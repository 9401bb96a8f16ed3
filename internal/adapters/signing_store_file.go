package adapters

import (
	"fmt"
	"os"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"buildplan/internal/ports"
	"buildplan/internal/types"
)

// DebugCredentialsRef points at the keystore the Android toolchain
// generates on first build.
const DebugCredentialsRef = "keystore://~/.android/debug.keystore#androiddebugkey"

// SigningStoreFileAdapter serves identities from a YAML file. The debug
// identity is always present; the file may redefine its reference.
type SigningStoreFileAdapter struct {
	identities map[string]types.SigningIdentity
}

func NewSigningStoreFileAdapter(path string) (SigningStoreFileAdapter, error) {
	adapter := SigningStoreFileAdapter{
		identities: map[string]types.SigningIdentity{
			"debug": {Name: "debug", CredentialsRef: DebugCredentialsRef},
		},
	}
	if strings.TrimSpace(path) == "" {
		return adapter, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return SigningStoreFileAdapter{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("signing store file not found").
			WithCause(err)
	}
	var file types.SigningStoreFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return SigningStoreFileAdapter{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse signing store yaml").
			WithCause(err)
	}
	for _, identity := range file.Identities {
		name := strings.TrimSpace(identity.Name)
		if name == "" {
			return SigningStoreFileAdapter{}, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("signing identity name is empty")
		}
		adapter.identities[name] = types.SigningIdentity{
			Name:           name,
			CredentialsRef: strings.TrimSpace(identity.CredentialsRef),
		}
	}
	return adapter, nil
}

func (a SigningStoreFileAdapter) Lookup(name string) (types.SigningIdentity, error) {
	identity, ok := a.identities[strings.TrimSpace(name)]
	if !ok {
		return types.SigningIdentity{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("no signing identity named %q", name))
	}
	return identity, nil
}

var _ ports.SigningStorePort = SigningStoreFileAdapter{}
