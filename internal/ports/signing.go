package ports

import "buildplan/internal/types"

//go:generate go run go.uber.org/mock/mockgen -source=signing.go -destination=mocks/mock_signing.go -package=mocks

// SigningStorePort looks up signing identities by name. Credential material
// never crosses this boundary; only opaque references do.
type SigningStorePort interface {
	Lookup(name string) (types.SigningIdentity, error)
}
