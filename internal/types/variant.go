package types

type Variant struct {
	Name               string            `yaml:"name" json:"name"`
	SigningIdentityRef string            `yaml:"signing_identity_ref" json:"signing_identity_ref"`
	Overrides          map[string]string `yaml:"overrides" json:"overrides"`
}

// SigningIdentity names credential material held by the signing store.
// CredentialsRef is an opaque handle and never the material itself.
type SigningIdentity struct {
	Name           string `yaml:"name" json:"name"`
	CredentialsRef string `yaml:"credentials_ref" json:"credentials_ref"`
}

type SigningStoreFile struct {
	Identities []SigningIdentity `yaml:"identities"`
}
