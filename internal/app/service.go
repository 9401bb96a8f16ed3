package app

import (
	"github.com/google/uuid"

	"buildplan/internal/adapters"
	"buildplan/internal/policies"
	"buildplan/internal/ports"
)

type Service struct {
	Manifests  ports.ManifestPort
	PlanReader ports.PlanReaderPort
	Policy     ports.PluginPolicyPort
	RunID      func() string
}

func NewService() Service {
	return Service{
		Manifests:  adapters.NewManifestFileAdapter(),
		PlanReader: adapters.NewPlanReaderAdapter(),
		Policy:     policies.DefaultPluginCompatibility(),
		RunID:      uuid.NewString,
	}
}
