package app

import (
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"buildplan/internal/core"
)

func (s Service) Inspect(req InspectRequest) (InspectResult, error) {
	planPath := strings.TrimSpace(req.PlanPath)
	if planPath == "" {
		return InspectResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("plan path is required")
	}
	plan, err := s.PlanReader.ReadPlan(planPath)
	if err != nil {
		return InspectResult{}, err
	}
	var plugins []string
	for _, plugin := range plan.Plugins {
		plugins = append(plugins, plugin.ID)
	}
	return InspectResult{
		Variant:          plan.Variant.Name,
		Signing:          plan.Signing.Name,
		Version:          plan.Version,
		Plugins:          plugins,
		Dependencies:     plan.Dependencies,
		Warnings:         plan.Warnings,
		Fingerprint:      plan.Fingerprint,
		FingerprintValid: core.Fingerprint(plan) == plan.Fingerprint,
	}, nil
}
