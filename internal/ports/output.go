package ports

import "buildplan/internal/types"

type PlanWriterPort interface {
	WritePlan(plan types.ResolvedBuildPlan, format types.PlanFormat) (string, error)
}

type PlanReaderPort interface {
	ReadPlan(path string) (types.ResolvedBuildPlan, error)
}
