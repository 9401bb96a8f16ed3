package adapters

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"buildplan/internal/ports"
	"buildplan/internal/types"
)

// PlanFileAdapter writes one plan file per variant into Dir, named
// "<variant>.plan.yaml" or "<variant>.plan.json".
type PlanFileAdapter struct {
	Dir string
}

func NewPlanFileAdapter(dir string) PlanFileAdapter {
	return PlanFileAdapter{Dir: dir}
}

func (a PlanFileAdapter) WritePlan(plan types.ResolvedBuildPlan, format types.PlanFormat) (string, error) {
	name := strings.TrimSpace(plan.Variant.Name)
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("variant name %q cannot be used as a plan file name", plan.Variant.Name))
	}
	data, err := EncodePlan(plan, format)
	if err != nil {
		return "", err
	}
	path, err := a.ensurePath(PlanFileName(plan.Variant.Name, format))
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write plan file").
			WithCause(err)
	}
	return path, nil
}

func PlanFileName(variant string, format types.PlanFormat) string {
	return fmt.Sprintf("%s.plan.%s", variant, format)
}

// EncodePlan renders a plan. Output is byte-identical for identical plans.
func EncodePlan(plan types.ResolvedBuildPlan, format types.PlanFormat) ([]byte, error) {
	switch format {
	case types.PlanFormatYAML, "":
		data, err := yaml.Marshal(plan)
		if err != nil {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to encode plan yaml").
				WithCause(err)
		}
		return data, nil
	case types.PlanFormatJSON:
		data, err := json.MarshalIndent(plan, "", "  ")
		if err != nil {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to encode plan json").
				WithCause(err)
		}
		return append(data, '\n'), nil
	default:
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unsupported plan format: %s", format))
	}
}

func (a PlanFileAdapter) ensurePath(filename string) (string, error) {
	if a.Dir == "" {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("output directory is empty")
	}
	if err := os.MkdirAll(a.Dir, 0755); err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create output directory").
			WithCause(err)
	}
	return filepath.Join(a.Dir, filename), nil
}

// PlanReaderAdapter loads a previously written plan. JSON is detected by
// extension; everything else is read as YAML.
type PlanReaderAdapter struct{}

func NewPlanReaderAdapter() PlanReaderAdapter {
	return PlanReaderAdapter{}
}

func (a PlanReaderAdapter) ReadPlan(path string) (types.ResolvedBuildPlan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.ResolvedBuildPlan{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("plan file not found").
			WithCause(err)
	}
	var plan types.ResolvedBuildPlan
	if strings.EqualFold(filepath.Ext(path), ".json") {
		err = json.Unmarshal(data, &plan)
	} else {
		err = yaml.Unmarshal(data, &plan)
	}
	if err != nil {
		return types.ResolvedBuildPlan{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse plan file").
			WithCause(err)
	}
	if strings.TrimSpace(plan.Variant.Name) == "" {
		return types.ResolvedBuildPlan{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("plan file missing variant name")
	}
	return plan, nil
}

var (
	_ ports.PlanWriterPort = PlanFileAdapter{}
	_ ports.PlanReaderPort = PlanReaderAdapter{}
)
