package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"buildplan/internal/app"
)

type inspectOptions struct {
	Plan string
}

func newInspectCommand() *cobra.Command {
	opts := inspectOptions{}
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Summarize a resolved plan and verify its fingerprint",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInspect(cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Plan, "plan", "", "Plan file (.yaml or .json)")
	_ = viper.BindPFlag("plan", cmd.Flags().Lookup("plan"))
	return cmd
}

func runInspect(cmd *cobra.Command, opts inspectOptions) error {
	service := newAppService()
	result, err := service.Inspect(app.InspectRequest{
		PlanPath: resolveString(cmd, opts.Plan, "plan", "plan"),
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "variant: %s (signing=%s)\n", result.Variant, result.Signing)
	fmt.Fprintf(out, "sdk: min=%d target=%d compile=%d\n", result.Version.MinSdk, result.Version.TargetSdk, result.Version.CompileSdk)
	fmt.Fprintf(out, "version: %s (%d)\n", result.Version.AppVersionName, result.Version.AppVersionCode)
	fmt.Fprintf(out, "plugins: %s\n", strings.Join(result.Plugins, ", "))
	fmt.Fprintf(out, "dependencies: %d\n", len(result.Dependencies))
	for _, dep := range result.Dependencies {
		line := fmt.Sprintf("- %s:%s:%s [%s]", dep.Group, dep.Artifact, dep.Version, dep.Scope)
		if dep.Platform != "" {
			line += " via " + dep.Platform
		}
		fmt.Fprintln(out, line)
	}
	for _, warning := range result.Warnings {
		fmt.Fprintf(out, "warning: %s %s: %s\n", warning.Kind, warning.Coordinate, warning.Message)
	}
	status := "ok"
	if !result.FingerprintValid {
		status = "mismatch"
	}
	fmt.Fprintf(out, "fingerprint: %s (%s)\n", result.Fingerprint, status)
	return nil
}
