package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"buildplan/internal/app"
	"buildplan/internal/types"
)

type resolveOptions struct {
	Manifest      string
	Variants      []string
	VersionSource string
	SigningStore  string
	Catalog       string
	OutputDir     string
	Format        string
	Strict        bool
	Parallelism   int
}

func newResolveCommand() *cobra.Command {
	opts := resolveOptions{}
	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve variants into build plan files",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runResolve(cmd.Context(), cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Manifest, "manifest", "", "Build manifest path (.yaml or .hcl)")
	cmd.Flags().StringSliceVar(&opts.Variants, "variant", nil, "Variant(s) to resolve; default is every declared variant")
	cmd.Flags().StringVar(&opts.VersionSource, "version-source", "", "Project descriptor with SDK and version fields")
	cmd.Flags().StringVar(&opts.SigningStore, "signing-store", "", "Signing identity store file")
	cmd.Flags().StringVar(&opts.Catalog, "catalog", "", "Dependency catalog with SDK ranges")
	cmd.Flags().StringVar(&opts.OutputDir, "output", "out", "Output directory")
	cmd.Flags().StringVar(&opts.Format, "format", "yaml", "Plan format (yaml|json)")
	cmd.Flags().BoolVar(&opts.Strict, "strict", false, "Fail when any plan carries warnings")
	cmd.Flags().IntVar(&opts.Parallelism, "parallelism", 4, "Variants resolved concurrently")

	_ = viper.BindPFlag("manifest", cmd.Flags().Lookup("manifest"))
	_ = viper.BindPFlag("variants", cmd.Flags().Lookup("variant"))
	_ = viper.BindPFlag("version_source", cmd.Flags().Lookup("version-source"))
	_ = viper.BindPFlag("signing_store", cmd.Flags().Lookup("signing-store"))
	_ = viper.BindPFlag("catalog", cmd.Flags().Lookup("catalog"))
	_ = viper.BindPFlag("output", cmd.Flags().Lookup("output"))
	_ = viper.BindPFlag("format", cmd.Flags().Lookup("format"))
	_ = viper.BindPFlag("strict", cmd.Flags().Lookup("strict"))
	_ = viper.BindPFlag("parallelism", cmd.Flags().Lookup("parallelism"))

	return cmd
}

func runResolve(ctx context.Context, cmd *cobra.Command, opts resolveOptions) error {
	service := newAppService()
	result, err := service.Resolve(ctx, app.ResolveRequest{
		ManifestPath:  resolveString(cmd, opts.Manifest, "manifest", "manifest"),
		Variants:      resolveStrings(cmd, opts.Variants, "variants", "variant"),
		VersionSource: resolveString(cmd, opts.VersionSource, "version_source", "version-source"),
		SigningStore:  resolveString(cmd, opts.SigningStore, "signing_store", "signing-store"),
		Catalog:       resolveString(cmd, opts.Catalog, "catalog", "catalog"),
		OutputDir:     resolveString(cmd, opts.OutputDir, "output", "output"),
		Format:        types.PlanFormat(resolveString(cmd, opts.Format, "format", "format")),
		Strict:        resolveBool(cmd, opts.Strict, "strict", "strict"),
		Parallelism:   resolveInt(cmd, opts.Parallelism, "parallelism", "parallelism"),
	})
	if err != nil {
		return err
	}
	for _, plan := range result.Plans {
		fmt.Fprintf(cmd.OutOrStdout(), "resolved: %s -> %s (%s)\n", plan.Variant, plan.Path, plan.Fingerprint)
		for _, warning := range plan.Warnings {
			fmt.Fprintf(cmd.OutOrStdout(), "  warning: %s %s: %s\n", warning.Kind, warning.Coordinate, warning.Message)
		}
	}
	return nil
}
