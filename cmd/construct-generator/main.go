// Package main provides the CLI entrypoint for construct-generator.
//
// construct-generator scans Go packages for construct: directives on struct
// types and emits constructor functions and typestate builders next to the
// annotated types.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"construct-generator/internal/analyze"
	"construct-generator/internal/annotation"
	"construct-generator/internal/config"
	"construct-generator/internal/diagnostic"
	"construct-generator/internal/gen"
)

type cliOptions struct {
	configPath string
	dryRun     bool
	debug      bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &cliOptions{}

	root := &cobra.Command{
		Use:          "construct-generator",
		Short:        "Generate constructors and typestate builders from struct annotations",
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "path to construct.yaml (default: ./construct.yaml when present)")

	root.AddCommand(newGenCmd(opts), newCheckCmd(opts))

	return root
}

func newGenCmd(opts *cliOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gen [patterns...]",
		Short: "Generate code for every annotated struct matched by the patterns",
		Long: "Scans the given package patterns (or the configured ones) and writes one\n" +
			"generated file per annotated struct, next to the struct's own package.\n" +
			"Structs with invalid annotations are reported and skipped; valid ones\n" +
			"still generate.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGen(opts, args)
		},
	}

	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "report what would be written without writing")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "dump the annotation models to stderr")

	return cmd
}

func newCheckCmd(opts *cliOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [patterns...]",
		Short: "Validate annotations without generating code",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(opts, args)
		},
	}

	cmd.Flags().BoolVar(&opts.debug, "debug", false, "dump the annotation models to stderr")

	return cmd
}

// loadConfig resolves the effective configuration: the --config file when
// given, an adjacent construct.yaml when present, defaults otherwise.
func loadConfig(opts *cliOptions) (*config.File, error) {
	if opts.configPath != "" {
		return config.LoadFile(opts.configPath)
	}

	if _, err := os.Stat(config.DefaultFilename); err == nil {
		return config.LoadFile(config.DefaultFilename)
	}

	return config.Default(), nil
}

// buildModels loads the patterns and normalizes every annotated record.
// Diagnostics accumulate across records; a record with errors yields no model
// but never stops the others.
func buildModels(cfg *config.File, patterns []string, debug bool) ([]*annotation.Model, diagnostic.Diagnostics, error) {
	if len(patterns) == 0 {
		patterns = cfg.Patterns
	}

	records, err := analyze.Load(patterns...)
	if err != nil {
		return nil, diagnostic.Diagnostics{}, err
	}

	var all diagnostic.Diagnostics

	var models []*annotation.Model

	for _, rec := range records {
		m, diags := annotation.Build(rec)
		all.Merge(diags)

		if m != nil && !diags.HasErrors() {
			models = append(models, m)
		}
	}

	if debug {
		spew.Fdump(os.Stderr, models)
	}

	return models, all, nil
}

// report prints every diagnostic, warnings included, to stderr.
func report(diags diagnostic.Diagnostics) {
	for _, d := range diags.Warnings {
		fmt.Fprintln(os.Stderr, d.String())
	}

	for _, d := range diags.Errors {
		fmt.Fprintln(os.Stderr, d.String())
	}
}

func runGen(opts *cliOptions, patterns []string) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	models, diags, err := buildModels(cfg, patterns, opts.debug)
	if err != nil {
		return err
	}

	report(diags)

	g := gen.NewGenerator(cfg.GeneratorConfig())

	files, err := g.Generate(models)
	if err != nil {
		return err
	}

	if opts.dryRun {
		for _, f := range files {
			fmt.Println(filepath.Join(f.Dir, f.Filename))
		}
	} else if err := gen.WriteFiles(files); err != nil {
		return err
	}

	if diags.HasErrors() {
		return fmt.Errorf("%d annotation error(s); affected structs were skipped", len(diags.Errors))
	}

	fmt.Fprintf(os.Stderr, "generated %d file(s)\n", len(files))

	return nil
}

func runCheck(opts *cliOptions, patterns []string) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	models, diags, err := buildModels(cfg, patterns, opts.debug)
	if err != nil {
		return err
	}

	report(diags)

	if diags.HasErrors() {
		return fmt.Errorf("%d annotation error(s)", len(diags.Errors))
	}

	fmt.Fprintf(os.Stderr, "ok: %d annotated struct(s)\n", len(models))

	return nil
}
