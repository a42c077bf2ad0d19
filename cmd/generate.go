package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/folio/internal/batch"
	"github.com/ziadkadry99/folio/internal/config"
	"github.com/ziadkadry99/folio/internal/export"
	"github.com/ziadkadry99/folio/internal/portfolio"
	"github.com/ziadkadry99/folio/internal/progress"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the portfolio site for a profile",
	Long: `Renders the profile with the selected template and writes portfolio.html,
portfolio.css, portfolio.js and manifest.json to the output directory.

With --profiles, every profile matching the glob patterns is rendered with
every selected template into <output>/<profile name>/<template>.`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().String("profile", "", "profile file (overrides config)")
	generateCmd.Flags().StringP("template", "t", "", "template id (overrides config)")
	generateCmd.Flags().StringP("output", "o", "", "output directory (overrides config)")
	generateCmd.Flags().Bool("standalone", false, "also write a self-contained index.html")
	generateCmd.Flags().String("escaping", "", "profile text escaping: strict or legacy (overrides config)")
	generateCmd.Flags().Bool("markdown", false, "render about text and descriptions as markdown")
	generateCmd.Flags().StringSlice("profiles", nil, "glob patterns of profiles to render in batch (e.g. \"team/**/*.yml\")")
	generateCmd.Flags().StringSlice("templates", nil, "templates for batch mode (default: the configured template)")
	generateCmd.Flags().Bool("all-templates", false, "render every template in batch mode")
	generateCmd.Flags().Int("concurrency", 0, "max parallel batch jobs (overrides config)")
	rootCmd.AddCommand(generateCmd)
}

// applyGenerateFlags overlays explicitly set flags on the config.
func applyGenerateFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	if flags.Changed("profile") {
		cfg.Profile, _ = flags.GetString("profile")
	}
	if flags.Changed("template") {
		cfg.Template, _ = flags.GetString("template")
	}
	if flags.Changed("output") {
		cfg.OutputDir, _ = flags.GetString("output")
	}
	if flags.Changed("standalone") {
		cfg.Standalone, _ = flags.GetBool("standalone")
	}
	if flags.Changed("escaping") {
		cfg.Escaping, _ = flags.GetString("escaping")
	}
	if flags.Changed("markdown") {
		cfg.Markdown, _ = flags.GetBool("markdown")
	}
	if flags.Changed("concurrency") {
		cfg.Batch.Concurrency, _ = flags.GetInt("concurrency")
	}
	return cfg.Validate()
}

func runGenerate(cmd *cobra.Command, args []string) error {
	start := time.Now()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := applyGenerateFlags(cmd, cfg); err != nil {
		return err
	}

	gen, err := newGenerator(cfg)
	if err != nil {
		return err
	}

	patterns, _ := cmd.Flags().GetStringSlice("profiles")
	if len(patterns) > 0 {
		return runBatch(cmd, cfg, gen, patterns, start)
	}

	templateID, err := checkTemplate(cfg.Template)
	if err != nil {
		return err
	}
	p, err := loadProfile(cfg.Profile)
	if err != nil {
		return err
	}

	at := gen.Now()
	a, err := portfolio.Generate(*p, string(templateID), portfolio.Options{
		GeneratedAt: at,
		Escaping:    gen.Escaping,
		Markdown:    gen.Markdown,
	})
	if err != nil {
		return fmt.Errorf("generating site: %w", err)
	}

	files, err := export.WriteFiles(cfg.OutputDir, a, export.NewManifest(string(templateID), at), cfg.Standalone)
	if err != nil {
		return err
	}

	for _, f := range files {
		fmt.Println(f)
	}
	if verbose {
		fmt.Fprintf(os.Stderr, "Generated %s site for %s in %s\n", templateID, cfg.Profile, time.Since(start).Round(time.Millisecond))
	}
	return nil
}

func runBatch(cmd *cobra.Command, cfg *config.Config, gen *portfolio.Generator, patterns []string, start time.Time) error {
	templates, err := batchTemplates(cmd, cfg)
	if err != nil {
		return err
	}

	jobs, err := batch.Plan(patterns, templates, cfg.OutputDir)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runner := &batch.Runner{
		Generator:   gen,
		Reporter:    progress.NewReporter(),
		Concurrency: cfg.Batch.Concurrency,
		Standalone:  cfg.Standalone,
	}
	results, err := runner.Run(ctx, jobs)
	if err != nil {
		return err
	}

	for _, r := range results {
		fmt.Println(r.Job.OutputDir)
	}
	fmt.Fprintf(os.Stderr, "Generated %d sites in %s\n", len(results), time.Since(start).Round(time.Millisecond))
	return nil
}

func batchTemplates(cmd *cobra.Command, cfg *config.Config) ([]portfolio.TemplateID, error) {
	if all, _ := cmd.Flags().GetBool("all-templates"); all {
		return portfolio.TemplateIDs(), nil
	}

	names, _ := cmd.Flags().GetStringSlice("templates")
	if len(names) == 0 {
		names = []string{cfg.Template}
	}
	ids := make([]portfolio.TemplateID, 0, len(names))
	for _, n := range names {
		id, err := checkTemplate(n)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
