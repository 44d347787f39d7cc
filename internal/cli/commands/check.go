package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kotoha-works/articleqc/internal/cli/config"
	"github.com/kotoha-works/articleqc/internal/cli/output"
	"github.com/kotoha-works/articleqc/internal/runner"
	_ "github.com/kotoha-works/articleqc/pkg/qc/checks" // register checks
)

// CheckOptions holds options for the check command.
type CheckOptions struct {
	Format   string   // Output format: text, json, yaml
	Disable  []string // Check IDs to disable
	NoReport bool     // Skip writing YAML report files
	Workers  int      // Parallel evaluation workers
}

// NewCheckCommand creates the check command.
func NewCheckCommand() *cobra.Command {
	opts := &CheckOptions{}
	cmd := &cobra.Command{
		Use:   "check <site>|all",
		Short: "Run the QC checks on a site's articles",
		Long: `Evaluate every article of a site against the fourteen QC checks
and print a per-check summary. "all" runs the whole configured site roster.

A YAML report is written to the report directory for each site unless
--no-report is given.`,
		Example: `  # Check one site
  articleqc check gaichuu

  # Check every configured site
  articleqc check all

  # Machine-readable output, no report files
  articleqc check gaichuu --format json --no-report

  # Skip the image check
  articleqc check gaichuu --disable check_014`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, json, yaml")
	cmd.Flags().StringSliceVar(&opts.Disable, "disable", nil, "Check IDs to disable")
	cmd.Flags().BoolVar(&opts.NoReport, "no-report", false, "Do not write YAML report files")
	cmd.Flags().IntVar(&opts.Workers, "workers", 0, "Parallel evaluation workers (default: CPU count)")

	return cmd
}

func runCheck(cmd *cobra.Command, target string, opts *CheckOptions) error {
	ctx := cmd.Context()
	cfg := config.FromContext(ctx)
	if cfg == nil {
		return fmt.Errorf("configuration not loaded")
	}
	logger := config.GetLogger(ctx)

	r := output.FromContext(ctx)
	if opts.Format != "" {
		r = output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(opts.Format))
	}

	qcCfg := cfg.BuildQCConfig()
	for _, id := range opts.Disable {
		qcCfg.Disable(strings.TrimSpace(id))
	}

	run := runner.New(runner.Options{
		BaseDir: cfg.BaseDir,
		Workers: opts.Workers,
		Config:  qcCfg,
		Logger:  logger,
	})

	sites := []string{target}
	if target == "all" {
		sites = cfg.Sites
	}

	var reports []*runner.SiteReport
	for _, site := range sites {
		report, err := run.RunSite(ctx, site)
		if err != nil {
			// One broken site does not stop the roster
			r.Errorf("ERROR: %s: %v\n", site, err)
			continue
		}
		reports = append(reports, report)

		if !opts.NoReport {
			path, err := runner.WriteReport(report, cfg.ReportDir)
			if err != nil {
				return err
			}
			logger.Info("report written", "path", path)
		}
	}

	if len(reports) == 0 {
		return fmt.Errorf("no sites could be checked")
	}

	switch r.EffectiveMode() {
	case output.ModeJSON:
		if len(reports) == 1 {
			return r.JSON(reports[0])
		}
		return r.JSON(reports)
	case output.ModeYAML:
		if len(reports) == 1 {
			return r.YAML(reports[0])
		}
		return r.YAML(reports)
	default:
		for _, report := range reports {
			r.SiteSummary(report)
		}
		if len(reports) > 1 {
			r.GrandTotal(reports)
		}
	}
	return nil
}
