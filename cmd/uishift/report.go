// cmd/uishift/report.go
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/julianshen/uishift/internal/analyzer"
	"github.com/julianshen/uishift/internal/render"
	"github.com/julianshen/uishift/internal/report"
)

func reportCmd() *cobra.Command {
	var (
		analysisFlag string
		outputFlag   string
		previewFlag  bool
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Generate a migration plan from an analysis file",
		Long: `Read the JSON analysis produced by "uishift analyze" and write a
markdown migration plan with a component mapping table, batch organization,
complexity assessment, and roadmap.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			analysisPath := firstNonEmpty(analysisFlag, cfg.Report.Analysis)
			a, err := analyzer.LoadAnalysis(analysisPath)
			if err != nil {
				return fmt.Errorf("%w (run \"uishift analyze\" first)", err)
			}
			fmt.Fprintf(os.Stderr, "report: loaded analysis from %s\n", analysisPath)

			plan := report.NewGenerator(a, cfg.Report.BatchSize).Generate(time.Now())

			outputPath := firstNonEmpty(outputFlag, cfg.Report.Output)
			if err := os.WriteFile(outputPath, []byte(plan), 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", outputPath, err)
			}
			fmt.Fprintf(os.Stderr, "report: saved to %s\n", outputPath)

			if previewFlag {
				r, err := render.NewMarkdownRenderer(render.TerminalWidth(100))
				if err != nil {
					return err
				}
				out, err := r.Render(plan)
				if err != nil {
					return fmt.Errorf("rendering preview: %w", err)
				}
				fmt.Print(out)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&analysisFlag, "analysis", "", "analysis input file (default codebase-analysis.json)")
	cmd.Flags().StringVar(&outputFlag, "output", "", "report output file (default migration-plan.md)")
	cmd.Flags().BoolVar(&previewFlag, "preview", false, "render the report to the terminal")

	return cmd
}
