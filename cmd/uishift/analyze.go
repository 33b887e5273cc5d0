// cmd/uishift/analyze.go
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/julianshen/uishift/internal/analyzer"
)

func analyzeCmd() *cobra.Command {
	var (
		outputFlag  string
		mappingFlag string
	)

	cmd := &cobra.Command{
		Use:   "analyze <path>",
		Short: "Analyze a frontend codebase",
		Long: `Scan a frontend project directory, detect its framework, build tool,
styling and state management stack, inventory its UI components, and write
the result as a JSON analysis file consumed by "uishift report".`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			root := args[0]
			if _, err := os.Stat(root); err != nil {
				return fmt.Errorf("path does not exist: %s", root)
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			mapper, err := analyzer.LoadMapper(firstNonEmpty(mappingFlag, cfg.Analyze.MappingFile))
			if err != nil {
				return err
			}

			a, err := analyzer.Run(root, mapper)
			if err != nil {
				return err
			}

			output := firstNonEmpty(outputFlag, cfg.Analyze.Output)
			if err := a.Save(output); err != nil {
				return err
			}

			fmt.Println(renderSummary(a, output))
			return nil
		},
	}

	cmd.Flags().StringVar(&outputFlag, "output", "", "analysis output file (default codebase-analysis.json)")
	cmd.Flags().StringVar(&mappingFlag, "mapping", "", "YAML file with extra shadcn keyword mappings")

	return cmd
}
