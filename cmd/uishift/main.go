// cmd/uishift/main.go
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/julianshen/uishift/internal/config"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"

	configPath string
)

func versionString() string {
	return fmt.Sprintf("uishift %s (commit: %s, built: %s)", version, commit, date)
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "uishift",
		Short: "Frontend migration analyzer for Next.js + shadcn/ui",
		Long: `uishift inventories a frontend codebase (React, Next.js, Vue, Angular)
and produces a batch-by-batch migration plan toward Next.js with shadcn/ui.

Run "uishift analyze" on a project to produce an analysis file, then
"uishift report" to turn it into a migration plan.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Println(versionString())
		},
	}

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(analyzeCmd())
	rootCmd.AddCommand(reportCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig resolves the config path and loads the config. Flags override
// config values; config values override defaults.
func loadConfig() (*config.Config, error) {
	cfgPath := configPath
	if cfgPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("cannot determine home directory: %w", err)
		}
		cfgPath = filepath.Join(home, ".config", "uishift", "config.toml")
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// firstNonEmpty returns the first non-empty string, used to layer flag values
// over config values.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
