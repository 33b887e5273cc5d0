// cmd/uishift/summary.go
package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianshen/uishift/internal/analyzer"
)

var (
	summaryTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("12"))

	summaryKeyStyle = lipgloss.NewStyle().
			Bold(true).
			Width(18)

	summaryBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)
)

// renderSummary builds the styled analysis summary printed after a
// successful analyze run.
func renderSummary(a *analyzer.Analysis, outputPath string) string {
	frameworkVersion := a.Framework.Version
	if normalized := analyzer.DisplayVersion(frameworkVersion); normalized != frameworkVersion {
		frameworkVersion = fmt.Sprintf("%s (%s)", frameworkVersion, normalized)
	}

	rows := []struct{ key, value string }{
		{"Framework", a.Framework.Name + " " + frameworkVersion},
		{"Build Tool", a.BuildTool},
		{"Components", strconv.Itoa(a.ComponentCount)},
		{"Total Files", strconv.Itoa(a.TotalFiles)},
		{"Styling", strings.Join(a.StylingApproach, ", ")},
		{"State Management", strings.Join(a.StateManagement, ", ")},
		{"Routing", a.Routing},
		{"Complexity Score", fmt.Sprintf("%d/100", a.ComplexityScore)},
		{"Saved To", outputPath},
	}

	var b strings.Builder
	for i, row := range rows {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(summaryKeyStyle.Render(row.key))
		b.WriteString(row.value)
	}

	return summaryTitleStyle.Render("Analysis Summary") + "\n" + summaryBoxStyle.Render(b.String())
}
