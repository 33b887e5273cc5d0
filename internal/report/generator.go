package report

import (
	"strings"
	"time"

	"github.com/julianshen/uishift/internal/analyzer"
)

// Generator renders a migration plan from a loaded analysis. The analysis is
// treated as read-only; the timestamp is the only non-deterministic input and
// appears only in the header and footer.
type Generator struct {
	analysis  *analyzer.Analysis
	batchSize int
}

// NewGenerator creates a Generator. batchSize controls overflow batch
// chunking; zero or negative falls back to DefaultBatchSize.
func NewGenerator(a *analyzer.Analysis, batchSize int) *Generator {
	return &Generator{analysis: a, batchSize: batchSize}
}

// Generate renders the full migration report with sections in fixed order.
func (g *Generator) Generate(now time.Time) string {
	batches := PartitionBatches(g.analysis.Components, g.batchSize)

	var b strings.Builder
	g.writeHeader(&b, now)
	g.writeExecutiveSummary(&b)
	g.writeCurrentState(&b)
	g.writeInventory(&b)
	g.writeMappingStrategy(&b)
	g.writeBatchPlan(&b, batches)
	g.writeComplexityAssessment(&b)
	g.writeRoadmap(&b, batches)
	g.writeRecommendations(&b)
	g.writeFooter(&b, now)
	return b.String()
}

// complexityLevel maps the numeric score to the qualitative label used in
// narrative sections. Thresholds: <30 Low, <60 Moderate, else High.
func complexityLevel(score int) (level, marker, description string) {
	switch {
	case score < 30:
		return "Low", "✅", "This migration should be straightforward with minimal challenges."
	case score < 60:
		return "Moderate", "⚠️", "This migration will require systematic planning but is manageable."
	default:
		return "High", "🔴", "This migration is complex and will require significant effort and planning."
	}
}

func complexityMarker(complexity string) string {
	switch complexity {
	case analyzer.ComplexitySimple:
		return "✅"
	case analyzer.ComplexityMedium:
		return "⚠️"
	default:
		return "🔴"
	}
}
