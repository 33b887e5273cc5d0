package report

import (
	"fmt"
	"strings"

	"github.com/julianshen/uishift/internal/analyzer"
)

// DefaultBatchSize is the chunk size for overflow batches.
const DefaultBatchSize = 10

// Batch is a named, bounded group of components scheduled together.
type Batch struct {
	Name       string
	Priority   string
	Complexity string
	Components []analyzer.Component
}

var (
	layoutKeywords = []string{"layout", "header", "footer", "sidebar", "nav", "container"}
	formKeywords   = []string{"input", "form", "select", "checkbox", "radio", "button"}
)

// PartitionBatches assigns every component to exactly one batch. Named
// buckets are filled in a fixed order over the components not yet consumed
// (first-bucket-wins: a component taken by an earlier bucket never moves to a
// later one, even when the later filter would also match). Leftovers are
// chunked in original order into numbered overflow batches. The union of all
// batches is the full component list with no duplicates.
func PartitionBatches(components []analyzer.Component, batchSize int) []Batch {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}

	consumed := make([]bool, len(components))
	take := func(limit int, match func(analyzer.Component) bool) []analyzer.Component {
		var taken []analyzer.Component
		for i, c := range components {
			if consumed[i] || !match(c) {
				continue
			}
			consumed[i] = true
			taken = append(taken, c)
			if len(taken) == limit {
				break
			}
		}
		return taken
	}

	var batches []Batch
	appendBatch := func(name, priority, complexity string, comps []analyzer.Component) {
		if len(comps) > 0 {
			batches = append(batches, Batch{Name: name, Priority: priority, Complexity: complexity, Components: comps})
		}
	}

	appendBatch("Layout & Structure", "Critical", "Medium", take(8, nameMatches(layoutKeywords)))
	appendBatch("Simple UI Components", "High", "Low", take(10, complexityIs(analyzer.ComplexitySimple)))
	appendBatch("Form Components", "High", "Medium", take(10, nameMatches(formKeywords)))
	appendBatch("Medium Complexity Components", "Medium", "Medium", take(10, complexityIs(analyzer.ComplexityMedium)))
	appendBatch("Complex Components", "Medium", "High", take(8, complexityIs(analyzer.ComplexityHigh)))

	var remaining []analyzer.Component
	for i, c := range components {
		if !consumed[i] {
			remaining = append(remaining, c)
		}
	}
	for n := 1; len(remaining) > 0; n++ {
		size := batchSize
		if size > len(remaining) {
			size = len(remaining)
		}
		appendBatch(fmt.Sprintf("Additional Components %d", n), "Low", "Mixed", remaining[:size])
		remaining = remaining[size:]
	}

	return batches
}

func nameMatches(keywords []string) func(analyzer.Component) bool {
	return func(c analyzer.Component) bool {
		lower := strings.ToLower(c.Name)
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				return true
			}
		}
		return false
	}
}

func complexityIs(level string) func(analyzer.Component) bool {
	return func(c analyzer.Component) bool {
		return c.Complexity == level
	}
}
